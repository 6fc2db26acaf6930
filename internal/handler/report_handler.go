package handler

import (
	"fmt"
	"net/http"

	"employee-registry/internal/service"
)

type ReportHandler struct {
	employees *service.EmployeeService
	reports   *service.ReportService
}

func NewReportHandler(employees *service.EmployeeService, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{employees: employees, reports: reports}
}

func (h *ReportHandler) ExportAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.reports.RenderAll(employees)
	if err != nil {
		writeError(w, err)
		return
	}

	writePDF(w, "employees.pdf", pdf)
}

func (h *ReportHandler) ExportOne(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.employees.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.reports.RenderOne(employee)
	if err != nil {
		writeError(w, err)
		return
	}

	writePDF(w, fmt.Sprintf("employee_%d.pdf", employee.ID), pdf)
}

func writePDF(w http.ResponseWriter, filename string, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
