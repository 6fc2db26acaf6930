package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"employee-registry/internal/model"
)

// Letter page in points, laid out as a sequence of fixed-height text lines
// with three indentation levels (header, section label, list entry).
const (
	letterHeight  = 792.0
	pageTopOffset = 40.0
	lineHeight    = 20.0
	bottomMargin  = 60.0
	headerIndent  = 40.0
	sectionIndent = 60.0
	entryIndent   = 80.0
	employeeGap   = 10.0
)

type reportLine struct {
	indent float64
	text   string
}

type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// RenderAll produces the multi-employee report. The vertical cursor is checked
// against the bottom margin once per employee block, so a single oversized
// block may overrun the margin before the page turns.
func (s *ReportService) RenderAll(employees []model.Employee) ([]byte, error) {
	return output(s.renderAll(employees))
}

func (s *ReportService) renderAll(employees []model.Employee) *fpdf.Fpdf {
	doc := newDocument()

	y := pageTopOffset
	for _, e := range employees {
		for _, line := range employeeLines(e) {
			doc.Text(line.indent, y, line.text)
			y += lineHeight
		}
		y += employeeGap

		if y > letterHeight-bottomMargin {
			doc.AddPage()
			y = pageTopOffset
		}
	}

	return doc
}

// RenderOne writes a single employee onto one page with no page-break check;
// the two export paths intentionally paginate differently.
func (s *ReportService) RenderOne(e model.Employee) ([]byte, error) {
	doc := newDocument()

	y := pageTopOffset
	for _, line := range employeeLines(e) {
		doc.Text(line.indent, y, line.text)
		y += lineHeight
	}

	return output(doc)
}

func employeeLines(e model.Employee) []reportLine {
	lines := []reportLine{
		{headerIndent, fmt.Sprintf("ID: %d, Name: %s, Address: %s, Phone: %s, GovID: %s",
			e.ID, e.Name, e.Address, e.PhoneNumber, e.GovernmentID)},
		{sectionIndent, fmt.Sprintf("Current Position: %s", e.CurrentPositionDetails)},
		{sectionIndent, "Previous Experience:"},
	}

	for _, exp := range e.PreviousExperience {
		lines = append(lines, reportLine{entryIndent,
			fmt.Sprintf("Company: %s, Position: %s, Years: %v", exp.Company, exp.Position, exp.Years)})
	}

	lines = append(lines, reportLine{sectionIndent, "Salary History:"})
	for _, sal := range e.SalaryHistory {
		lines = append(lines, reportLine{entryIndent,
			fmt.Sprintf("Year: %d, Salary: %v %s, Position: %s", sal.Year, sal.Salary, sal.Currency, sal.Position)})
	}

	return lines
}

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	return doc
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
