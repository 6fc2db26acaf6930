package service

import (
	"context"
	"strings"

	"employee-registry/internal/model"
	"employee-registry/internal/repository"
	"employee-registry/pkg/apierror"
)

type EmployeeService struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, payload model.EmployeeRequest) (int64, error) {
	employee, err := shapeEmployee(payload)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, employee)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, payload model.EmployeeRequest) error {
	employee, err := shapeEmployee(payload)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, employee)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// shapeEmployee validates the wire payload and normalizes it into a storage
// row: name is the only required field, the two history lists default to
// empty so the stored form is always a JSON array.
func shapeEmployee(payload model.EmployeeRequest) (model.Employee, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return model.Employee{}, apierror.BadRequest("name is required", "name")
	}

	employee := model.Employee{
		Name:                   payload.Name,
		Address:                payload.Address,
		PhoneNumber:            payload.PhoneNumber,
		GovernmentID:           payload.GovernmentID,
		PreviousExperience:     payload.PreviousExperience,
		SalaryHistory:          payload.SalaryHistory,
		CurrentPositionDetails: payload.CurrentPositionDetails,
	}
	if employee.PreviousExperience == nil {
		employee.PreviousExperience = []model.ExperienceEntry{}
	}
	if employee.SalaryHistory == nil {
		employee.SalaryHistory = []model.SalaryEntry{}
	}
	return employee, nil
}
