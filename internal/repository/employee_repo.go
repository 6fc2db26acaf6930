package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"employee-registry/internal/model"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, address, phone_number, government_id,
		        previous_experience, salary_history, current_position_details
		 FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, phone_number, government_id,
		        previous_experience, salary_history, current_position_details
		 FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by id: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e model.Employee) (int64, error) {
	experience, history, err := encodeHistories(e)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (name, address, phone_number, government_id,
		                        previous_experience, salary_history,
		                        current_position_details, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Address, e.PhoneNumber, e.GovernmentID,
		experience, history, e.CurrentPositionDetails, now, now)
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read new employee id: %w", err)
	}
	return id, nil
}

// Update replaces the whole row. Callers are expected to send every field;
// anything missing from e ends up empty in storage.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, e model.Employee) error {
	experience, history, err := encodeHistories(e)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees
		 SET name = ?, address = ?, phone_number = ?, government_id = ?,
		     previous_experience = ?, salary_history = ?,
		     current_position_details = ?, updated_at = ?
		 WHERE id = ?`,
		e.Name, e.Address, e.PhoneNumber, e.GovernmentID,
		experience, history, e.CurrentPositionDetails, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update employee rows affected: %w", err)
	}
	if affected == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

// Delete is idempotent; deleting an absent id is not an error.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func encodeHistories(e model.Employee) (string, string, error) {
	if e.PreviousExperience == nil {
		e.PreviousExperience = []model.ExperienceEntry{}
	}
	if e.SalaryHistory == nil {
		e.SalaryHistory = []model.SalaryEntry{}
	}

	experience, err := json.Marshal(e.PreviousExperience)
	if err != nil {
		return "", "", fmt.Errorf("encode previous experience: %w", err)
	}

	history, err := json.Marshal(e.SalaryHistory)
	if err != nil {
		return "", "", fmt.Errorf("encode salary history: %w", err)
	}

	return string(experience), string(history), nil
}

func scanEmployee(scan func(dest ...any) error) (model.Employee, error) {
	var (
		e          model.Employee
		address    sql.NullString
		phone      sql.NullString
		govID      sql.NullString
		experience sql.NullString
		history    sql.NullString
		position   sql.NullString
	)

	err := scan(&e.ID, &e.Name, &address, &phone, &govID, &experience, &history, &position)
	if err != nil {
		return model.Employee{}, err
	}

	e.Address = address.String
	e.PhoneNumber = phone.String
	e.GovernmentID = govID.String
	e.CurrentPositionDetails = position.String
	e.PreviousExperience = decodeExperience(experience.String)
	e.SalaryHistory = decodeSalaryHistory(history.String)
	return e, nil
}

// Malformed stored history degrades to an empty list instead of failing the
// whole read; a broken sub-field must not make the record unretrievable.
func decodeExperience(raw string) []model.ExperienceEntry {
	entries := []model.ExperienceEntry{}
	if raw == "" {
		return entries
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []model.ExperienceEntry{}
	}
	if entries == nil {
		return []model.ExperienceEntry{}
	}
	return entries
}

func decodeSalaryHistory(raw string) []model.SalaryEntry {
	entries := []model.SalaryEntry{}
	if raw == "" {
		return entries
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []model.SalaryEntry{}
	}
	if entries == nil {
		return []model.SalaryEntry{}
	}
	return entries
}
