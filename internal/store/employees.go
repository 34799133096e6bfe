package store

import (
	"fmt"
	"strings"

	"staff-portal/internal/models"

	"github.com/google/uuid"
)

const unknown = "Unknown"

// EmployeeInput ссылается на аккаунт по email, а не по id.
type EmployeeInput struct {
	EmployeeID string `json:"employeeId"`
	UserEmail  string `json:"userEmail"`
	DeptID     int64  `json:"deptId"`
	Position   string `json:"position"`
	HireDate   string `json:"hireDate"`
}

func (in *EmployeeInput) normalize() error {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	in.Position = strings.TrimSpace(in.Position)
	in.HireDate = strings.TrimSpace(in.HireDate)
	if in.EmployeeID == "" || in.UserEmail == "" || in.Position == "" || in.HireDate == "" {
		return fmt.Errorf("employee id, user email, position and hire date: %w", ErrMissingField)
	}
	return nil
}

func (s *Store) resolveAccount(email string) (models.Account, error) {
	acc, ok := s.findAccountByEmail(email)
	if !ok {
		return models.Account{}, fmt.Errorf("no account matches %q: %w", email, ErrNotFound)
	}
	return acc, nil
}

// CreateEmployee требует существующий аккаунт. Несколько сотрудников
// на один аккаунт допускаются.
func (s *Store) CreateEmployee(in EmployeeInput) (models.Employee, error) {
	if err := in.normalize(); err != nil {
		return models.Employee{}, err
	}
	acc, err := s.resolveAccount(in.UserEmail)
	if err != nil {
		return models.Employee{}, err
	}

	e := models.Employee{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		UserID:     acc.ID,
		DeptID:     in.DeptID,
		Position:   in.Position,
		HireDate:   in.HireDate,
	}
	s.data.Employees = append(s.data.Employees, e)
	s.Save()
	return e, nil
}

func (s *Store) UpdateEmployee(id string, in EmployeeInput) (models.Employee, error) {
	idx := s.employeeIndex(id)
	if idx < 0 {
		return models.Employee{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	if err := in.normalize(); err != nil {
		return models.Employee{}, err
	}
	acc, err := s.resolveAccount(in.UserEmail)
	if err != nil {
		return models.Employee{}, err
	}

	e := &s.data.Employees[idx]
	e.EmployeeID = in.EmployeeID
	e.UserID = acc.ID
	e.DeptID = in.DeptID
	e.Position = in.Position
	e.HireDate = in.HireDate
	s.Save()
	return *e, nil
}

func (s *Store) DeleteEmployee(id string) error {
	if err := s.CheckDeleteEmployee(id); err != nil {
		return err
	}
	kept := make([]models.Employee, 0, len(s.data.Employees)-1)
	for _, e := range s.data.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.data.Employees = kept
	s.Save()
	return nil
}

func (s *Store) CheckDeleteEmployee(id string) error {
	if s.employeeIndex(id) < 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) Employees() []models.Employee {
	out := make([]models.Employee, len(s.data.Employees))
	copy(out, s.data.Employees)
	return out
}

func (s *Store) EmployeeByID(id string) (models.Employee, bool) {
	idx := s.employeeIndex(id)
	if idx < 0 {
		return models.Employee{}, false
	}
	return s.data.Employees[idx], true
}

// EmployeeRows — сотрудники с именами аккаунта и отдела для таблицы.
func (s *Store) EmployeeRows() []models.EmployeeRow {
	rows := make([]models.EmployeeRow, 0, len(s.data.Employees))
	for _, e := range s.data.Employees {
		row := models.EmployeeRow{Employee: e, UserName: unknown, UserEmail: unknown, DeptName: unknown}
		if idx := s.accountIndex(e.UserID); idx >= 0 {
			acc := s.data.Accounts[idx]
			row.UserName = acc.FullName()
			row.UserEmail = acc.Email
		}
		if idx := s.departmentIndex(e.DeptID); idx >= 0 {
			row.DeptName = s.data.Departments[idx].Name
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Store) employeeIndex(id string) int {
	for i, e := range s.data.Employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
