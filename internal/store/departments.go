package store

import (
	"fmt"
	"strings"

	"staff-portal/internal/models"
)

type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *DepartmentInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return fmt.Errorf("department name: %w", ErrMissingField)
	}
	return nil
}

// уникальность названия не требуется
func (s *Store) CreateDepartment(in DepartmentInput) (models.Department, error) {
	if err := in.normalize(); err != nil {
		return models.Department{}, err
	}
	d := models.Department{
		ID:          s.nextID(),
		Name:        in.Name,
		Description: in.Description,
	}
	s.data.Departments = append(s.data.Departments, d)
	s.Save()
	return d, nil
}

func (s *Store) UpdateDepartment(id int64, in DepartmentInput) (models.Department, error) {
	idx := s.departmentIndex(id)
	if idx < 0 {
		return models.Department{}, fmt.Errorf("department %d: %w", id, ErrNotFound)
	}
	if err := in.normalize(); err != nil {
		return models.Department{}, err
	}
	d := &s.data.Departments[idx]
	d.Name = in.Name
	d.Description = in.Description
	s.Save()
	return *d, nil
}

// DeleteDepartment отказывает, пока на отдел ссылается хоть один сотрудник.
func (s *Store) DeleteDepartment(id int64) error {
	if err := s.CheckDeleteDepartment(id); err != nil {
		return err
	}

	kept := make([]models.Department, 0, len(s.data.Departments)-1)
	for _, d := range s.data.Departments {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.data.Departments = kept
	s.Save()
	return nil
}

func (s *Store) CheckDeleteDepartment(id int64) error {
	idx := s.departmentIndex(id)
	if idx < 0 {
		return fmt.Errorf("department %d: %w", id, ErrNotFound)
	}
	for _, e := range s.data.Employees {
		if e.DeptID == id {
			return fmt.Errorf("cannot delete %q: %w", s.data.Departments[idx].Name, ErrInUse)
		}
	}
	return nil
}

func (s *Store) Departments() []models.Department {
	out := make([]models.Department, len(s.data.Departments))
	copy(out, s.data.Departments)
	return out
}

func (s *Store) DepartmentByID(id int64) (models.Department, bool) {
	idx := s.departmentIndex(id)
	if idx < 0 {
		return models.Department{}, false
	}
	return s.data.Departments[idx], true
}

func (s *Store) departmentIndex(id int64) int {
	for i, d := range s.data.Departments {
		if d.ID == id {
			return i
		}
	}
	return -1
}
