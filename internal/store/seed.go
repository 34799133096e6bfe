package store

import "staff-portal/internal/models"

const (
	DefaultKey           = "staff_portal_v1"
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "Password123!"
)

func seedAdmin(email, password string) models.Account {
	return models.Account{
		ID:        1,
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  password,
		Verified:  true,
		Role:      models.RoleAdmin,
	}
}

func seedSnapshot(admin models.Account) snapshot {
	return snapshot{
		Accounts: []models.Account{admin},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Software team"},
			{ID: 2, Name: "HR", Description: "Human Resources"},
		},
		Employees: []models.Employee{},
		Requests:  []models.Request{},
	}
}
