package models

type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"` // внешний табельный номер, уникальность не проверяется
	UserID     int64  `json:"userId"`
	DeptID     int64  `json:"deptId"`
	Position   string `json:"position"`
	HireDate   string `json:"hireDate"`
}

// EmployeeRow — сотрудник вместе с именами связанных аккаунта и отдела.
// Висячие ссылки отображаются как "Unknown".
type EmployeeRow struct {
	Employee
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	DeptName  string `json:"deptName"`
}
