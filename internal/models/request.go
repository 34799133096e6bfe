package models

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Request struct {
	ID            string        `json:"id"`
	EmployeeEmail string        `json:"employeeEmail"`
	Type          string        `json:"type"`
	Items         []Item        `json:"items"`
	Status        RequestStatus `json:"status"`
	Date          string        `json:"date"` // YYYY-MM-DD
}
