package viewmodel

import (
	"time"

	"github.com/suteetoe/employee-service/internal/model"
)

// DateLayout is the layout used for dates in forms and on pages.
const DateLayout = "2006-01-02"

// EmployeeListItem is one row of the employee list.
type EmployeeListItem struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	EmailAddress string    `json:"email_address"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active"`
	JoinedDate   time.Time `json:"joined_date"`
}

// EmployeeDetails is the full read-only view of an employee.
type EmployeeDetails struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	EmailAddress string    `json:"email_address"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active"`
	JoinedDate   time.Time `json:"joined_date"`
	RowGUID      string    `json:"row_guid"`
}

// EmployeeDelete is what the delete confirmation shows.
type EmployeeDelete struct {
	ID           uint      `json:"id"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	EmailAddress string    `json:"email_address"`
	JoinedDate   time.Time `json:"joined_date"`
}

// ToListItem maps an employee to a list row.
func ToListItem(e model.Employee) EmployeeListItem {
	return EmployeeListItem{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Department:   e.Department.String(),
		EmailAddress: model.StringValue(e.EmailAddress),
		Phone:        model.StringValue(e.Phone),
		IsActive:     e.IsActive,
		JoinedDate:   e.JoinedDate,
	}
}

// ToListItems maps a page of employees.
func ToListItems(employees []model.Employee) []EmployeeListItem {
	items := make([]EmployeeListItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, ToListItem(e))
	}
	return items
}

// ToDetails maps an employee to its details view.
func ToDetails(e *model.Employee) *EmployeeDetails {
	return &EmployeeDetails{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Department:   e.Department.String(),
		EmailAddress: model.StringValue(e.EmailAddress),
		Phone:        model.StringValue(e.Phone),
		IsActive:     e.IsActive,
		JoinedDate:   e.JoinedDate,
		RowGUID:      e.RowGUID.String(),
	}
}

// ToDelete maps an employee to the delete confirmation view.
func ToDelete(e *model.Employee) *EmployeeDelete {
	return &EmployeeDelete{
		ID:           e.ID,
		FullName:     e.FullName(),
		Department:   e.Department.String(),
		EmailAddress: model.StringValue(e.EmailAddress),
		JoinedDate:   e.JoinedDate,
	}
}
