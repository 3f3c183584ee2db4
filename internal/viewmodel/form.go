package viewmodel

import (
	"strings"
	"time"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/pkg/apperrors"
)

// EmployeeForm is the create and edit form as submitted by a browser.
// Every field is a string so a bad value can be shown back to the user.
type EmployeeForm struct {
	ID           uint   `form:"-" json:"id,omitempty"`
	FirstName    string `form:"first_name" json:"first_name"`
	LastName     string `form:"last_name" json:"last_name"`
	Department   string `form:"department" json:"department"`
	EmailAddress string `form:"email_address" json:"email_address"`
	Phone        string `form:"phone" json:"phone"`
	IsActive     bool   `form:"is_active" json:"is_active"`
	JoinedDate   string `form:"joined_date" json:"joined_date"`
}

// NewEmployeeForm is the blank create form.
func NewEmployeeForm() *EmployeeForm {
	return &EmployeeForm{IsActive: true}
}

// ToForm prefills the edit form from a stored employee.
func ToForm(e *model.Employee) *EmployeeForm {
	return &EmployeeForm{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Department:   e.Department.String(),
		EmailAddress: model.StringValue(e.EmailAddress),
		Phone:        model.StringValue(e.Phone),
		IsActive:     e.IsActive,
		JoinedDate:   e.JoinedDate.Format(DateLayout),
	}
}

// parseDepartment leaves an unknown department unset so validation
// reports it against the field.
func parseDepartment(s string) model.Department {
	d, err := model.ParseDepartment(s)
	if err != nil {
		return 0
	}
	return d
}

// ToCreateInput converts the submitted form into create input.
func (f *EmployeeForm) ToCreateInput() model.CreateEmployeeInput {
	active := f.IsActive
	in := model.CreateEmployeeInput{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Department:   parseDepartment(f.Department),
		EmailAddress: &f.EmailAddress,
		Phone:        &f.Phone,
		IsActive:     &active,
	}
	in.Normalize()
	return in
}

// ToUpdateInput converts the submitted form into update input. A blank
// joined date keeps the stored one.
func (f *EmployeeForm) ToUpdateInput() (model.UpdateEmployeeInput, error) {
	in := model.UpdateEmployeeInput{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Department:   parseDepartment(f.Department),
		EmailAddress: &f.EmailAddress,
		Phone:        &f.Phone,
		IsActive:     f.IsActive,
	}
	in.Normalize()

	if s := strings.TrimSpace(f.JoinedDate); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return in, apperrors.Validation(map[string]string{
				"joined_date": "must be a date in YYYY-MM-DD format",
			})
		}
		in.JoinedDate = &t
	}
	return in, nil
}
