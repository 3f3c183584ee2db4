package model

import (
	"strings"
	"time"
)

// CreateEmployeeInput is the validated input of the create operation.
type CreateEmployeeInput struct {
	FirstName    string     `json:"first_name" validate:"required,max=100"`
	LastName     string     `json:"last_name" validate:"required,max=100"`
	Department   Department `json:"department" validate:"department"`
	EmailAddress *string    `json:"email_address" validate:"omitempty,max=200,email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=20,phone"`
	// IsActive defaults to true when nil
	IsActive *bool `json:"is_active"`
}

// UpdateEmployeeInput replaces every editable field of an employee.
type UpdateEmployeeInput struct {
	FirstName    string     `json:"first_name" validate:"required,max=100"`
	LastName     string     `json:"last_name" validate:"required,max=100"`
	Department   Department `json:"department" validate:"department"`
	EmailAddress *string    `json:"email_address" validate:"omitempty,max=200,email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=20,phone"`
	IsActive     bool       `json:"is_active"`
	// JoinedDate keeps the stored value when nil
	JoinedDate *time.Time `json:"joined_date"`
}

// Normalize trims names and collapses blank optional fields to nil.
func (in *CreateEmployeeInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.EmailAddress = TrimToNil(in.EmailAddress)
	in.Phone = TrimToNil(in.Phone)
}

// Normalize trims names and collapses blank optional fields to nil.
func (in *UpdateEmployeeInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.EmailAddress = TrimToNil(in.EmailAddress)
	in.Phone = TrimToNil(in.Phone)
}

// TrimToNil trims s and returns nil when nothing is left.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// StringValue dereferences s, treating nil as "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
