package model

import (
	"fmt"
	"strings"
)

// Department is a closed set; declaration order is the sort order.
type Department int

const (
	DepartmentHR Department = iota + 1
	DepartmentFinance
	DepartmentIT
	DepartmentMarketing
	DepartmentSales
	DepartmentOperations
	DepartmentCustomerService
	DepartmentEngineering
	DepartmentAdministration
)

var departmentNames = [...]string{
	DepartmentHR:              "HR",
	DepartmentFinance:         "Finance",
	DepartmentIT:              "IT",
	DepartmentMarketing:       "Marketing",
	DepartmentSales:           "Sales",
	DepartmentOperations:      "Operations",
	DepartmentCustomerService: "CustomerService",
	DepartmentEngineering:     "Engineering",
	DepartmentAdministration:  "Administration",
}

// AllDepartments lists every department in declaration order.
func AllDepartments() []Department {
	out := make([]Department, 0, len(departmentNames)-1)
	for d := DepartmentHR; d <= DepartmentAdministration; d++ {
		out = append(out, d)
	}
	return out
}

// Valid reports whether d is one of the declared departments.
func (d Department) Valid() bool {
	return d >= DepartmentHR && d <= DepartmentAdministration
}

func (d Department) String() string {
	if !d.Valid() {
		return ""
	}
	return departmentNames[d]
}

// ParseDepartment matches a department name case-insensitively,
// ignoring spaces, so "customer service" parses too.
func ParseDepartment(s string) (Department, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if key == "" {
		return 0, fmt.Errorf("department is empty")
	}
	for _, d := range AllDepartments() {
		if strings.ToLower(departmentNames[d]) == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown department %q", s)
}

func (d Department) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Department) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*d = 0
		return nil
	}
	parsed, err := ParseDepartment(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
