package viewmodel

// EmployeeList is one page of the employee list together with the
// request values needed to build sort, search and paging links.
type EmployeeList struct {
	Employees     []EmployeeListItem `json:"employees"`
	CurrentPage   int                `json:"current_page"`
	TotalPages    int                `json:"total_pages"`
	TotalCount    int64              `json:"total_count"`
	PageSize      int                `json:"page_size"`
	CurrentSort   string             `json:"current_sort"`
	CurrentFilter string             `json:"current_filter"`
	Department    string             `json:"department,omitempty"`
	Active        *bool              `json:"active,omitempty"`
}

func (l *EmployeeList) HasPrevious() bool { return l.CurrentPage > 1 }

func (l *EmployeeList) HasNext() bool { return l.CurrentPage < l.TotalPages }

func (l *EmployeeList) PreviousPage() int {
	if l.HasPrevious() {
		return l.CurrentPage - 1
	}
	return l.CurrentPage
}

func (l *EmployeeList) NextPage() int {
	if l.HasNext() {
		return l.CurrentPage + 1
	}
	return l.CurrentPage
}

// Pages lists every page number, for pager links.
func (l *EmployeeList) Pages() []int {
	pages := make([]int, 0, l.TotalPages)
	for p := 1; p <= l.TotalPages; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ActiveValue renders the active filter for query strings.
func (l *EmployeeList) ActiveValue() string {
	switch {
	case l.Active == nil:
		return ""
	case *l.Active:
		return "true"
	default:
		return "false"
	}
}
