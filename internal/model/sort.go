package model

// SortKey selects the ordering of the employee list.
type SortKey string

const (
	SortDefault        SortKey = ""
	SortName           SortKey = "name"
	SortNameDesc       SortKey = "name_desc"
	SortDepartment     SortKey = "department"
	SortDepartmentDesc SortKey = "department_desc"
	SortJoinedDate     SortKey = "joined_date"
	SortJoinedDateDesc SortKey = "joined_date_desc"
)

// ParseSortKey maps request input to a known key. Anything unknown
// sorts like the default.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortName, SortNameDesc, SortDepartment, SortDepartmentDesc, SortJoinedDate, SortJoinedDateDesc:
		return k
	}
	return SortDefault
}
