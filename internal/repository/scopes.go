package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/suteetoe/employee-service/internal/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NormalizeSearch trims and case-folds a search term.
func NormalizeSearch(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Search keeps employees whose first name, last name or email contains
// term, ignoring case. An empty term matches everything.
func Search(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		t := NormalizeSearch(term)
		if t == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(t) + "%"
		return db.Where(
			`(LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email_address) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}
}

// InDepartment filters by department when d is set.
func InDepartment(d *model.Department) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if d == nil {
			return db
		}
		return db.Where("department = ?", *d)
	}
}

// WithActive filters by the active flag when active is set.
func WithActive(active *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if active == nil {
			return db
		}
		return db.Where("is_active = ?", *active)
	}
}

// WithEmail matches an exact, case-sensitive email address.
func WithEmail(email string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email_address = ?", email)
	}
}

// ExcludingID drops one employee from the result; zero excludes nothing.
func ExcludingID(id uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == 0 {
			return db
		}
		return db.Where("id <> ?", id)
	}
}

// OrderBy applies the ordering for key. Every ordering ends with the
// primary key so equal rows always come back in the same order.
func OrderBy(key model.SortKey) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch key {
		case model.SortNameDesc:
			return db.Order("first_name DESC").Order("last_name DESC").Order("id DESC")
		case model.SortDepartment:
			return db.Order("department ASC").Order("first_name ASC").Order("last_name ASC").Order("id ASC")
		case model.SortDepartmentDesc:
			return db.Order("department DESC").Order("first_name ASC").Order("last_name ASC").Order("id ASC")
		case model.SortJoinedDate:
			return db.Order("joined_date ASC").Order("id ASC")
		case model.SortJoinedDateDesc:
			return db.Order("joined_date DESC").Order("id DESC")
		default:
			return db.Order("first_name ASC").Order("last_name ASC").Order("id ASC")
		}
	}
}

// Paginate selects the 1-based page of the given size.
func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * size).Limit(size)
	}
}
