package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/pkg/apperrors"
	"github.com/suteetoe/employee-service/pkg/metrics"
)

// ErrEmployeeNotFound is returned when no employee has the requested id.
var ErrEmployeeNotFound = apperrors.New(apperrors.CodeNotFound, "employee not found")

// EmployeeRepository persists employees through gorm.
type EmployeeRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

// NewEmployeeRepository creates a repository over db. m may be nil.
func NewEmployeeRepository(db *gorm.DB, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{db: db, metrics: m}
}

// Query returns a fresh, composable query over all employees. Callers
// narrow it with the scopes in this package before executing it.
func (r *EmployeeRepository) Query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Employee{})
}

// CountMatching counts the rows selected by q.
func (r *EmployeeRepository) CountMatching(q *gorm.DB) (int64, error) {
	defer r.metrics.TrackDBOperation("count")(time.Now())

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count employees")
	}
	return n, nil
}

// FindMatching loads the rows selected by q.
func (r *EmployeeRepository) FindMatching(q *gorm.DB) ([]model.Employee, error) {
	defer r.metrics.TrackDBOperation("select")(time.Now())

	var employees []model.Employee
	if err := q.Find(&employees).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to list employees")
	}
	return employees, nil
}

// Count returns the number of stored employees.
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	return r.CountMatching(r.Query(ctx))
}

// GetByID loads one employee.
func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	defer r.metrics.TrackDBOperation("select")(time.Now())

	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load employee")
	}
	return &e, nil
}

// Add inserts e and fills in its generated fields.
func (r *EmployeeRepository) Add(ctx context.Context, e *model.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.metrics.TrackDBOperation("insert")(time.Now())

	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return apperrors.Storage(err, "failed to create employee")
	}
	return nil
}

// Update overwrites every column of the stored row except its identifiers
// and creation time. A missing row yields ErrEmployeeNotFound.
func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.metrics.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).
		Model(&model.Employee{ID: e.ID}).
		Select("*").
		Omit("id", "row_guid", "created_at").
		Updates(e)
	if result.Error != nil {
		return apperrors.Storage(result.Error, "failed to update employee")
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee with id. Deleting a missing row is a no-op.
func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	defer r.metrics.TrackDBOperation("delete")(time.Now())

	if err := r.db.WithContext(ctx).Delete(&model.Employee{}, id).Error; err != nil {
		return apperrors.Storage(err, "failed to delete employee")
	}
	return nil
}

// Ping checks the underlying connection.
func (r *EmployeeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperrors.Storage(err, "failed to get database connection")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.Storage(err, "failed to ping database")
	}
	return nil
}
