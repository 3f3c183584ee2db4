package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/repository"
	"github.com/suteetoe/employee-service/internal/viewmodel"
	"github.com/suteetoe/employee-service/pkg/apperrors"
	"github.com/suteetoe/employee-service/pkg/logger"
	"github.com/suteetoe/employee-service/pkg/metrics"
	"github.com/suteetoe/employee-service/pkg/validator"
)

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 5

// ErrDuplicateEmail is returned when another employee already uses the
// submitted email address.
var ErrDuplicateEmail = apperrors.New(apperrors.CodeConflict, "an employee with this email address already exists")

// EmployeeService implements listing and the per-record operations.
//
// The email uniqueness check and the write that follows are separate
// statements, so two concurrent requests with the same address can both
// succeed.
type EmployeeService struct {
	repo     *repository.EmployeeRepository
	validate *validator.Validator
	metrics  *metrics.Metrics
	pageSize int
	now      func() time.Time
}

// Option customises an EmployeeService.
type Option func(*EmployeeService)

// WithClock replaces time.Now as the source of join dates.
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeService) { s.now = now }
}

// WithPageSize sets the list page size.
func WithPageSize(size int) Option {
	return func(s *EmployeeService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewEmployeeService wires the service. m may be nil.
func NewEmployeeService(repo *repository.EmployeeRepository, v *validator.Validator, m *metrics.Metrics, opts ...Option) *EmployeeService {
	s := &EmployeeService{
		repo:     repo,
		validate: v,
		metrics:  m,
		pageSize: DefaultPageSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListParams are the list request values. Department and Active filter
// only when set.
type ListParams struct {
	SortKey    string
	Search     string
	Page       int
	Department *model.Department
	Active     *bool
}

// TotalPages is ceil(count/size), never less than one.
func TotalPages(count int64, size int) int {
	if size <= 0 || count <= 0 {
		return 1
	}
	return int((count + int64(size) - 1) / int64(size))
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// ListEmployees searches, filters, sorts and paginates, in that order.
// Out of range pages are clamped rather than rejected.
func (s *EmployeeService) ListEmployees(ctx context.Context, p ListParams) (*viewmodel.EmployeeList, error) {
	log := logger.FromCtx(ctx)

	sortKey := model.ParseSortKey(p.SortKey)
	search := repository.NormalizeSearch(p.Search)

	// a new session so the count and the page query each get their own statement
	filtered := s.repo.Query(ctx).
		Scopes(
			repository.Search(search),
			repository.InDepartment(p.Department),
			repository.WithActive(p.Active),
		).
		Session(&gorm.Session{})

	total, err := s.repo.CountMatching(filtered)
	if err != nil {
		log.Error("Failed to count employees", zap.Error(err))
		s.metrics.RecordOperation("list", outcome(err))
		return nil, err
	}
	s.metrics.ObserveListSize(total)

	totalPages := TotalPages(total, s.pageSize)
	page := ClampPage(p.Page, totalPages)

	rows, err := s.repo.FindMatching(filtered.Scopes(
		repository.OrderBy(sortKey),
		repository.Paginate(page, s.pageSize),
	))
	if err != nil {
		log.Error("Failed to list employees", zap.Error(err))
		s.metrics.RecordOperation("list", outcome(err))
		return nil, err
	}

	list := &viewmodel.EmployeeList{
		Employees:     viewmodel.ToListItems(rows),
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalCount:    total,
		PageSize:      s.pageSize,
		CurrentSort:   string(sortKey),
		CurrentFilter: search,
		Active:        p.Active,
	}
	if p.Department != nil {
		list.Department = p.Department.String()
	}

	s.metrics.RecordOperation("list", outcome(nil))
	log.Debug("Employees listed",
		zap.String("sort", list.CurrentSort),
		zap.String("search", search),
		zap.Int("page", page),
		zap.Int("total_pages", totalPages),
		zap.Int64("total_count", total))
	return list, nil
}

// GetEmployee loads one employee.
func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// GetEmployeeDetails returns the details view of an employee.
func (s *EmployeeService) GetEmployeeDetails(ctx context.Context, id uint) (*viewmodel.EmployeeDetails, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewmodel.ToDetails(e), nil
}

// GetEmployeeForDelete returns the delete confirmation view of an employee.
func (s *EmployeeService) GetEmployeeForDelete(ctx context.Context, id uint) (*viewmodel.EmployeeDelete, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewmodel.ToDelete(e), nil
}

// GetEmployeeForEdit returns the edit form prefilled from the stored employee.
func (s *EmployeeService) GetEmployeeForEdit(ctx context.Context, id uint) (*viewmodel.EmployeeForm, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewmodel.ToForm(e), nil
}

// CreateEmployee validates in, checks the email is free and stores a new
// employee joined now. Nothing is written when any check fails.
func (s *EmployeeService) CreateEmployee(ctx context.Context, in model.CreateEmployeeInput) (*model.Employee, error) {
	log := logger.FromCtx(ctx)

	in.Normalize()
	if err := s.validate.Struct(in); err != nil {
		log.Info("Employee input rejected", zap.Error(err))
		s.metrics.RecordOperation("create", outcome(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if in.EmailAddress != nil {
		if err := s.ensureEmailAvailable(ctx, *in.EmailAddress, 0); err != nil {
			s.logFailure(log, "create", err)
			return nil, err
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	e := &model.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Department:   in.Department,
		EmailAddress: in.EmailAddress,
		Phone:        in.Phone,
		IsActive:     active,
		JoinedDate:   s.now(),
	}
	if err := s.repo.Add(ctx, e); err != nil {
		s.logFailure(log, "create", err)
		return nil, err
	}

	s.metrics.RecordOperation("create", outcome(nil))
	log.Info("Employee created",
		zap.Uint("employee_id", e.ID),
		zap.String("department", e.Department.String()))
	return e, nil
}

// UpdateEmployee replaces every editable field of the employee with id.
// The join date is kept unless in supplies one.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, in model.UpdateEmployeeInput) (*model.Employee, error) {
	log := logger.FromCtx(ctx).With(zap.Uint("employee_id", id))

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logFailure(log, "update", err)
		return nil, err
	}

	in.Normalize()
	if err := s.validate.Struct(in); err != nil {
		log.Info("Employee input rejected", zap.Error(err))
		s.metrics.RecordOperation("update", outcome(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if in.EmailAddress != nil && *in.EmailAddress != model.StringValue(e.EmailAddress) {
		if err := s.ensureEmailAvailable(ctx, *in.EmailAddress, e.ID); err != nil {
			s.logFailure(log, "update", err)
			return nil, err
		}
	}

	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Department = in.Department
	e.EmailAddress = in.EmailAddress
	e.Phone = in.Phone
	e.IsActive = in.IsActive
	if in.JoinedDate != nil {
		e.JoinedDate = *in.JoinedDate
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logFailure(log, "update", err)
		return nil, err
	}

	s.metrics.RecordOperation("update", outcome(nil))
	log.Info("Employee updated")
	return e, nil
}

// DeleteEmployee removes the employee with id. A missing employee is not
// an error, so repeated deletes succeed.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(zap.Uint("employee_id", id))

	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		s.metrics.RecordOperation("delete", "noop")
		log.Debug("Employee already absent")
		return nil
	}
	if err != nil {
		s.logFailure(log, "delete", err)
		return err
	}

	if err := s.repo.Delete(ctx, e.ID); err != nil {
		s.logFailure(log, "delete", err)
		return err
	}

	s.metrics.RecordOperation("delete", outcome(nil))
	log.Info("Employee deleted")
	return nil
}

func (s *EmployeeService) ensureEmailAvailable(ctx context.Context, email string, excludeID uint) error {
	n, err := s.repo.CountMatching(s.repo.Query(ctx).Scopes(
		repository.WithEmail(email),
		repository.ExcludingID(excludeID),
	))
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func (s *EmployeeService) logFailure(log *zap.Logger, op string, err error) {
	s.metrics.RecordOperation(op, outcome(err))

	switch apperrors.CodeOf(err) {
	case apperrors.CodeConflict, apperrors.CodeNotFound:
		log.Warn("Employee "+op+" rejected", zap.Error(err))
	default:
		log.Error("Employee "+op+" failed", zap.Error(err))
	}
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "cancelled"
	}
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalid:
		return "invalid"
	case apperrors.CodeConflict:
		return "conflict"
	case apperrors.CodeNotFound:
		return "not_found"
	default:
		return "error"
	}
}
