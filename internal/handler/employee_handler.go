package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/service"
	"github.com/suteetoe/employee-service/internal/viewmodel"
	"github.com/suteetoe/employee-service/pkg/apperrors"
	"github.com/suteetoe/employee-service/pkg/logger"
)

const (
	flashCookie  = "flash"
	csrfKey      = "csrf"
	employeesURL = "/employees"
)

// EmployeeHandler serves the server-rendered employee pages.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

// NewEmployeeHandler creates the page handler.
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Register mounts the pages on e.
func (h *EmployeeHandler) Register(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/employees", h.List)
	e.GET("/employees/new", h.New)
	e.POST("/employees", h.Create)
	e.GET("/employees/:id", h.Details)
	e.GET("/employees/:id/edit", h.Edit)
	e.POST("/employees/:id/edit", h.Update)
	e.GET("/employees/:id/delete", h.ConfirmDelete)
	e.POST("/employees/:id/delete", h.Delete)
}

// Home redirects to the employee list.
func (h *EmployeeHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, employeesURL)
}

// List renders one page of the filtered, sorted list.
func (h *EmployeeHandler) List(c echo.Context) error {
	list, err := h.svc.ListEmployees(c.Request().Context(), listParams(c))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "list", h.page(c, "Employees", list))
}

// Details renders one employee.
func (h *EmployeeHandler) Details(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.renderError(c, err)
	}

	details, err := h.svc.GetEmployeeDetails(c.Request().Context(), id)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "details", h.page(c, details.FullName, details))
}

// New renders the blank create form.
func (h *EmployeeHandler) New(c echo.Context) error {
	data := h.page(c, "Add employee", viewmodel.NewEmployeeForm())
	data.Action = employeesURL
	return c.Render(http.StatusOK, "form", data)
}

// Create handles the create form.
func (h *EmployeeHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var form viewmodel.EmployeeForm
	if err := c.Bind(&form); err != nil {
		log.Warn("Invalid employee form", zap.Error(err))
		return h.renderForm(c, "Add employee", employeesURL, &form, apperrors.Wrap(err, apperrors.CodeInvalid, "the submitted form could not be read"))
	}

	e, err := h.svc.CreateEmployee(c.Request().Context(), form.ToCreateInput())
	if err != nil {
		return h.renderForm(c, "Add employee", employeesURL, &form, err)
	}

	log.Info("Employee created from form", zap.Uint("employee_id", e.ID))
	setFlash(c, "Employee added successfully!")
	return c.Redirect(http.StatusSeeOther, employeesURL)
}

// Edit renders the edit form prefilled from the stored employee.
func (h *EmployeeHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.renderError(c, err)
	}

	form, err := h.svc.GetEmployeeForEdit(c.Request().Context(), id)
	if err != nil {
		return h.renderError(c, err)
	}

	data := h.page(c, "Edit employee", form)
	data.Action = editURL(id)
	return c.Render(http.StatusOK, "form", data)
}

// Update handles the edit form.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.renderError(c, err)
	}

	var form viewmodel.EmployeeForm
	if err := c.Bind(&form); err != nil {
		form.ID = id
		return h.renderForm(c, "Edit employee", editURL(id), &form, apperrors.Wrap(err, apperrors.CodeInvalid, "the submitted form could not be read"))
	}
	form.ID = id

	in, err := form.ToUpdateInput()
	if err != nil {
		return h.renderForm(c, "Edit employee", editURL(id), &form, err)
	}

	if _, err := h.svc.UpdateEmployee(c.Request().Context(), id, in); err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return h.renderError(c, err)
		}
		return h.renderForm(c, "Edit employee", editURL(id), &form, err)
	}

	setFlash(c, "Employee updated successfully!")
	return c.Redirect(http.StatusSeeOther, employeesURL)
}

// ConfirmDelete renders the delete confirmation.
func (h *EmployeeHandler) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.renderError(c, err)
	}

	view, err := h.svc.GetEmployeeForDelete(c.Request().Context(), id)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "delete", h.page(c, "Delete employee", view))
}

// Delete removes the employee. Deleting one that is already gone still
// redirects to the list.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.renderError(c, err)
	}

	if err := h.svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return h.renderError(c, err)
	}

	setFlash(c, "Employee deleted successfully!")
	return c.Redirect(http.StatusSeeOther, employeesURL)
}

func (h *EmployeeHandler) page(c echo.Context, title string, data interface{}) *pageData {
	token, _ := c.Get(csrfKey).(string)
	return &pageData{
		Title:       title,
		Flash:       popFlash(c),
		CSRFToken:   token,
		Data:        data,
		Departments: model.AllDepartments(),
	}
}

// renderForm shows the submitted form again with err explained. Storage
// failures go to the error page instead.
func (h *EmployeeHandler) renderForm(c echo.Context, title, action string, form *viewmodel.EmployeeForm, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return h.renderError(c, err)
	}

	data := h.page(c, title, form)
	data.Action = action
	data.Errors = apperrors.FieldErrors(err)
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		data.Errors = map[string]string{"email_address": apperrors.PublicMessage(err)}
	case data.Errors == nil:
		data.Message = apperrors.PublicMessage(err)
	}
	return c.Render(status, "form", data)
}

func (h *EmployeeHandler) renderError(c echo.Context, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c).Error("Request failed", zap.Error(err))
	}

	data := h.page(c, http.StatusText(status), nil)
	data.Message = apperrors.PublicMessage(err)
	return c.Render(status, "error", data)
}

// ErrInvalidID is returned for a path id that is not a positive integer.
var ErrInvalidID = apperrors.New(apperrors.CodeNotFound, "employee not found")

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

func editURL(id uint) string {
	return employeesURL + "/" + strconv.FormatUint(uint64(id), 10) + "/edit"
}

// listParams reads the list query. Malformed values fall back to their
// defaults rather than failing the request.
func listParams(c echo.Context) service.ListParams {
	p := service.ListParams{
		SortKey: c.QueryParam("sort"),
		Search:  c.QueryParam("search"),
		Page:    1,
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		p.Page = v
	}
	if d, err := model.ParseDepartment(c.QueryParam("department")); err == nil {
		p.Department = &d
	}
	if b, err := strconv.ParseBool(c.QueryParam("active")); err == nil {
		p.Active = &b
	}
	return p
}

func setFlash(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message and clears it.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
