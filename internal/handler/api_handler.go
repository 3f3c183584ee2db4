package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/service"
	"github.com/suteetoe/employee-service/internal/viewmodel"
	"github.com/suteetoe/employee-service/pkg/apperrors"
	"github.com/suteetoe/employee-service/pkg/logger"
)

// APIHandler serves the JSON employee API.
type APIHandler struct {
	svc *service.EmployeeService
}

// NewAPIHandler creates the JSON handler.
func NewAPIHandler(svc *service.EmployeeService) *APIHandler {
	return &APIHandler{svc: svc}
}

// Register mounts the API on g.
func (h *APIHandler) Register(g *echo.Group) {
	g.GET("", h.ListEmployees)
	g.GET("/:id", h.GetEmployee)
	g.POST("", h.CreateEmployee)
	g.PUT("/:id", h.UpdateEmployee)
	g.DELETE("/:id", h.DeleteEmployee)
}

// ListEmployees handles retrieving a page of employees
func (h *APIHandler) ListEmployees(c echo.Context) error {
	list, err := h.svc.ListEmployees(c.Request().Context(), listParams(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetEmployee handles retrieving a single employee by ID
func (h *APIHandler) GetEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	details, err := h.svc.GetEmployeeDetails(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

// CreateEmployee handles creating a new employee
func (h *APIHandler) CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.CreateEmployeeInput
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	e, err := h.svc.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, viewmodel.ToDetails(e))
}

// UpdateEmployee handles replacing an existing employee
func (h *APIHandler) UpdateEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.UpdateEmployeeInput
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Uint("employee_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	e, err := h.svc.UpdateEmployee(c.Request().Context(), id, req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, viewmodel.ToDetails(e))
}

// DeleteEmployee handles deleting an employee; deleting a missing one succeeds
func (h *APIHandler) DeleteEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	if err := h.svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func errorJSON(c echo.Context, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c).Error("Request failed", zap.Error(err))
	}

	body := echo.Map{"error": apperrors.PublicMessage(err)}
	if fields := apperrors.FieldErrors(err); len(fields) > 0 {
		body["fields"] = fields
	}
	return c.JSON(status, body)
}
