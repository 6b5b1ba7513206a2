package attendance

import (
	"net/http"
	"strconv"
	"time"

	attendanceerrors "github.com/SankalpGoel/HRMS-Lite/internal/attendance/errors"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/apperror"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark attendance validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		h.writeServiceError(c, attendanceerrors.ErrInvalidEmployeeFilter)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), uint(id64))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func parseListFilter(c *gin.Context) (ListFilter, error) {
	var filter ListFilter

	if raw := c.Query("employee_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id64 == 0 {
			return ListFilter{}, attendanceerrors.ErrInvalidEmployeeFilter
		}
		id := uint(id64)
		filter.EmployeeID = &id
	}

	if raw := c.Query("from_date"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return ListFilter{}, attendanceerrors.ErrInvalidDateFilter
		}
		filter.From = &from
	}

	if raw := c.Query("to_date"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return ListFilter{}, attendanceerrors.ErrInvalidDateFilter
		}
		filter.To = &to
	}

	return filter, nil
}
