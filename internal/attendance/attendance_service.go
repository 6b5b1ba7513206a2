package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "github.com/SankalpGoel/HRMS-Lite/internal/attendance/errors"
	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory is the slice of the employee repository this service
// needs: existence checks for referential integrity.
//
//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type EmployeeDirectory interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EnrichedAttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint) ([]EnrichedAttendanceResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees EmployeeDirectory
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employees EmployeeDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		logger:    l,
	}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("date", req.AttendanceDate),
	)

	// Status and date format are enforced at the binding boundary; the parse
	// here cannot fail for requests that came through the handler.
	date, err := time.ParseInLocation("2006-01-02", req.AttendanceDate, time.UTC)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFilter
	}

	var created Attendance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ok, err := s.employees.Exists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.EmployeeNotFound(req.EmployeeID)
		}

		existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing != nil {
			return attendanceerrors.AlreadyMarked(req.EmployeeID, date)
		}

		row := &Attendance{
			EmployeeID:     req.EmployeeID,
			AttendanceDate: date,
			Status:         req.Status,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return mapRepositoryError(err)
		}
		created = *row
		return nil
	})
	if err != nil {
		s.logger.Warn("mark attendance failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.Uint("id", created.ID),
		zap.Uint("employee_id", created.EmployeeID),
		zap.String("status", created.Status),
	)

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EnrichedAttendanceResponse, error) {
	if filter.EmployeeID != nil {
		ok, err := s.employees.Exists(ctx, *filter.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, employeeerrors.EmployeeNotFound(*filter.EmployeeID)
		}
	}

	rows, err := s.repo.FindAllEnriched(ctx, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	return mapToEnrichedResponses(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint) ([]EnrichedAttendanceResponse, error) {
	ok, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, employeeerrors.EmployeeNotFound(employeeID)
	}

	rows, err := s.repo.FindAllEnriched(ctx, ListFilter{EmployeeID: &employeeID})
	if err != nil {
		s.logger.Error("list employee attendance failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	return mapToEnrichedResponses(rows), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToEnrichedResponses(rows []AttendanceWithEmployee) []EnrichedAttendanceResponse {
	res := make([]EnrichedAttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = EnrichedAttendanceResponse{
			ID:             r.ID,
			EmployeeID:     r.EmployeeID,
			AttendanceDate: r.AttendanceDate.Format("2006-01-02"),
			Status:         r.Status,
			EmployeeName:   r.EmployeeName,
			EmployeeEmail:  r.EmployeeEmail,
			CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return res
}
