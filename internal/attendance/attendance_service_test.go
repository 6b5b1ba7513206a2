package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/SankalpGoel/HRMS-Lite/internal/attendance"
	attendanceerrors "github.com/SankalpGoel/HRMS-Lite/internal/attendance/errors"
	attendanceMock "github.com/SankalpGoel/HRMS-Lite/internal/attendance/mock"
	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type serviceDeps struct {
	sqlDB     *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	employees *attendanceMock.MockEmployeeDirectory
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	repo := attendanceMock.NewMockRepository(ctrl)
	employees := attendanceMock.NewMockEmployeeDirectory(ctrl)

	svc := attendance.NewService(gdb, repo, employees)

	return &serviceDeps{
		sqlDB:     sqlDB,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		employees: employees,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := attendance.MarkAttendanceRequest{
			EmployeeID:     7,
			AttendanceDate: "2026-02-05",
			Status:         attendance.StatusPresent,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.employees.EXPECT().Exists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, uint(7), date).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, uint(7), a.EmployeeID)
				assert.Equal(t, date, a.AttendanceDate)
				assert.Equal(t, attendance.StatusPresent, a.Status)
				a.ID = 11
				return nil
			})

		resp, err := deps.service.Mark(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, "2026-02-05", resp.AttendanceDate)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := attendance.MarkAttendanceRequest{
			EmployeeID:     99,
			AttendanceDate: "2026-02-05",
			Status:         attendance.StatusAbsent,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.employees.EXPECT().Exists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.Mark(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Contains(t, err.Error(), "Employee with ID 99 not found.")
	})

	t.Run("already marked -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := attendance.MarkAttendanceRequest{
			EmployeeID:     7,
			AttendanceDate: "2026-02-05",
			Status:         attendance.StatusPresent,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.employees.EXPECT().Exists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, uint(7), date).
			Return(&attendance.Attendance{ID: 11, EmployeeID: 7, AttendanceDate: date}, nil)

		_, err := deps.service.Mark(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyMarked)
		assert.Contains(t, err.Error(), "employee 7 on 2026-02-05")
	})

	t.Run("unique constraint race -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := attendance.MarkAttendanceRequest{
			EmployeeID:     7,
			AttendanceDate: "2026-02-05",
			Status:         attendance.StatusPresent,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.employees.EXPECT().Exists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, uint(7), date).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"})

		_, err := deps.service.Mark(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyMarked)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := attendance.MarkAttendanceRequest{
			EmployeeID:     7,
			AttendanceDate: "2026-02-05",
			Status:         attendance.StatusPresent,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.employees.EXPECT().Exists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, uint(7), date).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Mark(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("success without filter", func(t *testing.T) {
		deps := setupServiceTest(t)
		rows := []attendance.AttendanceWithEmployee{
			{ID: 1, EmployeeID: 7, AttendanceDate: date, Status: attendance.StatusPresent, EmployeeName: "Jane Doe", EmployeeEmail: "jane@example.com"},
			{ID: 2, EmployeeID: 8, AttendanceDate: date, Status: attendance.StatusAbsent, EmployeeName: "John Doe", EmployeeEmail: "john@example.com"},
		}

		deps.repo.EXPECT().
			FindAllEnriched(ctx, attendance.ListFilter{}).
			Return(rows, nil)

		resp, err := deps.service.GetAll(ctx, attendance.ListFilter{})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Jane Doe", resp[0].EmployeeName)
		assert.Equal(t, "2026-02-05", resp[0].AttendanceDate)
	})

	t.Run("employee filter validated before listing", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uint(99)

		deps.employees.EXPECT().Exists(ctx, id).Return(false, nil)

		_, err := deps.service.GetAll(ctx, attendance.ListFilter{EmployeeID: &id})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("date range forwarded to repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		filter := attendance.ListFilter{From: &from, To: &to}

		deps.repo.EXPECT().
			FindAllEnriched(ctx, filter).
			Return([]attendance.AttendanceWithEmployee{}, nil)

		resp, err := deps.service.GetAll(ctx, filter)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestAttendanceService_GetByEmployee(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().Exists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().
			FindAllEnriched(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceWithEmployee, error) {
				require.NotNil(t, filter.EmployeeID)
				assert.Equal(t, uint(7), *filter.EmployeeID)
				return []attendance.AttendanceWithEmployee{
					{ID: 1, EmployeeID: 7, AttendanceDate: date, Status: attendance.StatusPresent, EmployeeName: "Jane Doe", EmployeeEmail: "jane@example.com"},
				}, nil
			})

		resp, err := deps.service.GetByEmployee(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "jane@example.com", resp[0].EmployeeEmail)
	})

	t.Run("unknown employee -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().Exists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.GetByEmployee(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
