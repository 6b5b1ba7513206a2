package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SankalpGoel/HRMS-Lite/internal/employee"
	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn  func(ctx context.Context) ([]employee.EmployeeListItem, error)
	getByIDFn func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	deleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeListItem, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func init() {
	apperror.Init()
}

func postJSON(body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "EMP001", req.EmployeeID)
				return employee.EmployeeResponse{ID: 1, EmployeeID: req.EmployeeID, FullName: req.FullName}, nil
			},
		}
		h := employee.NewHandler(svc)

		w, c := postJSON(`{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane@example.com","department":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), `"EMP001"`)
	})

	t.Run("missing fields -> 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeService{})

		w, c := postJSON(`{"employee_id":"EMP001"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("invalid email -> 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeService{})

		w, c := postJSON(`{"employee_id":"EMP001","full_name":"Jane Doe","email":"not-an-email","department":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email")
	})

	t.Run("duplicate employee id -> 400 conflict", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.EmployeeIDTaken(req.EmployeeID)
			},
		}
		h := employee.NewHandler(svc)

		w, c := postJSON(`{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane@example.com","department":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
		assert.Contains(t, w.Body.String(), "Employee ID 'EMP001' already exists.")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeListItem, error) {
			return []employee.EmployeeListItem{
				{ID: 1, EmployeeID: "EMP001", FullName: "Jane Doe"},
				{ID: 2, EmployeeID: "EMP002", FullName: "John Doe"},
			}, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EMP001")
	assert.Contains(t, w.Body.String(), "EMP002")
}

func TestEmployeeHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(7), id)
				return employee.EmployeeResponse{ID: 7, EmployeeID: "EMP007"}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/7", nil)
		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "EMP007")
	})

	t.Run("not found -> 404", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "99"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/99", nil)
		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID 99 not found.")
	})

	t.Run("non numeric id -> 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted -> 204 with empty body", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(7), id)
				return nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/7", nil)
		h.Delete(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not found -> 404", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(ctx context.Context, id uint) error {
				return employeeerrors.EmployeeNotFound(id)
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "99"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/99", nil)
		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
