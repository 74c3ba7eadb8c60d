package salary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ipcode-cloud/epms/internal/salary"
	salaryerrors "github.com/ipcode-cloud/epms/internal/salary/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	recordFn        func(ctx context.Context, req salary.RecordSalaryRequest) (salary.SalaryResponse, error)
	getAllFn        func(ctx context.Context) ([]salary.SalaryResponse, error)
	getByIDFn       func(ctx context.Context, id string) (salary.SalaryResponse, error)
	monthlyReportFn func(ctx context.Context, month, year int) ([]salary.SalaryResponse, error)
	amendFn         func(ctx context.Context, id string, req salary.AmendSalaryRequest) (salary.SalaryResponse, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeSalaryService) Record(ctx context.Context, req salary.RecordSalaryRequest) (salary.SalaryResponse, error) {
	return f.recordFn(ctx, req)
}

func (f *fakeSalaryService) GetAll(ctx context.Context) ([]salary.SalaryResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeSalaryService) GetByID(ctx context.Context, id string) (salary.SalaryResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSalaryService) MonthlyReport(ctx context.Context, month, year int) ([]salary.SalaryResponse, error) {
	return f.monthlyReportFn(ctx, month, year)
}

func (f *fakeSalaryService) Amend(ctx context.Context, id string, req salary.AmendSalaryRequest) (salary.SalaryResponse, error) {
	return f.amendFn(ctx, id, req)
}

func (f *fakeSalaryService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestSalaryHandler_Record(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeSalaryService{
			recordFn: func(ctx context.Context, req salary.RecordSalaryRequest) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{
					ID:             uuid.NewString(),
					EmployeeID:     req.EmployeeID,
					DepartmentID:   req.DepartmentID,
					GrossSalary:    req.GrossSalary,
					TotalDeduction: req.TotalDeduction,
					NetSalary:      req.GrossSalary - req.TotalDeduction,
					Month:          req.Month,
				}, nil
			},
		}
		h := salary.NewHandler(svc)

		body := `{
			"employee_id": "` + uuid.NewString() + `",
			"department_id": "` + uuid.NewString() + `",
			"gross_salary": 2000,
			"total_deduction": 300,
			"month": "2024-05-01"
		}`
		c, w := newTestContext(t, http.MethodPost, "/api/v1/salaries", body)

		h.Record(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Ok   bool                  `json:"ok"`
			Data salary.SalaryResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, int64(1700), envelope.Data.NetSalary)
	})

	t.Run("missing employee id fails validation", func(t *testing.T) {
		called := false
		svc := &fakeSalaryService{
			recordFn: func(ctx context.Context, req salary.RecordSalaryRequest) (salary.SalaryResponse, error) {
				called = true
				return salary.SalaryResponse{}, nil
			},
		}
		h := salary.NewHandler(svc)

		body := `{"department_id": "` + uuid.NewString() + `", "gross_salary": 2000, "month": "2024-05-01"}`
		c, w := newTestContext(t, http.MethodPost, "/api/v1/salaries", body)

		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("zero amounts pass validation", func(t *testing.T) {
		var got salary.RecordSalaryRequest
		svc := &fakeSalaryService{
			recordFn: func(ctx context.Context, req salary.RecordSalaryRequest) (salary.SalaryResponse, error) {
				got = req
				return salary.SalaryResponse{Month: req.Month}, nil
			},
		}
		h := salary.NewHandler(svc)

		body := `{
			"employee_id": "` + uuid.NewString() + `",
			"department_id": "` + uuid.NewString() + `",
			"gross_salary": 0,
			"total_deduction": 0,
			"month": "2024-05-01"
		}`
		c, w := newTestContext(t, http.MethodPost, "/api/v1/salaries", body)

		h.Record(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(0), got.GrossSalary)
	})
}

func TestSalaryHandler_Monthly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeSalaryService{
			monthlyReportFn: func(ctx context.Context, month, year int) ([]salary.SalaryResponse, error) {
				assert.Equal(t, 5, month)
				assert.Equal(t, 2024, year)
				return []salary.SalaryResponse{{NetSalary: 1700}}, nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/salaries/monthly?month=5&year=2024", "")

		h.Monthly(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("month out of range fails binding", func(t *testing.T) {
		svc := &fakeSalaryService{
			monthlyReportFn: func(ctx context.Context, month, year int) ([]salary.SalaryResponse, error) {
				t.Fatal("service should not be called")
				return nil, nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/salaries/monthly?month=13&year=2024", "")

		h.Monthly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing year fails binding", func(t *testing.T) {
		svc := &fakeSalaryService{
			monthlyReportFn: func(ctx context.Context, month, year int) ([]salary.SalaryResponse, error) {
				t.Fatal("service should not be called")
				return nil, nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/salaries/monthly?month=5", "")

		h.Monthly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_GetById(t *testing.T) {
	t.Run("not found maps to 404 envelope", func(t *testing.T) {
		svc := &fakeSalaryService{
			getByIDFn: func(ctx context.Context, id string) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{}, salaryerrors.ErrSalaryNotFound
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/salaries/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	})
}

func TestSalaryHandler_Amend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeSalaryService{
			amendFn: func(ctx context.Context, gotID string, req salary.AmendSalaryRequest) (salary.SalaryResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, int64(500), req.TotalDeduction)
				return salary.SalaryResponse{GrossSalary: 2000, TotalDeduction: 500, NetSalary: 1500}, nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPut, "/api/v1/salaries/"+id, `{"total_deduction": 500}`)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Amend(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data salary.SalaryResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, int64(1500), envelope.Data.NetSalary)
	})

	t.Run("negative gross fails binding", func(t *testing.T) {
		svc := &fakeSalaryService{
			amendFn: func(ctx context.Context, id string, req salary.AmendSalaryRequest) (salary.SalaryResponse, error) {
				t.Fatal("service should not be called")
				return salary.SalaryResponse{}, nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPut, "/api/v1/salaries/abc", `{"gross_salary": -5}`)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Amend(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeSalaryService{
			deleteFn: func(ctx context.Context, id string) error {
				return nil
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/api/v1/salaries/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeSalaryService{
			deleteFn: func(ctx context.Context, id string) error {
				return salaryerrors.ErrSalaryNotFound
			},
		}
		h := salary.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/api/v1/salaries/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
