package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ipcode-cloud/epms/internal/salary"
	salaryerrors "github.com/ipcode-cloud/epms/internal/salary/errors"
	"github.com/ipcode-cloud/epms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	withTxFn           func(tx *sql.Tx) salary.Repository
	createFn           func(ctx context.Context, sal *salary.Salary) error
	findAllFn          func(ctx context.Context) ([]salary.Salary, error)
	findByIDFn         func(ctx context.Context, id string) (*salary.Salary, error)
	findByMonthRangeFn func(ctx context.Context, start, end time.Time) ([]salary.Salary, error)
	updateFn           func(ctx context.Context, sal *salary.Salary) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, sal *salary.Salary) error {
	if f.createFn != nil {
		return f.createFn(ctx, sal)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAll(ctx context.Context) ([]salary.Salary, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByID(ctx context.Context, id string) (*salary.Salary, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByMonthRange(ctx context.Context, start, end time.Time) ([]salary.Salary, error) {
	if f.findByMonthRangeFn != nil {
		return f.findByMonthRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) Update(ctx context.Context, sal *salary.Salary) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, sal)
	}
	return nil
}

func (f *fakeSalaryRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salary.Service
	repo    *fakeSalaryRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	svc := salary.NewService(db, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
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

func validRecordRequest() salary.RecordSalaryRequest {
	return salary.RecordSalaryRequest{
		EmployeeID:     uuid.New().String(),
		DepartmentID:   uuid.New().String(),
		GrossSalary:    2000,
		TotalDeduction: 300,
		Month:          "2024-05-01",
	}
}

func TestSalaryService_Record(t *testing.T) {
	t.Run("net salary is derived from gross minus deduction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var persisted *salary.Salary
		deps.repo.createFn = func(ctx context.Context, sal *salary.Salary) error {
			persisted = sal
			return nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return persisted, nil
		}

		resp, err := deps.service.Record(context.Background(), validRecordRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(1700), resp.NetSalary)
		assert.Equal(t, int64(2000), resp.GrossSalary)
		assert.Equal(t, int64(300), resp.TotalDeduction)
		assert.Equal(t, "2024-05-01", resp.Month)
	})

	t.Run("negative net is stored when deduction exceeds gross", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var persisted *salary.Salary
		deps.repo.createFn = func(ctx context.Context, sal *salary.Salary) error {
			persisted = sal
			return nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return persisted, nil
		}

		req := validRecordRequest()
		req.GrossSalary = 100
		req.TotalDeduction = 250

		resp, err := deps.service.Record(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(-150), resp.NetSalary)
	})

	t.Run("negative gross is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRecordRequest()
		req.GrossSalary = -1

		_, err := deps.service.Record(context.Background(), req)

		assert.ErrorIs(t, err, salaryerrors.ErrNegativeAmount)
	})

	t.Run("malformed employee id is rejected without panicking", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRecordRequest()
		req.EmployeeID = "not-a-uuid"

		_, err := deps.service.Record(context.Background(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("malformed department id is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRecordRequest()
		req.DepartmentID = "xyz"

		_, err := deps.service.Record(context.Background(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRecordRequest()
		req.Month = "05-2024"

		_, err := deps.service.Record(context.Background(), req)

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidMonth)
	})

	t.Run("repo failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, sal *salary.Salary) error {
			return errors.New("insert failed")
		}

		_, err := deps.service.Record(context.Background(), validRecordRequest())

		assert.Error(t, err)
	})
}

func TestSalaryService_Amend(t *testing.T) {
	salaryID := uuid.New().String()

	existing := func() *salary.Salary {
		return &salary.Salary{
			ID:             uuid.MustParse(salaryID),
			EmployeeID:     uuid.New(),
			DepartmentID:   uuid.New(),
			GrossSalary:    2000,
			TotalDeduction: 300,
			NetSalary:      1700,
			Month:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("changing deduction recomputes net and keeps gross", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			assert.Equal(t, salaryID, id)
			return existing(), nil
		}

		var saved *salary.Salary
		deps.repo.updateFn = func(ctx context.Context, sal *salary.Salary) error {
			saved = sal
			return nil
		}

		resp, err := deps.service.Amend(context.Background(), salaryID, salary.AmendSalaryRequest{
			TotalDeduction: 500,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2000), resp.GrossSalary)
		assert.Equal(t, int64(500), resp.TotalDeduction)
		assert.Equal(t, int64(1500), resp.NetSalary)
		assert.Equal(t, int64(1500), saved.NetSalary)
	})

	t.Run("changing gross recomputes net", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return existing(), nil
		}

		resp, err := deps.service.Amend(context.Background(), salaryID, salary.AmendSalaryRequest{
			GrossSalary: 3000,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2700), resp.NetSalary)
	})

	// Perilaku merge-by-truthiness yang dipertahankan: deduction 0 dianggap
	// absen, jadi nilai lama tetap dipakai.
	t.Run("zero deduction keeps previous value", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return existing(), nil
		}

		resp, err := deps.service.Amend(context.Background(), salaryID, salary.AmendSalaryRequest{
			TotalDeduction: 0,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(300), resp.TotalDeduction)
		assert.Equal(t, int64(1700), resp.NetSalary)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Amend(context.Background(), salaryID, salary.AmendSalaryRequest{
			GrossSalary: 3000,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestSalaryService_MonthlyReport(t *testing.T) {
	t.Run("window covers the whole month including leap day", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var gotStart, gotEnd time.Time
		deps.repo.findByMonthRangeFn = func(ctx context.Context, start, end time.Time) ([]salary.Salary, error) {
			gotStart = start
			gotEnd = end
			return []salary.Salary{}, nil
		}

		_, err := deps.service.MonthlyReport(context.Background(), 2, 2024)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), gotStart)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("non leap february ends on the 28th", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var gotEnd time.Time
		deps.repo.findByMonthRangeFn = func(ctx context.Context, start, end time.Time) ([]salary.Salary, error) {
			gotEnd = end
			return nil, nil
		}

		_, err := deps.service.MonthlyReport(context.Background(), 2, 2023)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("december window stays inside the year", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var gotStart, gotEnd time.Time
		deps.repo.findByMonthRangeFn = func(ctx context.Context, start, end time.Time) ([]salary.Salary, error) {
			gotStart = start
			gotEnd = end
			return nil, nil
		}

		_, err := deps.service.MonthlyReport(context.Background(), 12, 2024)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), gotStart)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("rows are returned joined with display fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByMonthRangeFn = func(ctx context.Context, start, end time.Time) ([]salary.Salary, error) {
			return []salary.Salary{
				{
					ID:                uuid.New(),
					EmployeeID:        uuid.New(),
					DepartmentID:      uuid.New(),
					GrossSalary:       2000,
					TotalDeduction:    300,
					NetSalary:         1700,
					Month:             time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
					EmployeeFirstName: "Jane",
					EmployeeLastName:  "Doe",
					EmployeePosition:  "Engineer",
					DepartmentName:    "Information Technology",
				},
			}, nil
		}

		resp, err := deps.service.MonthlyReport(context.Background(), 5, 2024)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(1700), resp[0].NetSalary)
		assert.Equal(t, "Jane", resp[0].Employee.FirstName)
		assert.Equal(t, "Information Technology", resp[0].DepartmentName)
	})

	t.Run("month out of range is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MonthlyReport(context.Background(), 13, 2024)

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidReportPeriod)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestSalaryService_Delete(t *testing.T) {
	t.Run("unknown id maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*salary.Salary, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(context.Background(), uuid.New().String())

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})

	t.Run("existing row is deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		id := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*salary.Salary, error) {
			return &salary.Salary{ID: id}, nil
		}

		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			deleted = true
			assert.Equal(t, id.String(), gotID)
			return nil
		}

		err := deps.service.Delete(context.Background(), id.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})
}

func TestSalaryService_GetAll(t *testing.T) {
	t.Run("repeated reads return the same set", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rows := []salary.Salary{
			{
				ID:             uuid.New(),
				EmployeeID:     uuid.New(),
				DepartmentID:   uuid.New(),
				GrossSalary:    2000,
				TotalDeduction: 300,
				NetSalary:      1700,
				Month:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]salary.Salary, error) {
			return rows, nil
		}

		first, err := deps.service.GetAll(context.Background())
		assert.NoError(t, err)

		second, err := deps.service.GetAll(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
