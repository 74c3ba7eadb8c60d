package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ipcode-cloud/epms/internal/events"
	"github.com/ipcode-cloud/epms/internal/messaging/kafka"
	salaryerrors "github.com/ipcode-cloud/epms/internal/salary/errors"
	"github.com/ipcode-cloud/epms/internal/shared/apperror"
	"github.com/ipcode-cloud/epms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	MonthlyReport(ctx context.Context, month, year int) ([]SalaryResponse, error)
	Amend(ctx context.Context, id string, req AmendSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Record(
	ctx context.Context,
	req RecordSalaryRequest,
) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("record salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("department_id", req.DepartmentID),
	)

	if req.GrossSalary < 0 || req.TotalDeduction < 0 {
		return SalaryResponse{}, salaryerrors.ErrNegativeAmount
	}

	month, err := time.Parse("2006-01-02", req.Month)
	if err != nil {
		s.logger.Warn("record salary invalid month",
			zap.String("month", req.Month),
			zap.Error(err),
		)
		return SalaryResponse{}, salaryerrors.ErrInvalidMonth
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryResponse{}, apperror.InvalidField("employee_id")
	}
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return SalaryResponse{}, apperror.InvalidField("department_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Derivasi selalu menang; net boleh negatif jika deduction > gross.
	sal := &Salary{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		DepartmentID:   departmentID,
		GrossSalary:    req.GrossSalary,
		TotalDeduction: req.TotalDeduction,
		NetSalary:      req.GrossSalary - req.TotalDeduction,
		Month:          month,
	}

	if err := qtx.Create(ctx, sal); err != nil {
		s.logger.Error("record salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByID(ctx, sal.ID.String())
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.SalaryRecordedEvent{
			EventType:    "salary_recorded",
			RequestID:    rid,
			SalaryID:     sal.ID.String(),
			EmployeeID:   sal.EmployeeID.String(),
			DepartmentID: sal.DepartmentID.String(),
			NetSalary:    sal.NetSalary,
			Month:        sal.Month.Format("2006-01-02"),
			OccurredAt:   time.Now().UTC(),
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return SalaryResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary",
			AggregateID:   sal.ID.String(),
			EventType:     event.EventType,
			Topic:         events.SalaryRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("record salary outbox persist failed",
				zap.String("salary_id", sal.ID.String()),
				zap.Error(err),
			)
			return SalaryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record salary commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("record salary success",
		zap.String("request_id", rid),
		zap.String("salary_id", sal.ID.String()),
		zap.Int64("net_salary", sal.NetSalary),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	sals, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(sals), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	sal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get salary by id failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*sal), nil
}

// MonthlyReport mengembalikan baris ledger di window bulan tersebut,
// sudah di-join ke display field. Total agregat dihitung pemanggil.
func (s *service) MonthlyReport(ctx context.Context, month, year int) ([]SalaryResponse, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, salaryerrors.ErrInvalidReportPeriod
	}

	start, end := monthRange(month, year)
	s.logger.Debug("monthly report requested",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Time("start", start),
		zap.Time("end", end),
	)

	sals, err := s.repo.FindByMonthRange(ctx, start, end)
	if err != nil {
		s.logger.Error("monthly report query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(sals), nil
}

func (s *service) Amend(
	ctx context.Context,
	id string,
	req AmendSalaryRequest,
) (SalaryResponse, error) {
	s.logger.Debug("amend salary requested", zap.String("salary_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("amend salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("amend salary fetch existing failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	// Partial merge: nilai zero mempertahankan angka lama, jadi deduction
	// tidak bisa di-reset ke 0 lewat amend (perilaku yang dipertahankan).
	if req.GrossSalary != 0 {
		sal.GrossSalary = req.GrossSalary
	}
	if req.TotalDeduction != 0 {
		sal.TotalDeduction = req.TotalDeduction
	}

	// Net selalu dihitung ulang dari pasangan hasil merge.
	sal.NetSalary = sal.GrossSalary - sal.TotalDeduction

	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Error("amend salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("amend salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("amend salary success",
		zap.String("salary_id", id),
		zap.Int64("net_salary", sal.NetSalary),
	)

	return mapToResponse(*sal), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete salary requested", zap.String("salary_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete salary begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete salary failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete salary commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete salary success", zap.String("salary_id", id))
	return nil
}

func mapToResponse(sal Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:             sal.ID.String(),
		EmployeeID:     sal.EmployeeID.String(),
		DepartmentID:   sal.DepartmentID.String(),
		GrossSalary:    sal.GrossSalary,
		TotalDeduction: sal.TotalDeduction,
		NetSalary:      sal.NetSalary,
		Month:          sal.Month.Format("2006-01-02"),
		DepartmentName: sal.DepartmentName,
	}
	if sal.EmployeeFirstName != "" || sal.EmployeeLastName != "" {
		resp.Employee = &SalaryEmployeeResponse{
			FirstName: sal.EmployeeFirstName,
			LastName:  sal.EmployeeLastName,
			Position:  sal.EmployeePosition,
		}
	}
	return resp
}

func mapToListResponse(sals []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(sals))
	for i, sal := range sals {
		res[i] = mapToResponse(sal)
	}
	return res
}
