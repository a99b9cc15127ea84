package payout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payouterrors "go-payroll/internal/payout/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	Generate(ctx context.Context, req GeneratePayoutsRequest) ([]PayoutResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]PayoutResponse, error)
	GetByID(ctx context.Context, id string) (PayoutResponse, error)
	GetSlip(ctx context.Context, id string) (SlipResponse, error)
	MarkAsPaid(ctx context.Context, id string) (PayoutResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	calc   *Calculator
	outbox kafka.OutboxRepository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	calc *Calculator,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:     db,
		repo:   repo,
		calc:   calc,
		outbox: outbox,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("payout.service"),
	}
}

// Generate computes and persists payouts for a period.
//
// With an employee_id the run targets that single employee and is allowed
// even when other payouts already exist for the period. Without one it is a
// full batch run, refused outright if any payout exists for the period so a
// rerun cannot double-pay part of the workforce. The existence check repeats
// inside the insert transaction, and the unique index on (employee_id,
// period) backstops both against concurrent runs.
func (s *service) Generate(ctx context.Context, req GeneratePayoutsRequest) ([]PayoutResponse, error) {
	period, err := ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	if req.EmployeeID == "" {
		exists, err := s.repo.ExistsForPeriod(ctx, period.String())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, payouterrors.ErrAlreadyGenerated
		}
	}

	results, err := s.computeResults(ctx, period, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, payouterrors.ErrNothingToGenerate
	}

	now := time.Now().UTC()
	payouts := make([]Payout, len(results))
	for i, res := range results {
		employeeUUID, err := uuid.Parse(res.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("invalid employee id in calculation result: %w", err)
		}
		payouts[i] = Payout{
			ID:              uuid.New(),
			EmployeeID:      employeeUUID,
			Period:          res.Period,
			TotalDaysWorked: res.TotalDaysWorked,
			GrossPay:        res.GrossPay,
			Deductions:      res.Deductions,
			NetPay:          res.NetPay,
			Status:          StatusGenerated,
			GeneratedDate:   now,
		}
	}

	if err := s.persistBatch(ctx, period, req.EmployeeID == "", payouts); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("payouts generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period", period.String()),
		zap.Int("count", len(payouts)),
	)

	responses := make([]PayoutResponse, len(payouts))
	for i, p := range payouts {
		responses[i] = mapToResponse(p)
		responses[i].Details = mapResultDetails(results[i].Details)
	}
	return responses, nil
}

func (s *service) computeResults(ctx context.Context, period Period, employeeID string) ([]Result, error) {
	if employeeID == "" {
		return s.calc.CalculateForPeriod(ctx, period)
	}

	res, err := s.calc.Calculate(ctx, employeeID, period)
	if err != nil {
		return nil, err
	}
	if res.TotalDaysWorked == 0 {
		return nil, nil
	}
	return []Result{res}, nil
}

func (s *service) persistBatch(ctx context.Context, period Period, batchRun bool, payouts []Payout) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if batchRun {
		exists, err := qtx.ExistsForPeriod(ctx, period.String())
		if err != nil {
			return err
		}
		if exists {
			return payouterrors.ErrAlreadyGenerated
		}
	}

	if err := qtx.CreateBatch(ctx, payouts); err != nil {
		return err
	}

	outboxTx := s.outbox.WithTx(tx)
	requestID := contextutil.GetRequestID(ctx)
	for _, p := range payouts {
		event := events.PayoutSlipRequestedEvent{
			EventType:  "payout.slip.requested",
			PayoutID:   p.ID.String(),
			EmployeeID: p.EmployeeID.String(),
			Period:     p.Period,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := outboxTx.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     requestID,
			AggregateType: "payout",
			AggregateID:   p.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayoutSlipRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]PayoutResponse, error) {
	var (
		payouts []Payout
		err     error
	)
	if employeeID == "" {
		payouts, err = s.repo.FindAll(ctx)
	} else {
		payouts, err = s.repo.FindAllByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payouts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayoutResponse, error) {
	payout, err := s.findPayout(ctx, id)
	if err != nil {
		return PayoutResponse{}, err
	}
	return mapToResponse(*payout), nil
}

// GetSlip returns the slip URL for a payout, rendering the PDF on first
// request. Concurrent requests for the same payout share one render via
// singleflight.
func (s *service) GetSlip(ctx context.Context, id string) (SlipResponse, error) {
	payout, err := s.findPayout(ctx, id)
	if err != nil {
		return SlipResponse{}, err
	}

	if payout.PayoutSlipURL != nil && *payout.PayoutSlipURL != "" {
		return SlipResponse{PayoutID: id, PayoutSlipURL: *payout.PayoutSlipURL}, nil
	}

	url, err, _ := s.sf.Do(id, func() (any, error) {
		return s.renderSlip(ctx, payout)
	})
	if err != nil {
		return SlipResponse{}, err
	}

	return SlipResponse{PayoutID: id, PayoutSlipURL: url.(string)}, nil
}

func (s *service) renderSlip(ctx context.Context, p *Payout) (string, error) {
	lines := []string{
		"PAYOUT SLIP",
		"",
		fmt.Sprintf("Payout ID: %s", p.ID),
		fmt.Sprintf("Employee: %s", p.EmployeeName),
		fmt.Sprintf("Email: %s", p.EmployeeEmail),
		fmt.Sprintf("Period: %s", p.Period),
		fmt.Sprintf("Days Worked: %d", p.TotalDaysWorked),
		fmt.Sprintf("Gross Pay: %s", p.GrossPay.StringFixed(2)),
		fmt.Sprintf("Deductions (%d%%): %s", DeductionPercentage, p.Deductions.StringFixed(2)),
		fmt.Sprintf("Net Pay: %s", p.NetPay.StringFixed(2)),
		fmt.Sprintf("Status: %s", p.Status),
		fmt.Sprintf("Generated: %s", p.GeneratedDate.Format("2006-01-02")),
	}

	pdf, err := buildSimpleSlipPDF(lines)
	if err != nil {
		return "", err
	}

	dir := os.Getenv("PAYOUT_SLIP_STORAGE_DIR")
	if dir == "" {
		dir = "storage/payout-slips"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := "payout_slip_" + p.ID.String() + ".pdf"
	if err := os.WriteFile(filepath.Join(dir, filename), pdf, 0o644); err != nil {
		return "", err
	}

	baseURL := os.Getenv("PAYOUT_SLIP_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "/files/payout-slips"
	}
	url := baseURL + "/" + filename

	if err := s.repo.SetSlipURL(ctx, p.ID.String(), url); err != nil {
		return "", err
	}

	s.logger.Info("payout slip rendered",
		zap.String("payout_id", p.ID.String()),
		zap.String("slip_url", url),
	)
	return url, nil
}

func (s *service) MarkAsPaid(ctx context.Context, id string) (PayoutResponse, error) {
	payout, err := s.findPayout(ctx, id)
	if err != nil {
		return PayoutResponse{}, err
	}
	if payout.Status == StatusPaid {
		return PayoutResponse{}, payouterrors.ErrAlreadyPaid
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusPaid); err != nil {
		return PayoutResponse{}, err
	}

	payout.Status = StatusPaid
	return mapToResponse(*payout), nil
}

func (s *service) findPayout(ctx context.Context, id string) (*Payout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payouterrors.ErrPayoutNotFound
	}

	payout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payouterrors.ErrPayoutNotFound
		}
		return nil, err
	}
	return payout, nil
}

// mapRepoError translates postgres constraint violations into domain errors.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "uq_payout_employee_period" {
				return payouterrors.ErrAlreadyGenerated
			}
		}
	}

	return err
}

// IsOwner reports whether the payout belongs to the given employee. Used by
// the handler for employee self-service access checks.
func (r PayoutResponse) IsOwner(employeeID string) bool {
	return employeeID != "" && r.EmployeeID == employeeID
}
