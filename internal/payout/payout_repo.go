package payout

import (
	"context"
	"database/sql"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ExistsForPeriod(ctx context.Context, period string) (bool, error)
	CreateBatch(ctx context.Context, payouts []Payout) error
	FindAll(ctx context.Context) ([]Payout, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payout, error)
	FindByID(ctx context.Context, id string) (*Payout, error)
	SetSlipURL(ctx context.Context, id string, url string) error
	UpdateStatus(ctx context.Context, id string, status string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

type querier interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func (r *repository) querier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) ExistsForPeriod(ctx context.Context, period string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payouts WHERE period = $1)`

	var exists bool
	err := r.querier().QueryRowContext(ctx, query, period).Scan(&exists)
	return exists, err
}

func (r *repository) CreateBatch(ctx context.Context, payouts []Payout) error {
	query := `
        INSERT INTO payouts (
            id, employee_id, period, total_days_worked,
            gross_pay, deductions, net_pay, status, generated_date
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	q := r.querier()
	for _, p := range payouts {
		_, err := q.ExecContext(
			ctx, query,
			p.ID, p.EmployeeID, p.Period, p.TotalDaysWorked,
			p.GrossPay, p.Deductions, p.NetPay, p.Status, p.GeneratedDate,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

const selectPayout = `
SELECT
	p.id::text,
	p.employee_id::text,
	p.period,
	p.total_days_worked,
	p.gross_pay,
	p.deductions,
	p.net_pay,
	p.status,
	p.generated_date,
	p.payout_slip_url,
	COALESCE(e.full_name, ''),
	COALESCE(e.email, '')
FROM payouts p
LEFT JOIN employees e ON e.id = p.employee_id
`

func (r *repository) FindAll(ctx context.Context) ([]Payout, error) {
	rows, err := r.querier().QueryContext(ctx, selectPayout+` ORDER BY p.period DESC, e.full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayouts(rows)
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payout, error) {
	rows, err := r.querier().QueryContext(ctx, selectPayout+` WHERE p.employee_id = $1 ORDER BY p.period DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayouts(rows)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payout, error) {
	rows, err := r.querier().QueryContext(ctx, selectPayout+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payouts, err := scanPayouts(rows)
	if err != nil {
		return nil, err
	}
	if len(payouts) == 0 {
		return nil, sql.ErrNoRows
	}
	return &payouts[0], nil
}

func (r *repository) SetSlipURL(ctx context.Context, id string, url string) error {
	query := `UPDATE payouts SET payout_slip_url = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.querier().ExecContext(ctx, query, id, url)
	return err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE payouts SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.querier().ExecContext(ctx, query, id, status)
	return err
}

func scanPayouts(rows *sql.Rows) ([]Payout, error) {
	var payouts []Payout
	for rows.Next() {
		var (
			p       Payout
			idStr   string
			empStr  string
			slipURL sql.NullString
		)
		if err := rows.Scan(
			&idStr,
			&empStr,
			&p.Period,
			&p.TotalDaysWorked,
			&p.GrossPay,
			&p.Deductions,
			&p.NetPay,
			&p.Status,
			&p.GeneratedDate,
			&slipURL,
			&p.EmployeeName,
			&p.EmployeeEmail,
		); err != nil {
			return nil, err
		}
		if err := p.ID.UnmarshalText([]byte(idStr)); err != nil {
			return nil, err
		}
		if err := p.EmployeeID.UnmarshalText([]byte(empStr)); err != nil {
			return nil, err
		}
		if slipURL.Valid {
			p.PayoutSlipURL = &slipURL.String
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payouts, nil
}
