package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a new repository backed by PostgreSQL.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentColumns = `
	id, lease_id, tenant_id, amount_cents, due_date, paid_date,
	status, created_at, updated_at
`

// Save persists a payment (upsert by ID).
func (r *PaymentRepo) Save(ctx context.Context, p model.Payment) error {
	query := `
		INSERT INTO payments (
			id, lease_id, tenant_id, amount_cents, due_date, paid_date,
			status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			paid_date  = EXCLUDED.paid_date,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.LeaseID, p.TenantID, p.Amount, p.DueDate, p.PaidDate,
		string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

// FindByID retrieves a single payment.
func (r *PaymentRepo) FindByID(ctx context.Context, id string) (model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Payment{}, wrapNotFound(err, "payment", id)
	}
	return p, nil
}

// FindByTenantID lists a tenant's payments, oldest due first. Calculators
// consume the list chronologically.
func (r *PaymentRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 ORDER BY due_date ASC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func scanPayment(s scannable) (model.Payment, error) {
	var (
		p      model.Payment
		status string
	)
	err := s.Scan(
		&p.ID, &p.LeaseID, &p.TenantID, &p.Amount, &p.DueDate, &p.PaidDate,
		&status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Payment{}, err
	}
	p.Status = valueobject.PaymentStatus(status)
	return p, nil
}
