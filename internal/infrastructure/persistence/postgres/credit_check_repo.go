package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// CreditCheckRepo implements port.CreditCheckRepository.
type CreditCheckRepo struct {
	pool *pgxpool.Pool
}

// NewCreditCheckRepo creates a new repository backed by PostgreSQL.
func NewCreditCheckRepo(pool *pgxpool.Pool) *CreditCheckRepo {
	return &CreditCheckRepo{pool: pool}
}

const creditCheckColumns = `
	id, tenant_id, bureau, score, status, report_date, created_at
`

// Save persists a credit check. Checks are append-only.
func (r *CreditCheckRepo) Save(ctx context.Context, c model.CreditCheck) error {
	query := `
		INSERT INTO credit_checks (
			id, tenant_id, bureau, score, status, report_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TenantID, c.Bureau, c.Score, string(c.Status), c.ReportDate, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save credit check: %w", err)
	}
	return nil
}

// FindLatestCompleted retrieves the tenant's most recent completed pull.
func (r *CreditCheckRepo) FindLatestCompleted(ctx context.Context, tenantID string) (model.CreditCheck, error) {
	query := `
		SELECT ` + creditCheckColumns + `
		FROM credit_checks
		WHERE tenant_id = $1 AND status = $2
		ORDER BY report_date DESC
		LIMIT 1
	`
	c, err := scanCreditCheck(r.pool.QueryRow(ctx, query, tenantID, string(valueobject.CreditCheckCompleted)))
	if err != nil {
		return model.CreditCheck{}, wrapNotFound(err, "credit check for tenant", tenantID)
	}
	return c, nil
}

// FindByTenantID lists all of a tenant's pulls, newest report first.
func (r *CreditCheckRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.CreditCheck, error) {
	query := `SELECT ` + creditCheckColumns + ` FROM credit_checks WHERE tenant_id = $1 ORDER BY report_date DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query credit checks: %w", err)
	}
	defer rows.Close()

	var result []model.CreditCheck
	for rows.Next() {
		c, err := scanCreditCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit check: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func scanCreditCheck(s scannable) (model.CreditCheck, error) {
	var (
		c      model.CreditCheck
		status string
	)
	err := s.Scan(&c.ID, &c.TenantID, &c.Bureau, &c.Score, &status, &c.ReportDate, &c.CreatedAt)
	if err != nil {
		return model.CreditCheck{}, err
	}
	c.Status = valueobject.CreditCheckStatus(status)
	return c, nil
}
