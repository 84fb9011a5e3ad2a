package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// LeaseRepo implements port.LeaseRepository.
type LeaseRepo struct {
	pool *pgxpool.Pool
}

// NewLeaseRepo creates a new repository backed by PostgreSQL.
func NewLeaseRepo(pool *pgxpool.Pool) *LeaseRepo {
	return &LeaseRepo{pool: pool}
}

const leaseColumns = `
	id, tenant_id, property_id, start_date, end_date,
	monthly_rent_cents, status, created_at, updated_at
`

// Save persists a lease (upsert by ID).
func (r *LeaseRepo) Save(ctx context.Context, l model.Lease) error {
	query := `
		INSERT INTO leases (
			id, tenant_id, property_id, start_date, end_date,
			monthly_rent_cents, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			end_date   = EXCLUDED.end_date,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		l.ID, l.TenantID, l.PropertyID, l.StartDate, l.EndDate,
		l.MonthlyRent, string(l.Status), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save lease: %w", err)
	}
	return nil
}

// FindByID retrieves a single lease.
func (r *LeaseRepo) FindByID(ctx context.Context, id string) (model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	l, err := scanLease(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Lease{}, wrapNotFound(err, "lease", id)
	}
	return l, nil
}

// FindByTenantID lists a tenant's leases, newest first.
func (r *LeaseRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query leases: %w", err)
	}
	defer rows.Close()

	var result []model.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func scanLease(s scannable) (model.Lease, error) {
	var (
		l      model.Lease
		status string
	)
	err := s.Scan(
		&l.ID, &l.TenantID, &l.PropertyID, &l.StartDate, &l.EndDate,
		&l.MonthlyRent, &status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return model.Lease{}, err
	}
	l.Status = valueobject.LeaseStatus(status)
	return l, nil
}
