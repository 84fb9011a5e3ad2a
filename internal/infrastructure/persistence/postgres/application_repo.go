package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ApplicationRepo implements port.ApplicationRepository.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

const applicationColumns = `
	id, tenant_id, property_id, monthly_income_cents, move_in_date, notes,
	reference_count, status, decision_reason, created_at, updated_at
`

// Save persists an application aggregate (upsert by ID).
func (r *ApplicationRepo) Save(ctx context.Context, app model.Application) error {
	query := `
		INSERT INTO applications (
			id, tenant_id, property_id, monthly_income_cents, move_in_date, notes,
			reference_count, status, decision_reason, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			decision_reason = EXCLUDED.decision_reason,
			updated_at      = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		app.ID(), app.TenantID(), app.PropertyID(), app.MonthlyIncome(),
		app.MoveInDate(), app.Notes(), app.ReferenceCount(),
		app.Status().String(), app.DecisionReason(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	return nil
}

// FindByID retrieves a single application.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Application{}, wrapNotFound(err, "application", id)
	}
	return app, nil
}

// FindByTenantID lists a tenant's applications, newest first.
func (r *ApplicationRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var result []model.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func scanApplication(s scannable) (model.Application, error) {
	var (
		id, tenantID, propertyID string
		monthlyIncome            int64
		moveInDate               *time.Time
		notes                    string
		referenceCount           int
		status, decisionReason   string
		createdAt, updatedAt     time.Time
	)
	err := s.Scan(
		&id, &tenantID, &propertyID, &monthlyIncome, &moveInDate, &notes,
		&referenceCount, &status, &decisionReason, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Application{}, err
	}

	st, err := valueobject.NewApplicationStatus(status)
	if err != nil {
		return model.Application{}, fmt.Errorf("stored application %s: %w", id, err)
	}
	return model.ReconstructApplication(
		id, tenantID, propertyID, monthlyIncome, moveInDate, notes,
		referenceCount, st, decisionReason, createdAt, updatedAt,
	), nil
}
