package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
	pgutil "github.com/leaselab/screening-service/pkg/postgres"
)

// TenantScoreRepo implements port.TenantScoreRepository.
type TenantScoreRepo struct {
	pool *pgxpool.Pool
}

// NewTenantScoreRepo creates a new repository backed by PostgreSQL.
func NewTenantScoreRepo(pool *pgxpool.Pool) *TenantScoreRepo {
	return &TenantScoreRepo{pool: pool}
}

const tenantScoreColumns = `
	id, tenant_id, overall_score, components, method,
	weights_applied, breakdown, active, created_at
`

const insertTenantScore = `
	INSERT INTO tenant_scores (
		id, tenant_id, overall_score, components, method,
		weights_applied, breakdown, active, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`

// SaveSuperseding inserts the new score and deactivates the tenant's
// previously active scores in a single transaction. At most one active
// score per tenant survives.
func (r *TenantScoreRepo) SaveSuperseding(ctx context.Context, s model.TenantScore) error {
	args, err := tenantScoreArgs(s)
	if err != nil {
		return err
	}
	err = pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE tenant_scores SET active = FALSE WHERE tenant_id = $1 AND active`,
			s.TenantID(),
		)
		if err != nil {
			return fmt.Errorf("deactivate previous scores: %w", err)
		}
		if _, err := tx.Exec(ctx, insertTenantScore, args...); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save superseding score: %w", err)
	}
	return nil
}

// Save inserts a score without touching existing rows. Used by the default
// score bootstrapper, which only runs when no active score exists.
func (r *TenantScoreRepo) Save(ctx context.Context, s model.TenantScore) error {
	args, err := tenantScoreArgs(s)
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, insertTenantScore, args...); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// Deactivate clears the active flag on one score record.
func (r *TenantScoreRepo) Deactivate(ctx context.Context, scoreID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tenant_scores SET active = FALSE WHERE id = $1`, scoreID)
	if err != nil {
		return fmt.Errorf("deactivate score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("score %s: %w", scoreID, valueobject.ErrNotFound)
	}
	return nil
}

// FindByID retrieves a single score record.
func (r *TenantScoreRepo) FindByID(ctx context.Context, id string) (model.TenantScore, error) {
	query := `SELECT ` + tenantScoreColumns + ` FROM tenant_scores WHERE id = $1`
	s, err := scanTenantScore(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.TenantScore{}, wrapNotFound(err, "score", id)
	}
	return s, nil
}

// FindLatestActive retrieves the tenant's current score.
func (r *TenantScoreRepo) FindLatestActive(ctx context.Context, tenantID string) (model.TenantScore, error) {
	query := `
		SELECT ` + tenantScoreColumns + `
		FROM tenant_scores
		WHERE tenant_id = $1 AND active
		ORDER BY created_at DESC
		LIMIT 1
	`
	s, err := scanTenantScore(r.pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		return model.TenantScore{}, wrapNotFound(err, "active score for tenant", tenantID)
	}
	return s, nil
}

// FindHistory lists all of a tenant's scores, newest first.
func (r *TenantScoreRepo) FindHistory(ctx context.Context, tenantID string) ([]model.TenantScore, error) {
	query := `SELECT ` + tenantScoreColumns + ` FROM tenant_scores WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query score history: %w", err)
	}
	defer rows.Close()

	var result []model.TenantScore
	for rows.Next() {
		s, err := scanTenantScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func tenantScoreArgs(s model.TenantScore) ([]any, error) {
	components, err := json.Marshal(s.Components())
	if err != nil {
		return nil, fmt.Errorf("marshal components: %w", err)
	}
	breakdown, err := json.Marshal(s.Breakdown())
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown: %w", err)
	}
	return []any{
		s.ID(), s.TenantID(), s.OverallScore(), components, s.Method().String(),
		s.WeightsApplied(), breakdown, s.Active(), s.CreatedAt(),
	}, nil
}

func scanTenantScore(sc scannable) (model.TenantScore, error) {
	var (
		id, tenantID   string
		overall        int
		componentsJSON []byte
		method         string
		weightsApplied int
		breakdownJSON  []byte
		active         bool
		createdAt      time.Time
	)
	err := sc.Scan(
		&id, &tenantID, &overall, &componentsJSON, &method,
		&weightsApplied, &breakdownJSON, &active, &createdAt,
	)
	if err != nil {
		return model.TenantScore{}, err
	}

	var components model.ComponentScores
	if err := json.Unmarshal(componentsJSON, &components); err != nil {
		return model.TenantScore{}, fmt.Errorf("unmarshal components for score %s: %w", id, err)
	}
	var breakdown model.ScoreBreakdown
	if err := json.Unmarshal(breakdownJSON, &breakdown); err != nil {
		return model.TenantScore{}, fmt.Errorf("unmarshal breakdown for score %s: %w", id, err)
	}

	return model.ReconstructTenantScore(
		id, tenantID, overall, components,
		valueobject.ParseScoringMethod(method),
		weightsApplied, breakdown, active, createdAt,
	), nil
}
