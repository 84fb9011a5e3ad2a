package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// UserRepo implements port.UserRepository.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a new repository backed by PostgreSQL.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `
	id, external_identity_id, role, email, full_name,
	verification_status, id_match_confidence, credit_score,
	monthly_income_cents, active, created_at, updated_at
`

// Save persists a user (upsert by ID).
func (r *UserRepo) Save(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (
			id, external_identity_id, role, email, full_name,
			verification_status, id_match_confidence, credit_score,
			monthly_income_cents, active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			email                = EXCLUDED.email,
			full_name            = EXCLUDED.full_name,
			verification_status  = EXCLUDED.verification_status,
			id_match_confidence  = EXCLUDED.id_match_confidence,
			credit_score         = EXCLUDED.credit_score,
			monthly_income_cents = EXCLUDED.monthly_income_cents,
			active               = EXCLUDED.active,
			updated_at           = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.ExternalIdentityID, string(u.Role), u.Email, u.FullName,
		string(u.VerificationStatus), u.IDMatchConfidence, u.CreditScore,
		u.MonthlyIncome, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByID retrieves a single user.
func (r *UserRepo) FindByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, wrapNotFound(err, "user", id)
	}
	return u, nil
}

// FindByExternalID retrieves a user by the identity provider's key.
func (r *UserRepo) FindByExternalID(ctx context.Context, externalID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_identity_id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, externalID))
	if err != nil {
		return model.User{}, wrapNotFound(err, "user", externalID)
	}
	return u, nil
}

func scanUser(s scannable) (model.User, error) {
	var (
		u                  model.User
		role, status       string
		idMatchConfidence  *decimal.Decimal
		creditScore        *int
		createdAt, updated time.Time
	)
	err := s.Scan(
		&u.ID, &u.ExternalIdentityID, &role, &u.Email, &u.FullName,
		&status, &idMatchConfidence, &creditScore,
		&u.MonthlyIncome, &u.Active, &createdAt, &updated,
	)
	if err != nil {
		return model.User{}, err
	}

	u.Role = valueobject.UserRole(role)
	u.VerificationStatus = valueobject.VerificationStatus(status)
	u.IDMatchConfidence = idMatchConfidence
	u.CreditScore = creditScore
	u.CreatedAt = createdAt
	u.UpdatedAt = updated
	return u, nil
}
