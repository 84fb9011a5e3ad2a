package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// PropertyRepo implements port.PropertyRepository.
type PropertyRepo struct {
	pool *pgxpool.Pool
}

// NewPropertyRepo creates a new repository backed by PostgreSQL.
func NewPropertyRepo(pool *pgxpool.Pool) *PropertyRepo {
	return &PropertyRepo{pool: pool}
}

const propertyColumns = `
	id, landlord_id, title, address, monthly_rent_cents,
	bedrooms, bathrooms, status, created_at, updated_at
`

// Save persists a property (upsert by ID).
func (r *PropertyRepo) Save(ctx context.Context, p model.Property) error {
	query := `
		INSERT INTO properties (
			id, landlord_id, title, address, monthly_rent_cents,
			bedrooms, bathrooms, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			title              = EXCLUDED.title,
			address            = EXCLUDED.address,
			monthly_rent_cents = EXCLUDED.monthly_rent_cents,
			bedrooms           = EXCLUDED.bedrooms,
			bathrooms          = EXCLUDED.bathrooms,
			status             = EXCLUDED.status,
			updated_at         = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.LandlordID, p.Title, p.Address, p.MonthlyRent,
		p.Bedrooms, p.Bathrooms, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save property: %w", err)
	}
	return nil
}

// FindByID retrieves a single property.
func (r *PropertyRepo) FindByID(ctx context.Context, id string) (model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Property{}, wrapNotFound(err, "property", id)
	}
	return p, nil
}

// FindByStatus lists properties in a given status, newest first.
func (r *PropertyRepo) FindByStatus(ctx context.Context, status string) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, status)
}

// FindByLandlordID lists a landlord's properties, newest first.
func (r *PropertyRepo) FindByLandlordID(ctx context.Context, landlordID string) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE landlord_id = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, landlordID)
}

func (r *PropertyRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.Property, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	defer rows.Close()

	var result []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func scanProperty(s scannable) (model.Property, error) {
	var (
		p      model.Property
		status string
	)
	err := s.Scan(
		&p.ID, &p.LandlordID, &p.Title, &p.Address, &p.MonthlyRent,
		&p.Bedrooms, &p.Bathrooms, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Property{}, err
	}
	p.Status = valueobject.PropertyStatus(status)
	return p, nil
}
