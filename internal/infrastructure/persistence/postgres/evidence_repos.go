package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// Append-only evidence stores. The calculators read these per tenant and
// never mutate individual records, so none of the repos expose updates.

// ---------------------------------------------------------------------------
// EmploymentRepo
// ---------------------------------------------------------------------------

// EmploymentRepo implements port.EmploymentRepository.
type EmploymentRepo struct {
	pool *pgxpool.Pool
}

func NewEmploymentRepo(pool *pgxpool.Pool) *EmploymentRepo {
	return &EmploymentRepo{pool: pool}
}

func (r *EmploymentRepo) Save(ctx context.Context, e model.EmploymentRecord) error {
	query := `
		INSERT INTO employment_records (
			id, tenant_id, employer, position, start_date, end_date,
			monthly_income_cents, verified, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.TenantID, e.Employer, e.Position, e.StartDate, e.EndDate,
		e.MonthlyIncome, e.Verified, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save employment record: %w", err)
	}
	return nil
}

func (r *EmploymentRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error) {
	query := `
		SELECT id, tenant_id, employer, position, start_date, end_date,
		       monthly_income_cents, verified, created_at
		FROM employment_records
		WHERE tenant_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query employment records: %w", err)
	}
	defer rows.Close()

	var result []model.EmploymentRecord
	for rows.Next() {
		var e model.EmploymentRecord
		err := rows.Scan(
			&e.ID, &e.TenantID, &e.Employer, &e.Position, &e.StartDate, &e.EndDate,
			&e.MonthlyIncome, &e.Verified, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan employment record: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// RentalHistoryRepo
// ---------------------------------------------------------------------------

// RentalHistoryRepo implements port.RentalHistoryRepository.
type RentalHistoryRepo struct {
	pool *pgxpool.Pool
}

func NewRentalHistoryRepo(pool *pgxpool.Pool) *RentalHistoryRepo {
	return &RentalHistoryRepo{pool: pool}
}

func (r *RentalHistoryRepo) Save(ctx context.Context, rec model.RentalHistoryRecord) error {
	query := `
		INSERT INTO rental_history_records (
			id, tenant_id, landlord_name, address, start_date, end_date,
			monthly_rent_cents, on_time_percent, left_in_good_condition,
			reason_for_leaving, verified, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.TenantID, rec.LandlordName, rec.Address, rec.StartDate, rec.EndDate,
		rec.MonthlyRent, rec.OnTimePercent, rec.LeftInGoodCondition,
		rec.ReasonForLeaving, rec.Verified, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save rental history record: %w", err)
	}
	return nil
}

func (r *RentalHistoryRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error) {
	query := `
		SELECT id, tenant_id, landlord_name, address, start_date, end_date,
		       monthly_rent_cents, on_time_percent, left_in_good_condition,
		       reason_for_leaving, verified, created_at
		FROM rental_history_records
		WHERE tenant_id = $1
		ORDER BY end_date DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query rental history: %w", err)
	}
	defer rows.Close()

	var result []model.RentalHistoryRecord
	for rows.Next() {
		var rec model.RentalHistoryRecord
		err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.LandlordName, &rec.Address, &rec.StartDate, &rec.EndDate,
			&rec.MonthlyRent, &rec.OnTimePercent, &rec.LeftInGoodCondition,
			&rec.ReasonForLeaving, &rec.Verified, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan rental history record: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// ReferenceRepo
// ---------------------------------------------------------------------------

// ReferenceRepo implements port.ReferenceRepository.
type ReferenceRepo struct {
	pool *pgxpool.Pool
}

func NewReferenceRepo(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

func (r *ReferenceRepo) Save(ctx context.Context, ref model.Reference) error {
	query := `
		INSERT INTO tenant_references (
			id, tenant_id, referrer_name, relationship, rating,
			verified, comments, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		ref.ID, ref.TenantID, ref.ReferrerName, string(ref.Relationship),
		ref.Rating, ref.Verified, ref.Comments, ref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save reference: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Reference, error) {
	query := `
		SELECT id, tenant_id, referrer_name, relationship, rating,
		       verified, comments, created_at
		FROM tenant_references
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query references: %w", err)
	}
	defer rows.Close()

	var result []model.Reference
	for rows.Next() {
		var (
			ref          model.Reference
			relationship string
		)
		err := rows.Scan(
			&ref.ID, &ref.TenantID, &ref.ReferrerName, &relationship,
			&ref.Rating, &ref.Verified, &ref.Comments, &ref.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reference: %w", err)
		}
		ref.Relationship = valueobject.ReferenceRelationship(relationship)
		result = append(result, ref)
	}
	return result, rows.Err()
}
