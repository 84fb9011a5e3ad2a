package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// wrapNotFound maps pgx.ErrNoRows onto the domain's not-found sentinel so
// callers can errors.Is against valueobject.ErrNotFound.
func wrapNotFound(err error, kind, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", kind, id, valueobject.ErrNotFound)
	}
	return fmt.Errorf("query %s %s: %w", kind, id, err)
}
