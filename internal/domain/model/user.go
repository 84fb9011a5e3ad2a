package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// User is a platform account. Users are keyed externally by the identity
// provider and are never hard-deleted; Active is the soft-delete flag.
type User struct {
	ID                 string
	ExternalIdentityID string
	Role               valueobject.UserRole
	Email              string
	FullName           string
	VerificationStatus valueobject.VerificationStatus
	// IDMatchConfidence is the identity provider's structured match
	// confidence in [0,1]. Nil when the provider supplied none.
	IDMatchConfidence *decimal.Decimal
	// CreditScore is an optional self-reported score on the 300-900 scale.
	CreditScore *int
	// MonthlyIncome is the profile-declared income in cents. Zero = unknown.
	MonthlyIncome int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a validated user in UNVERIFIED status.
func NewUser(externalIdentityID string, role valueobject.UserRole, email, fullName string, now time.Time) (User, error) {
	if externalIdentityID == "" {
		return User{}, errors.New("external identity ID is required")
	}
	if role == "" {
		return User{}, errors.New("role is required")
	}
	if email == "" {
		return User{}, errors.New("email is required")
	}
	return User{
		ID:                 uuid.New().String(),
		ExternalIdentityID: externalIdentityID,
		Role:               role,
		Email:              email,
		FullName:           fullName,
		VerificationStatus: valueobject.VerificationUnverified,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
