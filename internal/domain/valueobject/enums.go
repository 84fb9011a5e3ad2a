package valueobject

import "fmt"

// UserRole distinguishes the two account types on the platform.
type UserRole string

const (
	RoleTenant   UserRole = "TENANT"
	RoleLandlord UserRole = "LANDLORD"
)

// NewUserRole validates a raw role string.
func NewUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleTenant, RoleLandlord:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("invalid user role: %q", s)
}

// VerificationStatus is the identity-provider verification state of a user.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "UNVERIFIED"
	VerificationPending    VerificationStatus = "PENDING"
	VerificationVerified   VerificationStatus = "VERIFIED"
	VerificationRejected   VerificationStatus = "REJECTED"
)

// NewVerificationStatus validates a raw verification status string.
func NewVerificationStatus(s string) (VerificationStatus, error) {
	switch VerificationStatus(s) {
	case VerificationUnverified, VerificationPending, VerificationVerified, VerificationRejected:
		return VerificationStatus(s), nil
	}
	return "", fmt.Errorf("invalid verification status: %q", s)
}

// PropertyStatus is the listing state of a property.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "AVAILABLE"
	PropertyRented    PropertyStatus = "RENTED"
	PropertyUnlisted  PropertyStatus = "UNLISTED"
)

// NewPropertyStatus validates a raw property status string.
func NewPropertyStatus(s string) (PropertyStatus, error) {
	switch PropertyStatus(s) {
	case PropertyAvailable, PropertyRented, PropertyUnlisted:
		return PropertyStatus(s), nil
	}
	return "", fmt.Errorf("invalid property status: %q", s)
}

// LeaseStatus is the lifecycle state of a lease.
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseExpired    LeaseStatus = "EXPIRED"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

// NewLeaseStatus validates a raw lease status string.
func NewLeaseStatus(s string) (LeaseStatus, error) {
	switch LeaseStatus(s) {
	case LeaseActive, LeaseExpired, LeaseTerminated:
		return LeaseStatus(s), nil
	}
	return "", fmt.Errorf("invalid lease status: %q", s)
}

// PaymentStatus is the settlement state of a rent payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// NewPaymentStatus validates a raw payment status string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("invalid payment status: %q", s)
}

// ReferenceRelationship categorises who vouches for a tenant.
type ReferenceRelationship string

const (
	ReferenceLandlord     ReferenceRelationship = "LANDLORD"
	ReferenceEmployer     ReferenceRelationship = "EMPLOYER"
	ReferenceProfessional ReferenceRelationship = "PROFESSIONAL"
	ReferencePersonal     ReferenceRelationship = "PERSONAL"
)

// NewReferenceRelationship validates a raw relationship string.
func NewReferenceRelationship(s string) (ReferenceRelationship, error) {
	switch ReferenceRelationship(s) {
	case ReferenceLandlord, ReferenceEmployer, ReferenceProfessional, ReferencePersonal:
		return ReferenceRelationship(s), nil
	}
	return "", fmt.Errorf("invalid reference relationship: %q", s)
}

// CreditCheckStatus is the processing state of a credit bureau pull.
type CreditCheckStatus string

const (
	CreditCheckPending   CreditCheckStatus = "PENDING"
	CreditCheckCompleted CreditCheckStatus = "COMPLETED"
	CreditCheckFailed    CreditCheckStatus = "FAILED"
)

// NewCreditCheckStatus validates a raw credit check status string.
func NewCreditCheckStatus(s string) (CreditCheckStatus, error) {
	switch CreditCheckStatus(s) {
	case CreditCheckPending, CreditCheckCompleted, CreditCheckFailed:
		return CreditCheckStatus(s), nil
	}
	return "", fmt.Errorf("invalid credit check status: %q", s)
}
