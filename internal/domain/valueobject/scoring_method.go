package valueobject

// ---------------------------------------------------------------------------
// ScoringMethod – immutable value object
// ---------------------------------------------------------------------------

// ScoringMethod selects which weight profile the aggregator applies.
type ScoringMethod struct {
	value string
}

const (
	scoringMethodComprehensive = "COMPREHENSIVE"
	scoringMethodBasic         = "BASIC"
	scoringMethodCreditOnly    = "CREDIT_ONLY"
)

var (
	ScoringMethodComprehensive = ScoringMethod{value: scoringMethodComprehensive}
	ScoringMethodBasic         = ScoringMethod{value: scoringMethodBasic}
	ScoringMethodCreditOnly    = ScoringMethod{value: scoringMethodCreditOnly}
)

// ParseScoringMethod maps a raw tag to a method. Unknown or empty tags fall
// back to COMPREHENSIVE rather than erroring, so a stale or misspelled tag
// never blocks a scoring request.
func ParseScoringMethod(s string) ScoringMethod {
	switch s {
	case scoringMethodBasic, "basic":
		return ScoringMethodBasic
	case scoringMethodCreditOnly, "credit-only", "credit_only":
		return ScoringMethodCreditOnly
	default:
		return ScoringMethodComprehensive
	}
}

// String returns the string representation of the method.
func (m ScoringMethod) String() string { return m.value }

// IsZero returns true if the method has not been initialised.
func (m ScoringMethod) IsZero() bool { return m.value == "" }

// Equal returns true when both methods carry the same value.
func (m ScoringMethod) Equal(other ScoringMethod) bool { return m.value == other.value }
