package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Component – the ten scored data domains
// ---------------------------------------------------------------------------

// Component identifies one scored data domain of a tenant's profile.
type Component string

const (
	ComponentCredit             Component = "CREDIT"
	ComponentIncome             Component = "INCOME"
	ComponentRentalHistory      Component = "RENTAL_HISTORY"
	ComponentEmployment         Component = "EMPLOYMENT"
	ComponentIdentity           Component = "IDENTITY"
	ComponentReferences         Component = "REFERENCES"
	ComponentApplicationQuality Component = "APPLICATION_QUALITY"
	ComponentPaymentHistory     Component = "PAYMENT_HISTORY"
	ComponentPromptness         Component = "PROMPTNESS"
	ComponentEviction           Component = "EVICTION"
)

// AllComponents lists every component in a stable order.
func AllComponents() []Component {
	return []Component{
		ComponentCredit,
		ComponentIncome,
		ComponentRentalHistory,
		ComponentEmployment,
		ComponentIdentity,
		ComponentReferences,
		ComponentApplicationQuality,
		ComponentPaymentHistory,
		ComponentPromptness,
		ComponentEviction,
	}
}

// ---------------------------------------------------------------------------
// ComponentResult – tagged calculator outcome
// ---------------------------------------------------------------------------

// ComponentOutcome distinguishes a computed score from the two ways a
// component can be excluded from the weighted average: the data legitimately
// does not exist, or the lookup itself failed.
type ComponentOutcome string

const (
	OutcomeComputed    ComponentOutcome = "COMPUTED"
	OutcomeUnavailable ComponentOutcome = "UNAVAILABLE"
	OutcomeFailed      ComponentOutcome = "FAILED"
)

// ComponentResult is the outcome of a single component calculator.
// Score is meaningful only when Outcome is COMPUTED, and is then in [0,100].
type ComponentResult struct {
	Component Component
	Outcome   ComponentOutcome
	Score     int
	Reason    string
	Err       error
}

// ComputedResult builds a COMPUTED result, clamping the score into [0,100].
func ComputedResult(c Component, score int) ComponentResult {
	return ComponentResult{Component: c, Outcome: OutcomeComputed, Score: ClampScore(score)}
}

// UnavailableResult builds an UNAVAILABLE result carrying the missing-data reason.
func UnavailableResult(c Component, reason string) ComponentResult {
	return ComponentResult{Component: c, Outcome: OutcomeUnavailable, Reason: reason}
}

// FailedResult builds a FAILED result carrying the lookup error.
func FailedResult(c Component, err error) ComponentResult {
	return ComponentResult{
		Component: c,
		Outcome:   OutcomeFailed,
		Reason:    fmt.Sprintf("lookup failed: %v", err),
		Err:       err,
	}
}

// Available reports whether the result contributes to the weighted average.
func (r ComponentResult) Available() bool { return r.Outcome == OutcomeComputed }

// ClampScore bounds a raw score into the canonical [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
