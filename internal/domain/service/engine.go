package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// NeutralScore is the canonical fallback when no component can be computed.
// Scoring never blocks the workflow on missing data.
const NeutralScore = 50

// ---------------------------------------------------------------------------
// ScoringEngine – domain service aggregating the ten component calculators
// ---------------------------------------------------------------------------

// ScoringEngine runs the component calculators against the evidence
// repositories and folds the results into a weighted tenant score.
type ScoringEngine struct {
	users         port.UserRepository
	properties    port.PropertyRepository
	applications  port.ApplicationRepository
	payments      port.PaymentRepository
	creditChecks  port.CreditCheckRepository
	employment    port.EmploymentRepository
	rentalHistory port.RentalHistoryRepository
	references    port.ReferenceRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewScoringEngine wires the engine's read-only dependencies.
func NewScoringEngine(
	users port.UserRepository,
	properties port.PropertyRepository,
	applications port.ApplicationRepository,
	payments port.PaymentRepository,
	creditChecks port.CreditCheckRepository,
	employment port.EmploymentRepository,
	rentalHistory port.RentalHistoryRepository,
	references port.ReferenceRepository,
	logger *slog.Logger,
) *ScoringEngine {
	return &ScoringEngine{
		users:         users,
		properties:    properties,
		applications:  applications,
		payments:      payments,
		creditChecks:  creditChecks,
		employment:    employment,
		rentalHistory: rentalHistory,
		references:    references,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the engine's clock. Intended for tests.
func (e *ScoringEngine) WithClock(now func() time.Time) *ScoringEngine {
	e.now = now
	return e
}

// ScoreInput identifies what to score. PropertyID, ApplicationID and
// MonthlyRent are optional; the engine resolves rent from the application's
// property, then the property, when it is not supplied directly.
type ScoreInput struct {
	TenantID      string
	PropertyID    string
	ApplicationID string
	MonthlyRent   int64 // cents
	Method        valueobject.ScoringMethod
}

// ScoreOutcome is the aggregate result plus the per-component audit trail.
type ScoreOutcome struct {
	TenantID       string
	OverallScore   int
	Method         valueobject.ScoringMethod
	WeightsApplied int
	Results        []valueobject.ComponentResult
	Components     model.ComponentScores
	Breakdown      model.ScoreBreakdown
}

// CalculateTenantScore resolves the scoring context, runs all ten component
// calculators concurrently, and computes the weighted average over the
// components that produced a score. When nothing could be computed the
// outcome carries the neutral default instead of an error.
func (e *ScoringEngine) CalculateTenantScore(ctx context.Context, in ScoreInput) (ScoreOutcome, error) {
	if in.TenantID == "" {
		return ScoreOutcome{}, errors.New("tenant ID is required")
	}
	method := in.Method
	if method.IsZero() {
		method = valueobject.ScoringMethodComprehensive
	}

	rent, err := e.resolveMonthlyRent(ctx, in)
	if err != nil {
		return ScoreOutcome{}, err
	}

	sc := scoreContext{
		tenantID:      in.TenantID,
		applicationID: in.ApplicationID,
		monthlyRent:   rent,
	}

	calculators := map[valueobject.Component]func(context.Context, scoreContext) valueobject.ComponentResult{
		valueobject.ComponentCredit:             e.scoreCredit,
		valueobject.ComponentIncome:             e.scoreIncome,
		valueobject.ComponentRentalHistory:      e.scoreRentalHistory,
		valueobject.ComponentEmployment:         e.scoreEmployment,
		valueobject.ComponentIdentity:           e.scoreIdentity,
		valueobject.ComponentReferences:         e.scoreReferences,
		valueobject.ComponentApplicationQuality: e.scoreApplicationQuality,
		valueobject.ComponentPaymentHistory:     e.scorePaymentHistory,
		valueobject.ComponentPromptness:         e.scorePromptness,
		valueobject.ComponentEviction:           e.scoreEviction,
	}

	// Fire all calculators and join. Each recovers its own lookup failures
	// into a FAILED result, so the aggregate never errors mid-flight.
	var wg sync.WaitGroup
	resultCh := make(chan valueobject.ComponentResult, len(calculators))
	for component, calc := range calculators {
		wg.Add(1)
		go func(component valueobject.Component, calc func(context.Context, scoreContext) valueobject.ComponentResult) {
			defer wg.Done()
			resultCh <- calc(ctx, sc)
		}(component, calc)
	}
	wg.Wait()
	close(resultCh)

	byComponent := make(map[valueobject.Component]valueobject.ComponentResult, len(calculators))
	for r := range resultCh {
		byComponent[r.Component] = r
	}

	for _, r := range byComponent {
		if r.Outcome == valueobject.OutcomeFailed {
			e.logger.Warn("component lookup failed",
				"component", string(r.Component),
				"tenant_id", in.TenantID,
				"error", r.Err,
			)
		}
	}

	outcome := aggregateResults(in.TenantID, method, byComponent)
	return outcome, nil
}

// aggregateResults folds per-component results into the weighted average.
// Components that did not compute are excluded from both numerator and
// denominator; an empty denominator yields the neutral default.
func aggregateResults(
	tenantID string,
	method valueobject.ScoringMethod,
	byComponent map[valueobject.Component]valueobject.ComponentResult,
) ScoreOutcome {
	weights := WeightsFor(method)
	var (
		weightedSum    int
		weightsApplied int
	)
	components := make(model.ComponentScores, len(byComponent))
	breakdownComponents := make([]model.ComponentBreakdown, 0, len(byComponent))

	for _, component := range valueobject.AllComponents() {
		r, ok := byComponent[component]
		if !ok {
			r = valueobject.UnavailableResult(component, "not evaluated")
		}
		weight := weights.Weight(component)

		entry := model.ComponentBreakdown{
			Component: component,
			Outcome:   r.Outcome,
			Weight:    weight,
			Reason:    r.Reason,
		}

		if r.Available() {
			score := r.Score
			components[component] = &score
			entry.Score = &score
			if weight > 0 {
				weightedSum += score * weight
				weightsApplied += weight
			}
		} else {
			components[component] = nil
		}

		breakdownComponents = append(breakdownComponents, entry)
	}

	overall := NeutralScore
	if weightsApplied > 0 {
		overall = roundToInt(float64(weightedSum) / float64(weightsApplied))
	}

	results := make([]valueobject.ComponentResult, 0, len(byComponent))
	for _, component := range valueobject.AllComponents() {
		if r, ok := byComponent[component]; ok {
			results = append(results, r)
		}
	}

	return ScoreOutcome{
		TenantID:       tenantID,
		OverallScore:   overall,
		Method:         method,
		WeightsApplied: weightsApplied,
		Results:        results,
		Components:     components,
		Breakdown: model.ScoreBreakdown{
			Method:         method.String(),
			WeightsApplied: weightsApplied,
			Components:     breakdownComponents,
		},
	}
}

// resolveMonthlyRent prefers the caller-supplied rent, then the application's
// property, then the property given directly.
func (e *ScoringEngine) resolveMonthlyRent(ctx context.Context, in ScoreInput) (int64, error) {
	if in.MonthlyRent > 0 {
		return in.MonthlyRent, nil
	}

	propertyID := in.PropertyID
	if propertyID == "" && in.ApplicationID != "" {
		app, err := e.applications.FindByID(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, valueobject.ErrNotFound) {
				return 0, fmt.Errorf("application %s: %w", in.ApplicationID, err)
			}
			return 0, fmt.Errorf("resolve application: %w", err)
		}
		propertyID = app.PropertyID()
	}

	if propertyID == "" {
		return 0, nil
	}

	property, err := e.properties.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, valueobject.ErrNotFound) {
			return 0, fmt.Errorf("property %s: %w", propertyID, err)
		}
		return 0, fmt.Errorf("resolve property: %w", err)
	}
	return property.MonthlyRent, nil
}
