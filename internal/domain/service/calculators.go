package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// scoreContext carries the resolved inputs shared by the calculators.
type scoreContext struct {
	tenantID      string
	applicationID string
	monthlyRent   int64 // cents, 0 = unknown
}

// evictionKeywords flag a leave reason as an eviction. Matching is
// case-insensitive substring search over the free-text field.
var evictionKeywords = []string{"evict"}

// negativeLeaveKeywords penalise a rental history record's score.
var negativeLeaveKeywords = []string{"evict", "non-payment", "nonpayment", "unpaid", "violation", "damage"}

// ---------------------------------------------------------------------------
// 1. Credit
// ---------------------------------------------------------------------------

// scoreCredit maps the latest completed bureau score, falling back to the
// user's self-reported score, linearly from the 300-900 scale to 0-100.
func (e *ScoringEngine) scoreCredit(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentCredit

	check, err := e.creditChecks.FindLatestCompleted(ctx, in.tenantID)
	switch {
	case err == nil:
		return valueobject.ComputedResult(c, mapBureauScore(check.Score))
	case !errors.Is(err, valueobject.ErrNotFound):
		return valueobject.FailedResult(c, err)
	}

	user, err := e.users.FindByID(ctx, in.tenantID)
	if err != nil {
		if errors.Is(err, valueobject.ErrNotFound) {
			return valueobject.UnavailableResult(c, "no credit check and no user profile")
		}
		return valueobject.FailedResult(c, err)
	}
	if user.CreditScore == nil {
		return valueobject.UnavailableResult(c, "no credit check and no self-reported score")
	}
	return valueobject.ComputedResult(c, mapBureauScore(*user.CreditScore))
}

func mapBureauScore(raw int) int {
	return valueobject.ClampScore((raw - 300) * 100 / 600)
}

// ---------------------------------------------------------------------------
// 2. Income-to-rent ratio
// ---------------------------------------------------------------------------

// scoreIncome buckets the monthly income / monthly rent ratio into the
// six-tier table. Income resolution order: application-declared, profile,
// sum of verified current employment.
func (e *ScoringEngine) scoreIncome(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentIncome

	if in.monthlyRent <= 0 {
		return valueobject.UnavailableResult(c, "monthly rent unknown")
	}

	income, result := e.resolveMonthlyIncome(ctx, in)
	if result != nil {
		return *result
	}
	if income <= 0 {
		return valueobject.UnavailableResult(c, "monthly income unknown")
	}

	ratio := decimal.NewFromInt(income).Div(decimal.NewFromInt(in.monthlyRent))
	return valueobject.ComputedResult(c, incomeRatioScore(ratio))
}

func (e *ScoringEngine) resolveMonthlyIncome(ctx context.Context, in scoreContext) (int64, *valueobject.ComponentResult) {
	const c = valueobject.ComponentIncome

	if in.applicationID != "" {
		app, err := e.applications.FindByID(ctx, in.applicationID)
		switch {
		case err == nil:
			if app.MonthlyIncome() > 0 {
				return app.MonthlyIncome(), nil
			}
		case !errors.Is(err, valueobject.ErrNotFound):
			r := valueobject.FailedResult(c, err)
			return 0, &r
		}
	}

	user, err := e.users.FindByID(ctx, in.tenantID)
	switch {
	case err == nil:
		if user.MonthlyIncome > 0 {
			return user.MonthlyIncome, nil
		}
	case !errors.Is(err, valueobject.ErrNotFound):
		r := valueobject.FailedResult(c, err)
		return 0, &r
	}

	records, err := e.employment.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		r := valueobject.FailedResult(c, err)
		return 0, &r
	}
	var total int64
	for _, rec := range records {
		if rec.Current() && rec.Verified {
			total += rec.MonthlyIncome
		}
	}
	return total, nil
}

func incomeRatioScore(ratio decimal.Decimal) int {
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(3.5)):
		return 100
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(3.0)):
		return 90
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(2.5)):
		return 80
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(2.0)):
		return 70
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(1.5)):
		return 60
	default:
		// Below 1.5x the score scales down proportionally from the
		// bottom tier: ratio/1.5 * 60.
		scaled := ratio.Div(decimal.NewFromFloat(1.5)).Mul(decimal.NewFromInt(60))
		return valueobject.ClampScore(int(scaled.Round(0).IntPart()))
	}
}

// ---------------------------------------------------------------------------
// 3. Rental history
// ---------------------------------------------------------------------------

// scoreRentalHistory computes a weighted average over all prior tenancies.
// Verified and long tenancies carry extra weight.
func (e *ScoringEngine) scoreRentalHistory(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentRentalHistory

	records, err := e.rentalHistory.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}
	if len(records) == 0 {
		return valueobject.UnavailableResult(c, "no rental history records")
	}

	weightedSum := decimal.Zero
	weightTotal := decimal.Zero
	for _, rec := range records {
		score := decimal.NewFromInt(int64(rentalRecordScore(rec)))
		weight := rentalRecordWeight(rec)
		weightedSum = weightedSum.Add(score.Mul(weight))
		weightTotal = weightTotal.Add(weight)
	}

	avg := weightedSum.Div(weightTotal).Round(0)
	return valueobject.ComputedResult(c, int(avg.IntPart()))
}

func rentalRecordScore(rec model.RentalHistoryRecord) int {
	score := 60
	if rec.Verified {
		score += 10
	}
	switch {
	case rec.OnTimePercent >= 95:
		score += 15
	case rec.OnTimePercent >= 85:
		score += 10
	case rec.OnTimePercent >= 70:
		score += 5
	}
	if rec.LeftInGoodCondition {
		score += 5
	}
	months := rec.TenancyMonths()
	switch {
	case months >= 24:
		score += 10
	case months >= 12:
		score += 5
	}
	if containsAny(rec.ReasonForLeaving, negativeLeaveKeywords) {
		score -= 30
	}
	if months < 6 {
		score -= 10
	}
	return valueobject.ClampScore(score)
}

func rentalRecordWeight(rec model.RentalHistoryRecord) decimal.Decimal {
	weight := decimal.NewFromInt(1)
	if rec.Verified {
		weight = weight.Add(decimal.NewFromFloat(0.5))
	}
	if rec.TenancyMonths() >= 24 {
		weight = weight.Add(decimal.NewFromFloat(0.5))
	}
	return weight
}

// ---------------------------------------------------------------------------
// 4. Employment stability
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scoreEmployment(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentEmployment

	records, err := e.employment.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}
	if len(records) == 0 {
		return valueobject.UnavailableResult(c, "no employment records")
	}

	now := e.now()
	score := 50

	var current *model.EmploymentRecord
	for i := range records {
		rec := &records[i]
		if !rec.Current() {
			continue
		}
		if current == nil || rec.TenureMonths(now) > current.TenureMonths(now) {
			current = rec
		}
	}

	if current != nil {
		score += 20
		switch tenure := current.TenureMonths(now); {
		case tenure >= 60:
			score += 30
		case tenure >= 36:
			score += 20
		case tenure >= 24:
			score += 15
		case tenure >= 12:
			score += 10
		case tenure >= 6:
			score += 5
		}
		if current.Verified {
			score += 10
		}
	} else {
		score -= 15
	}

	// Frequent job changes: three or more positions started inside the
	// last 24 months.
	recentStarts := 0
	cutoff := now.AddDate(-2, 0, 0)
	for _, rec := range records {
		if rec.StartDate.After(cutoff) {
			recentStarts++
		}
	}
	if recentStarts >= 3 {
		score -= 10
	}

	return valueobject.ComputedResult(c, score)
}

// ---------------------------------------------------------------------------
// 5. Identity verification
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scoreIdentity(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentIdentity

	user, err := e.users.FindByID(ctx, in.tenantID)
	if err != nil {
		if errors.Is(err, valueobject.ErrNotFound) {
			return valueobject.UnavailableResult(c, "user not found")
		}
		return valueobject.FailedResult(c, err)
	}

	var score int
	switch user.VerificationStatus {
	case valueobject.VerificationVerified:
		score = 90
	case valueobject.VerificationPending:
		score = 50
	case valueobject.VerificationRejected:
		score = 10
	default:
		score = 30
	}

	if user.IDMatchConfidence != nil {
		bonus := user.IDMatchConfidence.Mul(decimal.NewFromInt(10))
		score += int(bonus.Floor().IntPart())
	}

	return valueobject.ComputedResult(c, score)
}

// ---------------------------------------------------------------------------
// 6. References
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scoreReferences(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentReferences

	refs, err := e.references.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}
	if len(refs) == 0 {
		return valueobject.UnavailableResult(c, "no references")
	}

	score := 50
	switch {
	case len(refs) >= 3:
		score += 15
	case len(refs) == 2:
		score += 10
	default:
		score += 5
	}

	var (
		hasLandlord     bool
		hasProfessional bool
		anyVerified     bool
		ratingTotal     int
	)
	for _, ref := range refs {
		switch ref.Relationship {
		case valueobject.ReferenceLandlord:
			hasLandlord = true
		case valueobject.ReferenceEmployer, valueobject.ReferenceProfessional:
			hasProfessional = true
		}
		if ref.Verified {
			anyVerified = true
		}
		ratingTotal += ref.Rating
	}

	if hasLandlord {
		score += 10
	}
	if hasProfessional {
		score += 5
	}
	if anyVerified {
		score += 10
	}

	avg := decimal.NewFromInt(int64(ratingTotal)).Div(decimal.NewFromInt(int64(len(refs))))
	if avg.GreaterThan(decimal.NewFromInt(3)) {
		bonus := avg.Sub(decimal.NewFromInt(3)).Mul(decimal.NewFromInt(10))
		score += int(bonus.Floor().IntPart())
	}

	return valueobject.ComputedResult(c, score)
}

// ---------------------------------------------------------------------------
// 7. Application quality
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scoreApplicationQuality(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentApplicationQuality

	if in.applicationID == "" {
		return valueobject.UnavailableResult(c, "no application in scope")
	}

	app, err := e.applications.FindByID(ctx, in.applicationID)
	if err != nil {
		if errors.Is(err, valueobject.ErrNotFound) {
			return valueobject.UnavailableResult(c, "application not found")
		}
		return valueobject.FailedResult(c, err)
	}

	score := 50
	if app.MonthlyIncome() > 0 {
		score += 15
	}
	if app.MoveInDate() != nil {
		score += 10
	}
	if strings.TrimSpace(app.Notes()) != "" {
		score += 10
	}
	switch {
	case app.ReferenceCount() >= 2:
		score += 15
	case app.ReferenceCount() == 1:
		score += 10
	}

	return valueobject.ComputedResult(c, score)
}

// ---------------------------------------------------------------------------
// 8. Payment history
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scorePaymentHistory(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentPaymentHistory

	payments, err := e.payments.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}

	var settled, onTime, missed int
	for _, p := range payments {
		switch p.Status {
		case valueobject.PaymentPaid:
			settled++
			if p.OnTime() {
				onTime++
			}
		case valueobject.PaymentFailed:
			settled++
			missed++
		}
	}
	if settled == 0 {
		return valueobject.UnavailableResult(c, "no settled payments")
	}

	onTimePct := onTime * 100 / settled
	score := paymentHistoryBucket(onTimePct)

	missedPct := missed * 100 / settled
	if missedPct > 0 {
		penalty := missedPct
		if penalty > 30 {
			penalty = 30
		}
		score -= penalty
	}

	return valueobject.ComputedResult(c, score)
}

func paymentHistoryBucket(onTimePct int) int {
	switch {
	case onTimePct >= 100:
		return 100
	case onTimePct >= 95:
		return 95
	case onTimePct >= 90:
		return 90
	case onTimePct >= 85:
		return 85
	case onTimePct >= 80:
		return 75
	case onTimePct >= 70:
		return 65
	case onTimePct >= 60:
		return 50
	case onTimePct >= 50:
		return 35
	default:
		return 20
	}
}

// ---------------------------------------------------------------------------
// 9. Promptness
// ---------------------------------------------------------------------------

func (e *ScoringEngine) scorePromptness(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentPromptness

	payments, err := e.payments.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}

	var totalDays float64
	var paid int
	for _, p := range payments {
		if p.Status != valueobject.PaymentPaid || p.PaidDate == nil {
			continue
		}
		paid++
		totalDays += p.PaidDate.Sub(p.DueDate).Hours() / 24
	}
	if paid == 0 {
		return valueobject.UnavailableResult(c, "no paid payments")
	}

	avgDays := totalDays / float64(paid)
	score := 50
	switch {
	case avgDays <= -2:
		score += 40
	case avgDays <= 0:
		score += 30
	case avgDays <= 2:
		score += 10
	case avgDays <= 5:
		score -= 10
	case avgDays <= 10:
		score -= 25
	default:
		score -= 40
	}

	return valueobject.ComputedResult(c, score)
}

// ---------------------------------------------------------------------------
// 10. Eviction history
// ---------------------------------------------------------------------------

// scoreEviction searches leave reasons for eviction keywords. No rental
// history at all is neutral (70), a clean history is 100, one eviction is
// graded by recency, and multiple evictions zero the component.
func (e *ScoringEngine) scoreEviction(ctx context.Context, in scoreContext) valueobject.ComponentResult {
	const c = valueobject.ComponentEviction

	records, err := e.rentalHistory.FindByTenantID(ctx, in.tenantID)
	if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return valueobject.FailedResult(c, err)
	}
	if len(records) == 0 {
		return valueobject.ComputedResult(c, 70)
	}

	var evictions []model.RentalHistoryRecord
	for _, rec := range records {
		if containsAny(rec.ReasonForLeaving, evictionKeywords) {
			evictions = append(evictions, rec)
		}
	}

	switch len(evictions) {
	case 0:
		return valueobject.ComputedResult(c, 100)
	case 1:
		years := e.now().Sub(evictions[0].EndDate).Hours() / (24 * 365.25)
		return valueobject.ComputedResult(c, evictionRecencyScore(years))
	default:
		return valueobject.ComputedResult(c, 0)
	}
}

func evictionRecencyScore(years float64) int {
	switch {
	case years >= 10:
		return 60
	case years >= 7:
		return 40
	case years >= 5:
		return 30
	case years >= 3:
		return 20
	case years >= 1:
		return 15
	default:
		return 10
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
