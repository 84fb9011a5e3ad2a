package service

import (
	"fmt"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoreAnalyzer – turns a stored score into ratings and recommendations
// ---------------------------------------------------------------------------

// The canonical score scale is 0-100. The display scale is the credit-like
// 300-850 band shown to landlords; conversion happens only here, at the
// analysis boundary.
const (
	displayFloor = 300
	displaySpan  = 550

	displayExcellent = 720
	displayGood      = 670
	displayFair      = 580
)

// ScoreStatus is the human-readable overall rating.
type ScoreStatus string

const (
	StatusExcellent        ScoreStatus = "excellent"
	StatusGood             ScoreStatus = "good"
	StatusFair             ScoreStatus = "fair"
	StatusNeedsImprovement ScoreStatus = "needs-improvement"
)

// ComponentRating grades a single component for display.
type ComponentRating struct {
	Component valueobject.Component `json:"component"`
	Score     *int                  `json:"score,omitempty"`
	Rating    string                `json:"rating"`
	Note      string                `json:"note"`
}

// ScoreAnalysis is the display-ready view of a persisted score.
type ScoreAnalysis struct {
	TenantID       string            `json:"tenant_id"`
	OverallScore   int               `json:"overall_score"`
	DisplayScore   int               `json:"display_score"`
	Status         ScoreStatus       `json:"status"`
	ScoringMethod  string            `json:"scoring_method"`
	WeightsApplied int               `json:"weights_applied"`
	Defaulted      bool              `json:"defaulted"`
	Components     []ComponentRating `json:"components"`
}

// Recommendation is one prioritised improvement suggestion.
type Recommendation struct {
	Component valueobject.Component `json:"component"`
	Priority  int                   `json:"priority"` // 1 = highest
	Message   string                `json:"message"`
}

// ScoreAnalyzer derives analyses and recommendations from score records.
// It is stateless; all inputs arrive as arguments.
type ScoreAnalyzer struct{}

// NewScoreAnalyzer returns a new analyzer instance.
func NewScoreAnalyzer() *ScoreAnalyzer {
	return &ScoreAnalyzer{}
}

// DisplayScore converts a canonical 0-100 score to the 300-850 display band.
func DisplayScore(overall int) int {
	return displayFloor + overall*displaySpan/100
}

// Analyze produces the display view of a score.
func (a *ScoreAnalyzer) Analyze(score model.TenantScore) ScoreAnalysis {
	display := DisplayScore(score.OverallScore())

	components := make([]ComponentRating, 0, len(valueobject.AllComponents()))
	for _, component := range valueobject.AllComponents() {
		s := score.Component(component)
		components = append(components, rateComponent(component, s))
	}

	return ScoreAnalysis{
		TenantID:       score.TenantID(),
		OverallScore:   score.OverallScore(),
		DisplayScore:   display,
		Status:         statusFor(display),
		ScoringMethod:  score.Method().String(),
		WeightsApplied: score.WeightsApplied(),
		Defaulted:      score.WeightsApplied() == 0,
		Components:     components,
	}
}

// Recommend produces improvement suggestions, prioritising the single
// lowest-scoring component, then unavailable components in weight order.
func (a *ScoreAnalyzer) Recommend(score model.TenantScore) []Recommendation {
	weights := WeightsFor(score.Method())

	var (
		lowest      valueobject.Component
		lowestScore = -1
	)
	var missing []valueobject.Component
	for _, component := range valueobject.AllComponents() {
		s := score.Component(component)
		if s == nil {
			if weights.Weight(component) > 0 {
				missing = append(missing, component)
			}
			continue
		}
		if lowestScore < 0 || *s < lowestScore {
			lowest = component
			lowestScore = *s
		}
	}

	var recs []Recommendation
	priority := 1
	if lowestScore >= 0 && lowestScore < 80 {
		recs = append(recs, Recommendation{
			Component: lowest,
			Priority:  priority,
			Message:   improvementMessage(lowest, lowestScore),
		})
		priority++
	}

	// Missing high-weight components keep the overall score from reflecting
	// the tenant's full profile; surface the heaviest two.
	for i, component := range missing {
		if i >= 2 {
			break
		}
		recs = append(recs, Recommendation{
			Component: component,
			Priority:  priority,
			Message:   missingDataMessage(component),
		})
		priority++
	}

	return recs
}

func statusFor(display int) ScoreStatus {
	switch {
	case display >= displayExcellent:
		return StatusExcellent
	case display >= displayGood:
		return StatusGood
	case display >= displayFair:
		return StatusFair
	default:
		return StatusNeedsImprovement
	}
}

func rateComponent(component valueobject.Component, score *int) ComponentRating {
	if score == nil {
		return ComponentRating{
			Component: component,
			Rating:    "not-scored",
			Note:      fmt.Sprintf("%s could not be evaluated", componentLabel(component)),
		}
	}

	var rating, note string
	switch {
	case *score >= 80:
		rating = "strong"
		note = fmt.Sprintf("%s is a strength of this profile", componentLabel(component))
	case *score >= 60:
		rating = "solid"
		note = fmt.Sprintf("%s is in good standing", componentLabel(component))
	case *score >= 40:
		rating = "fair"
		note = fmt.Sprintf("%s has room for improvement", componentLabel(component))
	default:
		rating = "weak"
		note = fmt.Sprintf("%s is holding the overall score back", componentLabel(component))
	}

	return ComponentRating{Component: component, Score: score, Rating: rating, Note: note}
}

func componentLabel(component valueobject.Component) string {
	switch component {
	case valueobject.ComponentCredit:
		return "credit standing"
	case valueobject.ComponentIncome:
		return "income-to-rent ratio"
	case valueobject.ComponentRentalHistory:
		return "rental history"
	case valueobject.ComponentEmployment:
		return "employment stability"
	case valueobject.ComponentIdentity:
		return "identity verification"
	case valueobject.ComponentReferences:
		return "references"
	case valueobject.ComponentApplicationQuality:
		return "application completeness"
	case valueobject.ComponentPaymentHistory:
		return "payment history"
	case valueobject.ComponentPromptness:
		return "payment promptness"
	case valueobject.ComponentEviction:
		return "eviction history"
	default:
		return string(component)
	}
}

func improvementMessage(component valueobject.Component, score int) string {
	switch component {
	case valueobject.ComponentCredit:
		return "Improving your credit score has the largest single impact on your rating. Pay down revolving balances and dispute reporting errors."
	case valueobject.ComponentIncome:
		return "Your income-to-rent ratio is low for the properties you are applying to. Consider listings with lower rent or document additional income sources."
	case valueobject.ComponentRentalHistory:
		return "Add and verify prior tenancies. Verified history with on-time payments lifts this component quickly."
	case valueobject.ComponentEmployment:
		return "Document your current employment and have it verified. Longer tenure with one employer raises this component."
	case valueobject.ComponentIdentity:
		return "Complete identity verification with your provider to remove this drag on your score."
	case valueobject.ComponentReferences:
		return "Add references, ideally a prior landlord, and ask them to complete verification."
	case valueobject.ComponentApplicationQuality:
		return "Fill in every application field: declared income, move-in date, a short note, and references."
	case valueobject.ComponentPaymentHistory:
		return "Recent missed or failed rent payments are weighing on this component. Consistent on-time payments recover it over time."
	case valueobject.ComponentPromptness:
		return "Paying rent on or before the due date raises this component; autopay helps."
	case valueobject.ComponentEviction:
		return "A past eviction weighs on your score. Its impact fades with time; verified positive tenancies since then help."
	default:
		return fmt.Sprintf("Improve %s (currently %d).", componentLabel(component), score)
	}
}

func missingDataMessage(component valueobject.Component) string {
	return fmt.Sprintf("No data was available for %s; providing it lets the score reflect your full profile.", componentLabel(component))
}
