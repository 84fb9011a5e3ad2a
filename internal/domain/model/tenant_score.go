package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// TenantScore aggregate root
// ---------------------------------------------------------------------------

// ComponentScores holds the ten nullable component scores of one computation.
// A nil entry means the component was excluded from the weighted average.
type ComponentScores map[valueobject.Component]*int

// ComponentBreakdown records how one component entered (or was excluded from)
// the weighted average, for audit and explainability.
type ComponentBreakdown struct {
	Component valueobject.Component        `json:"component"`
	Outcome   valueobject.ComponentOutcome `json:"outcome"`
	Score     *int                         `json:"score,omitempty"`
	Weight    int                          `json:"weight"`
	Reason    string                       `json:"reason,omitempty"`
}

// ScoreBreakdown is the serialized audit record attached to every score.
type ScoreBreakdown struct {
	Method         string               `json:"method"`
	WeightsApplied int                  `json:"weights_applied"`
	Components     []ComponentBreakdown `json:"components"`
}

// TenantScore is a computed suitability record. It is immutable after
// creation except for the active flag, which supersedes it with a newer
// computation.
type TenantScore struct {
	id             string
	tenantID       string
	overallScore   int // canonical 0-100
	components     ComponentScores
	method         valueobject.ScoringMethod
	weightsApplied int
	breakdown      ScoreBreakdown
	active         bool
	createdAt      time.Time
}

// NewTenantScore creates a freshly computed, active score record.
func NewTenantScore(
	tenantID string,
	overall int,
	components ComponentScores,
	method valueobject.ScoringMethod,
	weightsApplied int,
	breakdown ScoreBreakdown,
	now time.Time,
) (TenantScore, error) {
	if tenantID == "" {
		return TenantScore{}, errors.New("tenant ID is required")
	}
	if overall < 0 || overall > 100 {
		return TenantScore{}, errors.New("overall score must be in [0,100]")
	}
	if method.IsZero() {
		return TenantScore{}, errors.New("scoring method is required")
	}
	if weightsApplied < 0 {
		return TenantScore{}, errors.New("weights applied must not be negative")
	}
	for c, s := range components {
		if s != nil && (*s < 0 || *s > 100) {
			return TenantScore{}, errors.New("component score out of range: " + string(c))
		}
	}

	return TenantScore{
		id:             uuid.New().String(),
		tenantID:       tenantID,
		overallScore:   overall,
		components:     cloneComponents(components),
		method:         method,
		weightsApplied: weightsApplied,
		breakdown:      breakdown,
		active:         true,
		createdAt:      now,
	}, nil
}

// ReconstructTenantScore rebuilds a score from persistence without validation
// side-effects.
func ReconstructTenantScore(
	id, tenantID string,
	overall int,
	components ComponentScores,
	method valueobject.ScoringMethod,
	weightsApplied int,
	breakdown ScoreBreakdown,
	active bool,
	createdAt time.Time,
) TenantScore {
	return TenantScore{
		id:             id,
		tenantID:       tenantID,
		overallScore:   overall,
		components:     cloneComponents(components),
		method:         method,
		weightsApplied: weightsApplied,
		breakdown:      breakdown,
		active:         active,
		createdAt:      createdAt,
	}
}

// Deactivate returns a superseded copy with the active flag cleared.
func (s TenantScore) Deactivate() TenantScore {
	next := s
	next.active = false
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s TenantScore) ID() string                        { return s.id }
func (s TenantScore) TenantID() string                  { return s.tenantID }
func (s TenantScore) OverallScore() int                 { return s.overallScore }
func (s TenantScore) Method() valueobject.ScoringMethod { return s.method }
func (s TenantScore) WeightsApplied() int               { return s.weightsApplied }
func (s TenantScore) Breakdown() ScoreBreakdown         { return s.breakdown }
func (s TenantScore) Active() bool                      { return s.active }
func (s TenantScore) CreatedAt() time.Time              { return s.createdAt }

// Components returns a copy of the component score map.
func (s TenantScore) Components() ComponentScores { return cloneComponents(s.components) }

// Component returns one component score, nil when it was not computed.
func (s TenantScore) Component(c valueobject.Component) *int {
	v, ok := s.components[c]
	if !ok || v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func cloneComponents(src ComponentScores) ComponentScores {
	dst := make(ComponentScores, len(src))
	for c, s := range src {
		if s == nil {
			dst[c] = nil
			continue
		}
		cp := *s
		dst[c] = &cp
	}
	return dst
}
