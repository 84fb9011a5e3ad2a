package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// strongScoreThreshold is the canonical score above which a listing is
// recommended even without income data.
const strongScoreThreshold = 70

// RecommendPropertiesUseCase suggests available listings a tenant is likely
// to be approved for, based on declared income and the latest active score.
type RecommendPropertiesUseCase struct {
	properties port.PropertyRepository
	users      port.UserRepository
	scores     port.TenantScoreRepository
}

// NewRecommendPropertiesUseCase wires dependencies.
func NewRecommendPropertiesUseCase(
	properties port.PropertyRepository,
	users port.UserRepository,
	scores port.TenantScoreRepository,
) *RecommendPropertiesUseCase {
	return &RecommendPropertiesUseCase{properties: properties, users: users, scores: scores}
}

// Execute filters available listings by affordability. A listing is
// affordable when rent is at most one third of the tenant's monthly income;
// with no income on file, a strong score still earns recommendations.
func (uc *RecommendPropertiesUseCase) Execute(ctx context.Context, tenantID string) ([]dto.PropertyRecommendationResponse, error) {
	user, err := uc.users.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant %s: %w", tenantID, err)
	}

	overall := service.NeutralScore
	score, err := uc.scores.FindLatestActive(ctx, tenantID)
	switch {
	case err == nil:
		overall = score.OverallScore()
	case !errors.Is(err, valueobject.ErrNotFound):
		return nil, fmt.Errorf("lookup score: %w", err)
	}

	available, err := uc.properties.FindByStatus(ctx, string(valueobject.PropertyAvailable))
	if err != nil {
		return nil, fmt.Errorf("list available properties: %w", err)
	}

	recommendations := make([]dto.PropertyRecommendationResponse, 0, len(available))
	for _, property := range available {
		switch {
		case user.MonthlyIncome > 0 && user.MonthlyIncome >= 3*property.MonthlyRent:
			recommendations = append(recommendations, dto.PropertyRecommendationResponse{
				Property: toPropertyResponse(property),
				Reason:   "rent fits within one third of your monthly income",
			})
		case user.MonthlyIncome == 0 && overall >= strongScoreThreshold:
			recommendations = append(recommendations, dto.PropertyRecommendationResponse{
				Property: toPropertyResponse(property),
				Reason:   "your screening score qualifies you for this listing",
			})
		}
	}
	return recommendations, nil
}
