package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ScreeningHandler exposes the scoring operations over gRPC. It is the
// gateway-facing mirror of the scoring REST endpoints.
type ScreeningHandler struct {
	UnimplementedScreeningServiceServer

	calculate    *usecase.CalculateTenantScoreUseCase
	getScore     *usecase.GetTenantScoreUseCase
	analyze      *usecase.AnalyzeTenantScoreUseCase
	improvements *usecase.GetScoreImprovementsUseCase
}

// NewScreeningHandler creates a new handler with all use-case dependencies.
func NewScreeningHandler(
	calculate *usecase.CalculateTenantScoreUseCase,
	getScore *usecase.GetTenantScoreUseCase,
	analyze *usecase.AnalyzeTenantScoreUseCase,
	improvements *usecase.GetScoreImprovementsUseCase,
) *ScreeningHandler {
	return &ScreeningHandler{
		calculate:    calculate,
		getScore:     getScore,
		analyze:      analyze,
		improvements: improvements,
	}
}

// CalculateScore runs the scoring engine and persists the result.
func (h *ScreeningHandler) CalculateScore(ctx context.Context, req *CalculateScoreRequest) (*ScoreResponse, error) {
	resp, err := h.calculate.Execute(ctx, dto.CalculateScoreRequest{
		TenantID:         req.TenantID,
		PropertyID:       req.PropertyID,
		ApplicationID:    req.ApplicationID,
		MonthlyRentCents: req.MonthlyRentCents,
		ScoringMethod:    req.ScoringMethod,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ScoreResponse{Score: resp}, nil
}

// GetScore returns the tenant's latest active score, bootstrapping a default
// when none exists.
func (h *ScreeningHandler) GetScore(ctx context.Context, req *GetScoreRequest) (*ScoreResponse, error) {
	resp, err := h.getScore.Execute(ctx, req.TenantID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ScoreResponse{Score: resp}, nil
}

// GetScoreAnalysis returns the graded analysis of the tenant's latest score
// together with improvement recommendations.
func (h *ScreeningHandler) GetScoreAnalysis(ctx context.Context, req *GetScoreAnalysisRequest) (*ScoreAnalysisResponse, error) {
	analysis, err := h.analyze.Execute(ctx, req.TenantID)
	if err != nil {
		return nil, toStatusError(err)
	}
	recs, err := h.improvements.Execute(ctx, req.TenantID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ScoreAnalysisResponse{Analysis: analysis, Recommendations: recs}, nil
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.InvalidArgument, err.Error())
	}
}
