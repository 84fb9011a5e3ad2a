package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func TestAggregateResults(t *testing.T) {
	t.Run("weighted average over the computed components only", func(t *testing.T) {
		byComponent := map[valueobject.Component]valueobject.ComponentResult{
			valueobject.ComponentCredit: valueobject.ComputedResult(valueobject.ComponentCredit, 72),
			valueobject.ComponentIncome: valueobject.ComputedResult(valueobject.ComponentIncome, 80),
		}

		out := aggregateResults("tenant-001", valueobject.ScoringMethodComprehensive, byComponent)

		// (72*25 + 80*20) / (25+20) = 3400/45 = 75.55 rounded to 76
		assert.Equal(t, 76, out.OverallScore)
		assert.Equal(t, 45, out.WeightsApplied)
		assert.Equal(t, "COMPREHENSIVE", out.Breakdown.Method)
	})

	t.Run("no computed components falls back to the neutral default", func(t *testing.T) {
		out := aggregateResults("tenant-001", valueobject.ScoringMethodComprehensive, nil)

		assert.Equal(t, NeutralScore, out.OverallScore)
		assert.Equal(t, 0, out.WeightsApplied)
		for _, component := range valueobject.AllComponents() {
			assert.Nil(t, out.Components[component])
		}
	})

	t.Run("failed components are excluded like unavailable ones", func(t *testing.T) {
		byComponent := map[valueobject.Component]valueobject.ComponentResult{
			valueobject.ComponentCredit: valueobject.FailedResult(valueobject.ComponentCredit, fmt.Errorf("bureau timeout")),
			valueobject.ComponentIncome: valueobject.ComputedResult(valueobject.ComponentIncome, 80),
		}

		out := aggregateResults("tenant-001", valueobject.ScoringMethodComprehensive, byComponent)

		assert.Equal(t, 80, out.OverallScore)
		assert.Equal(t, 20, out.WeightsApplied)
		assert.Nil(t, out.Components[valueobject.ComponentCredit])
	})

	t.Run("zero-weight components never move the average", func(t *testing.T) {
		byComponent := map[valueobject.Component]valueobject.ComponentResult{
			valueobject.ComponentCredit:   valueobject.ComputedResult(valueobject.ComponentCredit, 70),
			valueobject.ComponentIdentity: valueobject.ComputedResult(valueobject.ComponentIdentity, 0),
		}

		out := aggregateResults("tenant-001", valueobject.ScoringMethodCreditOnly, byComponent)

		assert.Equal(t, 70, out.OverallScore)
		assert.Equal(t, 100, out.WeightsApplied)
		// The identity score is still reported in the breakdown.
		require.NotNil(t, out.Components[valueobject.ComponentIdentity])
		assert.Equal(t, 0, *out.Components[valueobject.ComponentIdentity])
	})

	t.Run("breakdown covers every component in stable order", func(t *testing.T) {
		out := aggregateResults("tenant-001", valueobject.ScoringMethodBasic, nil)

		require.Len(t, out.Breakdown.Components, len(valueobject.AllComponents()))
		for i, component := range valueobject.AllComponents() {
			assert.Equal(t, component, out.Breakdown.Components[i].Component)
			assert.Equal(t, valueobject.OutcomeUnavailable, out.Breakdown.Components[i].Outcome)
		}
	})
}

func TestCalculateTenantScore(t *testing.T) {
	t.Run("requires a tenant ID", func(t *testing.T) {
		engine, _ := newTestEngine()

		_, err := engine.CalculateTenantScore(context.Background(), ScoreInput{})

		assert.Error(t, err)
	})

	t.Run("tenant with no data at all gets the neutral default", func(t *testing.T) {
		engine, _ := newTestEngine()

		out, err := engine.CalculateTenantScore(context.Background(), ScoreInput{TenantID: "tenant-001"})

		require.NoError(t, err)
		// Eviction still computes (neutral 70 with no rental history), so
		// the score is its weighted value rather than the global default.
		assert.Equal(t, 70, out.OverallScore)
		assert.Equal(t, 7, out.WeightsApplied)
		assert.Equal(t, valueobject.ScoringMethodComprehensive, out.Method)
	})

	t.Run("resolves rent through the application's property", func(t *testing.T) {
		engine, m := newTestEngine()
		app, err := model.NewApplication("tenant-001", "prop-001", 450000, nil, "", 0, scoringNow)
		require.NoError(t, err)
		m.applications.findByIDFunc = func(_ context.Context, _ string) (model.Application, error) {
			return app, nil
		}
		m.properties.findByIDFunc = func(_ context.Context, id string) (model.Property, error) {
			require.Equal(t, "prop-001", id)
			return model.Property{ID: id, MonthlyRent: 150000}, nil
		}

		out, err := engine.CalculateTenantScore(context.Background(), ScoreInput{
			TenantID:      "tenant-001",
			ApplicationID: "app-001",
		})

		require.NoError(t, err)
		// Income resolves to 4500 against rent 1500, ratio 3.0.
		require.NotNil(t, out.Components[valueobject.ComponentIncome])
		assert.Equal(t, 90, *out.Components[valueobject.ComponentIncome])
	})

	t.Run("fails when the referenced property cannot be loaded", func(t *testing.T) {
		engine, m := newTestEngine()
		m.properties.findByIDFunc = func(_ context.Context, _ string) (model.Property, error) {
			return model.Property{}, fmt.Errorf("connection reset")
		}

		_, err := engine.CalculateTenantScore(context.Background(), ScoreInput{
			TenantID:   "tenant-001",
			PropertyID: "prop-001",
		})

		assert.Error(t, err)
	})

	t.Run("higher credit never lowers the overall score", func(t *testing.T) {
		scoreWith := func(raw int) int {
			engine, m := newTestEngine()
			m.creditChecks.findLatestFunc = func(_ context.Context, _ string) (model.CreditCheck, error) {
				return model.CreditCheck{Score: raw, Status: valueobject.CreditCheckCompleted}, nil
			}
			out, err := engine.CalculateTenantScore(context.Background(), ScoreInput{
				TenantID:    "tenant-001",
				MonthlyRent: 150000,
			})
			require.NoError(t, err)
			return out.OverallScore
		}

		low := scoreWith(600)
		high := scoreWith(750)
		assert.GreaterOrEqual(t, high, low)
	})

	t.Run("unknown method defaults to comprehensive", func(t *testing.T) {
		engine, _ := newTestEngine()

		out, err := engine.CalculateTenantScore(context.Background(), ScoreInput{TenantID: "tenant-001"})

		require.NoError(t, err)
		assert.Equal(t, valueobject.ScoringMethodComprehensive, out.Method)
	})

	t.Run("credit-only method ignores everything else", func(t *testing.T) {
		engine, m := newTestEngine()
		m.creditChecks.findLatestFunc = func(_ context.Context, _ string) (model.CreditCheck, error) {
			return model.CreditCheck{Score: 720, Status: valueobject.CreditCheckCompleted}, nil
		}
		m.users.findByIDFunc = func(_ context.Context, _ string) (model.User, error) {
			return model.User{
				VerificationStatus: valueobject.VerificationVerified,
				MonthlyIncome:      450000,
			}, nil
		}

		out, err := engine.CalculateTenantScore(context.Background(), ScoreInput{
			TenantID:    "tenant-001",
			MonthlyRent: 150000,
			Method:      valueobject.ScoringMethodCreditOnly,
		})

		require.NoError(t, err)
		assert.Equal(t, 70, out.OverallScore)
		assert.Equal(t, 100, out.WeightsApplied)
	})
}
