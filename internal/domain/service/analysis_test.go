package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func intPtr(v int) *int { return &v }

func storedScore(t *testing.T, overall, weightsApplied int, components model.ComponentScores) model.TenantScore {
	t.Helper()
	score, err := model.NewTenantScore(
		"tenant-001", overall, components,
		valueobject.ScoringMethodComprehensive, weightsApplied,
		model.ScoreBreakdown{Method: "COMPREHENSIVE", WeightsApplied: weightsApplied},
		scoringNow,
	)
	require.NoError(t, err)
	return score
}

func TestDisplayScore(t *testing.T) {
	cases := map[int]int{
		0:   300,
		50:  575,
		76:  718,
		80:  740,
		100: 850,
	}
	for canonical, want := range cases {
		assert.Equal(t, want, DisplayScore(canonical), "canonical %d", canonical)
	}
}

func TestAnalyze(t *testing.T) {
	analyzer := NewScoreAnalyzer()

	t.Run("status bands on the display scale", func(t *testing.T) {
		cases := []struct {
			overall int
			want    ScoreStatus
		}{
			{80, StatusExcellent},        // display 740
			{70, StatusGood},             // display 685
			{55, StatusFair},             // display 602
			{40, StatusNeedsImprovement}, // display 520
		}
		for _, tc := range cases {
			a := analyzer.Analyze(storedScore(t, tc.overall, 100, nil))
			assert.Equal(t, tc.want, a.Status, "overall %d", tc.overall)
		}
	})

	t.Run("defaulted flag follows weights applied", func(t *testing.T) {
		a := analyzer.Analyze(storedScore(t, NeutralScore, 0, nil))

		assert.True(t, a.Defaulted)
		assert.Equal(t, 575, a.DisplayScore)
	})

	t.Run("components are graded in stable order", func(t *testing.T) {
		components := model.ComponentScores{
			valueobject.ComponentCredit:   intPtr(85),
			valueobject.ComponentIncome:   intPtr(65),
			valueobject.ComponentIdentity: intPtr(45),
			valueobject.ComponentEviction: intPtr(20),
		}
		a := analyzer.Analyze(storedScore(t, 60, 56, components))

		require.Len(t, a.Components, len(valueobject.AllComponents()))
		byComponent := make(map[valueobject.Component]ComponentRating)
		for i, rating := range a.Components {
			assert.Equal(t, valueobject.AllComponents()[i], rating.Component)
			byComponent[rating.Component] = rating
		}
		assert.Equal(t, "strong", byComponent[valueobject.ComponentCredit].Rating)
		assert.Equal(t, "solid", byComponent[valueobject.ComponentIncome].Rating)
		assert.Equal(t, "fair", byComponent[valueobject.ComponentIdentity].Rating)
		assert.Equal(t, "weak", byComponent[valueobject.ComponentEviction].Rating)
		assert.Equal(t, "not-scored", byComponent[valueobject.ComponentReferences].Rating)
	})
}

func TestRecommend(t *testing.T) {
	analyzer := NewScoreAnalyzer()

	t.Run("lowest weak component leads, then missing data", func(t *testing.T) {
		components := model.ComponentScores{
			valueobject.ComponentCredit:   intPtr(55),
			valueobject.ComponentIncome:   intPtr(90),
			valueobject.ComponentEviction: intPtr(70),
		}
		recs := analyzer.Recommend(storedScore(t, 65, 52, components))

		require.NotEmpty(t, recs)
		assert.Equal(t, valueobject.ComponentCredit, recs[0].Component)
		assert.Equal(t, 1, recs[0].Priority)

		// The remaining recommendations surface missing weighted components
		// in their canonical order, capped at two.
		require.Len(t, recs, 3)
		assert.Equal(t, valueobject.ComponentRentalHistory, recs[1].Component)
		assert.Equal(t, 2, recs[1].Priority)
		assert.Equal(t, valueobject.ComponentEmployment, recs[2].Component)
	})

	t.Run("a uniformly strong profile yields no recommendations", func(t *testing.T) {
		components := model.ComponentScores{}
		for _, component := range valueobject.AllComponents() {
			components[component] = intPtr(90)
		}
		recs := analyzer.Recommend(storedScore(t, 90, 100, components))

		assert.Empty(t, recs)
	})

	t.Run("fully defaulted score asks for the heaviest missing data", func(t *testing.T) {
		recs := analyzer.Recommend(storedScore(t, NeutralScore, 0, nil))

		require.Len(t, recs, 2)
		assert.Equal(t, valueobject.ComponentCredit, recs[0].Component)
		assert.Equal(t, valueobject.ComponentIncome, recs[1].Component)
	})
}
