package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func TestWeightProfiles(t *testing.T) {
	t.Run("every profile sums to 100", func(t *testing.T) {
		assert.Equal(t, 100, comprehensiveWeights.Total())
		assert.Equal(t, 100, basicWeights.Total())
		assert.Equal(t, 100, creditOnlyWeights.Total())
	})

	t.Run("comprehensive covers all ten components", func(t *testing.T) {
		for _, component := range valueobject.AllComponents() {
			assert.Positive(t, comprehensiveWeights.Weight(component), "component %s", component)
		}
	})

	t.Run("basic keeps only the four core components", func(t *testing.T) {
		assert.Equal(t, 35, basicWeights.Weight(valueobject.ComponentCredit))
		assert.Equal(t, 30, basicWeights.Weight(valueobject.ComponentIncome))
		assert.Equal(t, 20, basicWeights.Weight(valueobject.ComponentRentalHistory))
		assert.Equal(t, 15, basicWeights.Weight(valueobject.ComponentPaymentHistory))
		assert.Zero(t, basicWeights.Weight(valueobject.ComponentEmployment))
		assert.Zero(t, basicWeights.Weight(valueobject.ComponentEviction))
	})
}

func TestWeightsFor(t *testing.T) {
	cases := []struct {
		method valueobject.ScoringMethod
		want   WeightProfile
	}{
		{valueobject.ScoringMethodComprehensive, comprehensiveWeights},
		{valueobject.ScoringMethodBasic, basicWeights},
		{valueobject.ScoringMethodCreditOnly, creditOnlyWeights},
		{valueobject.ScoringMethod{}, comprehensiveWeights},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeightsFor(tc.method), "method %q", tc.method.String())
	}
}
