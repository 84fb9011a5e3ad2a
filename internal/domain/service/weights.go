package service

import "github.com/leaselab/screening-service/internal/domain/valueobject"

// WeightProfile maps each component to its integer weight in the aggregate.
// Components absent from a profile carry zero weight.
type WeightProfile map[valueobject.Component]int

// Fixed weight tables. The comprehensive profile sums to 100; the narrower
// profiles redistribute weight over the components they keep.
var (
	comprehensiveWeights = WeightProfile{
		valueobject.ComponentCredit:             25,
		valueobject.ComponentIncome:             20,
		valueobject.ComponentRentalHistory:      15,
		valueobject.ComponentPaymentHistory:     10,
		valueobject.ComponentEmployment:         8,
		valueobject.ComponentEviction:           7,
		valueobject.ComponentReferences:         5,
		valueobject.ComponentIdentity:           4,
		valueobject.ComponentApplicationQuality: 3,
		valueobject.ComponentPromptness:         3,
	}

	basicWeights = WeightProfile{
		valueobject.ComponentCredit:         35,
		valueobject.ComponentIncome:         30,
		valueobject.ComponentRentalHistory:  20,
		valueobject.ComponentPaymentHistory: 15,
	}

	creditOnlyWeights = WeightProfile{
		valueobject.ComponentCredit: 100,
	}
)

// WeightsFor returns the weight profile for a scoring method. Unknown methods
// dispatch to the comprehensive profile, mirroring ParseScoringMethod.
func WeightsFor(method valueobject.ScoringMethod) WeightProfile {
	switch method {
	case valueobject.ScoringMethodBasic:
		return basicWeights
	case valueobject.ScoringMethodCreditOnly:
		return creditOnlyWeights
	default:
		return comprehensiveWeights
	}
}

// Weight returns one component's weight under the profile.
func (w WeightProfile) Weight(c valueobject.Component) int { return w[c] }

// Total sums every weight in the profile.
func (w WeightProfile) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}
