//go:build unit

package loyalty_test

import (
	"testing"

	"hotelhub/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestStandingForPoints(t *testing.T) {
	tests := []struct {
		name         string
		points       int
		wantTier     loyalty.Tier
		wantToNext   int
		wantNextTier *loyalty.Tier
	}{
		{"fresh account", 0, loyalty.TierBronze, 500, tierPtr(loyalty.TierSilver)},
		{"just below silver", 499, loyalty.TierBronze, 1, tierPtr(loyalty.TierSilver)},
		{"exactly silver", 500, loyalty.TierSilver, 500, tierPtr(loyalty.TierGold)},
		{"mid gold", 1200, loyalty.TierGold, 800, tierPtr(loyalty.TierPlatine)},
		{"just below platine", 1999, loyalty.TierGold, 1, tierPtr(loyalty.TierPlatine)},
		{"exactly platine", 2000, loyalty.TierPlatine, 0, nil},
		{"far past platine", 9000, loyalty.TierPlatine, 0, nil},
		{"negative balance clamps to zero", -50, loyalty.TierBronze, 500, tierPtr(loyalty.TierSilver)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loyalty.StandingForPoints(tt.points)
			assert.Equal(t, tt.wantTier, s.Tier)
			assert.Equal(t, tt.wantToNext, s.PointsToNext)
			assert.Equal(t, tt.wantNextTier, s.NextTier)
		})
	}
}

func tierPtr(t loyalty.Tier) *loyalty.Tier {
	return &t
}
