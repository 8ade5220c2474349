// Package loyalty maps accumulated points to a named tier. Thresholds are
// shared by every caller so the customer profile, admin user list and
// receipts never disagree on a guest's standing.
package loyalty

type Tier string

const (
	TierBronze  Tier = "BRONZE"
	TierSilver  Tier = "SILVER"
	TierGold    Tier = "GOLD"
	TierPlatine Tier = "PLATINE"
)

// Lower bound of each tier, in points.
const (
	SilverThreshold  = 500
	GoldThreshold    = 1000
	PlatineThreshold = 2000
)

func (t Tier) String() string {
	return string(t)
}

// Standing is the derived loyalty position for a points balance.
// PointsToNext is 0 and NextTier nil at the top tier.
type Standing struct {
	Tier         Tier
	Points       int
	PointsToNext int
	NextTier     *Tier
}

func StandingForPoints(points int) Standing {
	if points < 0 {
		points = 0
	}

	switch {
	case points < SilverThreshold:
		next := TierSilver
		return Standing{Tier: TierBronze, Points: points, PointsToNext: SilverThreshold - points, NextTier: &next}
	case points < GoldThreshold:
		next := TierGold
		return Standing{Tier: TierSilver, Points: points, PointsToNext: GoldThreshold - points, NextTier: &next}
	case points < PlatineThreshold:
		next := TierPlatine
		return Standing{Tier: TierGold, Points: points, PointsToNext: PlatineThreshold - points, NextTier: &next}
	default:
		return Standing{Tier: TierPlatine, Points: points, PointsToNext: 0, NextTier: nil}
	}
}
