// Package badge resolves cumulative point totals to badge tiers. TierFor is
// the single source of truth for a user's badge: persisted badges must always
// equal TierFor(points).
package badge

import "talenttrack/internal/domain/entity"

// Tier lower bounds, ascending. A total qualifies for the highest tier whose
// lower bound it has reached; below the Silver bound everyone is Bronze.
const (
	SilverThreshold   = 50
	GoldThreshold     = 100
	PlatinumThreshold = 200

	// MaxThreshold is where tier progress tops out; beyond it there is
	// nothing left to earn.
	MaxThreshold = 500
)

// TierFor maps a cumulative point total to its badge tier.
func TierFor(points int) entity.Badge {
	switch {
	case points >= PlatinumThreshold:
		return entity.BadgePlatinum
	case points >= GoldThreshold:
		return entity.BadgeGold
	case points >= SilverThreshold:
		return entity.BadgeSilver
	default:
		return entity.BadgeBronze
	}
}

// Progress describes how far a total is toward the next tier bound.
type Progress struct {
	ProgressPercent int           `json:"progressPercent"`
	NextTier        *entity.Badge `json:"nextTier"`
	PointsNeeded    int           `json:"pointsNeeded"`
}

// ProgressToNext computes linear progress between the current tier's lower
// bound and the next bound. Platinum interpolates toward MaxThreshold and
// keeps Platinum as the displayed target, so NextTier is nil exactly when
// PointsNeeded is zero.
func ProgressToNext(points int) Progress {
	if points >= MaxThreshold {
		return Progress{ProgressPercent: 100}
	}

	lower, upper := 0, SilverThreshold
	var next *entity.Badge

	switch {
	case points >= PlatinumThreshold:
		lower, upper = PlatinumThreshold, MaxThreshold
		next = badgePtr(entity.BadgePlatinum)
	case points >= GoldThreshold:
		lower, upper = GoldThreshold, PlatinumThreshold
		next = badgePtr(entity.BadgePlatinum)
	case points >= SilverThreshold:
		lower, upper = SilverThreshold, GoldThreshold
		next = badgePtr(entity.BadgeGold)
	default:
		next = badgePtr(entity.BadgeSilver)
	}

	percent := (points - lower) * 100 / (upper - lower)

	return Progress{
		ProgressPercent: percent,
		NextTier:        next,
		PointsNeeded:    upper - points,
	}
}

func badgePtr(b entity.Badge) *entity.Badge {
	return &b
}
