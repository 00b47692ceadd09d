package ranking

// Tier classifies a rank position into one of the three display bands.
type Tier string

const (
	TierHeaven Tier = "heaven" // ranks 1-10
	TierEarth  Tier = "earth"  // ranks 11-20
	TierHuman  Tier = "human"  // ranks 21-30
	TierNone   Tier = ""       // out of range
)

var ordinals = [10]string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

var tierPrefixes = map[Tier]string{
	TierHeaven: "天榜第",
	TierEarth:  "地榜第",
	TierHuman:  "人榜第",
}

// TierFor returns the tier a rank position belongs to, or TierNone when the
// position is outside 1-30.
func TierFor(rank int) Tier {
	switch {
	case rank >= 1 && rank <= 10:
		return TierHeaven
	case rank >= 11 && rank <= 20:
		return TierEarth
	case rank >= 21 && rank <= 30:
		return TierHuman
	default:
		return TierNone
	}
}

// Title returns the user-visible title for a rank position, composed from
// the tier prefix and the Chinese ordinal within the tier. Positions outside
// 1-30 have no title.
func Title(rank int) string {
	tier := TierFor(rank)
	if tier == TierNone {
		return ""
	}
	return tierPrefixes[tier] + ordinals[(rank-1)%10]
}
