package report

// ColorTier buckets a group total for chart coloring
type ColorTier int

const (
	TierDefault ColorTier = iota
	TierGreen
	TierPurple
	TierBlue
	TierCyan
	TierYellow
	TierRed
)

var tierNames = [...]string{"default", "green", "purple", "blue", "cyan", "yellow", "red"}

func (t ColorTier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "default"
	}
	return tierNames[t]
}

// MarshalText encodes the tier as its color name
func (t ColorTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Tier maps a group total onto its color tier
func Tier(total int) ColorTier {
	switch {
	case total >= 100:
		return TierRed
	case total >= 75:
		return TierYellow
	case total >= 50:
		return TierCyan
	case total >= 25:
		return TierBlue
	case total >= 10:
		return TierPurple
	case total >= 5:
		return TierGreen
	default:
		return TierDefault
	}
}
