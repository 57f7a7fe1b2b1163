package score

type Badge string

const (
	BadgeLearner Badge = "Water Learner"
	BadgeSaver   Badge = "Water Saver"
	BadgeGuru    Badge = "Water Guru"
)

const (
	SaverThreshold = 5
	GuruThreshold  = 8
)

// AssignBadge maps a score to its tier. The tiers partition every
// non-negative score: [0,5) learner, [5,8) saver, [8,∞) guru.
func AssignBadge(score int) Badge {
	switch {
	case score >= GuruThreshold:
		return BadgeGuru
	case score >= SaverThreshold:
		return BadgeSaver
	default:
		return BadgeLearner
	}
}

// Rank orders badges by prestige, 0 being the lowest tier.
func (b Badge) Rank() int {
	switch b {
	case BadgeGuru:
		return 2
	case BadgeSaver:
		return 1
	default:
		return 0
	}
}
