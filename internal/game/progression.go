// Package game holds the progression rules: XP accrual, level derivation,
// rank promotion, and per-rank topic deduplication. It is pure logic; the
// caller loads and persists the user record.
package game

// Ranks in promotion order. A user's rank index only ever increases.
var Ranks = []string{"Beginner", "Rare", "Epic", "Mythic", "Legendary"}

const (
	// MaxLevel caps the derived level regardless of XP.
	MaxLevel = 3
	// XPPerLevel is the XP span of one level.
	XPPerLevel = 300
	// PromotionThreshold is the distinct-topic count that triggers a rank
	// promotion.
	PromotionThreshold = 10
)

// State is the progress slice of a user record.
type State struct {
	TotalXP int
	Level   int
	Rank    string
	Topics  []string
}

// LevelForXP derives the level from total XP: min(3, 1 + totalXP/300).
func LevelForXP(totalXP int) int {
	level := 1 + totalXP/XPPerLevel
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

func rankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// NextRank returns the rank after the given one. ok is false when the rank
// is already the last one or is not a known rank.
func NextRank(rank string) (string, bool) {
	i := rankIndex(rank)
	if i < 0 || i >= len(Ranks)-1 {
		return rank, false
	}
	return Ranks[i+1], true
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

// ApplyXPEvent applies one XP-earning event. Score is added as-is (no
// clamping), the topic joins the rank's set if new, a promotion fires when
// the set reaches the threshold and a next rank exists, and the level is
// recomputed last. Rank advances at most once per call.
func ApplyXPEvent(s State, topic string, score int) State {
	next := State{
		TotalXP: s.TotalXP + score,
		Rank:    s.Rank,
	}

	topics := make([]string, len(s.Topics), len(s.Topics)+1)
	copy(topics, s.Topics)
	if !containsTopic(topics, topic) {
		topics = append(topics, topic)
	}

	if len(topics) >= PromotionThreshold {
		if promoted, ok := NextRank(next.Rank); ok {
			next.Rank = promoted
			topics = []string{}
		}
	}

	next.Topics = topics
	next.Level = LevelForXP(next.TotalXP)
	return next
}

// ApplyBonus adds score to total XP and nothing else. The level is left as
// stored: the legacy backend skips the recomputation on this path, and the
// next XP event folds the bonus into the level.
func ApplyBonus(s State, score int) State {
	next := s
	next.TotalXP += score
	topics := make([]string, len(s.Topics))
	copy(topics, s.Topics)
	next.Topics = topics
	return next
}
