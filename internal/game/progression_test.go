package game

import (
	"fmt"
	"testing"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{299, 1},
		{300, 2},
		{599, 2},
		{600, 3},
		{900, 3},
		{10000, 3},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.totalXP); got != tc.want {
			t.Fatalf("LevelForXP(%d) = %d, want %d", tc.totalXP, got, tc.want)
		}
	}
}

func TestApplyXPEventAddsScore(t *testing.T) {
	s := State{TotalXP: 100, Level: 1, Rank: "Beginner"}

	next := ApplyXPEvent(s, "Fractions", 50)
	if next.TotalXP != 150 {
		t.Fatalf("TotalXP = %d, want 150", next.TotalXP)
	}
	if next.Level != LevelForXP(next.TotalXP) {
		t.Fatalf("Level = %d, want %d", next.Level, LevelForXP(next.TotalXP))
	}

	// Zero and negative deltas pass through unclamped.
	next = ApplyXPEvent(s, "Fractions", 0)
	if next.TotalXP != 100 {
		t.Fatalf("TotalXP = %d, want 100", next.TotalXP)
	}
}

func TestApplyXPEventDedupesTopics(t *testing.T) {
	s := State{Rank: "Beginner", Topics: []string{"Fractions"}}

	next := ApplyXPEvent(s, "Fractions", 10)
	if len(next.Topics) != 1 {
		t.Fatalf("Topics = %v, want 1 entry", next.Topics)
	}

	next = ApplyXPEvent(next, "Decimals", 10)
	if len(next.Topics) != 2 {
		t.Fatalf("Topics = %v, want 2 entries", next.Topics)
	}
}

func TestApplyXPEventPromotesAtThreshold(t *testing.T) {
	s := State{Rank: "Beginner"}
	for i := 0; i < PromotionThreshold-1; i++ {
		s = ApplyXPEvent(s, fmt.Sprintf("topic-%d", i), 10)
	}
	if s.Rank != "Beginner" {
		t.Fatalf("Rank = %q before threshold, want Beginner", s.Rank)
	}
	if len(s.Topics) != PromotionThreshold-1 {
		t.Fatalf("Topics = %d, want %d", len(s.Topics), PromotionThreshold-1)
	}

	s = ApplyXPEvent(s, "topic-final", 10)
	if s.Rank != "Rare" {
		t.Fatalf("Rank = %q after threshold, want Rare", s.Rank)
	}
	if len(s.Topics) != 0 {
		t.Fatalf("Topics = %v after promotion, want empty", s.Topics)
	}
}

func TestApplyXPEventPromotesAtMostOncePerCall(t *testing.T) {
	topics := make([]string, PromotionThreshold+5)
	for i := range topics {
		topics[i] = fmt.Sprintf("topic-%d", i)
	}
	s := State{Rank: "Beginner", Topics: topics}

	next := ApplyXPEvent(s, "another", 10)
	if next.Rank != "Rare" {
		t.Fatalf("Rank = %q, want Rare", next.Rank)
	}
}

func TestApplyXPEventLegendaryDoesNotPromote(t *testing.T) {
	s := State{Rank: "Legendary"}
	for i := 0; i < PromotionThreshold; i++ {
		s = ApplyXPEvent(s, fmt.Sprintf("topic-%d", i), 10)
	}
	if s.Rank != "Legendary" {
		t.Fatalf("Rank = %q, want Legendary", s.Rank)
	}
	if len(s.Topics) != PromotionThreshold {
		t.Fatalf("Topics = %d, want %d (set is kept at the last rank)", len(s.Topics), PromotionThreshold)
	}
}

func TestApplyXPEventUnknownRankDoesNotPromote(t *testing.T) {
	s := State{Rank: "Mystery"}
	for i := 0; i < PromotionThreshold; i++ {
		s = ApplyXPEvent(s, fmt.Sprintf("topic-%d", i), 10)
	}
	if s.Rank != "Mystery" {
		t.Fatalf("Rank = %q, want Mystery", s.Rank)
	}
}

func TestApplyBonusOnlyTouchesXP(t *testing.T) {
	s := State{TotalXP: 250, Level: 1, Rank: "Epic", Topics: []string{"Algebra", "Geometry"}}

	next := ApplyBonus(s, 100)
	if next.TotalXP != 350 {
		t.Fatalf("TotalXP = %d, want 350", next.TotalXP)
	}
	// Level is intentionally stale until the next XP event.
	if next.Level != 1 {
		t.Fatalf("Level = %d, want 1", next.Level)
	}
	if next.Rank != "Epic" {
		t.Fatalf("Rank = %q, want Epic", next.Rank)
	}
	if len(next.Topics) != 2 {
		t.Fatalf("Topics = %v, want unchanged", next.Topics)
	}
}

func TestNextRank(t *testing.T) {
	for i := 0; i < len(Ranks)-1; i++ {
		got, ok := NextRank(Ranks[i])
		if !ok || got != Ranks[i+1] {
			t.Fatalf("NextRank(%q) = %q, %v; want %q, true", Ranks[i], got, ok, Ranks[i+1])
		}
	}
	if _, ok := NextRank("Legendary"); ok {
		t.Fatalf("NextRank(Legendary): expected ok=false")
	}
	if _, ok := NextRank("nope"); ok {
		t.Fatalf("NextRank(unknown): expected ok=false")
	}
}
