package npc

import (
	"math/rand"
	"testing"

	"github.com/talgya/cover-life/internal/catalog"
)

func TestAddRelationshipPointsRatchet(t *testing.T) {
	n := &NPC{Relationship: 5}

	// Stranger at 5 gaining +20 crosses to 25 and locks.
	if got := AddRelationshipPoints(n, 20); got != 25 {
		t.Fatalf("score = %d, want 25", got)
	}
	if !n.MinAcquaintanceLocked {
		t.Fatal("crossing the threshold should set the lock")
	}

	// A -30 swing pins at the floor and sets the enemy badge.
	if got := AddRelationshipPoints(n, -30); got != AcquaintedThreshold {
		t.Fatalf("score = %d, want %d", got, AcquaintedThreshold)
	}
	if !n.EnemyBadge {
		t.Fatal("dropping through the floor should set the enemy badge")
	}
}

func TestAddRelationshipPointsBeforeLock(t *testing.T) {
	n := &NPC{Relationship: 5}
	if got := AddRelationshipPoints(n, -10); got != 0 {
		t.Fatalf("unlocked score should clamp at 0, got %d", got)
	}
	if n.EnemyBadge {
		t.Fatal("no enemy badge before the acquainted lock")
	}
}

func TestAddRelationshipPointsUpperBound(t *testing.T) {
	n := &NPC{Relationship: 95, MinAcquaintanceLocked: true}
	if got := AddRelationshipPoints(n, 20); got != RelationshipMax {
		t.Fatalf("score = %d, want %d", got, RelationshipMax)
	}
}

func TestGenerateBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		n := g.Generate(0)
		if n.FSkill < 100 || n.FSkill > 1000 {
			t.Fatalf("fSkill out of range: %d", n.FSkill)
		}
		if n.MSkill < 100 || n.MSkill > 1000 {
			t.Fatalf("mSkill out of range: %d", n.MSkill)
		}
		if n.Popularity < 0 || n.Popularity > 500 {
			t.Fatalf("popularity out of range: %d", n.Popularity)
		}
		if n.Reputation < -500 || n.Reputation > 500 {
			t.Fatalf("reputation out of range: %d", n.Reputation)
		}
		if n.BirthMonth < 1 || n.BirthMonth > 12 {
			t.Fatalf("birth month out of range: %d", n.BirthMonth)
		}
		if !n.Active {
			t.Fatal("generated NPC should be active")
		}
	}
}

func TestGenerateGenderSplit(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	female := 0
	const total = 1000
	for i := 0; i < total; i++ {
		if g.Generate(0).Gender == GenderFemale {
			female++
		}
	}
	// 90% female with generous slack for the seed.
	if female < 850 || female > 950 {
		t.Fatalf("female count = %d of %d, expected near 900", female, total)
	}
}

func TestApplyMonthlyGrowthClamps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := &NPC{BehaviorModel: ModelWildcard, FSkill: 990, MSkill: 5, Popularity: 990, Reputation: -990}
	for i := 0; i < 50; i++ {
		ApplyMonthlyGrowth(n, rng)
		if n.FSkill < 0 || n.FSkill > 1000 || n.MSkill < 0 || n.MSkill > 1000 {
			t.Fatalf("skill out of bounds: f=%d m=%d", n.FSkill, n.MSkill)
		}
		if n.Popularity < 0 || n.Popularity > 1000 {
			t.Fatalf("popularity out of bounds: %d", n.Popularity)
		}
		if n.Reputation < -1000 || n.Reputation > 1000 {
			t.Fatalf("reputation out of bounds: %d", n.Reputation)
		}
	}
}

func TestPickModelCoversAllArchetypes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seen := make(map[BehaviorModel]int)
	for i := 0; i < 5000; i++ {
		seen[PickModel(rng)]++
	}
	for model := range growthTemplates {
		if seen[model] == 0 {
			t.Fatalf("model %s never generated", model)
		}
	}
	// Sunshine carries the largest weight.
	if seen[ModelSunshine] < seen[ModelWildcard] {
		t.Fatalf("weighting looks off: sunshine=%d wildcard=%d", seen[ModelSunshine], seen[ModelWildcard])
	}
}

func TestDominantStyle(t *testing.T) {
	if got := (&NPC{FSkill: 300, MSkill: 200}).DominantStyle(); got != catalog.StyleFemale {
		t.Fatalf("DominantStyle = %s, want F", got)
	}
	if got := (&NPC{FSkill: 200, MSkill: 200}).DominantStyle(); got != catalog.StyleBoth {
		t.Fatalf("DominantStyle = %s, want Both", got)
	}
}

func TestStyleCompatible(t *testing.T) {
	if StyleCompatible(catalog.StyleFemale, catalog.StyleMale) {
		t.Fatal("pure F should not fit a pure M team")
	}
	if !StyleCompatible(catalog.StyleFemale, catalog.StyleBoth) {
		t.Fatal("Both teams accept any style")
	}
}
