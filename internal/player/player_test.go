package player

import "testing"

func TestMoneyNeverNegative(t *testing.T) {
	p := New("p1", "Mina")
	p.Money = 100

	if p.Spend(200) {
		t.Fatal("overdraft allowed")
	}
	if p.Money != 100 {
		t.Fatalf("money = %d after refused spend", p.Money)
	}

	applied := p.AddMoney(-500)
	if p.Money != 0 {
		t.Fatalf("money = %d, want clamp to 0", p.Money)
	}
	if applied != -100 {
		t.Fatalf("applied = %d, want -100", applied)
	}
}

func TestStatClamps(t *testing.T) {
	p := New("p1", "Mina")

	p.AddReputation(5000)
	if p.Reputation != ReputationMax {
		t.Fatalf("reputation = %d", p.Reputation)
	}
	p.AddReputation(-5000)
	if p.Reputation != ReputationMin {
		t.Fatalf("reputation = %d", p.Reputation)
	}

	p.AddTiredness(500)
	if p.Tiredness != TirednessMax {
		t.Fatalf("tiredness = %d", p.Tiredness)
	}

	p.AddFSkill(20000)
	if p.FSkill != SkillMax {
		t.Fatalf("fSkill = %d", p.FSkill)
	}
}

func TestPositivePopularityTracked(t *testing.T) {
	p := New("p1", "Mina")
	p.AddPopularity(5, 42)
	if p.LastPositivePopAbsDay != 42 {
		t.Fatalf("lastPositivePop = %d, want 42", p.LastPositivePopAbsDay)
	}
	p.AddPopularity(-3, 50)
	if p.LastPositivePopAbsDay != 42 {
		t.Fatal("negative delta moved the positive-pop tracker")
	}
}

func TestWeeklyReset(t *testing.T) {
	p := New("p1", "Mina")
	p.Weekly.TrainingsF = 3
	p.Weekly.Shop.TonicUses = 1
	p.Weekly.Reset()
	if p.Weekly.TrainingsF != 0 || p.Weekly.Shop.TonicUses != 0 {
		t.Fatal("weekly counters not reset")
	}
}
