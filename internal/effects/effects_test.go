package effects

import "testing"

func TestApplyMergesSameKind(t *testing.T) {
	s := NewSet()
	s.Apply(Effect{Kind: KindTrainingEfficiency, Label: "flow", Magnitude: 1.2, ExpiresAbsDay: 10})
	s.Apply(Effect{Kind: KindTrainingEfficiency, Label: "inspiration", Magnitude: 1.5, ExpiresAbsDay: 8})

	if len(s) != 1 {
		t.Fatalf("expected 1 effect, got %d", len(s))
	}
	e := s[KindTrainingEfficiency]
	if e.ExpiresAbsDay != 10 {
		t.Fatalf("expected expiry 10 (max of both), got %d", e.ExpiresAbsDay)
	}
	if e.Magnitude != 1.5 {
		t.Fatalf("expected stronger magnitude 1.5, got %v", e.Magnitude)
	}
}

func TestApplyKeepsStrongerDebuff(t *testing.T) {
	s := NewSet()
	s.Apply(Effect{Kind: KindTrainingEfficiency, Magnitude: 0.7, ExpiresAbsDay: 5})
	s.Apply(Effect{Kind: KindTrainingEfficiency, Magnitude: 0.9, ExpiresAbsDay: 9})

	e := s[KindTrainingEfficiency]
	if e.Magnitude != 0.7 {
		t.Fatalf("0.7 is further from neutral than 0.9, got %v", e.Magnitude)
	}
	if e.ExpiresAbsDay != 9 {
		t.Fatalf("expected extended expiry 9, got %d", e.ExpiresAbsDay)
	}
}

func TestExpireThrough(t *testing.T) {
	s := NewSet()
	s.Apply(Effect{Kind: KindTrainingEfficiency, Label: "flow", Magnitude: 1.2, ExpiresAbsDay: 5})
	s.Apply(Effect{Kind: KindProjectRejectAdd, Label: "penalty", Magnitude: 0.3, ExpiresAbsDay: 20})

	expired := s.ExpireThrough(5)
	if len(expired) != 1 || expired[0] != "flow" {
		t.Fatalf("expected [flow] expired, got %v", expired)
	}
	if _, ok := s[KindProjectRejectAdd]; !ok {
		t.Fatal("penalty should still be active")
	}
}

func TestTrainingEfficiencyTiers(t *testing.T) {
	tests := []struct {
		name      string
		tiredness float64
		want      float64
	}{
		{name: "fresh", tiredness: 0, want: 1.0},
		{name: "below threshold", tiredness: 69, want: 1.0},
		{name: "tired", tiredness: 70, want: 0.8},
		{name: "very tired", tiredness: 89, want: 0.8},
		{name: "exhausted", tiredness: 90, want: 0.5},
	}

	s := NewSet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.TrainingEfficiency(tt.tiredness); got != tt.want {
				t.Fatalf("TrainingEfficiency(%v) = %v, want %v", tt.tiredness, got, tt.want)
			}
		})
	}
}

func TestTrainingEfficiencyCap(t *testing.T) {
	s := NewSet()
	s.Apply(Effect{Kind: KindTrainingEfficiency, Magnitude: 5.0, ExpiresAbsDay: 99})
	if got := s.TrainingEfficiency(0); got != TrainingEfficiencyCap {
		t.Fatalf("expected cap %v, got %v", TrainingEfficiencyCap, got)
	}
}

func TestModifierClamps(t *testing.T) {
	if got := ClampRepPopModifier(10); got != 3.0 {
		t.Fatalf("rep/pop cap = %v, want 3.0", got)
	}
	if got := ClampRepPopModifier(0.1); got != 0.5 {
		t.Fatalf("rep/pop floor = %v, want 0.5", got)
	}
	if got := ClampSkillModifier(4); got != 2.0 {
		t.Fatalf("skill cap = %v, want 2.0", got)
	}
}
