package calendar

import "testing"

func TestAbsDay(t *testing.T) {
	tests := []struct {
		name string
		time GameTime
		want int
	}{
		{name: "origin", time: GameTime{}, want: 0},
		{name: "mid month", time: GameTime{Day: 15}, want: 15},
		{name: "second month", time: GameTime{Month: 1, Day: 3}, want: 33},
		{name: "second year", time: GameTime{Year: 1, Month: 2, Day: 5}, want: 425},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.time.AbsDay(); got != tt.want {
				t.Fatalf("AbsDay() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextRollsOverMonth(t *testing.T) {
	got := GameTime{Month: 0, Day: 29}.Next()
	want := GameTime{Month: 1, Day: 0}
	if got != want {
		t.Fatalf("Next() = %+v, want %+v", got, want)
	}
	if got.AbsDay() != 30 {
		t.Fatalf("AbsDay after rollover = %d, want 30", got.AbsDay())
	}
}

func TestNextRollsOverYear(t *testing.T) {
	got := GameTime{Year: 0, Month: 11, Day: 29}.Next()
	want := GameTime{Year: 1, Month: 0, Day: 0}
	if got != want {
		t.Fatalf("Next() = %+v, want %+v", got, want)
	}
}

func TestNextNeverSkipsDays(t *testing.T) {
	tm := GameTime{}
	for i := 0; i < DaysPerYear*2; i++ {
		next := tm.Next()
		if next.AbsDay() != tm.AbsDay()+1 {
			t.Fatalf("day %d: AbsDay jumped from %d to %d", i, tm.AbsDay(), next.AbsDay())
		}
		tm = next
	}
}

func TestFromAbsDayRoundTrip(t *testing.T) {
	for _, abs := range []int{0, 29, 30, 359, 360, 1234} {
		if got := FromAbsDay(abs).AbsDay(); got != abs {
			t.Fatalf("FromAbsDay(%d).AbsDay() = %d", abs, got)
		}
	}
}

func TestAtHorizon(t *testing.T) {
	if (GameTime{Year: 4, Month: 11, Day: 29}).AtHorizon() {
		t.Fatal("last day of year 4 should not be at horizon")
	}
	if !(GameTime{Year: 5}).AtHorizon() {
		t.Fatal("year 5 day 0 should be at horizon")
	}
}

func TestBirthdayOverlay(t *testing.T) {
	// June 15 maps to game month 0.
	if !IsBirthday(GameTime{Month: 0, Day: 14}, 6, 15) {
		t.Fatal("June 15 should match game month 0 day 14")
	}
	// January maps to game month 7.
	if GameMonthForBirthMonth(1) != 7 {
		t.Fatalf("GameMonthForBirthMonth(1) = %d, want 7", GameMonthForBirthMonth(1))
	}
	// Real day 31 lands on the last game day of the month.
	if !IsBirthday(GameTime{Month: 1, Day: 29}, 7, 31) {
		t.Fatal("July 31 should land on the last day of game month 1")
	}
}

func TestIsNewYear(t *testing.T) {
	if !IsNewYear(GameTime{Month: 7, Day: 0}) {
		t.Fatal("game month 7 day 0 should be New Year")
	}
	if IsNewYear(GameTime{Month: 7, Day: 1}) {
		t.Fatal("game month 7 day 1 should not be New Year")
	}
}
