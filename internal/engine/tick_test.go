package engine

import "testing"

func TestSetSpeedSnapsToLegalValues(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 5},
		{5, 5},
		{7, 5},
		{9, 10},
		{10, 10},
		{100, 10},
		{0, 0},
		{-3, 0},
	}
	for _, tc := range cases {
		e := New()
		e.SetSpeed(tc.in)
		if got := e.Speed(); got != tc.want {
			t.Fatalf("SetSpeed(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPauseReferenceCount(t *testing.T) {
	e := New()
	if e.Paused() {
		t.Fatal("fresh engine is paused")
	}
	e.Pause()
	e.Pause()
	e.Resume()
	if !e.Paused() {
		t.Fatal("one outstanding pause should still hold time")
	}
	e.Resume()
	if e.Paused() {
		t.Fatal("balanced pauses should release time")
	}
	e.Resume() // extra resumes never go negative
	e.Pause()
	if !e.Paused() {
		t.Fatal("pause after extra resume lost")
	}
}

func TestAdvanceDaysRunsCallback(t *testing.T) {
	e := New()
	days := 0
	e.OnDay = func() { days++ }

	e.AdvanceDays(5)
	if days != 5 {
		t.Fatalf("ran %d days, want 5", days)
	}

	e.Pause()
	e.AdvanceDays(5)
	if days != 5 {
		t.Fatalf("paused engine advanced to %d days", days)
	}

	// Speed 0 only affects the real-time loop, not manual advance.
	e.Resume()
	e.SetSpeed(0)
	e.AdvanceDays(2)
	if days != 7 {
		t.Fatalf("manual advance at speed 0 ran %d days, want 7", days)
	}
}
