package trend

import "testing"

func TestHypeStaysBounded(t *testing.T) {
	c := NewCurve(42)
	for day := 0; day < 2000; day++ {
		h := c.Hype(day)
		if h < 0.7 || h > 1.3 {
			t.Fatalf("hype(%d) = %v, out of [0.7, 1.3]", day, h)
		}
	}
}

func TestHypeDeterministicPerSeed(t *testing.T) {
	a := NewCurve(7)
	b := NewCurve(7)
	for day := 0; day < 200; day++ {
		if a.Hype(day) != b.Hype(day) {
			t.Fatalf("same seed diverged on day %d", day)
		}
	}
	other := NewCurve(8)
	same := true
	for day := 0; day < 200; day++ {
		if a.Hype(day) != other.Hype(day) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced an identical curve")
	}
}

func TestNilCurveIsNeutral(t *testing.T) {
	var c *Curve
	if got := c.Hype(10); got != 1.0 {
		t.Fatalf("nil curve hype = %v, want 1.0", got)
	}
	if got := c.ScaleCount(10, 40); got != 40 {
		t.Fatalf("nil curve scale = %d, want 40", got)
	}
}
