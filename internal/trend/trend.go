// Package trend models the slow-moving mood of the cover-dance community.
// A smooth noise curve over absolute days scales the cosmetic size of public
// reactions (likes, subscriber bursts). It never changes outcome odds.
package trend

import (
	"github.com/ojrac/opensimplex-go"
)

// Curve is a deterministic hype curve derived from the run seed.
type Curve struct {
	noise opensimplex.Noise
}

// NewCurve creates a hype curve for the given seed.
func NewCurve(seed int64) *Curve {
	return &Curve{noise: opensimplex.New(seed)}
}

// The slow octave stretches the noise so the community mood shifts over
// roughly a game month; the fast octave adds day-to-day jitter at a
// quarter of the weight.
const (
	hypeWavelength  = 24.0
	jitterWeight    = 0.25
	jitterFrequency = 4.0
)

// Hype returns the community hype on the given absolute day, in [0.7, 1.3].
func (c *Curve) Hype(absDay int) float64 {
	if c == nil {
		return 1.0
	}
	x := float64(absDay) / hypeWavelength
	n := c.noise.Eval2(x, 0.5) + jitterWeight*c.noise.Eval2(x*jitterFrequency, 1.5)
	n /= 1 + jitterWeight // back to [-1, 1]
	return 1.0 + 0.3*n
}

// ScaleCount scales an audience count by the day's hype, never below zero.
func (c *Curve) ScaleCount(absDay, count int) int {
	scaled := int(float64(count) * c.Hype(absDay))
	if scaled < 0 {
		return 0
	}
	return scaled
}
