// Package engine provides the real-time day-tick loop: a speed-multiplied
// interval per simulated day, a pause reference count for modal popups, and
// a manual advance path that runs the identical sequence.
package engine

import (
	"log/slog"
	"sync"
	"time"
)

// Speeds the loop accepts. Anything else is coerced to the nearest legal
// value.
var Speeds = []int{1, 2, 5, 10}

// Engine drives simulated days forward in real time.
type Engine struct {
	// Interval is the real duration of one simulated day at speed 1.
	Interval time.Duration

	mu      sync.Mutex
	speed   int
	pauses  int
	running bool
	stop    chan struct{}

	// OnDay runs once per simulated day.
	OnDay func()
}

// New creates an engine at speed 1 with a one-second day.
func New() *Engine {
	return &Engine{
		Interval: time.Second,
		speed:    1,
	}
}

// SetSpeed selects a speed multiplier. Zero pauses via the reference count.
func (e *Engine) SetSpeed(speed int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if speed <= 0 {
		e.speed = 0
		return
	}
	best := Speeds[0]
	for _, s := range Speeds {
		if abs(speed-s) < abs(speed-best) {
			best = s
		}
	}
	e.speed = best
}

// Speed returns the current multiplier, 0 when paused by speed.
func (e *Engine) Speed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Pause increments the pause reference count. Every Pause needs a matching
// Resume.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.pauses++
	e.mu.Unlock()
}

// Resume decrements the pause reference count.
func (e *Engine) Resume() {
	e.mu.Lock()
	if e.pauses > 0 {
		e.pauses--
	}
	e.mu.Unlock()
}

// Paused reports whether time is currently held.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pauses > 0 || e.speed <= 0
}

// Run starts the loop and blocks until Stop. Each pass sleeps out the
// speed-adjusted remainder of the day interval.
func (e *Engine) Run() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stop = make(chan struct{})
	stop := e.stop
	e.mu.Unlock()

	slog.Info("engine started", "interval", e.Interval.String())

	for {
		select {
		case <-stop:
			slog.Info("engine stopped")
			return
		default:
		}

		if e.Paused() {
			time.Sleep(50 * time.Millisecond)
			continue
		}

		start := time.Now()
		if e.OnDay != nil {
			e.OnDay()
		}

		target := e.Interval / time.Duration(e.currentSpeedFloor())
		if elapsed := time.Since(start); elapsed < target {
			time.Sleep(target - elapsed)
		}
	}
}

// Stop halts a running loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	close(e.stop)
}

// AdvanceDays runs the day callback n times immediately, ignoring the
// real-time interval and speed but honouring the pause count.
func (e *Engine) AdvanceDays(n int) {
	for i := 0; i < n; i++ {
		e.mu.Lock()
		held := e.pauses > 0
		e.mu.Unlock()
		if held {
			return
		}
		if e.OnDay != nil {
			e.OnDay()
		}
	}
}

func (e *Engine) currentSpeedFloor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.speed < 1 {
		return 1
	}
	return e.speed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
