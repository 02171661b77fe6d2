package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/match"
)

// Snapshot contains the complete state of a match for determinism checks.
type Snapshot struct {
	Tick   uint64
	Paused bool
	Match  match.Snapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Paused: g.paused}
	if g.ctrl != nil {
		snap.Match = g.ctrl.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	m := snap.Match
	h := snap.Tick
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(m.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(m.Outcome)    //#nosec G115 -- hash computation
	h = h*31 + uint64(m.LeftScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(m.RightScore) //#nosec G115 -- hash computation

	for _, v := range []float64{m.Elapsed, m.BallPos.X, m.BallPos.Y, m.BallVel.X, m.BallVel.Y, m.LeftY, m.RightY} {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
