package sim

import (
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Polarity is the direction gravity pulls the player.
type Polarity int

const (
	PolarityNormal  Polarity = iota // Toward the ground rail
	PolarityFlipped                 // Toward the ceiling rail
)

// String returns a human-readable name for the polarity.
func (p Polarity) String() string {
	if p == PolarityFlipped {
		return "flipped"
	}
	return "normal"
}

// Player is the single controllable entity. It stays on a fixed lane (X) and
// only moves vertically.
type Player struct {
	X, Y     float64
	W, H     float64
	VelY     float64
	Polarity Polarity
	OnGround bool // Resting on the rail of the current polarity

	StartX, StartY float64
}

// NewPlayer creates a grounded player at the given start position.
func NewPlayer(x, y, size float64) Player {
	p := Player{W: size, H: size, StartX: x, StartY: y}
	p.Reset()
	return p
}

// Reset restores the start position, zero velocity and normal polarity.
func (p *Player) Reset() {
	p.X = p.StartX
	p.Y = p.StartY
	p.VelY = 0
	p.Polarity = PolarityNormal
	p.OnGround = true
}

// Flipped reports whether gravity currently pulls toward the ceiling.
func (p Player) Flipped() bool {
	return p.Polarity == PolarityFlipped
}

// Box returns the player's collision rectangle.
func (p Player) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a scrolling hazard. Only deadly obstacles end an attempt.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Deadly bool
}

// Box returns the obstacle's collision rectangle.
func (o Obstacle) Box() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Pickup is a one-time jump boost orb.
type Pickup struct {
	X, Y float64
	W, H float64
}

// Box returns the pickup's collision rectangle.
func (p Pickup) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Portal toggles the player's polarity once.
type Portal struct {
	X, Y float64
	W, H float64
}

// Box returns the portal's collision rectangle.
func (p Portal) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Finish marks the end of a level. Present is cleared once touched.
type Finish struct {
	X, Y    float64
	W, H    float64
	Present bool
}

// Box returns the finish marker's collision rectangle.
func (f Finish) Box() core.Rect {
	return core.NewRect(f.X, f.Y, f.W, f.H)
}
