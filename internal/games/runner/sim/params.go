package sim

import (
	"github.com/vovakirdan/neon-runner/internal/config"
)

// Params holds the validated tuning the simulation runs with.
type Params struct {
	Gravity         float64
	JumpForce       float64 // Negative = away from the ground rail
	ScrollSpeed     float64
	BoostMultiplier float64

	WorldWidth  float64
	WorldHeight float64
	GroundLine  float64 // y of the top of the ground strip
	CeilingLine float64 // y of the bottom of the ceiling strip

	PlayerX    float64
	PlayerSize float64

	SpawnInterval int
	ObstacleSize  float64

	PickupSize   float64
	PortalWidth  float64
	PortalHeight float64

	FrameDivisor int
}

// Band is the legal range for the player's top edge.
type Band struct {
	CeilingY float64 // Player rests here when flipped
	GroundY  float64 // Player rests here in normal polarity
}

// NewParams converts and validates a runner config.
func NewParams(cfg config.RunnerConfig) (Params, error) {
	p := Params{
		Gravity:         cfg.Physics.Gravity,
		JumpForce:       cfg.Physics.JumpForce,
		ScrollSpeed:     cfg.Physics.ScrollSpeed,
		BoostMultiplier: cfg.Physics.BoostMultiplier,
		WorldWidth:      cfg.World.Width,
		WorldHeight:     cfg.World.Height,
		GroundLine:      cfg.GroundLine(),
		CeilingLine:     cfg.CeilingLine(),
		PlayerX:         cfg.Player.X,
		PlayerSize:      cfg.Player.Size,
		SpawnInterval:   cfg.Spawn.Interval,
		ObstacleSize:    cfg.Spawn.ObstacleSize,
		PickupSize:      cfg.Entities.PickupSize,
		PortalWidth:     cfg.Entities.PortalWidth,
		PortalHeight:    cfg.Entities.PortalHeight,
		FrameDivisor:    cfg.Score.FrameDivisor,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks that the params describe a playable world.
func (p Params) Validate() error {
	switch {
	case p.Gravity <= 0:
		return configError("gravity", "must be positive, got %v", p.Gravity)
	case p.JumpForce >= 0:
		return configError("jump_force", "must be negative (upward), got %v", p.JumpForce)
	case p.ScrollSpeed <= 0:
		return configError("scroll_speed", "must be positive, got %v", p.ScrollSpeed)
	case p.BoostMultiplier <= 0:
		return configError("boost_multiplier", "must be positive, got %v", p.BoostMultiplier)
	case p.WorldWidth <= 0 || p.WorldHeight <= 0:
		return configError("world", "size must be positive, got %vx%v", p.WorldWidth, p.WorldHeight)
	case p.PlayerSize <= 0:
		return configError("player.size", "must be positive, got %v", p.PlayerSize)
	case p.CeilingLine < 0 || p.GroundLine > p.WorldHeight:
		return configError("world", "rails must lie inside the world")
	case p.GroundLine-p.CeilingLine <= p.PlayerSize:
		return configError("world", "gap between rails (%v) must exceed player size (%v)",
			p.GroundLine-p.CeilingLine, p.PlayerSize)
	case p.SpawnInterval <= 0:
		return configError("spawn.interval", "must be positive, got %d", p.SpawnInterval)
	case p.ObstacleSize <= 0:
		return configError("spawn.obstacle_size", "must be positive, got %v", p.ObstacleSize)
	case p.PickupSize <= 0:
		return configError("entities.pickup_size", "must be positive, got %v", p.PickupSize)
	case p.PortalWidth <= 0 || p.PortalHeight <= 0:
		return configError("entities.portal", "size must be positive, got %vx%v", p.PortalWidth, p.PortalHeight)
	case p.FrameDivisor <= 0:
		return configError("score.frame_divisor", "must be positive, got %d", p.FrameDivisor)
	}
	return nil
}

// Band returns the legal y range for the player's top edge.
func (p Params) Band() Band {
	return Band{
		CeilingY: p.CeilingLine,
		GroundY:  p.GroundLine - p.PlayerSize,
	}
}
