// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tuning for the runner engine.
// Units are world units per frame; the renderer scales the world to the terminal.
type RunnerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Entities EntitiesConfig `yaml:"entities"`
	Score    ScoreConfig    `yaml:"score"`
}

// PhysicsConfig defines the per-frame physics constants.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"` // Negative = upward
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// WorldConfig defines the playfield dimensions and the two rails.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundHeight  float64 `yaml:"ground_height"`  // Thickness of the ground strip at the bottom
	CeilingHeight float64 `yaml:"ceiling_height"` // Thickness of the ceiling strip at the top
}

// PlayerConfig defines the player's lane and size.
type PlayerConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// SpawnConfig defines endless-mode obstacle generation.
type SpawnConfig struct {
	Interval     int     `yaml:"interval"` // Frames between spawns
	ObstacleSize float64 `yaml:"obstacle_size"`
}

// EntitiesConfig defines fixed sizes of level entities.
type EntitiesConfig struct {
	PickupSize   float64 `yaml:"pickup_size"`
	PortalWidth  float64 `yaml:"portal_width"`
	PortalHeight float64 `yaml:"portal_height"`
	TileSize     float64 `yaml:"tile_size"` // Grid size used by ASCII level maps
}

// ScoreConfig defines how frames convert into score.
type ScoreConfig struct {
	FrameDivisor int `yaml:"frame_divisor"`
}

// GroundLine returns the y of the top of the ground strip.
func (c RunnerConfig) GroundLine() float64 {
	return c.World.Height - c.World.GroundHeight
}

// CeilingLine returns the y of the bottom of the ceiling strip.
func (c RunnerConfig) CeilingLine() float64 {
	return c.World.CeilingHeight
}
