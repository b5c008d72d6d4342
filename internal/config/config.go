// Package config provides YAML-based game configuration loading and
// difficulty presets for the cavedash platform.
package config

// CaveConfig contains all configuration for a cave run.
// Values are read once when a level starts; a running session never
// observes config changes.
type CaveConfig struct {
	Level     CaveLevel     `yaml:"level"`
	Rules     CaveRules     `yaml:"rules"`
	Timing    CaveTiming    `yaml:"timing"`
	Camera    CaveCamera    `yaml:"camera"`
	Explosion CaveExplosion `yaml:"explosion"`
	Sprint    CaveSprint    `yaml:"sprint"`
}

// CaveLevel defines grid dimensions and terrain generation densities.
type CaveLevel struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	DirtDensity    float64 `yaml:"dirt_density"`
	BoulderDensity float64 `yaml:"boulder_density"`
	DiamondDensity float64 `yaml:"diamond_density"`
}

// CaveRules defines win/lose parameters.
type CaveRules struct {
	DiamondsRequired        int `yaml:"diamonds_required"`
	PointsPerDiamond        int `yaml:"points_per_diamond"`
	TimeLimitSeconds        int `yaml:"time_limit_seconds"`
	WarningThresholdSeconds int `yaml:"warning_threshold_seconds"`
}

// CaveTiming defines the wall-clock cadences of the simulation subsystems.
// Each subsystem is rate-limited by elapsed time since its own last update,
// not by frame count, so behavior is independent of the render tick rate.
type CaveTiming struct {
	PhysicsIntervalMS   int `yaml:"physics_interval_ms"`
	AnimationIntervalMS int `yaml:"animation_interval_ms"`
	ExplosionFrameMS    int `yaml:"explosion_frame_ms"`
}

// CaveCamera defines viewport follow behavior.
type CaveCamera struct {
	// Speed is the follow rate in gap-fraction per second: each second the
	// camera closes Speed times the remaining distance (clamped, no overshoot).
	Speed float64 `yaml:"speed"`
	// Deadzone is the distance in tiles below which the camera stops moving.
	Deadzone float64 `yaml:"deadzone"`
}

// CaveExplosion defines the death explosion sequence.
type CaveExplosion struct {
	MaxRadius int `yaml:"max_radius"`
}

// CaveSprint overrides applied by the sprint mode: a tighter timer and a
// smaller diamond quota on the same terrain.
type CaveSprint struct {
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
	DiamondsRequired int `yaml:"diamonds_required"`
}

// Minimum playable cave dimensions: the wall ring plus the 3x3 spawn
// pocket. Hand-written configs below this are floored rather than
// crashing level generation.
const (
	MinLevelWidth  = 5
	MinLevelHeight = 5
)

// Normalize floors out-of-range level values. The loader applies it to
// every config source, embedded defaults included.
func (c *CaveConfig) Normalize() {
	if c.Level.Width < MinLevelWidth {
		c.Level.Width = MinLevelWidth
	}
	if c.Level.Height < MinLevelHeight {
		c.Level.Height = MinLevelHeight
	}
	if c.Level.DirtDensity < 0 {
		c.Level.DirtDensity = 0
	}
	if c.Level.BoulderDensity < 0 {
		c.Level.BoulderDensity = 0
	}
	if c.Level.DiamondDensity < 0 {
		c.Level.DiamondDensity = 0
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyCavePreset modifies the config based on a difficulty preset.
// Easy gives more time and fewer boulders; hard does the opposite.
func ApplyCavePreset(cfg *CaveConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TimeLimitSeconds += 120
		cfg.Level.BoulderDensity *= 0.7
		cfg.Level.DiamondDensity *= 1.3
	case DifficultyHard:
		cfg.Rules.TimeLimitSeconds -= 90
		if cfg.Rules.TimeLimitSeconds < cfg.Rules.WarningThresholdSeconds {
			cfg.Rules.TimeLimitSeconds = cfg.Rules.WarningThresholdSeconds
		}
		cfg.Level.BoulderDensity *= 1.4
		cfg.Rules.DiamondsRequired += 4
	}
}
