package config

import (
	_ "embed"
)

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultCaveConfig returns the default cave configuration.
// Kept in sync with defaults/cave.yaml; used as the last-resort fallback
// if the embedded YAML somehow fails to parse.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Level: CaveLevel{
			Width:          60,
			Height:         34,
			DirtDensity:    0.55,
			BoulderDensity: 0.12,
			DiamondDensity: 0.06,
		},
		Rules: CaveRules{
			DiamondsRequired:        10,
			PointsPerDiamond:        100,
			TimeLimitSeconds:        300,
			WarningThresholdSeconds: 60,
		},
		Timing: CaveTiming{
			PhysicsIntervalMS:   150,
			AnimationIntervalMS: 100,
			ExplosionFrameMS:    50,
		},
		Camera: CaveCamera{
			Speed:    8.0,
			Deadzone: 0.01,
		},
		Explosion: CaveExplosion{
			MaxRadius: 4,
		},
		Sprint: CaveSprint{
			TimeLimitSeconds: 120,
			DiamondsRequired: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "cave", "cave_sprint":
		return defaultCaveYAML
	default:
		return nil
	}
}
