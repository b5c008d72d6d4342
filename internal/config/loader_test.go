package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCaveEmbeddedDefaults(t *testing.T) {
	// With no custom path and no local configs, the embedded YAML is used.
	cfg, err := LoadCave("")
	if err != nil {
		t.Fatalf("LoadCave() error: %v", err)
	}

	if cfg.Level.Width != 60 || cfg.Level.Height != 34 {
		t.Errorf("default grid = %dx%d, expected 60x34", cfg.Level.Width, cfg.Level.Height)
	}
	if cfg.Rules.PointsPerDiamond != 100 {
		t.Errorf("default points per diamond = %d, expected 100", cfg.Rules.PointsPerDiamond)
	}
	if cfg.Rules.TimeLimitSeconds != 300 {
		t.Errorf("default time limit = %d, expected 300", cfg.Rules.TimeLimitSeconds)
	}
	if cfg.Timing.PhysicsIntervalMS != 150 {
		t.Errorf("default physics interval = %d, expected 150", cfg.Timing.PhysicsIntervalMS)
	}
}

func TestLoadCaveEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := LoadCave("")
	if err != nil {
		t.Fatalf("LoadCave() error: %v", err)
	}

	if cfg != DefaultCaveConfig() {
		t.Errorf("embedded defaults diverge from DefaultCaveConfig():\n embed: %+v\n coded: %+v", cfg, DefaultCaveConfig())
	}
}

func TestLoadCaveCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cave.yaml")
	custom := []byte("level:\n  width: 20\n  height: 12\nrules:\n  diamonds_required: 3\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCave(path)
	if err != nil {
		t.Fatalf("LoadCave(custom) error: %v", err)
	}
	if cfg.Level.Width != 20 || cfg.Level.Height != 12 {
		t.Errorf("custom grid = %dx%d, expected 20x12", cfg.Level.Width, cfg.Level.Height)
	}
	if cfg.Rules.DiamondsRequired != 3 {
		t.Errorf("custom quota = %d, expected 3", cfg.Rules.DiamondsRequired)
	}
}

func TestLoadCaveFloorsDegenerateDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cave.yaml")
	custom := []byte("level:\n  width: 2\n  height: 1\n  boulder_density: -0.5\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCave(path)
	if err != nil {
		t.Fatalf("LoadCave(custom) error: %v", err)
	}
	if cfg.Level.Width < MinLevelWidth || cfg.Level.Height < MinLevelHeight {
		t.Errorf("grid = %dx%d, want at least %dx%d",
			cfg.Level.Width, cfg.Level.Height, MinLevelWidth, MinLevelHeight)
	}
	if cfg.Level.BoulderDensity < 0 {
		t.Errorf("negative boulder density survived loading: %v", cfg.Level.BoulderDensity)
	}
}

func TestLoadCaveMissingCustomPath(t *testing.T) {
	if _, err := LoadCave("/nonexistent/cave.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplyCavePreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		check  func(t *testing.T, base, got CaveConfig)
	}{
		{
			name:   "easy adds time and thins boulders",
			preset: DifficultyEasy,
			check: func(t *testing.T, base, got CaveConfig) {
				if got.Rules.TimeLimitSeconds != base.Rules.TimeLimitSeconds+120 {
					t.Errorf("time limit = %d", got.Rules.TimeLimitSeconds)
				}
				if got.Level.BoulderDensity >= base.Level.BoulderDensity {
					t.Error("easy should reduce boulder density")
				}
			},
		},
		{
			name:   "hard cuts time and raises quota",
			preset: DifficultyHard,
			check: func(t *testing.T, base, got CaveConfig) {
				if got.Rules.TimeLimitSeconds >= base.Rules.TimeLimitSeconds {
					t.Error("hard should reduce the time limit")
				}
				if got.Rules.TimeLimitSeconds < got.Rules.WarningThresholdSeconds {
					t.Error("time limit must not drop below the warning threshold")
				}
				if got.Rules.DiamondsRequired != base.Rules.DiamondsRequired+4 {
					t.Errorf("quota = %d", got.Rules.DiamondsRequired)
				}
			},
		},
		{
			name:   "normal leaves config untouched",
			preset: DifficultyNormal,
			check: func(t *testing.T, base, got CaveConfig) {
				if got != base {
					t.Error("normal preset should not modify config")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := DefaultCaveConfig()
			got := base
			ApplyCavePreset(&got, tc.preset)
			tc.check(t, base, got)
		})
	}
}
