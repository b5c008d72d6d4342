package cave

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cavedash/internal/config"
)

func TestGenerateLevelBorder(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	g := generateLevel(rand.New(rand.NewSource(7)), cfg.Level, cfg.Rules.DiamondsRequired)

	for x := 0; x < g.W; x++ {
		if g.Get(x, 0) != TileWall || g.Get(x, g.H-1) != TileWall {
			t.Fatalf("border missing at column %d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if g.Get(0, y) != TileWall || g.Get(g.W-1, y) != TileWall {
			t.Fatalf("border missing at row %d", y)
		}
	}
}

func TestGenerateLevelSpawnPocket(t *testing.T) {
	cfg := config.DefaultCaveConfig()

	for seed := int64(0); seed < 20; seed++ {
		g := generateLevel(rand.New(rand.NewSource(seed)), cfg.Level, cfg.Rules.DiamondsRequired)

		if g.Get(SpawnX, SpawnY) != TileEmpty {
			t.Fatalf("seed %d: spawn cell not empty", seed)
		}
		// Nothing can fall onto the spawn on the first physics pass.
		if g.Get(SpawnX, SpawnY-1).Falls() {
			t.Fatalf("seed %d: object directly above spawn", seed)
		}
		if g.Get(SpawnX+1, SpawnY) != TileDirt || g.Get(SpawnX, SpawnY+1) != TileDirt {
			t.Fatalf("seed %d: spawn pocket not dirt", seed)
		}
	}
}

func TestGenerateLevelMeetsDiamondQuota(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	// Densities low enough that random placement alone falls short.
	cfg.Level.DiamondDensity = 0.0

	for seed := int64(0); seed < 10; seed++ {
		g := generateLevel(rand.New(rand.NewSource(seed)), cfg.Level, cfg.Rules.DiamondsRequired)
		if got := g.Count(TileDiamond); got < cfg.Rules.DiamondsRequired {
			t.Errorf("seed %d: %d diamonds placed, quota is %d", seed, got, cfg.Rules.DiamondsRequired)
		}
	}
}

func TestGenerateLevelTinyDimensions(t *testing.T) {
	// Dimensions below the interior minimum must degrade, not panic.
	// The config loader floors these, but generateLevel takes raw values.
	cfg := config.DefaultCaveConfig()
	for _, dim := range []struct{ w, h int }{{2, 10}, {10, 2}, {1, 1}, {0, 0}} {
		cfg.Level.Width = dim.w
		cfg.Level.Height = dim.h
		g := generateLevel(rand.New(rand.NewSource(1)), cfg.Level, cfg.Rules.DiamondsRequired)
		if g == nil {
			t.Fatalf("%dx%d: no grid returned", dim.w, dim.h)
		}
	}
}

func TestParseLayout(t *testing.T) {
	g, px, py, err := ParseLayout([]string{
		"#####",
		"#.O*#",
		"# @E#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if g.W != 5 || g.H != 4 {
		t.Fatalf("dimensions = %dx%d, want 5x4", g.W, g.H)
	}
	if px != 2 || py != 2 {
		t.Errorf("player = (%d,%d), want (2,2)", px, py)
	}
	if g.Get(1, 1) != TileDirt || g.Get(2, 1) != TileBoulder || g.Get(3, 1) != TileDiamond {
		t.Errorf("terrain glyphs parsed wrong:\n%s", gridString(g))
	}
	if g.Get(3, 2) != TileExit {
		t.Errorf("exit glyph parsed wrong")
	}
	if g.Get(2, 2) != TileEmpty {
		t.Errorf("player marker left a tile behind")
	}
}

func TestParseLayoutPadsShortRows(t *testing.T) {
	g, _, _, err := ParseLayout([]string{
		"####",
		"#",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if g.W != 4 {
		t.Fatalf("width = %d, want 4", g.W)
	}
	if g.Get(2, 1) != TileEmpty {
		t.Errorf("short row not padded with empty cells")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	if _, _, _, err := ParseLayout(nil); err == nil {
		t.Errorf("empty layout accepted")
	}
	if _, _, _, err := ParseLayout([]string{"#?#"}); err == nil {
		t.Errorf("unknown glyph accepted")
	}
}
