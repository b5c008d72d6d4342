package cave

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cavedash/internal/config"
)

// Spawn position for generated caves. The outer ring is wall, so the
// top-left diggable cell is (1, 1).
const (
	SpawnX = 1
	SpawnY = 1
)

// Layout glyphs for text caves (custom cave files and scripted tests).
const (
	glyphWall    = '#'
	glyphDirt    = '.'
	glyphBoulder = 'O'
	glyphDiamond = '*'
	glyphExit    = 'E'
	glyphPlayer  = '@'
	glyphEmpty   = ' '
)

// generateLevel builds a randomized cave: a solid wall border around
// dirt/boulder/diamond terrain, with a diggable pocket around the spawn so
// the player never starts inside (or under) a rock.
func generateLevel(rng *rand.Rand, cfg config.CaveLevel, diamondsRequired int) *Grid {
	g := NewGrid(cfg.Width, cfg.Height)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x == 0 || y == 0 || x == g.W-1 || y == g.H-1 {
				g.Set(x, y, TileWall)
				continue
			}
			r := rng.Float64()
			switch {
			case r < cfg.BoulderDensity:
				g.Set(x, y, TileBoulder)
			case r < cfg.BoulderDensity+cfg.DiamondDensity:
				g.Set(x, y, TileDiamond)
			case r < cfg.BoulderDensity+cfg.DiamondDensity+cfg.DirtDensity:
				g.Set(x, y, TileDirt)
			default:
				g.Set(x, y, TileEmpty)
			}
		}
	}

	// Spawn box: the 3x3 around the spawn becomes plain dirt, the spawn
	// cell itself is cleared.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := SpawnX+dx, SpawnY+dy
			if x >= 1 && x < g.W-1 && y >= 1 && y < g.H-1 {
				g.Set(x, y, TileDirt)
			}
		}
	}
	g.Set(SpawnX, SpawnY, TileEmpty)

	// Random terrain can fall short of the quota on small grids; top up by
	// converting dirt so the cave is not unwinnable by construction.
	// Reachability is still not guaranteed, matching the placement
	// heuristics this generator inherits.
	// The interior must be non-empty before sampling it; config loading
	// floors dimensions, but layouts and direct callers are not obliged to.
	missing := diamondsRequired - g.Count(TileDiamond)
	if g.W > 2 && g.H > 2 {
		for attempts := 0; missing > 0 && attempts < 10000; attempts++ {
			x := 1 + rng.Intn(g.W-2)
			y := 1 + rng.Intn(g.H-2)
			if g.Get(x, y) == TileDirt {
				g.Set(x, y, TileDiamond)
				missing--
			}
		}
	}

	return g
}

// ParseLayout builds a grid from a text cave. Rows may have different
// lengths; short rows are padded with empty cells. Returns the grid and the
// player position taken from the '@' marker (spawn default if absent).
func ParseLayout(rows []string) (*Grid, int, int, error) {
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("cave: empty layout")
	}

	h := len(rows)
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	g := NewGrid(w, h)
	px, py := SpawnX, SpawnY
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case glyphWall:
				g.Set(x, y, TileWall)
			case glyphDirt:
				g.Set(x, y, TileDirt)
			case glyphBoulder:
				g.Set(x, y, TileBoulder)
			case glyphDiamond:
				g.Set(x, y, TileDiamond)
			case glyphExit:
				g.Set(x, y, TileExit)
			case glyphPlayer:
				px, py = x, y
			case glyphEmpty:
				// already empty
			default:
				return nil, 0, 0, fmt.Errorf("cave: unknown layout glyph %q at (%d, %d)", ch, x, y)
			}
		}
	}

	return g, px, py, nil
}
