package cave

import "github.com/vovakirdan/cavedash/internal/core"

// stepPhysics runs one falling/rolling pass over the cave.
//
// The scan order is load-bearing: bottom row to top row, right column to
// left column, skipping the outer wall ring. Processing lower rows first
// means an object that falls this tick lands in an already-visited row and
// cannot fall twice in one pass.
func (g *Game) stepPhysics(nowMS float64) {
	for y := g.grid.H - 2; y >= 1; y-- {
		for x := g.grid.W - 2; x >= 1; x-- {
			t := g.grid.Get(x, y)
			if !t.Falls() {
				continue
			}

			below := g.grid.Get(x, y+1)
			if below == TileEmpty {
				if g.playerAt(x, y+1) {
					// The player blocks the fall destination: crush from
					// directly above, unless they just stepped here.
					g.crushPlayer(nowMS)
					continue
				}

				g.grid.Set(x, y, TileEmpty)
				g.grid.Set(x, y+1, t)

				if t == TileBoulder && g.grid.Get(x, y+2) != TileEmpty && !g.playerAt(x, y+2) {
					g.audio.Play(core.CueLand)
				}
				if g.playerAt(x, y+2) {
					// Landed directly above the player's head.
					g.crushPlayer(nowMS)
				}
				continue
			}

			if t == TileBoulder {
				g.rollBoulder(x, y)
			}
		}
	}

	// An object may have fallen onto the player's own cell.
	if g.state == StatePlaying && g.grid.Get(g.player.X, g.player.Y).Falls() {
		g.crushPlayer(nowMS)
	}
}

// rollBoulder topples a boulder that cannot fall straight down. Left is
// always tried before right (deterministic tie-break); a roll is a single
// diagonal step requiring both the side cell and the diagonal cell to be
// empty and player-free. Diamonds never roll.
func (g *Game) rollBoulder(x, y int) {
	if g.grid.Get(x-1, y) == TileEmpty && g.grid.Get(x-1, y+1) == TileEmpty &&
		!g.playerAt(x-1, y) && !g.playerAt(x-1, y+1) {
		g.grid.Set(x, y, TileEmpty)
		g.grid.Set(x-1, y+1, TileBoulder)
		return
	}
	if g.grid.Get(x+1, y) == TileEmpty && g.grid.Get(x+1, y+1) == TileEmpty &&
		!g.playerAt(x+1, y) && !g.playerAt(x+1, y+1) {
		g.grid.Set(x, y, TileEmpty)
		g.grid.Set(x+1, y+1, TileBoulder)
	}
}

// crushPlayer kills the player unless the grace period applies: a player
// whose last move is younger than one physics interval just stepped into
// harm's way and is spared until the next tick.
func (g *Game) crushPlayer(nowMS float64) {
	if g.state != StatePlaying {
		return
	}
	if nowMS-g.player.LastMoveMS < float64(g.cfg.Timing.PhysicsIntervalMS) {
		return
	}
	g.killPlayer(nowMS)
}

// playerAt reports whether the player currently occupies (x, y).
func (g *Game) playerAt(x, y int) bool {
	return g.state == StatePlaying && g.player.X == x && g.player.Y == y
}
