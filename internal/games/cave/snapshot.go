package cave

// Snapshot captures the observable simulation state for determinism testing
// and replay.
type Snapshot struct {
	Tick             uint64
	Mode             string
	Score            int
	Diamonds         int
	DiamondsRequired int
	PlayerX          int
	PlayerY          int
	FacingLeft       bool
	TimeRemaining    int
	TimerPhase       string
	ExitRevealed     bool
	ExitX            int
	ExitY            int
	ExplosionActive  bool
	ExplosionRadius  int
	CameraX          float64
	CameraY          float64
	Boulders         int
	DiamondTiles     int
	State            string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:             g.tick,
		Mode:             string(g.mode),
		Score:            g.score,
		Diamonds:         g.diamonds,
		DiamondsRequired: g.diamondsRequired,
		PlayerX:          g.player.X,
		PlayerY:          g.player.Y,
		FacingLeft:       g.player.FacingLeft,
		TimeRemaining:    g.timer.Remaining,
		TimerPhase:       g.timer.Phase().String(),
		ExitRevealed:     g.exitRevealed,
		ExitX:            g.exitX,
		ExitY:            g.exitY,
		ExplosionActive:  g.explosion.Active,
		ExplosionRadius:  g.explosion.Radius,
		CameraX:          g.camera.X,
		CameraY:          g.camera.Y,
		Boulders:         g.grid.Count(TileBoulder),
		DiamondTiles:     g.grid.Count(TileDiamond),
		State:            g.state.String(),
	}
}
