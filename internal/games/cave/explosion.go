package cave

// Explosion is the staged area-clear sequence played when the player dies.
// The frame counter advances on its own wall-clock cadence; the blast radius
// is frame/2. Each radius increase below the maximum clears every non-wall
// cell within Euclidean distance of the origin. At the maximum radius the
// sequence goes dormant and becomes a purely visual concern.
type Explosion struct {
	Active  bool
	OriginX int
	OriginY int
	Frame   int
	Radius  int

	maxRadius   int
	frameMS     float64
	lastFrameMS float64
}

// NewExplosion creates an inactive sequencer.
func NewExplosion(maxRadius int, frameIntervalMS float64) Explosion {
	return Explosion{
		maxRadius: maxRadius,
		frameMS:   frameIntervalMS,
	}
}

// Trigger starts the sequence at the given origin. Re-entrant triggers while
// a sequence is active are ignored.
func (e *Explosion) Trigger(x, y int, nowMS float64, g *Grid) {
	if e.Active {
		return
	}
	e.Active = true
	e.OriginX = x
	e.OriginY = y
	e.Frame = 0
	e.Radius = 0
	e.lastFrameMS = nowMS
	e.clear(g)
}

// Done reports whether the blast has reached its maximum radius.
func (e *Explosion) Done() bool {
	return e.Active && e.Radius >= e.maxRadius
}

// Update advances the sequence to nowMS, clearing cells on each radius
// increase until the maximum radius is reached.
func (e *Explosion) Update(nowMS float64, g *Grid) {
	if !e.Active || e.Radius >= e.maxRadius {
		return
	}

	for nowMS-e.lastFrameMS >= e.frameMS {
		e.lastFrameMS += e.frameMS
		e.Frame++

		r := e.Frame / 2
		if r <= e.Radius {
			continue
		}
		e.Radius = r
		if e.Radius >= e.maxRadius {
			return
		}
		e.clear(g)
	}
}

// clear empties every non-wall cell within Euclidean distance Radius of the
// origin. Wall tiles are indestructible.
func (e *Explosion) clear(g *Grid) {
	rr := e.Radius * e.Radius
	for dy := -e.Radius; dy <= e.Radius; dy++ {
		for dx := -e.Radius; dx <= e.Radius; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			x, y := e.OriginX+dx, e.OriginY+dy
			if g.Get(x, y) != TileWall {
				g.Set(x, y, TileEmpty)
			}
		}
	}
}
