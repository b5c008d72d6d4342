package cave

// Grid is the cave terrain: a fixed-size rectangle of tiles stored in
// row-major order (index = y*W + x).
//
// Access is total: reads outside the bounds return TileWall and writes
// outside the bounds are dropped, so callers never bounds-check.
type Grid struct {
	W, H  int
	cells []Tile
}

// NewGrid creates a grid of the given dimensions with every cell empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Tile, w*h),
	}
}

// Get returns the tile at (x, y). Out-of-bounds coordinates read as Wall.
func (g *Grid) Get(x, y int) Tile {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return TileWall
	}
	return g.cells[y*g.W+x]
}

// Set places a tile at (x, y). Out-of-bounds writes are silently dropped.
func (g *Grid) Set(x, y int, t Tile) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = t
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
