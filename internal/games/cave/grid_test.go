package cave

import "testing"

func TestGridOutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid(10, 8)

	tests := []struct {
		name string
		x, y int
	}{
		{"left of grid", -1, 4},
		{"right of grid", 10, 4},
		{"above grid", 4, -1},
		{"below grid", 4, 8},
		{"far corner", -100, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Get(tc.x, tc.y); got != TileWall {
				t.Errorf("Get(%d, %d) = %v, expected wall", tc.x, tc.y, got)
			}
		})
	}
}

func TestGridOutOfBoundsWriteIsDropped(t *testing.T) {
	g := NewGrid(10, 8)
	g.Set(2, 3, TileDiamond)

	before := g.Clone()

	g.Set(-1, 0, TileBoulder)
	g.Set(10, 0, TileBoulder)
	g.Set(0, -1, TileBoulder)
	g.Set(0, 8, TileBoulder)

	if !g.Equal(before) {
		t.Error("out-of-bounds Set must never change any in-bounds cell")
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(5, 5)

	if g.Get(2, 2) != TileEmpty {
		t.Error("new grid cells should be empty")
	}

	g.Set(2, 2, TileBoulder)
	if g.Get(2, 2) != TileBoulder {
		t.Errorf("Get(2, 2) = %v after Set, expected boulder", g.Get(2, 2))
	}
}

func TestGridCount(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, TileDiamond)
	g.Set(1, 1, TileDiamond)
	g.Set(2, 2, TileBoulder)

	if n := g.Count(TileDiamond); n != 2 {
		t.Errorf("Count(diamond) = %d, expected 2", n)
	}
	if n := g.Count(TileEmpty); n != 13 {
		t.Errorf("Count(empty) = %d, expected 13", n)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, TileDirt)

	c := g.Clone()
	c.Set(1, 1, TileBoulder)

	if g.Get(1, 1) != TileDirt {
		t.Error("mutating a clone must not affect the original")
	}
	if !g.Equal(g.Clone()) {
		t.Error("a fresh clone should equal its source")
	}
}
