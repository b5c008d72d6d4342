// Package cave implements the cave-digger game: a tile world of dirt,
// boulders and diamonds where the player digs toward a revealed exit while
// the cave settles around them under simple falling-object physics.
// This package is UI-agnostic and deterministic.
package cave

// Tile is the terrain or object type occupying one grid cell.
// The player is never stored in the grid; it is tracked as coordinates.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileDirt
	TileBoulder
	TileDiamond
	TileWall
	TileExit
)

// String returns the tile name used in logs and test failures.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileDirt:
		return "dirt"
	case TileBoulder:
		return "boulder"
	case TileDiamond:
		return "diamond"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Falls reports whether this tile is subject to gravity.
func (t Tile) Falls() bool {
	return t == TileBoulder || t == TileDiamond
}
