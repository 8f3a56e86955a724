// Package world provides the dungeon map, rooms and the map builder that lays them out.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall is solid rock. A fresh map is filled with it before any room is carved.
	TileWall Tile = '#'
	// TileFloor is carved out of the rock by rooms and corridors.
	TileFloor Tile = '.'
)

// IsPassable reports whether the player may stand on the tile.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the character used when a map is rendered or dumped.
func (t Tile) Rune() rune {
	return rune(t)
}
