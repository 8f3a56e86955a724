package world

import "strings"

// Map is a fixed-size grid of tiles stored row by row.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
	m.Fill(TileWall)
	return m
}

// NumTiles returns the total number of cells in the map.
func (m *Map) NumTiles() int {
	return m.Width * m.Height
}

// InBounds reports whether p lies inside the map.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Idx converts an in-bounds coordinate to its index in Tiles.
// Callers must check bounds first; use TryIdx for untrusted coordinates.
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// TryIdx converts p to an index in Tiles. It returns false for any point
// outside the map instead of an out-of-range index.
func (m *Map) TryIdx(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Idx(p.X, p.Y), true
}

// PointAt is the inverse of Idx.
func (m *Map) PointAt(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// Fill sets every tile in the map to t.
func (m *Map) Fill(t Tile) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// GetTile returns the tile at the given position. Positions off the map read as wall.
func (m *Map) GetTile(x, y int) Tile {
	idx, ok := m.TryIdx(Point{X: x, Y: y})
	if !ok {
		return TileWall
	}
	return m.Tiles[idx]
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.GetTile(x, y).IsPassable()
}

// CountTiles returns how many cells hold t.
func (m *Map) CountTiles(t Tile) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Rows returns the map as one string per row.
func (m *Map) Rows() []string {
	rows := make([]string, m.Height)
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		sb.Reset()
		for x := 0; x < m.Width; x++ {
			sb.WriteRune(m.Tiles[m.Idx(x, y)].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}
