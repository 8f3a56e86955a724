package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	X      int `json:"x"` // Top-left corner position
	Y      int `json:"y"`
	Width  int `json:"width"` // Dimensions of the room
	Height int `json:"height"`
}

// NewRoom creates a room with its top-left corner at x, y.
func NewRoom(x, y, width, height int) Room {
	return Room{X: x, Y: y, Width: width, Height: height}
}

// Center returns the center of the room. Half sizes are truncated, so a room
// of even width has its center one tile right of the midline.
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps or touches another room.
// Rooms sharing an edge count as intersecting, which keeps at least one
// wall between any two carved rooms.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ForEach calls fn for every tile covered by the room, row by row.
func (r Room) ForEach(fn func(p Point)) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
