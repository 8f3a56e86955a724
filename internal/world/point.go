package world

import "fmt"

// Point is an integer map coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
