// Package entity provides the things that move around a generated level.
package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Player is the single adventurer exploring the level.
type Player struct {
	X, Y   int  // Current position in the level
	Symbol rune // Display symbol
}

// NewPlayer creates a player standing on the given point.
func NewPlayer(start world.Point) *Player {
	return &Player{
		X:      start.X,
		Y:      start.Y,
		Symbol: '@',
	}
}

// TryMove moves the player by dx, dy if the destination is passable on m.
// It reports whether the player moved.
func (p *Player) TryMove(m *world.Map, dx, dy int) bool {
	if !m.IsPassable(p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Position returns the current coordinates.
func (p *Player) Position() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}
