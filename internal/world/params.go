package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement defaults
	DefaultNumRooms    = 20
	DefaultMinRoomSize = 2   // Smallest room side
	DefaultMaxRoomSize = 10  // Exclusive upper bound on a room side
	DefaultSpread      = 0.9 // Fraction of the map the room origins are drawn from
)

// ErrRoomQuota is returned when room placement runs out of attempts before
// reaching the requested room count.
var ErrRoomQuota = errors.New("room quota not met")

// CorridorStyle selects how consecutive rooms are joined.
type CorridorStyle int

const (
	// CorridorHorizontal flips a coin per room pair and, on heads, carves a single
	// horizontal tunnel along the left room's center row. Some pairs stay unconnected.
	CorridorHorizontal CorridorStyle = iota
	// CorridorLShaped always joins the two centers with a horizontal and a vertical
	// tunnel, choosing the order at random.
	CorridorLShaped
)

// String returns the style name used in level definitions.
func (s CorridorStyle) String() string {
	switch s {
	case CorridorHorizontal:
		return "horizontal"
	case CorridorLShaped:
		return "lshaped"
	default:
		return "unknown"
	}
}

// ParseCorridorStyle converts a style name to a CorridorStyle. An empty name
// selects CorridorHorizontal.
func ParseCorridorStyle(name string) (CorridorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "horizontal":
		return CorridorHorizontal, nil
	case "lshaped", "l-shaped":
		return CorridorLShaped, nil
	default:
		return CorridorHorizontal, fmt.Errorf("unknown corridor style %q", name)
	}
}

// Params holds the fixed constants for one level.
type Params struct {
	Width       int
	Height      int
	NumRooms    int
	MinRoomSize int     // Inclusive
	MaxRoomSize int     // Exclusive
	Spread      float64 // Room origins are drawn from [1, Spread*Width) x [1, Spread*Height)
	MaxAttempts int     // Candidate rooms sampled before giving up; 0 means no limit
	Corridors   CorridorStyle
}

// DefaultParams returns the standard 80x50 level with 20 rooms.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		NumRooms:    DefaultNumRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Spread:      DefaultSpread,
		Corridors:   CorridorHorizontal,
	}
}

// Validate checks the parameters for sizes and ranges the builder cannot use.
// It does not prove that NumRooms rooms fit; an unbounded build may still spin.
// Keeping the starting point on the map is left to room placement.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("invalid map size %dx%d", p.Width, p.Height)
	case p.NumRooms <= 0:
		return fmt.Errorf("invalid room count %d", p.NumRooms)
	case p.MinRoomSize < 1 || p.MaxRoomSize <= p.MinRoomSize:
		return fmt.Errorf("invalid room size range [%d, %d)", p.MinRoomSize, p.MaxRoomSize)
	case p.Spread <= 0 || p.Spread > 1:
		return fmt.Errorf("invalid spread %v", p.Spread)
	case p.MaxAttempts < 0:
		return fmt.Errorf("invalid attempt limit %d", p.MaxAttempts)
	}
	if p.originBoundX() < 2 || p.originBoundY() < 2 {
		return fmt.Errorf("spread %v leaves no room origins on a %dx%d map", p.Spread, p.Width, p.Height)
	}
	return nil
}

func (p Params) originBoundX() int {
	return int(float64(p.Width) * p.Spread)
}

func (p Params) originBoundY() int {
	return int(float64(p.Height) * p.Spread)
}
