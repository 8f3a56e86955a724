package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// LevelDef defines a level preset loaded from JSON.
type LevelDef struct {
	Name        string  `json:"name"`        // Unique identifier (e.g., "crawl")
	Description string  `json:"description"` // One-line summary for listings
	Width       int     `json:"width"`       // Map width in tiles
	Height      int     `json:"height"`      // Map height in tiles
	NumRooms    int     `json:"numRooms"`    // Rooms to place
	MinRoomSize int     `json:"minRoomSize"` // Smallest room side
	MaxRoomSize int     `json:"maxRoomSize"` // Exclusive upper bound on a room side
	Spread      float64 `json:"spread"`      // Fraction of the map room origins are drawn from
	MaxAttempts int     `json:"maxAttempts"` // Placement budget; 0 means unbounded
	Corridors   string  `json:"corridors"`   // "horizontal" or "lshaped"
	WallColor   string  `json:"wallColor"`   // Hex color for walls
	FloorColor  string  `json:"floorColor"`  // Hex color for floors
}

// Params converts the preset to map builder parameters.
func (l *LevelDef) Params() (world.Params, error) {
	style, err := world.ParseCorridorStyle(l.Corridors)
	if err != nil {
		return world.Params{}, fmt.Errorf("level %s: %w", l.Name, err)
	}

	params := world.Params{
		Width:       l.Width,
		Height:      l.Height,
		NumRooms:    l.NumRooms,
		MinRoomSize: l.MinRoomSize,
		MaxRoomSize: l.MaxRoomSize,
		Spread:      l.Spread,
		MaxAttempts: l.MaxAttempts,
		Corridors:   style,
	}
	if err := params.Validate(); err != nil {
		return world.Params{}, fmt.Errorf("level %s: %w", l.Name, err)
	}
	return params, nil
}

// Palette returns the level's tile colors, falling back to grays for bad hex codes.
func (l *LevelDef) Palette() Palette {
	return Palette{
		Wall:  colorOr(l.WallColor, tcell.ColorDarkGray),
		Floor: colorOr(l.FloorColor, tcell.ColorGray),
	}
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level presets from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
