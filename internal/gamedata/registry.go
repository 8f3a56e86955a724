package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel is returned when a level name has no preset.
var ErrUnknownLevel = errors.New("unknown level")

// LevelRegistry holds loaded level presets in file order.
type LevelRegistry struct {
	levels []LevelDef
	byName map[string]*LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
// Every preset must convert to valid builder parameters and names must be unique.
func NewLevelRegistry(levels []LevelDef) (*LevelRegistry, error) {
	if len(levels) == 0 {
		return nil, errors.New("no levels defined")
	}

	registry := &LevelRegistry{
		levels: levels,
		byName: make(map[string]*LevelDef, len(levels)),
	}
	for i := range levels {
		level := &levels[i]
		if _, dup := registry.byName[level.Name]; dup {
			return nil, fmt.Errorf("duplicate level name %q", level.Name)
		}
		if _, err := level.Params(); err != nil {
			return nil, err
		}
		registry.byName[level.Name] = level
	}
	return registry, nil
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	return NewLevelRegistry(levels)
}

// MustLoadLevelRegistry loads a registry, panicking on error.
// The embedded presets ship with the binary, so failure is a build defect.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the preset with the given name.
func (r *LevelRegistry) GetByName(name string) (*LevelDef, error) {
	level, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

// Lookup returns the named preset, or the default one when name is empty.
func (r *LevelRegistry) Lookup(name string) (*LevelDef, error) {
	if name == "" {
		return r.Default(), nil
	}
	return r.GetByName(name)
}

// Default returns the first preset in the file.
func (r *LevelRegistry) Default() *LevelDef {
	return &r.levels[0]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Names returns the preset names in file order.
func (r *LevelRegistry) Names() []string {
	names := make([]string, len(r.levels))
	for i := range r.levels {
		names[i] = r.levels[i].Name
	}
	return names
}

// Count returns the number of presets in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
