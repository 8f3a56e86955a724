// Package game provides the terminal explorer that consumes generated levels.
package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.LevelRegistry
	level    *gamedata.LevelDef
	builder  *world.MapBuilder
	player   *entity.Player
	seed     int64
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	level, err := registry.Lookup(cfg.Level)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(registry, level, cfg.ResolveSeed())
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

func newGame(registry *gamedata.LevelRegistry, level *gamedata.LevelDef, seed int64) *Game {
	return &Game{
		registry: registry,
		level:    level,
		seed:     seed,
		running:  true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.startLevel(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.builder.Map, g.player, g.level.Palette(), g.status())
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// startLevel builds the current preset with the current seed and places the
// player on the starting point.
func (g *Game) startLevel(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	params, err := g.level.Params()
	if err != nil {
		return err
	}
	builder, err := world.NewMapBuilder(params, world.NewRand(g.seed))
	if err != nil {
		return err
	}
	if err := builder.Build(ctx); err != nil {
		return fmt.Errorf("failed to build level %s (seed %d): %w", g.level.Name, g.seed, err)
	}

	g.builder = builder
	g.player = entity.NewPlayer(builder.StartingPoint)

	span.SetAttributes(
		attribute.String("level.name", g.level.Name),
		attribute.Int64("level.seed", g.seed),
		attribute.Int("level.rooms", len(builder.Rooms)),
		attribute.Int("player.start_x", builder.StartingPoint.X),
		attribute.Int("player.start_y", builder.StartingPoint.Y),
	)
	return nil
}

// nextLevel advances to another preset, or rerolls the current one with the next seed.
func (g *Game) nextLevel(ctx context.Context, switchPreset bool) error {
	if switchPreset {
		levels := g.registry.All()
		for i := range levels {
			if levels[i].Name == g.level.Name {
				g.level = &levels[(i+1)%len(levels)]
				break
			}
		}
	} else {
		g.seed++
	}
	return g.startLevel(ctx)
}

func (g *Game) status() string {
	return fmt.Sprintf("%s  seed %d  rooms %d  reachable %d  [arrows] move [r] reroll [l] level [q] quit",
		g.level.Name, g.seed, len(g.builder.Rooms), g.builder.ReachableRooms())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKey processes keyboard input. ch is only meaningful for tcell.KeyRune.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.player.TryMove(g.builder.Map, 0, -1)
	case tcell.KeyDown:
		g.player.TryMove(g.builder.Map, 0, 1)
	case tcell.KeyLeft:
		g.player.TryMove(g.builder.Map, -1, 0)
	case tcell.KeyRight:
		g.player.TryMove(g.builder.Map, 1, 0)

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			return g.nextLevel(ctx, false)
		case 'l', 'L':
			return g.nextLevel(ctx, true)
		}
	}
	return nil
}
