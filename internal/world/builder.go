package world

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// MapBuilder lays out one level: a wall-filled map, a set of rooms carved
// into it, corridors between them and the player's starting point.
type MapBuilder struct {
	Map           *Map
	Rooms         []Room // Accepted rooms in acceptance order
	StartingPoint Point  // Center of Rooms[0]
	Attempts      int    // Candidate rooms sampled by the last build

	params Params
	rng    RandomNumberGenerator
}

// NewMapBuilder creates a builder for the given level parameters. The random
// source is consumed in a fixed order, so equal seeds give equal levels.
func NewMapBuilder(params Params, rng RandomNumberGenerator) (*MapBuilder, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level parameters: %w", err)
	}
	return &MapBuilder{
		Map:    NewMap(params.Width, params.Height),
		Rooms:  make([]Room, 0, params.NumRooms),
		params: params,
		rng:    rng,
	}, nil
}

// Params returns the parameters the builder was created with.
func (b *MapBuilder) Params() Params {
	return b.params
}

// Build runs the three generation phases in order: fill the map with walls,
// place and carve rooms, then carve corridors.
func (b *MapBuilder) Build(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.build")
	defer span.End()

	startTime := time.Now()

	b.Rooms = b.Rooms[:0]
	b.Attempts = 0
	b.StartingPoint = Point{}

	b.fill(TileWall)

	if err := b.buildRandomRooms(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	b.buildCorridors()

	// Corridor carving sorts a copy, so Rooms[0] is still the first accepted room.
	b.StartingPoint = b.Rooms[0].Center()

	span.SetAttributes(
		attribute.Int("map.width", b.Map.Width),
		attribute.Int("map.height", b.Map.Height),
		attribute.Int("map.room_count", len(b.Rooms)),
		attribute.Int("map.attempts", b.Attempts),
		attribute.Int("map.floor_tiles", b.Map.CountTiles(TileFloor)),
		attribute.Int("map.reachable_rooms", b.ReachableRooms()),
		attribute.String("map.corridors", b.params.Corridors.String()),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

func (b *MapBuilder) fill(tile Tile) {
	b.Map.Fill(tile)
}

// buildRandomRooms samples candidate rooms until NumRooms of them have been
// accepted. Candidates whose center lies off the map are rejected like
// overlapping ones. Each candidate is drawn independently, so the loop ends with
// probability one as long as the rooms are small against the map; with
// MaxAttempts set it gives up instead.
func (b *MapBuilder) buildRandomRooms() error {
	maxX := b.params.originBoundX()
	maxY := b.params.originBoundY()

	for len(b.Rooms) < b.params.NumRooms {
		if b.params.MaxAttempts > 0 && b.Attempts >= b.params.MaxAttempts {
			return fmt.Errorf("%w: placed %d of %d rooms in %d attempts",
				ErrRoomQuota, len(b.Rooms), b.params.NumRooms, b.Attempts)
		}
		b.Attempts++

		x := b.rng.Range(1, maxX)
		y := b.rng.Range(1, maxY)
		w := b.rng.Range(b.params.MinRoomSize, b.params.MaxRoomSize)
		h := b.rng.Range(b.params.MinRoomSize, b.params.MaxRoomSize)
		room := NewRoom(x, y, w, h)

		// A room hanging off the map edge can have its center off the map,
		// and the first room's center becomes the starting point.
		if !b.Map.InBounds(room.Center()) || b.overlapsRoom(room) {
			continue
		}

		b.carveRoom(room)
		b.Rooms = append(b.Rooms, room)
	}
	return nil
}

func (b *MapBuilder) overlapsRoom(candidate Room) bool {
	for _, r := range b.Rooms {
		if r.Intersects(candidate) {
			return true
		}
	}
	return false
}

// carveRoom sets the room's tiles to floor. Row 0 is never carved so the
// top edge of the map stays solid.
func (b *MapBuilder) carveRoom(room Room) {
	room.ForEach(func(p Point) {
		if p.X >= 0 && p.X < b.Map.Width && p.Y > 0 && p.Y < b.Map.Height {
			b.Map.Tiles[b.Map.Idx(p.X, p.Y)] = TileFloor
		}
	})
}

// carveVerticalTunnel carves column x from min(y1, y2) up to but excluding max(y1, y2).
func (b *MapBuilder) carveVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y < max(y1, y2); y++ {
		b.carveTile(Point{X: x, Y: y})
	}
}

// carveHorizontalTunnel carves row y from min(x1, x2) up to but excluding max(x1, x2).
func (b *MapBuilder) carveHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x < max(x1, x2); x++ {
		b.carveTile(Point{X: x, Y: y})
	}
}

func (b *MapBuilder) carveTile(p Point) {
	if idx, ok := b.Map.TryIdx(p); ok {
		b.Map.Tiles[idx] = TileFloor
	}
}

// buildCorridors joins each room to its left neighbor. Sorting by center x
// keeps tunnels between rooms that are close together rather than across the map.
func (b *MapBuilder) buildCorridors() {
	rooms := slices.Clone(b.Rooms)
	slices.SortStableFunc(rooms, func(a, c Room) int {
		return cmp.Compare(a.Center().X, c.Center().X)
	})

	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		cur := rooms[i].Center()

		switch b.params.Corridors {
		case CorridorLShaped:
			b.carveLShapedTunnel(prev, cur)
		default:
			if b.rng.Range(0, 2) == 1 {
				b.carveHorizontalTunnel(prev.X, cur.X, prev.Y)
			}
		}
	}
}

// carveLShapedTunnel joins two points with one horizontal and one vertical leg.
// Both legs stop short of their far end, so the corner is carved on its own.
func (b *MapBuilder) carveLShapedTunnel(from, to Point) {
	if b.rng.Range(0, 2) == 0 {
		b.carveHorizontalTunnel(from.X, to.X, from.Y)
		b.carveVerticalTunnel(from.Y, to.Y, to.X)
		b.carveTile(Point{X: to.X, Y: from.Y})
	} else {
		b.carveVerticalTunnel(from.Y, to.Y, from.X)
		b.carveHorizontalTunnel(from.X, to.X, to.Y)
		b.carveTile(Point{X: from.X, Y: to.Y})
	}
}
