package world

import (
	"context"
	"errors"
	"testing"
)

func TestBuildDefaultLevel(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345, 987654321} {
		b := newTestBuilder(t, DefaultParams(), NewRand(seed))
		if err := b.Build(context.Background()); err != nil {
			t.Fatalf("seed %d: Build() error = %v", seed, err)
		}

		if len(b.Rooms) < DefaultNumRooms {
			t.Errorf("seed %d: got %d rooms, want at least %d", seed, len(b.Rooms), DefaultNumRooms)
		}
		if b.Map.CountTiles(TileFloor) == 0 {
			t.Errorf("seed %d: map has no floor tiles", seed)
		}
		if !b.Map.IsPassable(b.StartingPoint.X, b.StartingPoint.Y) {
			t.Errorf("seed %d: starting point %v is not floor", seed, b.StartingPoint)
		}
		if b.StartingPoint != b.Rooms[0].Center() {
			t.Errorf("seed %d: starting point %v, want first room center %v",
				seed, b.StartingPoint, b.Rooms[0].Center())
		}
		if b.Attempts < len(b.Rooms) {
			t.Errorf("seed %d: Attempts = %d, fewer than rooms placed", seed, b.Attempts)
		}
	}
}

func TestBuildRoomsDoNotIntersect(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), NewRand(7))
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i := range b.Rooms {
		for j := range b.Rooms {
			if i != j && b.Rooms[i].Intersects(b.Rooms[j]) {
				t.Errorf("rooms %d %+v and %d %+v intersect", i, b.Rooms[i], j, b.Rooms[j])
			}
		}
	}
}

func TestBuildCarvesRoomsInsidePlayableBounds(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), NewRand(99))
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for x := 0; x < b.Map.Width; x++ {
		if b.Map.GetTile(x, 0) != TileWall {
			t.Errorf("tile (%d,0) is floor, row 0 must stay wall", x)
		}
	}

	for i, room := range b.Rooms {
		room.ForEach(func(p Point) {
			if p.Y <= 0 || !b.Map.InBounds(p) {
				return
			}
			if b.Map.GetTile(p.X, p.Y) != TileFloor {
				t.Errorf("room %d tile %v is not floor", i, p)
			}
		})
	}
}

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)

	b1 := newTestBuilder(t, DefaultParams(), NewRand(seed))
	b2 := newTestBuilder(t, DefaultParams(), NewRand(seed))

	ctx := context.Background()
	if err := b1.Build(ctx); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := b2.Build(ctx); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(b1.Rooms) != len(b2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(b1.Rooms), len(b2.Rooms))
	}
	for i := range b1.Rooms {
		if b1.Rooms[i] != b2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, b1.Rooms[i], b2.Rooms[i])
		}
	}
	for i := range b1.Map.Tiles {
		if b1.Map.Tiles[i] != b2.Map.Tiles[i] {
			t.Errorf("Tile mismatch at %v: %q != %q", b1.Map.PointAt(i), b1.Map.Tiles[i], b2.Map.Tiles[i])
		}
	}
	if b1.StartingPoint != b2.StartingPoint {
		t.Errorf("StartingPoint mismatch: %v != %v", b1.StartingPoint, b2.StartingPoint)
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	b1 := newTestBuilder(t, DefaultParams(), NewRand(12345))
	b2 := newTestBuilder(t, DefaultParams(), NewRand(54321))

	ctx := context.Background()
	if err := b1.Build(ctx); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := b2.Build(ctx); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	identical := true
	for i := range b1.Rooms {
		if b1.Rooms[i] != b2.Rooms[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestBuildTwiceStartsOver(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), NewRand(3))
	ctx := context.Background()

	if err := b.Build(ctx); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	if err := b.Build(ctx); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	if len(b.Rooms) != DefaultNumRooms {
		t.Errorf("second Build() left %d rooms, want %d", len(b.Rooms), DefaultNumRooms)
	}
}

func TestOverlappingCandidateIsNotCarved(t *testing.T) {
	params := DefaultParams()
	params.NumRooms = 2

	// First candidate (0,0) 5x5 overlaps the accepted room; second is clear.
	rng := &scriptedRNG{values: []int{0, 0, 5, 5, 20, 20, 3, 3}}
	b := newTestBuilder(t, params, rng)

	accepted := NewRoom(2, 2, 5, 5)
	b.carveRoom(accepted)
	b.Rooms = append(b.Rooms, accepted)

	if err := b.buildRandomRooms(); err != nil {
		t.Fatalf("buildRandomRooms() error = %v", err)
	}

	if b.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", b.Attempts)
	}
	if len(b.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(b.Rooms))
	}
	if want := NewRoom(20, 20, 3, 3); b.Rooms[1] != want {
		t.Errorf("Rooms[1] = %+v, want %+v", b.Rooms[1], want)
	}

	candidate := NewRoom(0, 0, 5, 5)
	candidate.ForEach(func(p Point) {
		if accepted.Contains(p.X, p.Y) {
			return
		}
		if b.Map.GetTile(p.X, p.Y) != TileWall {
			t.Errorf("rejected candidate tile %v was carved", p)
		}
	})
}

func TestCarveRoomClipsToPlayableBounds(t *testing.T) {
	params := DefaultParams()
	b := newTestBuilder(t, params, constRNG(0))

	b.carveRoom(NewRoom(-2, 0, 4, 3))
	b.carveRoom(NewRoom(78, 48, 5, 5))

	want := map[Point]bool{
		{X: 0, Y: 1}: true, {X: 1, Y: 1}: true, {X: 0, Y: 2}: true, {X: 1, Y: 2}: true,
		{X: 78, Y: 48}: true, {X: 79, Y: 48}: true, {X: 78, Y: 49}: true, {X: 79, Y: 49}: true,
	}
	for i, tile := range b.Map.Tiles {
		p := b.Map.PointAt(i)
		if (tile == TileFloor) != want[p] {
			t.Errorf("tile %v = %q, want floor=%v", p, tile, want[p])
		}
	}
}

func TestCorridorBetweenAdjacentRooms(t *testing.T) {
	left := NewRoom(3, 3, 4, 4)
	right := NewRoom(13, 3, 4, 4)

	tests := []struct {
		name  string
		draw  int
		carve bool
	}{
		{"draw 1 carves", 1, true},
		{"draw 0 skips", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t, DefaultParams(), constRNG(tt.draw))
			for _, r := range []Room{right, left} {
				b.carveRoom(r)
				b.Rooms = append(b.Rooms, r)
			}

			b.buildCorridors()

			for x := 5; x <= 15; x++ {
				got := b.Map.GetTile(x, 5)
				inRoom := left.Contains(x, 5) || right.Contains(x, 5)
				if (tt.carve || inRoom) && got != TileFloor {
					t.Errorf("tile (%d,5) = %q, want floor", x, got)
				}
				if !tt.carve && !inRoom && got != TileWall {
					t.Errorf("tile (%d,5) = %q, want wall", x, got)
				}
			}

			if b.Rooms[0] != right || b.Rooms[1] != left {
				t.Errorf("buildCorridors reordered Rooms: %+v", b.Rooms)
			}
		})
	}
}

func TestCorridorsFollowCenterOrder(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), constRNG(1))
	rooms := []Room{
		NewRoom(40, 10, 4, 4), // center (42,12)
		NewRoom(2, 30, 4, 4),  // center (4,32)
		NewRoom(20, 2, 4, 4),  // center (22,4)
	}
	b.Rooms = append(b.Rooms, rooms...)

	b.buildCorridors()

	// Sorted order is (4,32) -> (22,4) -> (42,12); each tunnel runs on its left room's row.
	for x := 4; x < 22; x++ {
		if b.Map.GetTile(x, 32) != TileFloor {
			t.Errorf("tile (%d,32) not carved", x)
		}
	}
	for x := 22; x < 42; x++ {
		if b.Map.GetTile(x, 4) != TileFloor {
			t.Errorf("tile (%d,4) not carved", x)
		}
	}
	if got, want := b.Map.CountTiles(TileFloor), 18+20; got != want {
		t.Errorf("CountTiles(TileFloor) = %d, want %d", got, want)
	}
}

func TestTunnelsSkipOutOfBounds(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), constRNG(0))

	b.carveHorizontalTunnel(-5, 100, 3)
	b.carveVerticalTunnel(100, -5, 79)
	b.carveHorizontalTunnel(0, 10, -1)
	b.carveVerticalTunnel(0, 10, DefaultWidth)

	for x := 0; x < DefaultWidth; x++ {
		if b.Map.GetTile(x, 3) != TileFloor {
			t.Errorf("tile (%d,3) not carved", x)
		}
	}
	for y := 0; y < DefaultHeight; y++ {
		if b.Map.GetTile(79, y) != TileFloor {
			t.Errorf("tile (79,%d) not carved", y)
		}
	}
	if got, want := b.Map.CountTiles(TileFloor), DefaultWidth+DefaultHeight-1; got != want {
		t.Errorf("CountTiles(TileFloor) = %d, want %d", got, want)
	}
}

func TestTunnelExcludesFarEndpoint(t *testing.T) {
	b := newTestBuilder(t, DefaultParams(), constRNG(0))

	b.carveHorizontalTunnel(10, 4, 8)
	if b.Map.GetTile(4, 8) != TileFloor || b.Map.GetTile(9, 8) != TileFloor {
		t.Error("horizontal tunnel should cover [4, 10)")
	}
	if b.Map.GetTile(10, 8) != TileWall {
		t.Error("horizontal tunnel should stop before x=10")
	}

	b.carveVerticalTunnel(6, 6, 30)
	if b.Map.GetTile(30, 6) != TileWall {
		t.Error("zero-length vertical tunnel should carve nothing")
	}
}

func TestMaxAttemptsStopsPlacement(t *testing.T) {
	params := DefaultParams()
	params.MaxAttempts = 3

	// Every candidate is the same room, so only the first is accepted.
	b := newTestBuilder(t, params, constRNG(5))
	err := b.Build(context.Background())

	if !errors.Is(err, ErrRoomQuota) {
		t.Fatalf("Build() error = %v, want ErrRoomQuota", err)
	}
	if len(b.Rooms) != 1 {
		t.Errorf("got %d rooms, want 1", len(b.Rooms))
	}
	if b.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", b.Attempts)
	}
}

func TestLShapedCorridorsConnectEveryRoom(t *testing.T) {
	params := DefaultParams()
	params.Corridors = CorridorLShaped

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		b := newTestBuilder(t, params, NewRand(seed))
		if err := b.Build(context.Background()); err != nil {
			t.Fatalf("seed %d: Build() error = %v", seed, err)
		}
		if got := b.ReachableRooms(); got != len(b.Rooms) {
			t.Errorf("seed %d: ReachableRooms() = %d, want %d", seed, got, len(b.Rooms))
		}
	}
}

func TestLShapedTunnelCarvesCorner(t *testing.T) {
	for _, draw := range []int{0, 1} {
		b := newTestBuilder(t, DefaultParams(), constRNG(draw))
		from, to := Point{X: 20, Y: 30}, Point{X: 5, Y: 10}
		b.carveTile(from)
		b.carveTile(to)

		b.carveLShapedTunnel(from, to)

		if !b.Map.Reachable(from).Has(to) {
			t.Errorf("draw %d: %v not reachable from %v", draw, to, from)
		}
	}
}

func TestNewMapBuilderRejectsBadParams(t *testing.T) {
	params := DefaultParams()
	params.MaxRoomSize = params.MinRoomSize

	if _, err := NewMapBuilder(params, NewRand(1)); err == nil {
		t.Error("NewMapBuilder() with empty room size range should fail")
	}
}

func TestCandidateWithCenterOffMapIsRejected(t *testing.T) {
	params := Params{Width: 20, Height: 20, NumRooms: 1, MinRoomSize: 2, MaxRoomSize: 10, Spread: 1.0}

	// (19,19) 9x9 has its center at (23,23), past both edges.
	rng := &scriptedRNG{values: []int{19, 19, 9, 9, 5, 5, 4, 4}}
	b := newTestBuilder(t, params, rng)
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if b.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", b.Attempts)
	}
	if want := NewRoom(5, 5, 4, 4); len(b.Rooms) != 1 || b.Rooms[0] != want {
		t.Fatalf("Rooms = %+v, want [%+v]", b.Rooms, want)
	}
	if !b.Map.IsPassable(b.StartingPoint.X, b.StartingPoint.Y) {
		t.Errorf("starting point %v is not floor", b.StartingPoint)
	}
	if b.Map.GetTile(19, 19) != TileWall {
		t.Error("rejected candidate at (19,19) was carved")
	}
}

func TestFullSpreadStartIsFloor(t *testing.T) {
	params := Params{Width: 20, Height: 20, NumRooms: 3, MinRoomSize: 2, MaxRoomSize: 10, Spread: 1.0}

	for seed := int64(1); seed <= 50; seed++ {
		b := newTestBuilder(t, params, NewRand(seed))
		if err := b.Build(context.Background()); err != nil {
			t.Fatalf("seed %d: Build() error = %v", seed, err)
		}
		if !b.Map.IsPassable(b.StartingPoint.X, b.StartingPoint.Y) {
			t.Errorf("seed %d: starting point %v is not floor", seed, b.StartingPoint)
		}
		for i, r := range b.Rooms {
			if !b.Map.InBounds(r.Center()) {
				t.Errorf("seed %d: room %d center %v off the map", seed, i, r.Center())
			}
		}
	}
}
