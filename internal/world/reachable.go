package world

import "github.com/zyedidia/generic/mapset"

var neighborOffsets = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Reachable returns every passable tile connected to start through
// orthogonal steps. The set is empty if start is not passable.
func (m *Map) Reachable(start Point) mapset.Set[Point] {
	reachable := mapset.New[Point]()
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || !m.IsPassable(current.X, current.Y) {
			continue
		}
		reachable.Put(current)

		for _, d := range neighborOffsets {
			n := current.Add(d.X, d.Y)
			if !reachable.Has(n) && m.IsPassable(n.X, n.Y) {
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// ReachableRooms counts the rooms whose center can be walked to from the
// starting point. With horizontal corridors this is often less than len(Rooms).
func (b *MapBuilder) ReachableRooms() int {
	if len(b.Rooms) == 0 {
		return 0
	}
	reachable := b.Map.Reachable(b.StartingPoint)
	count := 0
	for _, r := range b.Rooms {
		if reachable.Has(r.Center()) {
			count++
		}
	}
	return count
}
