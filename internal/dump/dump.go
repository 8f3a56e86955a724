// Package dump writes generated levels as plain or colored text.
package dump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Options controls how a level is written.
type Options struct {
	Color    bool   // Emit ANSI colors
	WallHex  string // Wall color, e.g. "#5A5A5A"
	FloorHex string // Floor color
}

// Write prints a short header followed by the map, one row per line, with
// the starting point marked '@'.
func Write(w io.Writer, b *world.MapBuilder, opts Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "size: %dx%d\n", b.Map.Width, b.Map.Height)
	fmt.Fprintf(bw, "rooms: %d (reachable from start: %d)\n", len(b.Rooms), b.ReachableRooms())
	fmt.Fprintf(bw, "attempts: %d\n", b.Attempts)
	fmt.Fprintf(bw, "start: %v\n", b.StartingPoint)
	fmt.Fprintln(bw)

	paint := newPainter(opts)
	for y, row := range b.Map.Rows() {
		for x, ch := range row {
			if x == b.StartingPoint.X && y == b.StartingPoint.Y {
				bw.WriteString(paint.player("@"))
				continue
			}
			bw.WriteString(paint.tile(world.Tile(ch)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

type painter struct {
	enabled bool
	wall    color.RGBColor
	floor   color.RGBColor
	hero    color.Style
}

func newPainter(opts Options) painter {
	p := painter{enabled: opts.Color}
	if p.enabled {
		p.wall = hexOr(opts.WallHex, "#5A5A5A")
		p.floor = hexOr(opts.FloorHex, "#A0A0A0")
		p.hero = color.Style{color.FgYellow, color.OpBold}
	}
	return p
}

func (p painter) tile(t world.Tile) string {
	s := string(t.Rune())
	if !p.enabled {
		return s
	}
	if t == world.TileFloor {
		return p.floor.Sprint(s)
	}
	return p.wall.Sprint(s)
}

func (p painter) player(s string) string {
	if !p.enabled {
		return s
	}
	return p.hero.Sprint(s)
}

func hexOr(hex, fallback string) color.RGBColor {
	if hex == "" {
		hex = fallback
	}
	return color.HEX(hex)
}
