package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the player and a status line. When the map is taller
// than the terminal the view scrolls to keep the player visible.
func (r *Renderer) Render(m *world.Map, player *entity.Player, palette gamedata.Palette, status string) {
	r.screen.Clear()

	_, screenHeight := r.screen.Size()
	viewHeight := max(screenHeight-1, 1)
	offsetY := viewOffset(player.Y, m.Height, viewHeight)

	for y := 0; y < viewHeight && y+offsetY < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.GetTile(x, y+offsetY)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile, palette))
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(player.X, player.Y-offsetY, player.Symbol, playerStyle)

	r.screen.DrawText(0, viewHeight, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.Show()
}

// viewOffset returns the first map row to draw so that row y stays on screen.
func viewOffset(y, mapHeight, viewHeight int) int {
	if mapHeight <= viewHeight {
		return 0
	}
	offset := y - viewHeight/2
	return max(0, min(offset, mapHeight-viewHeight))
}

// tileStyle returns the style for a tile under the level palette.
func tileStyle(tile world.Tile, palette gamedata.Palette) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(palette.Wall)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(palette.Floor)
	default:
		return tcell.StyleDefault
	}
}
