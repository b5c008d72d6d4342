package cave

import (
	"fmt"

	"github.com/vovakirdan/cavedash/internal/core"
)

// Player walk frames, mirrored by facing direction.
var playerFramesRight = [4]rune{'>', ')', '>', ']'}
var playerFramesLeft = [4]rune{'<', '(', '<', '['}

// Render draws the full frame: HUD, the camera-clipped cave viewport,
// the player, the explosion rings and any terminal overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderCave(dst)
	g.renderPlayer(dst)
	g.renderExplosion(dst)

	switch {
	case g.state == StateWon:
		g.renderOverlay(dst, "Cave cleared!", fmt.Sprintf("Final Score: %d", g.score))
	case g.state == StateLost && g.explosion.Done():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: score, diamond progress and the
// countdown. The time readout turns red and blinks once the timer enters
// its warning phase.
func (g *Game) renderHUD(dst *core.Screen) {
	// ASCII only: the badge offset below is computed with len.
	hud := fmt.Sprintf(" %s - Score: %d  Diamonds: %d/%d", g.Title(), g.score, g.diamonds, g.diamondsRequired)
	dst.DrawText(0, 0, hud)
	if g.exitRevealed && g.state == StatePlaying {
		dst.DrawTextColored(len(hud)+2, 0, "Exit open!", core.ColorBrightGreen)
	}

	clock := fmt.Sprintf("Time: %3d ", g.timer.Remaining)
	clockX := dst.Width() - len(clock)
	switch g.timer.Phase() {
	case TimerWarning:
		// Blink on a half-second cadence.
		if int(g.clockMS/500)%2 == 0 {
			dst.DrawTextColored(clockX, 0, clock, core.ColorBrightRed)
		}
	case TimerExpired:
		dst.DrawTextColored(clockX, 0, clock, core.ColorRed)
	default:
		dst.DrawText(clockX, 0, clock)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, g.hudHeight-1, '─')
	}
}

// renderCave draws the visible slice of the grid at the camera offset.
// The camera position is fractional; tiles snap to the containing cell.
func (g *Game) renderCave(dst *core.Screen) {
	camX := int(g.camera.X)
	camY := int(g.camera.Y)

	for vy := 0; vy < g.viewH; vy++ {
		for vx := 0; vx < g.viewW; vx++ {
			t := g.grid.Get(camX+vx, camY+vy)
			r, c := tileGlyph(t)
			if r == ' ' {
				continue
			}
			dst.SetCell(g.mapOffsetX+vx, g.mapOffsetY+vy, r, c)
		}
	}
}

// tileGlyph maps a tile to its glyph and color. Exhaustive over tile kinds.
func tileGlyph(t Tile) (rune, core.Color) {
	switch t {
	case TileWall:
		return '#', core.ColorGray
	case TileDirt:
		return '▒', core.ColorYellow
	case TileBoulder:
		return 'O', core.ColorWhite
	case TileDiamond:
		return '◆', core.ColorBrightCyan
	case TileExit:
		return 'X', core.ColorBrightGreen
	default:
		return ' ', core.ColorDefault
	}
}

// renderPlayer draws the digger with its current walk frame, if visible.
// The corpse is not drawn; the explosion takes over on death.
func (g *Game) renderPlayer(dst *core.Screen) {
	if g.state == StateLost {
		return
	}
	camX := int(g.camera.X)
	camY := int(g.camera.Y)
	vx := g.player.X - camX
	vy := g.player.Y - camY
	if vx < 0 || vx >= g.viewW || vy < 0 || vy >= g.viewH {
		return
	}

	frames := playerFramesRight
	if g.player.FacingLeft {
		frames = playerFramesLeft
	}
	dst.SetCell(g.mapOffsetX+vx, g.mapOffsetY+vy, frames[g.player.AnimPhase%4], core.ColorBrightYellow)
}

// renderExplosion overlays the blast ring on top of the cave.
func (g *Game) renderExplosion(dst *core.Screen) {
	if !g.explosion.Active || g.explosion.Done() {
		return
	}
	camX := int(g.camera.X)
	camY := int(g.camera.Y)

	r := g.explosion.Radius
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			x := g.explosion.OriginX + dx
			y := g.explosion.OriginY + dy
			if g.grid.Get(x, y) == TileWall {
				continue
			}
			vx := x - camX
			vy := y - camY
			if vx < 0 || vx >= g.viewW || vy < 0 || vy >= g.viewH {
				continue
			}
			glyph := '*'
			if (dx+dy+g.explosion.Frame)%2 == 0 {
				glyph = '+'
			}
			dst.SetCell(g.mapOffsetX+vx, g.mapOffsetY+vy, glyph, core.ColorBrightRed)
		}
	}
}

// renderOverlay draws a centered message box on top of the frame.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
