package cave

import (
	"math"

	"github.com/vovakirdan/cavedash/internal/core"
)

// Camera computes the viewport offset that follows the player across a cave
// larger than the screen. Positions are fractional tile units.
//
// Two modes: Snap jumps straight to the target (level start and after each
// discrete player step, so the viewport never lags a move), Follow eases
// toward it at a rate proportional to elapsed time, clamped so a step never
// overshoots the target.
type Camera struct {
	X, Y float64 // current offset (top-left visible tile)

	targetX, targetY float64

	viewW, viewH int
	gridW, gridH int

	speed    float64 // gap fraction closed per second
	deadzone float64 // distance below which the camera is considered arrived
}

// NewCamera creates a camera for the given grid and viewport dimensions.
func NewCamera(gridW, gridH, viewW, viewH int, speed, deadzone float64) Camera {
	return Camera{
		gridW:    gridW,
		gridH:    gridH,
		viewW:    viewW,
		viewH:    viewH,
		speed:    speed,
		deadzone: deadzone,
	}
}

// SetViewport updates the viewport dimensions (screen resize).
func (c *Camera) SetViewport(w, h int) {
	c.viewW = w
	c.viewH = h
	c.retarget()
}

// maxX returns the largest legal offset on the x axis. Zero when the
// viewport is at least as wide as the grid.
func (c *Camera) maxX() float64 {
	return float64(core.Max(0, c.gridW-c.viewW))
}

func (c *Camera) maxY() float64 {
	return float64(core.Max(0, c.gridH-c.viewH))
}

// Aim sets the follow target to center the viewport on the player,
// clamped to the map bounds.
func (c *Camera) Aim(playerX, playerY int) {
	c.targetX = core.ClampF(float64(playerX)-float64(c.viewW)/2, 0, c.maxX())
	c.targetY = core.ClampF(float64(playerY)-float64(c.viewH)/2, 0, c.maxY())
}

// retarget re-clamps both current and target after a viewport change.
func (c *Camera) retarget() {
	c.targetX = core.ClampF(c.targetX, 0, c.maxX())
	c.targetY = core.ClampF(c.targetY, 0, c.maxY())
	c.X = core.ClampF(c.X, 0, c.maxX())
	c.Y = core.ClampF(c.Y, 0, c.maxY())
}

// Snap centers the viewport on the player instantly.
func (c *Camera) Snap(playerX, playerY int) {
	c.Aim(playerX, playerY)
	c.X = c.targetX
	c.Y = c.targetY
}

// Follow eases the viewport toward the player over dt seconds.
// Both axes are computed independently and re-clamped every step.
func (c *Camera) Follow(playerX, playerY int, dt float64) {
	c.Aim(playerX, playerY)
	c.X = c.followAxis(c.X, c.targetX, dt)
	c.Y = c.followAxis(c.Y, c.targetY, dt)
	c.X = core.ClampF(c.X, 0, c.maxX())
	c.Y = core.ClampF(c.Y, 0, c.maxY())
}

func (c *Camera) followAxis(cur, target, dt float64) float64 {
	delta := target - cur
	if math.Abs(delta) < c.deadzone {
		return cur
	}
	step := delta * c.speed * dt
	if math.Abs(step) > math.Abs(delta) {
		step = delta // never overshoot, no oscillation
	}
	return cur + step
}
