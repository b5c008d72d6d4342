package cave

import (
	"math"
	"testing"
)

func TestCameraSnapCenters(t *testing.T) {
	c := NewCamera(60, 34, 20, 10, 8.0, 0.01)

	c.Snap(30, 17)
	if c.X != 20 || c.Y != 12 {
		t.Errorf("snap to center: offset (%v,%v), want (20,12)", c.X, c.Y)
	}
}

func TestCameraSnapClampsToBounds(t *testing.T) {
	c := NewCamera(60, 34, 20, 10, 8.0, 0.01)

	c.Snap(1, 1)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("snap near origin: offset (%v,%v), want (0,0)", c.X, c.Y)
	}

	c.Snap(58, 32)
	if c.X != 40 || c.Y != 24 {
		t.Errorf("snap near far corner: offset (%v,%v), want (40,24)", c.X, c.Y)
	}
}

func TestCameraFollowConvergesWithoutOvershoot(t *testing.T) {
	c := NewCamera(100, 100, 20, 10, 8.0, 0.01)
	c.Snap(10, 10)

	target := 40.0 // player at 50: offset 50-10
	prevGap := math.Abs(target - c.X)
	for i := 0; i < 300; i++ {
		c.Follow(50, 50, 1.0/60)
		gap := math.Abs(target - c.X)
		if gap > prevGap+1e-9 {
			t.Fatalf("follow diverged at step %d: gap %v -> %v", i, prevGap, gap)
		}
		prevGap = gap
	}
	if prevGap >= 0.01 {
		t.Errorf("camera did not converge: gap %v", prevGap)
	}
}

func TestCameraFollowLargeStepLandsExactly(t *testing.T) {
	c := NewCamera(100, 100, 20, 10, 8.0, 0.01)
	c.Snap(10, 10)

	// speed * dt > 1 would overshoot without clamping.
	c.Follow(50, 50, 1.0)
	if c.X != 40 || c.Y != 45 {
		t.Errorf("large follow step: offset (%v,%v), want exactly (40,45)", c.X, c.Y)
	}
}

func TestCameraDeadzoneStopsJitter(t *testing.T) {
	c := NewCamera(100, 100, 20, 10, 8.0, 0.5)
	c.Snap(50, 50)
	c.X += 0.3 // inside deadzone

	before := c.X
	c.Follow(50, 50, 1.0/60)
	if c.X != before {
		t.Errorf("camera moved inside the deadzone: %v -> %v", before, c.X)
	}
}

func TestCameraSmallGridPinsToOrigin(t *testing.T) {
	c := NewCamera(10, 8, 40, 20, 8.0, 0.01)

	c.Snap(5, 4)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("viewport larger than grid: offset (%v,%v), want (0,0)", c.X, c.Y)
	}
	for i := 0; i < 100; i++ {
		c.Follow(9, 7, 1.0/60)
	}
	if c.X != 0 || c.Y != 0 {
		t.Errorf("follow drifted on a small grid: (%v,%v)", c.X, c.Y)
	}
}

func TestCameraSetViewportReclamps(t *testing.T) {
	c := NewCamera(60, 34, 20, 10, 8.0, 0.01)
	c.Snap(58, 32) // offset (40, 24)

	c.SetViewport(60, 34)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("resize to full grid: offset (%v,%v), want (0,0)", c.X, c.Y)
	}
}
