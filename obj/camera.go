package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/randomtile/common"
)

// Camera pans over an unbounded grid, centered on a world coordinate, with
// zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
}

// NewCamera creates a camera with the given logical screen size and initial
// zoom, centered on world origin.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.off = nil
}

// SetSmooth sets the follow factor, clamped to [0, 1]. 0 snaps.
func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.smooth = f
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW, viewH := c.ViewSize()
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// ViewSize returns the world-space size of the current view.
func (c *Camera) ViewSize() (float64, float64) {
	return float64(c.screenW) / c.zoom, float64(c.screenH) / c.zoom
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.snap()
}

// SnapTo immediately centers the camera on the given world coordinate.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.snap()
}

// snap position to 1/zoom grid to align source texels to integer screen pixels
func (c *Camera) snap() {
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
}

// Render lets drawWorld paint the view into an offscreen image sized to the
// screen, then copies it to screen. drawWorld should offset by ViewTopLeft.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
