package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the preview's per-frame input state.
type Input struct {
	// MoveX/MoveY are -1, 0 or +1 per axis.
	MoveX float64
	MoveY float64
	// ZoomIn/ZoomOut are true on the frame the key was pressed.
	ZoomIn  bool
	ZoomOut bool
	// Recenter is true on the frame R was pressed.
	Recenter bool
	// Fast is true while shift is held.
	Fast bool
	// MouseWorldX/Y are the cursor position in world coordinates (pixels).
	MouseWorldX float64
	MouseWorldY float64

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls keyboard, mouse and the first gamepad.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	vx, vy := i.camera.ViewTopLeft()
	i.MouseWorldX = vx + float64(mx)/i.camera.Zoom()
	i.MouseWorldY = vy + float64(my)/i.camera.Zoom()

	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		if leftY < -0.3 {
			moveY = -1
		} else if leftY > 0.3 {
			moveY = 1
		}
	}

	i.MoveX = moveX
	i.MoveY = moveY
	i.Fast = ebiten.IsKeyPressed(ebiten.KeyShift)
	i.ZoomIn = inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd)
	i.ZoomOut = inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract)
	i.Recenter = inpututil.IsKeyJustPressed(ebiten.KeyR)

	_, wheelY := ebiten.Wheel()
	if wheelY > 0 {
		i.ZoomIn = true
	} else if wheelY < 0 {
		i.ZoomOut = true
	}
}
