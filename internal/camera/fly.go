package camera

import (
	"math"

	"vox-slice/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FlyCamera is a free-flight observer: mouse look plus WASD movement along
// the view direction, with a shift speed boost.
type FlyCamera struct {
	Position mgl32.Vec3
	CamYaw   float64 // degrees, 0 looks toward +X
	CamPitch float64 // degrees, clamped to +-89

	FirstMouse bool
	LastMouseX float64
	LastMouseY float64
}

func New(pos mgl32.Vec3, yaw, pitch float64) *FlyCamera {
	return &FlyCamera{
		Position:   pos,
		CamYaw:     yaw,
		CamPitch:   pitch,
		FirstMouse: true,
	}
}

// HandleMouseMovement applies a cursor-position event to yaw/pitch.
func (c *FlyCamera) HandleMouseMovement(xpos, ypos float64) {
	if c.FirstMouse {
		c.LastMouseX = xpos
		c.LastMouseY = ypos
		c.FirstMouse = false
		return
	}

	xoffset := xpos - c.LastMouseX
	yoffset := c.LastMouseY - ypos
	c.LastMouseX = xpos
	c.LastMouseY = ypos

	sensitivity := config.GetMouseSensitivity()
	xoffset *= sensitivity
	yoffset *= sensitivity

	c.CamYaw += xoffset
	c.CamPitch += yoffset

	// Constrain pitch
	if c.CamPitch > 89.0 {
		c.CamPitch = 89.0
	}
	if c.CamPitch < -89.0 {
		c.CamPitch = -89.0
	}
}

// Update moves the camera from the currently held keys.
func (c *FlyCamera) Update(dt float64, window *glfw.Window) {
	front := c.GetFrontVector()
	right := front.Cross(worldUp).Normalize()

	var delta mgl32.Vec3
	if window.GetKey(glfw.KeyW) == glfw.Press {
		delta = delta.Add(front)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		delta = delta.Sub(front)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		delta = delta.Sub(right)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		delta = delta.Add(right)
	}
	if delta.Len() == 0 {
		return
	}
	delta = delta.Normalize()

	speed := config.GetMoveSpeed()
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		speed *= config.GetShiftMultiplier()
	}
	c.Position = c.Position.Add(delta.Mul(speed * float32(dt)))
}

func (c *FlyCamera) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.CamYaw))
	pt := mgl32.DegToRad(float32(c.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (c *FlyCamera) GetViewMatrix() mgl32.Mat4 {
	front := c.GetFrontVector()
	return mgl32.LookAtV(c.Position, c.Position.Add(front), worldUp)
}
