// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-ocean/pkg/math"
)

// Turntable looks at the origin from a point on a horizontal circle. While
// rotating it follows the orbit circle with elapsed time; when rotation stops
// it keeps its last position.
type Turntable struct {
	// Orbit used while rotating
	OrbitRadius float32
	OrbitHeight float32
	Speed       float32 // Radians per second

	// Projection
	FOV  float32 // Vertical field of view in degrees
	Near float32
	Far  float32

	rotating bool
	position math.Vec3
}

// Params holds the values a Turntable is created from.
type Params struct {
	Radius      float32 // Initial distance from the origin
	Height      float32 // Initial height
	OrbitRadius float32
	OrbitHeight float32
	Speed       float32
	FOV         float32
	Near        float32
	Far         float32
}

// NewTurntable creates a camera at angle zero on the initial circle.
func NewTurntable(p Params) *Turntable {
	return &Turntable{
		OrbitRadius: p.OrbitRadius,
		OrbitHeight: p.OrbitHeight,
		Speed:       p.Speed,
		FOV:         p.FOV,
		Near:        p.Near,
		Far:         p.Far,
		position:    circlePoint(0, p.Radius, p.Height),
	}
}

func circlePoint(angle, radius, height float32) math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Sin(float64(angle))) * radius,
		Y: height,
		Z: float32(gomath.Cos(float64(angle))) * radius,
	}
}

// SetRotating starts or stops the orbit.
func (c *Turntable) SetRotating(on bool) {
	c.rotating = on
}

// Rotating reports whether the camera is orbiting.
func (c *Turntable) Rotating() bool {
	return c.rotating
}

// Update moves the camera along the orbit for the given elapsed time.
func (c *Turntable) Update(elapsed float64) {
	if !c.rotating {
		return
	}
	c.position = circlePoint(float32(elapsed)*c.Speed, c.OrbitRadius, c.OrbitHeight)
}

// Position returns the camera position in world space.
func (c *Turntable) Position() math.Vec3 {
	return c.position
}

// ViewMatrix returns the view matrix looking at the origin, Y up.
func (c *Turntable) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns the perspective projection for the given
// framebuffer size. A zero height is treated as one pixel.
func (c *Turntable) ProjectionMatrix(width, height int) math.Mat4 {
	if height <= 0 {
		height = 1
	}
	fovY := c.FOV * gomath.Pi / 180
	return math.Perspective(fovY, float32(width)/float32(height), c.Near, c.Far)
}
