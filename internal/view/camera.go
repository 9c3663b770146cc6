package view

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	degToRad = math32.Pi / 180
	pitchMax = 89.0
	zoomMin  = 1.0
	zoomMax  = 120.0
)

// Camera is a free-look camera defined by position, yaw/pitch orientation and
// a zoom (vertical field of view in degrees). It is owned by a View; nothing
// else holds a reference to it.
type Camera struct {
	Position rl.Vector3
	Front    rl.Vector3
	Up       rl.Vector3
	Right    rl.Vector3
	WorldUp  rl.Vector3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per pixel
	Zoom             float32 // vertical FOV in degrees
}

// newCamera returns the reference pose: above and in front of the table,
// looking down at it.
func newCamera() Camera {
	c := Camera{
		Position:         rl.NewVector3(0, 5, 12),
		WorldUp:          rl.NewVector3(0, 1, 0),
		MovementSpeed:    20,
		MouseSensitivity: 0.1,
		Zoom:             80,
	}
	c.lookAlong(rl.NewVector3(0, -0.5, -2))
	return c
}

// lookAlong orients the camera along the given direction, deriving yaw and
// pitch so subsequent mouse movement continues from the same orientation.
func (c *Camera) lookAlong(dir rl.Vector3) {
	n := rl.Vector3Normalize(dir)
	c.Pitch = math32.Asin(n.Y) / degToRad
	c.Yaw = math32.Atan2(n.Z, n.X) / degToRad
	c.updateVectors()
}

// updateVectors recomputes Front, Right and Up from yaw and pitch.
func (c *Camera) updateVectors() {
	yaw := c.Yaw * degToRad
	pitch := c.Pitch * degToRad
	c.Front = rl.Vector3Normalize(rl.NewVector3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	))
	c.Right = rl.Vector3Normalize(rl.Vector3CrossProduct(c.Front, c.WorldUp))
	c.Up = rl.Vector3Normalize(rl.Vector3CrossProduct(c.Right, c.Front))
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() rl.Matrix {
	return rl.MatrixLookAt(c.Position, rl.Vector3Add(c.Position, c.Front), c.Up)
}

// move translates the camera along one of its axes, scaled by delta time.
func (c *Camera) move(dir rl.Vector3, dt float32) {
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.MovementSpeed*dt))
}

// turn applies a mouse movement in pixels to yaw and pitch, clamping pitch so
// the view cannot flip over.
func (c *Camera) turn(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity
	if c.Pitch > pitchMax {
		c.Pitch = pitchMax
	}
	if c.Pitch < -pitchMax {
		c.Pitch = -pitchMax
	}
	c.updateVectors()
}

// zoomBy adjusts the field of view from mouse wheel movement.
func (c *Camera) zoomBy(amount float32) {
	c.Zoom -= amount
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
}
