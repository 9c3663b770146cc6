package transform

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const degToRad = math32.Pi / 180

// Model builds the model matrix for one draw command from independent scale,
// per-axis rotation in degrees, a position and an additive offset. Applied to
// column vectors the composition is
//
//	Translate(position+offset) * RotZ * RotY * RotX * Scale
//
// i.e. scale first, then rotate about X, Y, Z in that order, then translate.
// The order is significant; swapping it changes the rendered scene for any
// rotated object. rl.MatrixMultiply composes left-to-right in application
// order, so the chain below reads bottom-up relative to the product above.
func Model(scale rl.Vector3, rotXDeg, rotYDeg, rotZDeg float32, position, offset rl.Vector3) rl.Matrix {
	m := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(rotXDeg*degToRad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(rotYDeg*degToRad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(rotZDeg*degToRad))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(
		position.X+offset.X,
		position.Y+offset.Y,
		position.Z+offset.Z,
	))
}
