package view

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/pipeline"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// View owns the camera and the projection mode and publishes the per-frame
// view state (view matrix, projection matrix, camera position) to the shading
// pipeline. The draw code consumes that state read-only.
type View struct {
	pipe         pipeline.Pipeline
	cam          Camera
	orthographic bool
	orthoScale   float32
}

// New returns a view with the reference camera pose, perspective projection,
// and the given orthographic half-height.
func New(pipe pipeline.Pipeline, orthoScale float32) *View {
	return &View{
		pipe:       pipe,
		cam:        newCamera(),
		orthoScale: orthoScale,
	}
}

// Camera exposes the owned camera by reference for components that need the
// current pose.
func (v *View) Camera() *Camera {
	return &v.cam
}

// Orthographic reports the current projection mode.
func (v *View) Orthographic() bool {
	return v.orthographic
}

// SetOrthographic selects the projection mode directly, bypassing input.
func (v *View) SetOrthographic(ortho bool) {
	v.orthographic = ortho
}

// Update polls input once per frame: WASD moves forward/back and strafes,
// Q/E moves up and down, the mouse looks around, the wheel zooms, and P/O
// select perspective or orthographic projection.
func (v *View) Update() {
	dt := rl.GetFrameTime()

	if rl.IsKeyDown(rl.KeyW) {
		v.cam.move(v.cam.Front, dt)
	}
	if rl.IsKeyDown(rl.KeyS) {
		v.cam.move(rl.Vector3Scale(v.cam.Front, -1), dt)
	}
	if rl.IsKeyDown(rl.KeyA) {
		v.cam.move(rl.Vector3Scale(v.cam.Right, -1), dt)
	}
	if rl.IsKeyDown(rl.KeyD) {
		v.cam.move(v.cam.Right, dt)
	}
	if rl.IsKeyDown(rl.KeyQ) {
		v.cam.move(v.cam.Up, dt)
	}
	if rl.IsKeyDown(rl.KeyE) {
		v.cam.move(rl.Vector3Scale(v.cam.Up, -1), dt)
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		// Screen Y grows downward; moving the mouse up should pitch up.
		v.cam.turn(delta.X, -delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.zoomBy(wheel)
	}

	if rl.IsKeyPressed(rl.KeyP) {
		v.orthographic = false
	}
	if rl.IsKeyPressed(rl.KeyO) {
		v.orthographic = true
	}
}

// PublishFrame pushes the view matrix, the projection matrix for the current
// mode and window size, and the camera position into the pipeline. Call once
// per frame before drawing.
func (v *View) PublishFrame(width, height int32) {
	if v.pipe == nil {
		return
	}
	aspect := float32(width) / float32(height)

	var projection rl.Matrix
	if v.orthographic {
		s := v.orthoScale
		projection = rl.MatrixOrtho(-s*aspect, s*aspect, -s, s, nearPlane, farPlane)
	} else {
		projection = rl.MatrixPerspective(v.cam.Zoom*degToRad, aspect, nearPlane, farPlane)
	}

	v.pipe.SetMat4("view", v.cam.ViewMatrix())
	v.pipe.SetMat4("projection", projection)
	v.pipe.SetVec3("viewPosition", v.cam.Position)
}
