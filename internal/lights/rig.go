package lights

import (
	"strconv"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/pipeline"
)

const degToRad = math32.Pi / 180

// Directional is a sun-like light affecting all objects regardless of
// distance.
type Directional struct {
	Direction rl.Vector3
	Ambient   rl.Vector3
	Diffuse   rl.Vector3
	Specular  rl.Vector3
	Active    bool
}

// Spot is a cone light with distance falloff. Cone angles are stored in
// degrees and published as cosines.
type Spot struct {
	Position       rl.Vector3
	Direction      rl.Vector3
	Ambient        rl.Vector3
	Diffuse        rl.Vector3
	Specular       rl.Vector3
	Constant       float32
	Linear         float32
	Quadratic      float32
	CutOffDeg      float32
	OuterCutOffDeg float32
	Active         bool
}

// Point is an omnidirectional light with distance falloff.
type Point struct {
	Position  rl.Vector3
	Ambient   rl.Vector3
	Diffuse   rl.Vector3
	Specular  rl.Vector3
	Constant  float32
	Linear    float32
	Quadratic float32
	Active    bool
}

// Rig is the scene's fixed set of light sources: one directional, one spot,
// two point lights. Configured once during setup and read-only while
// rendering; the Active flags exist so a light could be toggled later without
// changing the publish contract.
type Rig struct {
	Sun    Directional
	Lamp   Spot
	Points [2]Point
}

// DefaultRig returns the reference scene's lighting: sunlight from the upper
// right, a lamp spotlight pointing down and slightly forward, a neutral point
// light left of center and a reddish one on the right.
func DefaultRig() Rig {
	return Rig{
		Sun: Directional{
			Direction: rl.NewVector3(0.8, -0.6, -0.4),
			Ambient:   rl.NewVector3(0.1, 0.1, 0.1),
			Diffuse:   rl.NewVector3(0.9, 0.9, 0.8),
			Specular:  rl.NewVector3(1.0, 1.0, 1.0),
			Active:    true,
		},
		Lamp: Spot{
			Position:       rl.NewVector3(0.0, 11.0, 1.0),
			Direction:      rl.NewVector3(0.0, -1.0, -0.2),
			Ambient:        rl.NewVector3(0.5, 0.5, 0.5),
			Diffuse:        rl.NewVector3(0.9, 0.9, 0.9),
			Specular:       rl.NewVector3(0.6, 0.6, 0.6),
			Constant:       1.0,
			Linear:         0.07,
			Quadratic:      0.017,
			CutOffDeg:      12.0,
			OuterCutOffDeg: 15.0,
			Active:         true,
		},
		Points: [2]Point{
			{
				Position:  rl.NewVector3(-4.0, 1.5, 2.5),
				Ambient:   rl.NewVector3(0.05, 0.05, 0.05),
				Diffuse:   rl.NewVector3(0.6, 0.6, 0.6),
				Specular:  rl.NewVector3(0.8, 0.8, 0.8),
				Constant:  1.0,
				Linear:    0.09,
				Quadratic: 0.032,
				Active:    true,
			},
			{
				Position:  rl.NewVector3(4.0, 1.0, -2.0),
				Ambient:   rl.NewVector3(0.02, 0.01, 0.01),
				Diffuse:   rl.NewVector3(0.5, 0.2, 0.2),
				Specular:  rl.NewVector3(0.6, 0.3, 0.3),
				Constant:  1.0,
				Linear:    0.1,
				Quadratic: 0.05,
				Active:    true,
			},
		},
	}
}

// Configure publishes the full rig as named uniform groups and enables
// lighting. Idempotent: every call publishes identical values.
func (r Rig) Configure(pipe pipeline.Pipeline) {
	if pipe == nil {
		return
	}
	pipe.SetBool("bUseLighting", true)

	pipe.SetVec3("directionalLight.direction", r.Sun.Direction)
	pipe.SetVec3("directionalLight.ambient", r.Sun.Ambient)
	pipe.SetVec3("directionalLight.diffuse", r.Sun.Diffuse)
	pipe.SetVec3("directionalLight.specular", r.Sun.Specular)
	pipe.SetBool("directionalLight.bActive", r.Sun.Active)

	pipe.SetVec3("spotLight.position", r.Lamp.Position)
	pipe.SetVec3("spotLight.direction", r.Lamp.Direction)
	pipe.SetVec3("spotLight.ambient", r.Lamp.Ambient)
	pipe.SetVec3("spotLight.diffuse", r.Lamp.Diffuse)
	pipe.SetVec3("spotLight.specular", r.Lamp.Specular)
	pipe.SetFloat("spotLight.constant", r.Lamp.Constant)
	pipe.SetFloat("spotLight.linear", r.Lamp.Linear)
	pipe.SetFloat("spotLight.quadratic", r.Lamp.Quadratic)
	pipe.SetFloat("spotLight.cutOff", math32.Cos(r.Lamp.CutOffDeg*degToRad))
	pipe.SetFloat("spotLight.outerCutOff", math32.Cos(r.Lamp.OuterCutOffDeg*degToRad))
	pipe.SetBool("spotLight.bActive", r.Lamp.Active)

	for i, p := range r.Points {
		prefix := "pointLights[" + strconv.Itoa(i) + "]."
		pipe.SetVec3(prefix+"position", p.Position)
		pipe.SetVec3(prefix+"ambient", p.Ambient)
		pipe.SetVec3(prefix+"diffuse", p.Diffuse)
		pipe.SetVec3(prefix+"specular", p.Specular)
		pipe.SetFloat(prefix+"constant", p.Constant)
		pipe.SetFloat(prefix+"linear", p.Linear)
		pipe.SetFloat(prefix+"quadratic", p.Quadratic)
		pipe.SetBool(prefix+"bActive", p.Active)
	}
}
