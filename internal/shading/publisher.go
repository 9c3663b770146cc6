package shading

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/logger"
	"scene-viewer/internal/materials"
	"scene-viewer/internal/pipeline"
	"scene-viewer/internal/textures"
	"scene-viewer/internal/transform"
)

// Publisher is the thin contract between draw code and the shading pipeline.
// Every method is a one-way publish: no return value, no-op when the pipeline
// handle is absent, and lookup misses degrade with a logged warning instead of
// failing the frame. Published state stays current until the next publish, so
// consecutive draws may deliberately share it.
type Publisher struct {
	pipe      pipeline.Pipeline
	textures  *textures.Registry
	materials *materials.Catalog
	log       *logger.Logger
}

// NewPublisher wires the publisher to its pipeline and lookup tables. pipe may
// be nil, in which case every publish is a no-op.
func NewPublisher(pipe pipeline.Pipeline, tex *textures.Registry, mats *materials.Catalog, log *logger.Logger) *Publisher {
	return &Publisher{pipe: pipe, textures: tex, materials: mats, log: log}
}

// SetTransform publishes the model matrix for scale, per-axis rotation in
// degrees, and position.
func (p *Publisher) SetTransform(scale rl.Vector3, rotXDeg, rotYDeg, rotZDeg float32, position rl.Vector3) {
	p.SetTransformOffset(scale, rotXDeg, rotYDeg, rotZDeg, position, rl.Vector3{})
}

// SetTransformOffset is SetTransform with an additive offset from an anchor
// point, used to position assembly sub-parts.
func (p *Publisher) SetTransformOffset(scale rl.Vector3, rotXDeg, rotYDeg, rotZDeg float32, position, offset rl.Vector3) {
	if p.pipe == nil {
		return
	}
	p.pipe.SetMat4("model", transform.Model(scale, rotXDeg, rotYDeg, rotZDeg, position, offset))
}

// SetColor publishes a flat color and disables texturing.
func (p *Publisher) SetColor(red, green, blue, alpha float32) {
	if p.pipe == nil {
		return
	}
	p.pipe.SetBool("bUseTexture", false)
	p.pipe.SetVec4("objectColor", rl.NewVector4(red, green, blue, alpha))
}

// SetTexture enables texturing with the texture registered under tag. An
// unregistered tag logs a warning and leaves texturing disabled.
func (p *Publisher) SetTexture(tag string) {
	if p.pipe == nil {
		return
	}
	p.pipe.SetBool("bUseTexture", true)
	slot, ok := p.textures.FindSlot(tag)
	if !ok {
		p.log.Log("Warning: texture with tag '" + tag + "' not found")
		p.pipe.SetBool("bUseTexture", false)
		return
	}
	p.pipe.SetSampler("objectTexture", int32(slot))
}

// SetUVScale publishes the texture coordinate multipliers (1,1 = no tiling).
func (p *Publisher) SetUVScale(u, v float32) {
	if p.pipe == nil {
		return
	}
	p.pipe.SetVec2("UVscale", rl.NewVector2(u, v))
}

// SetMaterial publishes the Phong parameters of the material registered under
// tag. A miss logs a warning and leaves the previously published material
// state in place.
func (p *Publisher) SetMaterial(tag string) {
	if p.pipe == nil {
		return
	}
	mat, ok := p.materials.Find(tag)
	if !ok {
		p.log.Log("Warning: material with tag '" + tag + "' not found")
		return
	}
	p.pipe.SetVec3("material.diffuseColor", mat.Diffuse)
	p.pipe.SetVec3("material.specularColor", mat.Specular)
	p.pipe.SetFloat("material.shininess", mat.Shininess)
}
