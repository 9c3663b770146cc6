package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/lights"
	"scene-viewer/internal/materials"
	"scene-viewer/internal/meshes"
	"scene-viewer/internal/pipeline"
	"scene-viewer/internal/shading"
	"scene-viewer/internal/textures"
)

// Composer renders the fixed still-life scene as an ordered sequence of draw
// commands: set transform, set texture or color, set material, set UV scale,
// draw the primitive. Pipeline state carries over between draws, and several
// steps below deliberately omit a publish to reuse the previous one; the order
// of this sequence is load-bearing and is pinned by tests.
type Composer struct {
	shade  *shading.Publisher
	meshes meshes.Provider
}

// NewComposer returns a composer drawing through the given publisher and mesh
// provider.
func NewComposer(shade *shading.Publisher, provider meshes.Provider) *Composer {
	return &Composer{shade: shade, meshes: provider}
}

// Prepare loads textures, materials, lights and meshes. Called once before
// the render loop.
func (c *Composer) Prepare(reg *textures.Registry, cat *materials.Catalog, rig lights.Rig, pipe pipeline.Pipeline, manifestPath string) {
	_ = reg.LoadManifest(manifestPath)
	reg.BindAll()
	cat.DefineSceneMaterials()
	rig.Configure(pipe)
	c.meshes.Load()
}

// RenderFrame issues every draw command for one frame in a fixed
// deterministic order: table surface, two mirrored lamps, two stacked books,
// the five-part jar, then the windowed back wall.
func (c *Composer) RenderFrame() {
	c.drawTable()
	c.drawLamp(rl.NewVector3(-3.0, 0.05, 0.0))
	c.drawLamp(rl.NewVector3(3.0, 0.05, 0.0))
	c.drawBooks()
	c.drawJar(rl.NewVector3(0.0, 0.36, 0.0))
	c.drawWindowWall()
}

// drawTable draws the table surface plane, tiling the wood texture twice
// along its length.
func (c *Composer) drawTable() {
	c.shade.SetTransform(rl.NewVector3(10.0, 0.1, 5.0), 0, 0, 0, rl.NewVector3(0, 0, 0))
	c.shade.SetTexture("table")
	c.shade.SetMaterial("tableSurface")
	c.shade.SetUVScale(2.0, 1.0)
	c.meshes.Draw(meshes.Plane)
}

// drawLamp draws one ten-part lamp assembly. Every part is positioned by an
// additive offset from the anchor. The base-mid cylinder, base-top cone and
// curve spheres inherit the texture of the part before them.
func (c *Composer) drawLamp(anchor rl.Vector3) {
	// Base bottom: box rotated 45 degrees around Y.
	c.shade.SetTransformOffset(rl.NewVector3(1.8, 0.3, 1.8), 0, 45, 0, anchor, rl.Vector3{})
	c.shade.SetTexture("stand")
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Box)

	// Base mid: cylinder, keeps the stand texture.
	c.shade.SetTransformOffset(rl.NewVector3(1.3, 0.4, 1.3), 0, 0, 0, anchor, rl.NewVector3(0, 0.3, 0))
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Cylinder)

	// Base top: cone flipped upside down.
	c.shade.SetTransformOffset(rl.NewVector3(1.5, 0.5, 1.5), 0, 0, 180, anchor, rl.NewVector3(0, 0.7, 0))
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Cone)

	// Lower body cylinder with the neck texture.
	c.shade.SetTransformOffset(rl.NewVector3(1.1, 1.0, 1.1), 0, 0, 0, anchor, rl.NewVector3(0, 1.3, 0))
	c.shade.SetTexture("neck")
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Cylinder)

	// Squashed sphere suggesting a curve joint.
	c.shade.SetTransformOffset(rl.NewVector3(1.0, 0.5, 1.0), 0, 0, 0, anchor, rl.NewVector3(0, 2.3, 0))
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Sphere)

	// Middle body cylinder.
	c.shade.SetTransformOffset(rl.NewVector3(0.9, 1.2, 0.9), 0, 0, 0, anchor, rl.NewVector3(0, 3.0, 0))
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Cylinder)

	// Second curve joint.
	c.shade.SetTransformOffset(rl.NewVector3(0.8, 0.4, 0.8), 0, 0, 0, anchor, rl.NewVector3(0, 4.2, 0))
	c.shade.SetMaterial("lampbase")
	c.meshes.Draw(meshes.Sphere)

	// Thin upper body cylinder.
	c.shade.SetTransformOffset(rl.NewVector3(0.4, 3.0, 0.4), 0, 0, 0, anchor, rl.NewVector3(0, 5.0, 0))
	c.shade.SetTexture("wooden")
	c.shade.SetMaterial("wood")
	c.meshes.Draw(meshes.Cylinder)

	// Shade: single cone, wider part down.
	c.shade.SetTransformOffset(rl.NewVector3(2.5, 2.5, 2.5), 0, 0, 0, anchor, rl.NewVector3(0, 8.0, 0))
	c.shade.SetMaterial("lampshade")
	c.meshes.Draw(meshes.Cone)

	// Finial sphere on top.
	c.shade.SetTransformOffset(rl.NewVector3(0.3, 0.3, 0.3), 0, 0, 0, anchor, rl.NewVector3(0, 10.5, 0))
	c.shade.SetMaterial("metal")
	c.meshes.Draw(meshes.Sphere)
}

// drawBooks draws the two stacked books; the top one sits slightly rotated.
func (c *Composer) drawBooks() {
	c.shade.SetTransform(rl.NewVector3(2.8, 0.15, 2.0), 0, 0, 0, rl.NewVector3(0, 0.05, 0))
	c.shade.SetTexture("bookcover_tex")
	c.shade.SetMaterial("bookcover")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	c.shade.SetTransform(rl.NewVector3(2.6, 0.12, 1.9), 0, 5, 0, rl.NewVector3(0, 0.21, 0))
	c.shade.SetTexture("bookcover_tex")
	c.shade.SetMaterial("bookcover")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)
}

// drawJar draws the five-part jar on top of the books. The neck, lid and
// handle inherit the vase texture published for the base and body.
func (c *Composer) drawJar(anchor rl.Vector3) {
	// Base cylinder.
	c.shade.SetTransformOffset(rl.NewVector3(0.8, 0.6, 0.8), 0, 0, 0, anchor, rl.Vector3{})
	c.shade.SetTexture("vase")
	c.shade.SetMaterial("jar")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Cylinder)

	// Main body sphere.
	c.shade.SetTransformOffset(rl.NewVector3(0.9, 0.9, 0.9), 0, 0, 0, anchor, rl.NewVector3(0, 0.6, 0))
	c.shade.SetTexture("vase")
	c.shade.SetMaterial("jar")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Sphere)

	// Neck cylinder.
	c.shade.SetTransformOffset(rl.NewVector3(0.5, 0.4, 0.5), 0, 0, 0, anchor, rl.NewVector3(0, 1.5, 0))
	c.shade.SetMaterial("jar")
	c.meshes.Draw(meshes.Cylinder)

	// Flattened sphere lid.
	c.shade.SetTransformOffset(rl.NewVector3(0.7, 0.3, 0.7), 0, 0, 0, anchor, rl.NewVector3(0, 1.9, 0))
	c.shade.SetMaterial("jar")
	c.meshes.Draw(meshes.Sphere)

	// Handle sphere on the lid.
	c.shade.SetTransformOffset(rl.NewVector3(0.2, 0.2, 0.2), 0, 0, 0, anchor, rl.NewVector3(0, 2.1, 0))
	c.shade.SetMaterial("jar")
	c.meshes.Draw(meshes.Sphere)
}

// drawWindowWall draws the backdrop plane, the five window frame boxes and
// the two glass panes. The windowFrame material is published once for all
// five frame pieces; the right frame, divider and panes inherit the frame
// texture from the left frame.
func (c *Composer) drawWindowWall() {
	// Backdrop behind the table. No texture publish: whatever the previous
	// draw left enabled carries over, matching the reference scene.
	c.shade.SetTransform(rl.NewVector3(15.0, 10.0, 0.1), 0, 0, 0, rl.NewVector3(0, 5.0, -5.0))
	c.shade.SetMaterial("tile")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Plane)

	frameAnchor := rl.NewVector3(0, 5.0, -4.9)
	c.shade.SetMaterial("windowFrame")

	// Top horizontal frame.
	c.shade.SetTransformOffset(rl.NewVector3(7.5, 0.3, 0.1), 0, 0, 0, frameAnchor, rl.NewVector3(0, 4.15, 0))
	c.shade.SetTexture("window_frame_tex")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	// Bottom horizontal frame.
	c.shade.SetTransformOffset(rl.NewVector3(7.5, 0.3, 0.1), 0, 0, 0, frameAnchor, rl.NewVector3(0, -4.15, 0))
	c.shade.SetTexture("window_frame_tex")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	// Left vertical frame.
	c.shade.SetTransformOffset(rl.NewVector3(0.3, 8.5, 0.1), 0, 0, 0, frameAnchor, rl.NewVector3(-3.6, 0, 0))
	c.shade.SetTexture("window_frame_tex")
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	// Right vertical frame, reusing the published frame texture.
	c.shade.SetTransformOffset(rl.NewVector3(0.3, 8.5, 0.1), 0, 0, 0, frameAnchor, rl.NewVector3(3.6, 0, 0))
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	// Center vertical divider.
	c.shade.SetTransformOffset(rl.NewVector3(0.15, 8.3, 0.1), 0, 0, 0, frameAnchor, rl.Vector3{})
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Box)

	paneAnchor := rl.NewVector3(0, 5.0, -4.8)
	c.shade.SetUVScale(1.0, 1.0)

	// Left pane.
	c.shade.SetTransformOffset(rl.NewVector3(100.4, 100.2, 0.05), 0, 0, 0, paneAnchor, rl.NewVector3(-1.8, 0, 0))
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Plane)

	// Right pane.
	c.shade.SetTransformOffset(rl.NewVector3(100.4, 100.2, 0.05), 0, 0, 0, paneAnchor, rl.NewVector3(1.8, 0, 0))
	c.shade.SetUVScale(1.0, 1.0)
	c.meshes.Draw(meshes.Plane)
}
