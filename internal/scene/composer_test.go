package scene

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/lights"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/materials"
	"scene-viewer/internal/meshes"
	"scene-viewer/internal/pipeline"
	"scene-viewer/internal/shading"
	"scene-viewer/internal/textures"
)

type nullUploader struct {
	next textures.Handle
}

func (n *nullUploader) Upload(img *image.RGBA) (textures.Handle, error) {
	n.next++
	return n.next, nil
}

func (n *nullUploader) Bind(h textures.Handle, slot int32) {}

func (n *nullUploader) Release(h textures.Handle) {}

// sceneTags lists the reference textures in registration order, fixing the
// slot each tag resolves to.
var sceneTags = []string{"wooden", "vase", "table", "stand", "neck", "bookcover_tex", "window_frame_tex"}

func newTestComposer(t *testing.T) (*Composer, *pipeline.Recorder, *meshes.Recorder) {
	t.Helper()
	chdir(t, t.TempDir())

	log := logger.New()
	reg := textures.NewRegistry(log, &nullUploader{})
	dir := t.TempDir()
	for _, tag := range sceneTags {
		path := filepath.Join(dir, tag+".png")
		require.NoError(t, imgio.Save(path, image.NewNRGBA(image.Rect(0, 0, 4, 4)), imgio.PNGEncoder()))
		require.NoError(t, reg.Load(path, tag))
	}

	cat := materials.NewCatalog()
	cat.DefineSceneMaterials()

	rec := &pipeline.Recorder{}
	prov := &meshes.Recorder{}
	return NewComposer(shading.NewPublisher(rec, reg, cat, log), prov), rec, prov
}

// lampKinds is the ten-part draw order of one lamp assembly.
var lampKinds = []meshes.Kind{
	meshes.Box, meshes.Cylinder, meshes.Cone, meshes.Cylinder, meshes.Sphere,
	meshes.Cylinder, meshes.Sphere, meshes.Cylinder, meshes.Cone, meshes.Sphere,
}

func TestRenderFrameGoldenDrawSequence(t *testing.T) {
	c, _, prov := newTestComposer(t)
	c.RenderFrame()

	want := []meshes.Kind{meshes.Plane}
	want = append(want, lampKinds...)
	want = append(want, lampKinds...)
	want = append(want, meshes.Box, meshes.Box)
	want = append(want, meshes.Cylinder, meshes.Sphere, meshes.Cylinder, meshes.Sphere, meshes.Sphere)
	want = append(want,
		meshes.Plane,
		meshes.Box, meshes.Box, meshes.Box, meshes.Box, meshes.Box,
		meshes.Plane, meshes.Plane,
	)

	assert.Equal(t, want, prov.Calls)
}

func TestRenderFrameDrawCounts(t *testing.T) {
	c, _, prov := newTestComposer(t)
	c.RenderFrame()

	assert.Len(t, prov.Calls, 36)
	assert.Equal(t, 4, prov.Count(meshes.Plane))
	assert.Equal(t, 9, prov.Count(meshes.Box))
	assert.Equal(t, 10, prov.Count(meshes.Cylinder))
	assert.Equal(t, 4, prov.Count(meshes.Cone))
	assert.Equal(t, 9, prov.Count(meshes.Sphere))
}

func TestRenderFramePublishCounts(t *testing.T) {
	c, rec, _ := newTestComposer(t)
	c.RenderFrame()

	// One model matrix per draw command; fewer texture/material/UV publishes
	// than draws because state deliberately carries over.
	assert.Len(t, rec.Named("model"), 36)
	assert.Len(t, rec.Named("material.diffuseColor"), 30)
	assert.Len(t, rec.Named("UVscale"), 14)

	texture := rec.Named("bUseTexture")
	require.Len(t, texture, 14)
	for _, w := range texture {
		assert.True(t, w.Bool, "every texture publish in the frame resolves")
	}
}

func TestRenderFrameTextureSlotSequence(t *testing.T) {
	c, rec, _ := newTestComposer(t)
	c.RenderFrame()

	var slots []int32
	for _, w := range rec.Named("objectTexture") {
		slots = append(slots, w.Int)
	}

	// table; stand/neck/wooden per lamp; bookcover twice; vase twice; frame
	// texture three times. Slots follow the manifest registration order.
	want := []int32{2, 3, 4, 0, 3, 4, 0, 5, 5, 1, 1, 6, 6, 6}
	assert.Equal(t, want, slots)
}

func TestJarPartsInheritVaseTexture(t *testing.T) {
	c, rec, _ := newTestComposer(t)
	c.drawJar(rl.NewVector3(0, 0.36, 0))

	want := []string{
		// Base cylinder: full publish.
		"mat4 model", "bool bUseTexture", "sampler objectTexture",
		"vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		"vec2 UVscale",
		// Body sphere: full publish.
		"mat4 model", "bool bUseTexture", "sampler objectTexture",
		"vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		"vec2 UVscale",
		// Neck, lid, handle: transform and material only; the vase texture
		// and UV scale carry over.
		"mat4 model", "vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		"mat4 model", "vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		"mat4 model", "vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
	}
	assert.Equal(t, want, rec.Ops())
}

func TestWindowWallPublishSequence(t *testing.T) {
	c, rec, _ := newTestComposer(t)
	c.drawWindowWall()

	want := []string{
		// Backdrop: no texture publish at all; previous draw's state is live.
		"mat4 model",
		"vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		"vec2 UVscale",
		// Frame material published once for all five frame pieces.
		"vec3 material.diffuseColor", "vec3 material.specularColor", "float material.shininess",
		// Top, bottom, left frames publish the frame texture.
		"mat4 model", "bool bUseTexture", "sampler objectTexture", "vec2 UVscale",
		"mat4 model", "bool bUseTexture", "sampler objectTexture", "vec2 UVscale",
		"mat4 model", "bool bUseTexture", "sampler objectTexture", "vec2 UVscale",
		// Right frame and divider inherit it.
		"mat4 model", "vec2 UVscale",
		"mat4 model", "vec2 UVscale",
		// Panes.
		"vec2 UVscale",
		"mat4 model", "vec2 UVscale",
		"mat4 model", "vec2 UVscale",
	}
	assert.Equal(t, want, rec.Ops())
}

func TestPrepareLoadsEverything(t *testing.T) {
	chdir(t, t.TempDir())

	log := logger.New()
	reg := textures.NewRegistry(log, &nullUploader{})
	cat := materials.NewCatalog()
	rec := &pipeline.Recorder{}
	prov := &meshes.Recorder{}
	c := NewComposer(shading.NewPublisher(rec, reg, cat, log), prov)

	// Manifest file absent and texture files missing: setup still completes
	// with an empty registry and a full material catalog.
	c.Prepare(reg, cat, lights.DefaultRig(), rec, "missing.yaml")

	assert.True(t, prov.Loaded)
	assert.Equal(t, 12, cat.Len())
	assert.Equal(t, 0, reg.Len())

	w, ok := rec.Last("bUseLighting")
	require.True(t, ok)
	assert.True(t, w.Bool)
}
