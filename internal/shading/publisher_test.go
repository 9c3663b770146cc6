package shading

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/logger"
	"scene-viewer/internal/materials"
	"scene-viewer/internal/pipeline"
	"scene-viewer/internal/textures"
	"scene-viewer/internal/transform"
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

// newTestPublisher builds a publisher over a recorder pipeline with the given
// texture tags registered (backed by tiny PNG files) and the reference
// materials defined.
func newTestPublisher(t *testing.T, tags ...string) (*Publisher, *pipeline.Recorder, *logger.Logger) {
	t.Helper()
	chdir(t, t.TempDir())

	log := logger.New()
	reg := textures.NewRegistry(log, &nullUploader{})
	dir := t.TempDir()
	for _, tag := range tags {
		path := filepath.Join(dir, tag+".png")
		require.NoError(t, imgio.Save(path, image.NewNRGBA(image.Rect(0, 0, 4, 4)), imgio.PNGEncoder()))
		require.NoError(t, reg.Load(path, tag))
	}

	cat := materials.NewCatalog()
	cat.DefineSceneMaterials()

	rec := &pipeline.Recorder{}
	return NewPublisher(rec, reg, cat, log), rec, log
}

func TestSetColorDisablesTexturing(t *testing.T) {
	p, rec, _ := newTestPublisher(t)
	p.SetColor(0.2, 0.4, 0.6, 1)

	require.Len(t, rec.Writes, 2)
	assert.Equal(t, "bool bUseTexture", rec.Ops()[0])
	assert.False(t, rec.Writes[0].Bool)
	assert.Equal(t, "vec4 objectColor", rec.Ops()[1])
	assert.Equal(t, [4]float32{0.2, 0.4, 0.6, 1}, rec.Writes[1].Vec)
}

func TestSetTexturePublishesSlot(t *testing.T) {
	p, rec, _ := newTestPublisher(t, "table", "stand")
	p.SetTexture("stand")

	require.Len(t, rec.Writes, 2)
	assert.True(t, rec.Writes[0].Bool)
	assert.Equal(t, "sampler objectTexture", rec.Ops()[1])
	assert.Equal(t, int32(1), rec.Writes[1].Int)
}

func TestSetTextureUnknownTagDisablesTexturing(t *testing.T) {
	p, rec, log := newTestPublisher(t, "table")
	p.SetTexture("nonexistent")

	// Texturing is enabled, found missing, then disabled again; the frame
	// continues.
	require.Len(t, rec.Writes, 2)
	assert.Equal(t, []string{"bool bUseTexture", "bool bUseTexture"}, rec.Ops())
	assert.True(t, rec.Writes[0].Bool)
	assert.False(t, rec.Writes[1].Bool)
	assert.Empty(t, rec.Named("objectTexture"))
	assert.True(t, log.Contains("texture with tag 'nonexistent' not found"))
}

func TestSetUVScale(t *testing.T) {
	p, rec, _ := newTestPublisher(t)
	p.SetUVScale(2, 1)

	require.Len(t, rec.Writes, 1)
	assert.Equal(t, "vec2 UVscale", rec.Ops()[0])
	assert.Equal(t, [4]float32{2, 1, 0, 0}, rec.Writes[0].Vec)
}

func TestSetMaterialPublishesPhongParameters(t *testing.T) {
	p, rec, _ := newTestPublisher(t)
	p.SetMaterial("tableSurface")

	require.Equal(t, []string{
		"vec3 material.diffuseColor",
		"vec3 material.specularColor",
		"float material.shininess",
	}, rec.Ops())
	assert.Equal(t, [4]float32{0.4, 0.3, 0.2, 0}, rec.Writes[0].Vec)
	assert.Equal(t, [4]float32{0.8, 0.8, 0.8, 0}, rec.Writes[1].Vec)
	assert.Equal(t, float32(30), rec.Writes[2].Float)
}

func TestSetMaterialMissLeavesPreviousState(t *testing.T) {
	p, rec, log := newTestPublisher(t)
	p.SetMaterial("jar")
	p.SetMaterial("nonexistent")

	// The miss publishes nothing; the jar parameters stay current.
	diffuse := rec.Named("material.diffuseColor")
	require.Len(t, diffuse, 1)
	assert.Equal(t, [4]float32{0.7, 0.7, 0.9, 0}, diffuse[0].Vec)
	assert.True(t, log.Contains("material with tag 'nonexistent' not found"))
}

func TestSetTransformPublishesModelMatrix(t *testing.T) {
	p, rec, _ := newTestPublisher(t)
	scale := rl.NewVector3(1.8, 0.3, 1.8)
	pos := rl.NewVector3(-3, 0.05, 0)
	p.SetTransform(scale, 0, 45, 0, pos)

	w, ok := rec.Last("model")
	require.True(t, ok)
	assert.Equal(t, "mat4", w.Op)
	assert.Equal(t, transform.Model(scale, 0, 45, 0, pos, rl.Vector3{}), w.Mat)
}

func TestSetTransformOffsetAddsToAnchor(t *testing.T) {
	p, rec, _ := newTestPublisher(t)
	scale := rl.NewVector3(1, 1, 1)
	anchor := rl.NewVector3(3, 0.05, 0)
	offset := rl.NewVector3(0, 10.5, 0)
	p.SetTransformOffset(scale, 0, 0, 0, anchor, offset)

	w, ok := rec.Last("model")
	require.True(t, ok)
	assert.Equal(t, transform.Model(scale, 0, 0, 0, anchor, offset), w.Mat)

	got := rl.Vector3Transform(rl.Vector3{}, w.Mat)
	assert.InDelta(t, 3, got.X, 1e-4)
	assert.InDelta(t, 10.55, got.Y, 1e-4)
	assert.InDelta(t, 0, got.Z, 1e-4)
}

func TestNilPipelineIsNoOp(t *testing.T) {
	p := NewPublisher(nil, nil, nil, nil)

	assert.NotPanics(t, func() {
		p.SetTransform(rl.NewVector3(1, 1, 1), 0, 0, 0, rl.Vector3{})
		p.SetColor(1, 1, 1, 1)
		p.SetTexture("table")
		p.SetUVScale(1, 1)
		p.SetMaterial("wood")
	})
}
