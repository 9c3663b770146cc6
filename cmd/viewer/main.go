package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/graphics"
	"scene-viewer/internal/lights"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/materials"
	"scene-viewer/internal/meshes"
	"scene-viewer/internal/pipeline"
	"scene-viewer/internal/scene"
	"scene-viewer/internal/shading"
	"scene-viewer/internal/textures"
	"scene-viewer/internal/view"
	"scene-viewer/internal/viewerconfig"
)

func main() {
	prefs, _ := viewerconfig.Load()
	log := logger.New()

	cat := materials.NewCatalog()
	rig := lights.DefaultRig()

	// GPU-backed objects are created in setup, after the GL context exists.
	var (
		pipe     *pipeline.Shader
		reg      *textures.Registry
		vw       *view.View
		composer *scene.Composer
	)

	setup := func() {
		pipe = pipeline.NewShader()
		reg = textures.NewRegistry(log, textures.NewGPUUploader())
		shade := shading.NewPublisher(pipe, reg, cat, log)
		composer = scene.NewComposer(shade, meshes.NewRaylib(pipe.Handle()))
		composer.Prepare(reg, cat, rig, pipe, prefs.TextureManifest)
		vw = view.New(pipe, prefs.OrthoScale)
	}
	update := func() {
		vw.Update()
	}
	draw := func() {
		vw.PublishFrame(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		composer.RenderFrame()
	}
	teardown := func() {
		reg.ReleaseAll()
		pipe.Unload()
	}

	graphics.Run(
		int32(prefs.WindowWidth), int32(prefs.WindowHeight), int32(prefs.TargetFPS),
		"Tabletop Still Life", setup, update, draw, teardown,
	)
}
