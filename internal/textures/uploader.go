package textures

import (
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GPUUploader uploads pixels to raylib textures with mip-mapping, bilinear
// filtering and repeat wrapping. Must only be used after the window and GL
// context exist.
type GPUUploader struct {
	byHandle map[Handle]rl.Texture2D
}

// NewGPUUploader returns an uploader backed by the active GL context.
func NewGPUUploader() *GPUUploader {
	return &GPUUploader{byHandle: make(map[Handle]rl.Texture2D)}
}

func (u *GPUUploader) Upload(img *image.RGBA) (Handle, error) {
	rimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if tex.ID == 0 {
		return 0, fmt.Errorf("texture upload failed")
	}
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	rl.GenTextureMipmaps(&tex)

	h := Handle(tex.ID)
	u.byHandle[h] = tex
	return h, nil
}

// Bind makes the texture current on the given texture unit.
func (u *GPUUploader) Bind(h Handle, slot int32) {
	rl.ActiveTextureSlot(slot)
	rl.EnableTexture(uint32(h))
}

func (u *GPUUploader) Release(h Handle) {
	tex, ok := u.byHandle[h]
	if !ok {
		return
	}
	rl.UnloadTexture(tex)
	delete(u.byHandle, h)
}
