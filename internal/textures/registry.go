package textures

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"scene-viewer/internal/logger"
)

// MaxTextures is the fixed capacity of the registry, matching the number of
// texture units the shader contract can address.
const MaxTextures = 16

// Handle identifies a GPU texture owned by the registry's uploader. It is
// opaque to everything outside this package; draw code refers to textures by
// tag, never by handle.
type Handle uint32

// Uploader owns the GPU side of texture management: uploading decoded pixels,
// binding a texture to a texture unit, and freeing it. The production
// implementation wraps raylib; tests substitute a fake.
type Uploader interface {
	Upload(img *image.RGBA) (Handle, error)
	Bind(h Handle, slot int32)
	Release(h Handle)
}

// Entry pairs a registered texture with its lookup tag. The entry's index in
// the registry is its shader slot.
type Entry struct {
	Tag    string
	Handle Handle
}

// Registry decodes image files into GPU textures keyed by tag. Slot index
// equals registration order, which fixes the contract the shader binds
// against. Populated once during scene setup, read-only afterward.
type Registry struct {
	log     *logger.Logger
	decode  func(path string) (image.Image, error)
	gpu     Uploader
	entries []Entry
}

// NewRegistry returns an empty registry using the given uploader for GPU
// work. Images are decoded with bild; tests may override the decode field.
func NewRegistry(log *logger.Logger, gpu Uploader) *Registry {
	return &Registry{
		log:    log,
		decode: imgio.Open,
		gpu:    gpu,
	}
}

// channelCount reports the channel count of a decoded image the way an
// 8-bit-per-channel loader would: RGBA-like models are 4, YCbCr (JPEG) is 3,
// grayscale is 1. Anything else is unsupported.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return 4
	case *image.YCbCr:
		return 3
	case *image.Gray, *image.Gray16:
		return 1
	default:
		return 0
	}
}

// Load decodes the image at path and registers it under tag. Images are
// flipped vertically on load so texture coordinates match the shader's
// expectations. Only 3- and 4-channel images are accepted. A load that fails
// any check is logged and abandoned without touching previously registered
// entries; exceeding capacity releases the just-created GPU resource.
func (r *Registry) Load(path, tag string) error {
	img, err := r.decode(path)
	if err != nil {
		r.log.Log("Warning: could not load image " + path)
		return fmt.Errorf("decode %q: %w", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		r.log.Log(fmt.Sprintf("Warning: image %s has %d channels, only 3 or 4 supported", path, channels))
		return fmt.Errorf("unsupported channel count %d for %q", channels, path)
	}

	h, err := r.gpu.Upload(transform.FlipV(img))
	if err != nil {
		r.log.Log("Warning: could not upload texture " + path)
		return fmt.Errorf("upload %q: %w", path, err)
	}

	if len(r.entries) >= MaxTextures {
		r.gpu.Release(h)
		r.log.Log("Warning: maximum number of textures loaded, could not load " + path)
		return fmt.Errorf("texture capacity %d exhausted, dropping %q", MaxTextures, path)
	}

	r.entries = append(r.entries, Entry{Tag: tag, Handle: h})
	return nil
}

// BindAll binds every registered texture to the texture unit equal to its
// registration index, starting at unit 0.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.gpu.Bind(e.Handle, int32(i))
	}
}

// FindSlot returns the texture unit for tag. Linear scan, first match wins;
// a miss is a valid non-fatal outcome.
func (r *Registry) FindSlot(tag string) (int, bool) {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// FindHandle returns the GPU handle for tag.
func (r *Registry) FindHandle(tag string) (Handle, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle, true
		}
	}
	return 0, false
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ReleaseAll frees every GPU texture and resets the registry to empty. Safe
// to call more than once; called unconditionally at teardown.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		r.gpu.Release(e.Handle)
	}
	r.entries = r.entries[:0]
}
