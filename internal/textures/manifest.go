package textures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one texture in the YAML manifest (assets/textures.yaml).
type ManifestEntry struct {
	File string `yaml:"file"`
	Tag  string `yaml:"tag"`
}

// defaultManifest lists the reference scene's textures, used when no manifest
// file is present.
var defaultManifest = []ManifestEntry{
	{File: "assets/textures/wooden.jpg", Tag: "wooden"},
	{File: "assets/textures/vase.jpg", Tag: "vase"},
	{File: "assets/textures/table.jpg", Tag: "table"},
	{File: "assets/textures/stand.jpg", Tag: "stand"},
	{File: "assets/textures/neck.jpg", Tag: "neck"},
	{File: "assets/textures/book_cover.jpg", Tag: "bookcover_tex"},
	{File: "assets/textures/window_frame_tex.jpg", Tag: "window_frame_tex"},
}

// LoadManifest loads every texture listed in the YAML manifest at path,
// falling back to the built-in reference list when the file is absent.
// Individual failures are logged and skipped so the scene degrades instead of
// aborting setup.
func (r *Registry) LoadManifest(path string) error {
	entries := defaultManifest
	data, err := os.ReadFile(path)
	if err == nil {
		var parsed []ManifestEntry
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("parse manifest %q: %w", path, err)
		}
		entries = parsed
	}

	for _, e := range entries {
		if err := r.Load(e.File, e.Tag); err != nil {
			// Already logged; keep loading the rest.
			continue
		}
	}
	return nil
}
