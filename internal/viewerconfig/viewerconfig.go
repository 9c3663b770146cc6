package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer config file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer preferences (window size, frame rate, projection scale,
// texture manifest location). Persisted across runs.
type Prefs struct {
	WindowWidth     int     `json:"window_width"`
	WindowHeight    int     `json:"window_height"`
	TargetFPS       int     `json:"target_fps"`
	OrthoScale      float32 `json:"ortho_scale"`
	TextureManifest string  `json:"texture_manifest,omitempty"`
}

// Default returns default viewer preferences (1000x800 window, 60 fps).
func Default() Prefs {
	return Prefs{
		WindowWidth:     1000,
		WindowHeight:    800,
		TargetFPS:       60,
		OrthoScale:      6,
		TextureManifest: "assets/textures.yaml",
	}
}

// Load reads viewer preferences from config/viewer.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes viewer preferences to config/viewer.json, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
