package materials

import rl "github.com/gen2brain/raylib-go/raylib"

// Material holds the Phong parameters published for an object. Colors are in
// [0,1] per channel; shininess is the specular exponent.
type Material struct {
	Tag       string
	Diffuse   rl.Vector3
	Specular  rl.Vector3
	Shininess float32
}

// Catalog is an ordered collection of named materials, populated once during
// scene setup and read-only afterward. Duplicate tags are permitted and the
// first match wins, so callers keep tags unique by convention.
type Catalog struct {
	records []Material
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Define appends a material record.
func (c *Catalog) Define(tag string, diffuse, specular rl.Vector3, shininess float32) {
	c.records = append(c.records, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
}

// Find returns the first material with the given tag. A miss returns the zero
// Material and false; found and not-found are mutually exclusive.
func (c *Catalog) Find(tag string) (Material, bool) {
	if len(c.records) == 0 {
		return Material{}, false
	}
	for _, m := range c.records {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Clear removes every record. The catalog may be fully rebuilt but is never
// partially mutated.
func (c *Catalog) Clear() {
	c.records = c.records[:0]
}

// DefineSceneMaterials rebuilds the catalog with the reference scene's twelve
// materials.
func (c *Catalog) DefineSceneMaterials() {
	c.Clear()

	c.Define("plastic", rl.NewVector3(0.8, 0.4, 0.8), rl.NewVector3(0.2, 0.2, 0.2), 1.0)
	c.Define("wood", rl.NewVector3(0.6, 0.5, 0.2), rl.NewVector3(0.1, 0.2, 0.2), 1.0)
	c.Define("metal", rl.NewVector3(0.3, 0.3, 0.2), rl.NewVector3(0.7, 0.7, 0.8), 8.0)
	c.Define("glass", rl.NewVector3(0.3, 0.3, 0.2), rl.NewVector3(0.9, 0.9, 0.8), 10.0)
	c.Define("tile", rl.NewVector3(0.5, 0.5, 0.5), rl.NewVector3(0.7, 0.7, 0.7), 6.0)
	c.Define("stone", rl.NewVector3(0.5, 0.5, 0.5), rl.NewVector3(0.73, 0.3, 0.3), 6.0)
	// Cream lamp shade, nearly matte.
	c.Define("lampshade", rl.NewVector3(1.0, 0.98, 0.88), rl.NewVector3(0.1, 0.1, 0.1), 0.5)
	c.Define("lampbase", rl.NewVector3(0.25, 0.15, 0.05), rl.NewVector3(0.2, 0.2, 0.1), 3.0)
	c.Define("bookcover", rl.NewVector3(0.4, 0.05, 0.05), rl.NewVector3(0.05, 0.05, 0.05), 0.8)
	c.Define("jar", rl.NewVector3(0.7, 0.7, 0.9), rl.NewVector3(0.3, 0.3, 0.4), 3.0)
	// High specularity and shininess for a sharp reflection off the table top.
	c.Define("tableSurface", rl.NewVector3(0.4, 0.3, 0.2), rl.NewVector3(0.8, 0.8, 0.8), 30.0)
	c.Define("windowFrame", rl.NewVector3(0.9, 0.9, 0.9), rl.NewVector3(0.1, 0.1, 0.1), 1.0)
}
