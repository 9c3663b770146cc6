package meshes

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind enumerates the fixed primitive meshes the scene is built from.
type Kind int

const (
	Plane Kind = iota
	Box
	Cone
	Sphere
	Cylinder
)

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cone:
		return "cone"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Provider generates primitive meshes once at setup and rasterizes one per
// draw command. The model transform is not passed here; it is published
// through the shading pipeline before each Draw.
type Provider interface {
	Load()
	Draw(k Kind)
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
	coneSlices     = 16
)

// Raylib is the GPU-backed provider. Meshes are unit sized: plane 1x1 in XZ,
// box 1x1x1 centered at origin, cone and cylinder radius 0.5 with base at Y=0
// and height 1, sphere radius 0.5. Created in Load so GPU resources are
// allocated after the window/GL context exists.
type Raylib struct {
	shader rl.Shader
	loaded bool
	meshes map[Kind]rl.Mesh
	mtl    rl.Material
}

// NewRaylib returns a provider whose draws go through the given shader.
func NewRaylib(shader rl.Shader) *Raylib {
	return &Raylib{shader: shader}
}

// Load generates all five primitive meshes. Call once after the GL context
// exists and before the first frame.
func (r *Raylib) Load() {
	if r.loaded {
		return
	}
	r.meshes = map[Kind]rl.Mesh{
		Plane:    rl.GenMeshPlane(1, 1, 1, 1),
		Box:      rl.GenMeshCube(1, 1, 1),
		Cone:     rl.GenMeshCone(0.5, 1, coneSlices),
		Sphere:   rl.GenMeshSphere(0.5, sphereRings, sphereSlices),
		Cylinder: rl.GenMeshCylinder(0.5, 1, cylinderSlices),
	}
	r.mtl = rl.LoadMaterialDefault()
	r.mtl.Shader = r.shader
	r.loaded = true
}

// Draw rasterizes one primitive with the current pipeline state. The identity
// transform is passed to raylib because the model matrix is already published
// as a named uniform.
func (r *Raylib) Draw(k Kind) {
	m, ok := r.meshes[k]
	if !ok {
		return
	}
	rl.DrawMesh(m, r.mtl, rl.MatrixIdentity())
}

// Recorder is a Provider that records the ordered sequence of draws, for
// golden-sequence tests.
type Recorder struct {
	Loaded bool
	Calls  []Kind
}

func (r *Recorder) Load() {
	r.Loaded = true
}

func (r *Recorder) Draw(k Kind) {
	r.Calls = append(r.Calls, k)
}

// Count returns how many draws of the given kind were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, c := range r.Calls {
		if c == k {
			n++
		}
	}
	return n
}
