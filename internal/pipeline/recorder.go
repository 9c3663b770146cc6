package pipeline

import rl "github.com/gen2brain/raylib-go/raylib"

// Write is one recorded uniform publish. Op names the value kind ("bool",
// "int", "float", "vec2", "vec3", "vec4", "mat4", "sampler"); only the field
// matching Op carries data.
type Write struct {
	Op    string
	Name  string
	Bool  bool
	Int   int32
	Float float32
	Vec   [4]float32
	Mat   rl.Matrix
}

// Recorder is a Pipeline that captures every publish in order. Tests use it
// to assert on sequences of writes, since shading state deliberately carries
// over between draws that omit a publish.
type Recorder struct {
	Writes []Write
}

func (r *Recorder) SetBool(name string, value bool) {
	r.Writes = append(r.Writes, Write{Op: "bool", Name: name, Bool: value})
}

func (r *Recorder) SetInt(name string, value int32) {
	r.Writes = append(r.Writes, Write{Op: "int", Name: name, Int: value})
}

func (r *Recorder) SetFloat(name string, value float32) {
	r.Writes = append(r.Writes, Write{Op: "float", Name: name, Float: value})
}

func (r *Recorder) SetVec2(name string, value rl.Vector2) {
	r.Writes = append(r.Writes, Write{Op: "vec2", Name: name, Vec: [4]float32{value.X, value.Y}})
}

func (r *Recorder) SetVec3(name string, value rl.Vector3) {
	r.Writes = append(r.Writes, Write{Op: "vec3", Name: name, Vec: [4]float32{value.X, value.Y, value.Z}})
}

func (r *Recorder) SetVec4(name string, value rl.Vector4) {
	r.Writes = append(r.Writes, Write{Op: "vec4", Name: name, Vec: [4]float32{value.X, value.Y, value.Z, value.W}})
}

func (r *Recorder) SetMat4(name string, value rl.Matrix) {
	r.Writes = append(r.Writes, Write{Op: "mat4", Name: name, Mat: value})
}

func (r *Recorder) SetSampler(name string, slot int32) {
	r.Writes = append(r.Writes, Write{Op: "sampler", Name: name, Int: slot})
}

// Named returns every write to the given uniform name, in order.
func (r *Recorder) Named(name string) []Write {
	var out []Write
	for _, w := range r.Writes {
		if w.Name == name {
			out = append(out, w)
		}
	}
	return out
}

// Last returns the most recent write to the given uniform name.
func (r *Recorder) Last(name string) (Write, bool) {
	for i := len(r.Writes) - 1; i >= 0; i-- {
		if r.Writes[i].Name == name {
			return r.Writes[i], true
		}
	}
	return Write{}, false
}

// Ops returns the recorded sequence as "op name" strings, for golden tests.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Writes))
	for i, w := range r.Writes {
		out[i] = w.Op + " " + w.Name
	}
	return out
}

// Reset discards all recorded writes.
func (r *Recorder) Reset() {
	r.Writes = nil
}
