package pipeline

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pipeline is a write-only sink of named shader uniforms. Draw code publishes
// state into it by name (dotted field paths, bracketed array indices) and the
// next draw call consumes whatever was last written. Writes never fail; a name
// the active shader does not declare is silently dropped.
type Pipeline interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value rl.Vector2)
	SetVec3(name string, value rl.Vector3)
	SetVec4(name string, value rl.Vector4)
	SetMat4(name string, value rl.Matrix)
	SetSampler(name string, slot int32)
}

// Shader publishes named uniforms into a compiled raylib shader. Uniform
// locations are resolved once and cached; unknown names resolve to -1 and all
// writes to them are ignored.
type Shader struct {
	shader rl.Shader
	locs   map[string]int32
}

// NewShader compiles the built-in Phong shader. Must be called after the
// window and GL context exist.
func NewShader() *Shader {
	return &Shader{
		shader: rl.LoadShaderFromMemory(phongVS, phongFS),
		locs:   make(map[string]int32),
	}
}

// Handle returns the underlying raylib shader, for attaching to materials.
func (s *Shader) Handle() rl.Shader {
	return s.shader
}

// Unload frees the compiled shader.
func (s *Shader) Unload() {
	rl.UnloadShader(s.shader)
}

func (s *Shader) loc(name string) int32 {
	if l, ok := s.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(s.shader, name)
	s.locs[name] = l
	return l
}

// intBits smuggles an int32 through raylib's float32-typed uniform slice; the
// binding passes the raw bytes to glUniform1i untouched.
func intBits(v int32) float32 {
	return math.Float32frombits(uint32(v))
}

func (s *Shader) SetBool(name string, value bool) {
	var iv int32
	if value {
		iv = 1
	}
	s.SetInt(name, iv)
}

func (s *Shader) SetInt(name string, value int32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{intBits(value)}, rl.ShaderUniformInt)
	}
}

func (s *Shader) SetFloat(name string, value float32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{value}, rl.ShaderUniformFloat)
	}
}

func (s *Shader) SetVec2(name string, value rl.Vector2) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{value.X, value.Y}, rl.ShaderUniformVec2)
	}
}

func (s *Shader) SetVec3(name string, value rl.Vector3) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{value.X, value.Y, value.Z}, rl.ShaderUniformVec3)
	}
}

func (s *Shader) SetVec4(name string, value rl.Vector4) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{value.X, value.Y, value.Z, value.W}, rl.ShaderUniformVec4)
	}
}

func (s *Shader) SetMat4(name string, value rl.Matrix) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(s.shader, l, value)
	}
}

func (s *Shader) SetSampler(name string, slot int32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.shader, l, []float32{intBits(slot)}, rl.ShaderUniformSampler2d)
	}
}
