package glhf

import (
	"fmt"
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
	"github.com/pkg/errors"
)

// Shader is an OpenGL shader program.
type Shader struct {
	program    binder
	vertexFmt  AttrFormat
	uniformFmt AttrFormat
	uniformLoc []int32
	deleted    bool
}

// NewShader creates a new shader program from the specified vertex shader and fragment shader
// sources.
//
// Note that vertexShader and fragmentShader parameters must contain the source code, they're
// not filenames.
func NewShader(vertexFmt, uniformFmt AttrFormat, vertexShader, fragmentShader string) (*Shader, error) {
	shader := &Shader{
		program: binder{
			restoreLoc: gl.CURRENT_PROGRAM,
			bindFunc: func(obj uint32) {
				gl.UseProgram(obj)
			},
		},
		vertexFmt:  vertexFmt,
		uniformFmt: uniformFmt,
		uniformLoc: make([]int32, len(uniformFmt)),
	}

	vshader, err := compileShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fshader)

	shader.program.obj = gl.CreateProgram()
	gl.AttachShader(shader.program.obj, vshader)
	gl.AttachShader(shader.program.obj, fshader)
	gl.LinkProgram(shader.program.obj)

	var success int32
	gl.GetProgramiv(shader.program.obj, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(shader.program.obj, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetProgramInfoLog(shader.program.obj, logLen, nil, &infoLog[0])
		gl.DeleteProgram(shader.program.obj)
		return nil, errors.Errorf("link shader program: %s", gl.GoStr(&infoLog[0]))
	}

	for i, uniform := range uniformFmt {
		loc := gl.GetUniformLocation(shader.program.obj, gl.Str(uniform.Name+"\x00"))
		if loc < 0 {
			util.LogGlDebug(fmt.Sprintf("uniform %q is not active in the shader program", uniform.Name))
		}
		shader.uniformLoc[i] = loc
	}

	runtime.SetFinalizer(shader, (*Shader).finalize)

	return shader, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	obj := gl.CreateShader(shaderType)
	src, free := gl.Strs(source)
	defer free()
	length := int32(len(source))
	gl.ShaderSource(obj, 1, src, &length)
	gl.CompileShader(obj)

	var success int32
	gl.GetShaderiv(obj, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(obj, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetShaderInfoLog(obj, logLen, nil, &infoLog[0])
		gl.DeleteShader(obj)
		return 0, errors.Errorf("compile: %s", gl.GoStr(&infoLog[0]))
	}
	return obj, nil
}

func (s *Shader) finalize() {
	if s.deleted {
		return
	}
	mainthread.CallNonBlock(s.Delete)
}

// Delete releases the program. Further calls are ignored.
func (s *Shader) Delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	gl.DeleteProgram(s.program.obj)
}

// VertexFormat returns the vertex attribute format of this Shader. Do not change it.
func (s *Shader) VertexFormat() AttrFormat {
	return s.vertexFmt
}

// SetUniformAttr sets the value of a uniform attribute of this Shader. The attribute is
// specified by the index in the Shader's uniform format.
//
// If the uniform attribute does not exist in the Shader, this method returns false.
//
// Supplied value must correspond to the type of the attribute. Correct types are these
// (right-hand is the type of the value):
//
//	Attr{Type: Int}:   int32
//	Attr{Type: UInt}:  uint32
//	Attr{Type: Float}: float32
//	Attr{Type: Vec2}:  mgl32.Vec2
//	Attr{Type: Vec3}:  mgl32.Vec3
//	Attr{Type: Vec4}:  mgl32.Vec4
//	Attr{Type: Mat4}:  mgl32.Mat4
//
// No other types are supported.
//
// The Shader must be bound before calling this method.
func (s *Shader) SetUniformAttr(uniform int, value interface{}) bool {
	if s.uniformLoc[uniform] < 0 {
		return false
	}

	switch s.uniformFmt[uniform].Type {
	case Int:
		value := value.(int32)
		gl.Uniform1iv(s.uniformLoc[uniform], 1, &value)
	case UInt:
		value := value.(uint32)
		gl.Uniform1uiv(s.uniformLoc[uniform], 1, &value)
	case Float:
		value := value.(float32)
		gl.Uniform1fv(s.uniformLoc[uniform], 1, &value)
	case Vec2:
		value := value.(mgl32.Vec2)
		gl.Uniform2fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec3:
		value := value.(mgl32.Vec3)
		gl.Uniform3fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec4:
		value := value.(mgl32.Vec4)
		gl.Uniform4fv(s.uniformLoc[uniform], 1, &value[0])
	case Mat4:
		value := value.(mgl32.Mat4)
		gl.UniformMatrix4fv(s.uniformLoc[uniform], 1, false, &value[0])
	default:
		panic("set uniform attr: invalid attribute type")
	}

	return true
}

// Begin binds the Shader program. This is necessary before using the Shader.
func (s *Shader) Begin() {
	s.program.bind()
}

// End unbinds the Shader program and restores the previous one.
func (s *Shader) End() {
	s.program.restore()
}

func logGlError(context string, code uint32) {
	util.LogGlError(fmt.Sprintf("%s: GL error 0x%x", context, code))
}
