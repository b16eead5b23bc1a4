package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// BeginEnder is an interface for manipulating OpenGL state.
//
// OpenGL is a state machine. Every object can 'enter' it's state and 'leave' it's state. For
// example, you can bind a buffer and unbind a buffer, bind a texture and unbind it, use shader
// and unuse it, and so on.
type BeginEnder interface {
	Begin()
	End()
}

// binder binds an OpenGL object and remembers the previous binding, so that it can be restored.
type binder struct {
	restoreLoc uint32
	bindFunc   func(uint32)

	obj uint32

	prev []uint32
}

func (b *binder) bind() *binder {
	var prev int32
	gl.GetIntegerv(b.restoreLoc, &prev)
	b.prev = append(b.prev, uint32(prev))

	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.obj)
	}
	return b
}

func (b *binder) restore() *binder {
	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.prev[len(b.prev)-1])
	}
	b.prev = b.prev[:len(b.prev)-1]
	return b
}

// Init loads the OpenGL function pointers and sets the blending defaults.
// It must be called with a current context, before any other function of this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "load OpenGL functions")
	}
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

// Clear clears the color and depth buffers.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the drawable area of the framebuffer.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// CheckForGLError logs and returns the pending OpenGL error, if any.
func CheckForGLError(context string) uint32 {
	errorCodeOfGL := gl.GetError()
	if errorCodeOfGL != gl.NO_ERROR {
		logGlError(context, errorCodeOfGL)
	}
	return errorCodeOfGL
}
