package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

type GlFloat float32

// VertexSlice points to a portion of (or possibly whole) vertex array. It is used as a pointer,
// contrary to Go's builtin slices.
//
// Note that you need to Begin a VertexSlice before updating it's elements or drawing it.
// After you're done with it, you need to End it.
type VertexSlice[V any] struct {
	va                   *vertexArray[V]
	startIndex, endIndex int
}

// MakeVertexSlice allocates a new vertex array with specified capacity and returns a VertexSlice
// that points to it's first len elements.
//
// Note, that a vertex array is specialized for a specific shader and can't be used with another
// shader.
func MakeVertexSlice(shader *Shader, len, cap int) *VertexSlice[GlFloat] {
	if len > cap {
		panic("failed to make vertex slice: len > cap")
	}
	return &VertexSlice[GlFloat]{
		va:         newVertexArray[GlFloat](shader, cap),
		startIndex: 0,
		endIndex:   len,
	}
}

// VertexFormat returns the format of vertex attributes inside the underlying vertex array of this
// VertexSlice.
func (vs *VertexSlice[V]) VertexFormat() AttrFormat {
	return vs.va.format
}

// Stride returns the number of float32 elements occupied by one vertex.
func (vs *VertexSlice[V]) Stride() int {
	return vs.va.stride / 4
}

// Len returns the length of the VertexSlice (number of vertices).
func (vs *VertexSlice[V]) Len() int {
	return vs.endIndex - vs.startIndex
}

// Slice returns a sub-slice of this VertexSlice covering the range [i, j) (relative to this
// VertexSlice).
//
// Note, that the returned VertexSlice shares an underlying vertex array with the receiver
// VertexSlice. Modifying the contents of one modifies corresponding contents of the other.
func (vs *VertexSlice[V]) Slice(i, j int) *VertexSlice[V] {
	if i < 0 || j < i || j > vs.va.cap {
		panic("failed to slice vertex slice: index out of range")
	}
	return &VertexSlice[V]{
		va:         vs.va,
		startIndex: vs.startIndex + i,
		endIndex:   vs.startIndex + j,
	}
}

// SetVertexData sets the contents of the VertexSlice.
//
// The data is a slice of float32's, where each vertex attribute occupies a certain number of
// elements. Namely, Float occupies 1, Vec2 occupies 2, Vec3 occupies 3 and Vec4 occupies 4. The
// attribues in the data slice must be in the same order as in the vertex format of this Vertex
// Slice.
//
// If the length of vertices does not match the length of the VertexSlice, this method panics.
func (vs *VertexSlice[V]) SetVertexData(data []V) {
	if len(data)/vs.Stride() != vs.Len() {
		panic("set vertex data: wrong length of vertices")
	}
	vs.va.setVertexData(vs.startIndex, vs.endIndex, data)
}

// Draw draws the content of the VertexSlice.
func (vs *VertexSlice[V]) Draw() {
	vs.va.draw(vs.startIndex, vs.endIndex)
}

// Begin binds the underlying vertex array. Calling this method is necessary before using the VertexSlice.
func (vs *VertexSlice[V]) Begin() {
	vs.va.begin()
}

// End unbinds the underlying vertex array. Call this method when you're done with VertexSlice.
func (vs *VertexSlice[V]) End() {
	vs.va.end()
}

func (vs *VertexSlice[V]) SetPrimitiveType(glPrimitiveType uint32) {
	vs.va.primitiveType = glPrimitiveType
}

// Delete frees the GPU buffers of the underlying vertex array, for every slice sharing it.
func (vs *VertexSlice[V]) Delete() {
	vs.va.delete()
}

type vertexArray[V any] struct {
	vao, vbo      binder
	cap           int
	format        AttrFormat
	stride        int
	offset        []int
	shader        *Shader
	primitiveType uint32
	deleted       bool
}

const vertexArrayMinCap = 4

func newVertexArray[V any](shader *Shader, cap int) *vertexArray[V] {
	if cap < vertexArrayMinCap {
		cap = vertexArrayMinCap
	}

	va := &vertexArray[V]{
		primitiveType: gl.TRIANGLES,
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		cap:    cap,
		format: shader.VertexFormat(),
		stride: shader.VertexFormat().Size(),
		offset: make([]int, len(shader.VertexFormat())),
		shader: shader,
	}

	offset := 0
	for i, attr := range va.format {
		switch attr.Type {
		case Float, Vec2, Vec3, Vec4:
		default:
			panic(errors.New("failed to create vertex array: invalid attribute type"))
		}
		va.offset[i] = offset
		offset += attr.Type.Size()
	}

	gl.GenVertexArrays(1, &va.vao.obj)

	va.vao.bind()

	gl.GenBuffers(1, &va.vbo.obj)
	defer va.vbo.bind().restore()

	// particle data is rewritten every frame
	gl.BufferData(gl.ARRAY_BUFFER, cap*va.stride, nil, gl.DYNAMIC_DRAW)

	va.setAttributesForArray()

	va.vao.restore()

	runtime.SetFinalizer(va, (*vertexArray[V]).finalize)

	return va
}

func (va *vertexArray[V]) setAttributesForArray() {
	for i, attr := range va.format {
		loc := gl.GetAttribLocation(va.shader.program.obj, gl.Str(attr.Name+"\x00"))
		if loc < 0 {
			continue
		}

		var size int32
		switch attr.Type {
		case Float:
			size = 1
		case Vec2:
			size = 2
		case Vec3:
			size = 3
		case Vec4:
			size = 4
		}

		gl.VertexAttribPointerWithOffset(
			uint32(loc),
			size,
			gl.FLOAT,
			false,
			int32(va.stride),
			uintptr(va.offset[i]),
		)
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

func (va *vertexArray[V]) finalize() {
	if va.deleted {
		return
	}
	mainthread.CallNonBlock(va.delete)
}

func (va *vertexArray[V]) delete() {
	if va.deleted {
		return
	}
	va.deleted = true
	gl.DeleteVertexArrays(1, &va.vao.obj)
	gl.DeleteBuffers(1, &va.vbo.obj)
}

func (va *vertexArray[V]) begin() {
	va.vao.bind()
	va.vbo.bind()
}

func (va *vertexArray[V]) end() {
	va.vbo.restore()
	va.vao.restore()
}

func (va *vertexArray[V]) draw(startIndex, endIndex int) {
	if endIndex <= startIndex {
		return
	}
	gl.DrawArrays(va.primitiveType, int32(startIndex), int32(endIndex-startIndex))
}

func (va *vertexArray[V]) setVertexData(i, j int, data []V) {
	if j-i == 0 {
		// avoid setting 0 bytes of buffer data
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, i*va.stride, len(data)*4, gl.Ptr(data))
}
