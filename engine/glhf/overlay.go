package glhf

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ScreenVertexFormat is the layout of the screen-space textured quad.
var ScreenVertexFormat = AttrFormat{
	{Name: "position", Type: Vec2},
	{Name: "texCoord", Type: Vec2},
}

// ScreenUniformFormat holds the pixel-space orthographic projection.
var ScreenUniformFormat = AttrFormat{
	{Name: "projection", Type: Mat4},
}

// ScreenImage draws an RGBA image 1:1 in pixel coordinates, 0,0 at the top left.
type ScreenImage struct {
	shader   *Shader
	texture  *Texture
	quad     *VertexSlice[GlFloat]
	position mgl32.Vec2
	visible  bool
}

// NewScreenImage must be called on the main thread.
func NewScreenImage(shader *Shader) *ScreenImage {
	quad := MakeVertexSlice(shader, 6, 6)
	quad.SetPrimitiveType(gl.TRIANGLES)
	return &ScreenImage{
		shader:  shader,
		quad:    quad,
		visible: true,
	}
}

// SetImage uploads img. The texture is reused while the size does not change.
func (s *ScreenImage) SetImage(img *image.RGBA) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width == 0 || height == 0 {
		s.visible = false
		return
	}
	s.visible = true
	pixels := tightPixels(img)
	if s.texture != nil && s.texture.Width() == width && s.texture.Height() == height {
		s.texture.Begin()
		s.texture.SetPixels(0, 0, width, height, pixels)
		s.texture.End()
		return
	}
	if s.texture != nil {
		s.texture.Delete()
	}
	s.texture = NewTexture(width, height, false, pixels)
	s.updateQuad()
}

func (s *ScreenImage) SetPosition(pos mgl32.Vec2) {
	s.position = pos
	if s.texture != nil {
		s.updateQuad()
	}
}

func (s *ScreenImage) updateQuad() {
	x0, y0 := GlFloat(s.position.X()), GlFloat(s.position.Y())
	x1, y1 := x0+GlFloat(s.texture.Width()), y0+GlFloat(s.texture.Height())
	s.quad.Begin()
	s.quad.SetVertexData([]GlFloat{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,

		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	})
	s.quad.End()
}

// Draw renders the image on top of the scene for a framebuffer of the given size.
func (s *ScreenImage) Draw(screenWidth, screenHeight int) {
	if s.texture == nil || !s.visible {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	s.shader.Begin()
	s.shader.SetUniformAttr(0, mgl32.Ortho2D(0, float32(screenWidth), float32(screenHeight), 0))
	s.texture.Begin()
	s.quad.Begin()
	s.quad.Draw()
	s.quad.End()
	s.texture.End()
	s.shader.End()
	gl.Enable(gl.DEPTH_TEST)
}

// Delete frees the texture and the quad. The shader is owned by the caller.
func (s *ScreenImage) Delete() {
	if s.texture != nil {
		s.texture.Delete()
		s.texture = nil
	}
	s.quad.Delete()
}

func tightPixels(img *image.RGBA) []uint8 {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == width*4 && len(img.Pix) == width*height*4 {
		return img.Pix
	}
	pixels := make([]uint8, 0, width*height*4)
	for y := 0; y < height; y++ {
		start := y * img.Stride
		pixels = append(pixels, img.Pix[start:start+width*4]...)
	}
	return pixels
}
