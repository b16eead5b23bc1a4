package gui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const textPadding = 6

var (
	textBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
	lineColors     = map[LineKind]color.Color{
		LineText:     color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		LineHeader:   color.NRGBA{R: 110, G: 200, B: 255, A: 255},
		LineSelected: color.NRGBA{R: 255, G: 220, B: 60, A: 255},
	}
)

// TextBlock rasterises lines with a fixed 7x13 bitmap font.
type TextBlock struct {
	face       font.Face
	lineHeight int
}

func NewTextBlock() *TextBlock {
	return &TextBlock{
		face:       basicfont.Face7x13,
		lineHeight: basicfont.Face7x13.Height + 2,
	}
}

// Size returns the pixel size RenderLines would produce for lines.
func (t *TextBlock) Size(lines []Line) (int, int) {
	width := 0
	for _, line := range lines {
		lineWidth := font.MeasureString(t.face, line.Text).Ceil()
		if lineWidth > width {
			width = lineWidth
		}
	}
	return width + 2*textPadding, len(lines)*t.lineHeight + 2*textPadding
}

// RenderLines draws the lines onto a translucent background. Row 0 of the
// returned image is the top of the text.
func (t *TextBlock) RenderLines(lines []Line) *image.RGBA {
	width, height := t.Size(lines)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(textBackground), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Face: t.face}
	ascent := t.face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		drawer.Src = image.NewUniform(lineColors[line.Kind])
		drawer.Dot = fixed.P(textPadding, textPadding+i*t.lineHeight+ascent)
		drawer.DrawString(line.Text)
	}
	return img
}

// PlainLines wraps strings as LineText lines.
func PlainLines(texts ...string) []Line {
	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = Line{Text: text, Kind: LineText}
	}
	return lines
}
