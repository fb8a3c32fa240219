package raytracer

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Canvas is a dense width*height pixel buffer in row-major order,
// (0, 0) at the top left.
type Canvas struct {
	width, height int
	pixels        []Color
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// WriteAt sets the color at (x, y). Out-of-bounds coordinates are
// silently ignored: pixel tasks are computed independently and a
// renderer should never have to special-case its own canvas size.
func (c *Canvas) WriteAt(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[y*c.width+x]
}

// Bounds, At, and ColorModel implement image.Image, so a Canvas can
// be handed directly to anything that consumes one — including the
// SSIM comparison used by the test suite.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) At(x, y int) color.Color {
	px := c.PixelAt(x, y)
	return &px
}

func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// ToPPM serializes the canvas as ASCII P3: header, then the pixel
// stream token-wrapped so no line exceeds 70 characters. Wrapping
// operates on the flattened token stream, not per-pixel, so a single
// pixel's RGB triple can be split across two lines.
func (c *Canvas) ToPPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		var line strings.Builder
		n := 0
		for x := 0; x < c.width; x++ {
			px := c.PixelAt(x, y)
			for _, v := range []float64{px.X, px.Y, px.Z} {
				tok := strconv.Itoa(prim.ByteComponent(v))
				k := len(tok)
				if n+k > 70 {
					s := line.String()
					b.WriteString(strings.TrimSuffix(s, " "))
					b.WriteByte('\n')
					line.Reset()
					n = 0
				}
				line.WriteString(tok)
				line.WriteByte(' ')
				n += k + 1
			}
		}
		b.WriteString(strings.TrimSuffix(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
