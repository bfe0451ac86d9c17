package render

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// halfBlock renders the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Point is a viewport position in canvas pixels
type Point struct {
	X, Y float64
}

// Canvas is a pixel grid with two pixels per terminal cell vertically
// Pixel centers sit at (x+0.5, y+0.5)
type Canvas struct {
	width, height int // Pixels
	pixels        []colorful.Color
	background    colorful.Color
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int, background colorful.Color) *Canvas {
	c := &Canvas{background: background}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts the canvas to cols x rows cells and clears it
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.width = cols
	c.height = rows * 2
	size := c.width * c.height
	if cap(c.pixels) < size {
		c.pixels = make([]colorful.Color, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.Clear()
}

// Clear fills every pixel with the background
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// Size returns the pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the pixel colour; out of bounds returns the background
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.background
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) set(x, y int, col colorful.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// FillPolygon scan-converts a simple polygon with the even-odd rule
func (c *Canvas) FillPolygon(points []Point, col colorful.Color) {
	if len(points) < 3 {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := int(math.Max(0, math.Floor(minY)))
	y1 := int(math.Min(float64(c.height-1), math.Ceil(maxY)))

	xs := make([]float64, 0, len(points))
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			// Half-open edge test so shared vertices count once
			if (a.Y <= sy && b.Y > sy) || (b.Y <= sy && a.Y > sy) {
				t := (sy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xStart := int(math.Ceil(xs[i] - 0.5))
			xEnd := int(math.Ceil(xs[i+1]-0.5)) - 1
			if xStart < 0 {
				xStart = 0
			}
			if xEnd >= c.width {
				xEnd = c.width - 1
			}
			for x := xStart; x <= xEnd; x++ {
				c.set(x, y, col)
			}
		}
	}
}

// Blit writes the canvas into buf at cell offset ox, oy using half-block glyphs
func (c *Canvas) Blit(buf *Buffer, ox, oy int) {
	rows := c.height / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < c.width; x++ {
			buf.Set(ox+x, oy+row, halfBlock, Style(c.At(x, row*2), c.At(x, row*2+1)))
		}
	}
}
