package advanced

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 40

// DrawSection renders the hull with its submerged region filled and the
// waterline across the frame, then cats the image to w (iTerm only). Meant
// for eyeballing a clipped section while debugging or from the CLI; never
// required for correctness.
func DrawSection(hull Curve, scale float64, w io.Writer) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range hull.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	// Keep the waterline in frame even when the hull sits entirely on one
	// side of it.
	minY = math.Min(minY, 0)
	maxY = math.Max(maxY, 0)

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)

	// Submerged region
	submerged, _ := hull.Submerged()
	if len(submerged.Points) > 1 {
		c.MoveTo(submerged.Points[0].X, submerged.Points[0].Y)
		for _, p := range submerged.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.3, 0.6)
		c.Fill()
	}

	// Hull outline
	if len(hull.Points) > 0 {
		c.MoveTo(hull.Points[0].X, hull.Points[0].Y)
		for _, p := range hull.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Waterline
	c.MoveTo(minX, 0)
	c.LineTo(maxX, 0)
	c.SetRGB(0, 0.5, 1)
	c.Stroke()

	f, err := os.CreateTemp("", "hydrostatic_section_*.png")
	if err != nil {
		return err
	}
	f.Close()
	defer os.Remove(f.Name())
	if err := c.SavePNG(f.Name()); err != nil {
		return err
	}
	return imgcat.CatFile(f.Name(), w)
}
