package synth

import (
	"fmt"
	"image"
	"image/color"

	"storeicon/shape"

	"golang.org/x/image/draw"
)

// Faces colors one kind of Solid.
type Faces struct {
	Front, Top, Side color.NRGBA
}

type Palette struct {
	Background color.NRGBA
	Outline    color.NRGBA
	Shelf      Faces
	Crate      Faces
}

// DefaultPalette is the off-white disc with brown shelves and cardboard boxes.
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 245, G: 245, B: 240, A: 255},
	Outline:    color.NRGBA{R: 80, G: 40, B: 10, A: 255},
	Shelf: Faces{
		Front: color.NRGBA{R: 101, G: 50, B: 14, A: 255},
		Top:   color.NRGBA{R: 121, G: 70, B: 34, A: 255},
		Side:  color.NRGBA{R: 81, G: 50, B: 24, A: 255},
	},
	Crate: Faces{
		Front: color.NRGBA{R: 139, G: 69, B: 19, A: 255},
		Top:   color.NRGBA{R: 169, G: 89, B: 39, A: 255},
		Side:  color.NRGBA{R: 109, G: 59, B: 29, A: 255},
	},
}

// Draw renders the storage icon at size x size pixels. Outside the background disc the icon
// is transparent.
func Draw(size int, pal Palette) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", size)
	}

	l := NewLayout(size)
	bounds := image.Rect(0, 0, size, size)
	canvas := image.NewRGBA(bounds)

	shape.Ellipse(canvas, shape.Rect(0, 0, l.Size, l.Size), pal.Background)

	for _, s := range l.Shelves {
		drawSolid(canvas, s, pal.Shelf, pal.Outline, l.Outline)
	}
	for _, c := range l.Crates {
		drawSolid(canvas, c.Solid, pal.Crate, pal.Outline, l.Outline)
		shape.Line(canvas, c.Tape[0], c.Tape[1], pal.Outline, l.TapeWidth)
	}

	icon := image.NewNRGBA(bounds)
	draw.Draw(icon, bounds, canvas, bounds.Min, draw.Src)
	return icon, nil
}

func drawSolid(dst draw.Image, s Solid, faces Faces, outline color.NRGBA, width float64) {
	shape.Rectangle(dst, s.Front, faces.Front, outline, width)
	shape.Polygon(dst, s.Top, faces.Top, outline)
	shape.Polygon(dst, s.Side, faces.Side, outline)
}
