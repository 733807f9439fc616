// Package shape fills simple primitives onto a canvas. Polygons, rectangles and lines are
// anti-aliased; ellipses have hard edges.
//
// Coordinates are in pixels with the origin at the canvas' top-left corner, so a pixel
// (x, y) covers the unit square [x, x+1) x [y, y+1). Every primitive is composited over the
// existing pixels.
package shape

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Box is an axis-aligned rectangle spanning Min to Max.
type Box struct {
	Min, Max Point
}

func Rect(x0, y0, x1, y1 float64) Box {
	return Box{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

func (b Box) Dx() float64 { return b.Max.X - b.Min.X }
func (b Box) Dy() float64 { return b.Max.Y - b.Min.Y }

func (b Box) Empty() bool {
	return b.Dx() <= 0 || b.Dy() <= 0
}

// Inset shrinks the box by d on every side.
func (b Box) Inset(d float64) Box {
	return Rect(b.Min.X+d, b.Min.Y+d, b.Max.X-d, b.Max.Y-d)
}

// Ellipse fills the ellipse inscribed in box. Unlike the other primitives its edge is not
// anti-aliased: a pixel is painted when its centre lies inside the ellipse, so a disc drawn on
// a transparent canvas leaves every pixel either fully opaque or fully transparent.
func Ellipse(dst draw.Image, box Box, fill color.Color) {
	if box.Empty() {
		return
	}
	r := dst.Bounds()
	mask := image.NewAlpha(r)
	cx, cy := box.Min.X+box.Dx()/2, box.Min.Y+box.Dy()/2
	rx, ry := box.Dx()/2, box.Dy()/2

	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}

	draw.DrawMask(dst, r, image.NewUniform(fill), image.Point{}, mask, r.Min, draw.Over)
}

// Rectangle fills box and, when outline is non-nil, strokes a border of the given width
// running inward from the box edge.
func Rectangle(dst draw.Image, box Box, fill, outline color.Color, width float64) {
	if box.Empty() {
		return
	}
	if fill != nil {
		paint(dst, fill, func(z *vector.Rasterizer, o Point) {
			addBox(z, box, o, false)
		})
	}
	if outline == nil || width <= 0 {
		return
	}

	inner := box.Inset(width)
	paint(dst, outline, func(z *vector.Rasterizer, o Point) {
		addBox(z, box, o, false)
		if !inner.Empty() {
			addBox(z, inner, o, true)
		}
	})
}

// Polygon fills the closed polygon through pts and, when outline is non-nil, strokes every
// edge one pixel wide.
func Polygon(dst draw.Image, pts []Point, fill, outline color.Color) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		paint(dst, fill, func(z *vector.Rasterizer, o Point) {
			z.MoveTo(f32(pts[0].X-o.X), f32(pts[0].Y-o.Y))
			for _, p := range pts[1:] {
				z.LineTo(f32(p.X-o.X), f32(p.Y-o.Y))
			}
			z.ClosePath()
		})
	}
	if outline == nil {
		return
	}

	paint(dst, outline, func(z *vector.Rasterizer, o Point) {
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			addSegment(z, a, b, o, 1, true)
		}
	})
}

// Line strokes the segment a-b with butt ends.
func Line(dst draw.Image, a, b Point, col color.Color, width float64) {
	if width <= 0 || a == b {
		return
	}
	paint(dst, col, func(z *vector.Rasterizer, o Point) {
		addSegment(z, a, b, o, width, false)
	})
}

// paint rasterizes the path built by fn and composites col through it. fn receives the
// canvas origin so paths can be expressed in canvas coordinates.
func paint(dst draw.Image, col color.Color, fn func(z *vector.Rasterizer, o Point)) {
	r := dst.Bounds()
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	fn(z, Pt(float64(r.Min.X), float64(r.Min.Y)))
	z.Draw(dst, r, image.NewUniform(col), image.Point{})
}

// addBox appends box as a closed sub-path. Reversed sub-paths subtract from the coverage of
// forward ones, which is how the rectangle border punches out its interior.
func addBox(z *vector.Rasterizer, box Box, o Point, reverse bool) {
	x0, y0 := f32(box.Min.X-o.X), f32(box.Min.Y-o.Y)
	x1, y1 := f32(box.Max.X-o.X), f32(box.Max.Y-o.Y)

	z.MoveTo(x0, y0)
	if reverse {
		z.LineTo(x0, y1)
		z.LineTo(x1, y1)
		z.LineTo(x1, y0)
	} else {
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
	}
	z.ClosePath()
}

// addSegment appends the quad covering a-b at the given width. Square caps extend the quad
// by half the width past both ends so adjacent polygon edges meet without notches.
func addSegment(z *vector.Rasterizer, a, b, o Point, width float64, square bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l, dy/l
	h := width / 2
	nx, ny := -uy*h, ux*h

	if square {
		a = Pt(a.X-ux*h, a.Y-uy*h)
		b = Pt(b.X+ux*h, b.Y+uy*h)
	}
	a, b = Pt(a.X-o.X, a.Y-o.Y), Pt(b.X-o.X, b.Y-o.Y)

	z.MoveTo(f32(a.X+nx), f32(a.Y+ny))
	z.LineTo(f32(b.X+nx), f32(b.Y+ny))
	z.LineTo(f32(b.X-nx), f32(b.Y-ny))
	z.LineTo(f32(a.X-nx), f32(a.Y-ny))
	z.ClosePath()
}

func f32(v float64) float32 {
	return float32(v)
}
