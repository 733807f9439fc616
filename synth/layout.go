package synth

import (
	"math"

	"storeicon/shape"
)

const numShelves = 3

// boxOffsets holds, per shelf from top to bottom, the left edge of each box as a fraction of
// the icon size measured from the margin.
var boxOffsets = [numShelves][]float64{
	{0.05, 0.22, 0.39},
	{0.10, 0.32},
	{0.02, 0.20, 0.42},
}

// Solid is an oblique box: a front rectangle plus the top and right faces receding behind it.
type Solid struct {
	Front shape.Box
	Top   []shape.Point
	Side  []shape.Point
}

type Crate struct {
	Solid
	// Tape is the seal drawn across the front face.
	Tape [2]shape.Point
}

// Layout is the icon geometry for one size. Every length is a fixed fraction of Size, so the
// drawing keeps its proportions at any resolution.
type Layout struct {
	Size         float64
	Margin       float64
	ShelfSpacing float64
	Outline      float64
	TapeWidth    float64
	Shelves      []Solid
	Crates       []Crate
}

func NewLayout(size int) Layout {
	s := float64(size)
	margin := s * 0.15
	content := s - 2*margin
	spacing := content / (numShelves + 1)

	shelfThickness := s * 0.04
	overhang := s * 0.05
	boxW, boxH, depth := s*0.12, s*0.10, s*0.06

	l := Layout{
		Size:         s,
		Margin:       margin,
		ShelfSpacing: spacing,
		Outline:      math.Max(1, math.Floor(s*0.005)),
		TapeWidth:    math.Max(1, math.Floor(s*0.004)),
	}

	for i := range numShelves {
		y := margin + spacing*float64(i+1)
		l.Shelves = append(l.Shelves,
			oblique(shape.Rect(margin-overhang, y, margin+content+overhang, y+shelfThickness), depth))
	}

	for i, offsets := range boxOffsets {
		y := margin + spacing*float64(i+1) - boxH
		for _, off := range offsets {
			x := margin + s*off
			c := Crate{Solid: oblique(shape.Rect(x, y, x+boxW, y+boxH), depth)}
			tapeY := y + boxH*0.4
			c.Tape = [2]shape.Point{shape.Pt(x+boxW*0.2, tapeY), shape.Pt(x+boxW*0.8, tapeY)}
			l.Crates = append(l.Crates, c)
		}
	}

	return l
}

// oblique derives the receding faces of front. The back edge sits half the depth to the
// right and three tenths of it up.
func oblique(front shape.Box, depth float64) Solid {
	dx, dy := depth*0.5, -depth*0.3
	x0, y0, x1, y1 := front.Min.X, front.Min.Y, front.Max.X, front.Max.Y

	return Solid{
		Front: front,
		Top: []shape.Point{
			shape.Pt(x0, y0),
			shape.Pt(x0+dx, y0+dy),
			shape.Pt(x1+dx, y0+dy),
			shape.Pt(x1, y0),
		},
		Side: []shape.Point{
			shape.Pt(x1, y0),
			shape.Pt(x1+dx, y0+dy),
			shape.Pt(x1+dx, y1+dy),
			shape.Pt(x1, y1),
		},
	}
}
