package shape

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 0xFF, A: 0xFF}
	blue = color.NRGBA{B: 0xFF, A: 0xFF}
)

func canvas(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func assertColor(t *testing.T, want color.NRGBA, img image.Image, x, y int) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	assert.InDelta(t, want.R, got.R, 1, "red at (%d,%d)", x, y)
	assert.InDelta(t, want.G, got.G, 1, "green at (%d,%d)", x, y)
	assert.InDelta(t, want.B, got.B, 1, "blue at (%d,%d)", x, y)
	assert.InDelta(t, want.A, got.A, 1, "alpha at (%d,%d)", x, y)
}

func TestEllipseFillsInscribedDisc(t *testing.T) {
	img := canvas(40, 40)
	Ellipse(img, Rect(0, 0, 40, 40), red)

	assertColor(t, red, img, 20, 20)
	assertColor(t, red, img, 1, 20)
	assertColor(t, red, img, 20, 38)
	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
		assertColor(t, color.NRGBA{}, img, p.X, p.Y)
	}
}

func TestEllipseHasHardEdges(t *testing.T) {
	for _, size := range []int{7, 40, 193} {
		img := canvas(size, size)
		Ellipse(img, Rect(0, 0, float64(size), float64(size)), red)

		for y := range size {
			for x := range size {
				a := img.NRGBAAt(x, y).A
				require.True(t, a == 0 || a == 0xFF, "size %d pixel (%d,%d) alpha %d", size, x, y, a)
			}
		}
	}
}

func TestEllipseOverExistingPixels(t *testing.T) {
	img := canvas(10, 10)
	Rectangle(img, Rect(0, 0, 10, 10), blue, nil, 0)
	Ellipse(img, Rect(0, 0, 10, 10), red)

	assertColor(t, red, img, 5, 5)
	assertColor(t, blue, img, 0, 0)
}

func TestEllipseOnOffsetCanvas(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 30, 30))
	Ellipse(img, Rect(10, 10, 30, 30), blue)

	assertColor(t, blue, img, 20, 20)
	assertColor(t, color.NRGBA{}, img, 10, 10)
}

func TestRectangleOutline(t *testing.T) {
	img := canvas(20, 20)
	Rectangle(img, Rect(2, 2, 18, 18), red, blue, 2)

	assertColor(t, blue, img, 2, 10)
	assertColor(t, blue, img, 3, 10)
	assertColor(t, red, img, 4, 10)
	assertColor(t, red, img, 10, 10)
	assertColor(t, blue, img, 17, 10)
	assertColor(t, color.NRGBA{}, img, 1, 10)
	assertColor(t, color.NRGBA{}, img, 18, 10)
}

func TestRectangleWithoutOutline(t *testing.T) {
	img := canvas(10, 10)
	Rectangle(img, Rect(0, 0, 5, 10), red, nil, 3)

	assertColor(t, red, img, 0, 0)
	assertColor(t, red, img, 4, 9)
	assertColor(t, color.NRGBA{}, img, 5, 5)
}

func TestPolygonFillAndOutline(t *testing.T) {
	img := canvas(30, 30)
	pts := []Point{Pt(5, 5), Pt(25, 5), Pt(25, 25), Pt(5, 25)}
	Polygon(img, pts, red, blue)

	assertColor(t, red, img, 15, 15)
	// the 1px stroke is centred on the edge, covering half of each adjacent pixel
	edge := color.NRGBAModel.Convert(img.At(15, 5)).(color.NRGBA)
	assert.Greater(t, edge.B, uint8(0x70))
	assertColor(t, color.NRGBA{}, img, 15, 2)
}

func TestPolygonTriangle(t *testing.T) {
	img := canvas(20, 20)
	Polygon(img, []Point{Pt(0, 0), Pt(20, 0), Pt(0, 20)}, red, nil)

	assertColor(t, red, img, 2, 2)
	assertColor(t, color.NRGBA{}, img, 17, 17)
}

func TestLine(t *testing.T) {
	img := canvas(20, 20)
	Line(img, Pt(2, 10), Pt(18, 10), blue, 2)

	assertColor(t, blue, img, 10, 9)
	assertColor(t, blue, img, 10, 10)
	assertColor(t, color.NRGBA{}, img, 10, 12)
	assertColor(t, color.NRGBA{}, img, 0, 10)
}

func TestDegenerateShapesDrawNothing(t *testing.T) {
	img := canvas(10, 10)
	Ellipse(img, Rect(5, 5, 5, 9), red)
	Rectangle(img, Rect(3, 3, 1, 8), red, blue, 1)
	Polygon(img, []Point{Pt(0, 0), Pt(9, 9)}, red, blue)
	Line(img, Pt(4, 4), Pt(4, 4), red, 3)
	Line(img, Pt(0, 0), Pt(9, 9), red, 0)

	assert.Equal(t, canvas(10, 10).Pix, img.Pix)
}

func TestBoxInset(t *testing.T) {
	b := Rect(0, 0, 10, 6).Inset(2)
	assert.Equal(t, Rect(2, 2, 8, 4), b)
	assert.False(t, b.Empty())
	assert.True(t, Rect(0, 0, 4, 4).Inset(2).Empty())
}
