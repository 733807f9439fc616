// Package recolor turns an existing icon into a tinted silhouette on a solid disc.
//
// Every visible pixel keeps its alpha but loses its hue: the output is the tint color scaled
// by the pixel's intensity, the plain mean of its red, green and blue channels. Fully
// transparent pixels are skipped, so holes in the icon show the disc; only pixels outside the
// disc stay transparent.
package recolor

import (
	"image"
	"image/color"

	"storeicon/shape"
)

var (
	// DefaultBackground is the light red disc, #FFB3BA.
	DefaultBackground = color.NRGBA{R: 255, G: 179, B: 186, A: 255}
	// DefaultTint is saddle brown, #8B4513.
	DefaultTint = color.NRGBA{R: 139, G: 69, B: 19, A: 255}
)

// Intensity is the mean of c's color channels scaled to [0, 1].
func Intensity(c color.NRGBA) float64 {
	return float64(int(c.R)+int(c.G)+int(c.B)) / (3 * 255)
}

// Shade scales tint by the intensity of c and keeps the alpha of c. Channels are truncated.
func Shade(c, tint color.NRGBA) color.NRGBA {
	i := Intensity(c)
	return color.NRGBA{
		R: uint8(float64(tint.R) * i),
		G: uint8(float64(tint.G) * i),
		B: uint8(float64(tint.B) * i),
		A: c.A,
	}
}

// Recolor returns a copy of src with a background disc behind it and every non-transparent
// pixel replaced by its Shade. The result has src's size and starts at the origin.
func Recolor(src image.Image, background, tint color.NRGBA) *image.NRGBA {
	sr := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	shape.Ellipse(dst, shape.Rect(0, 0, float64(sr.Dx()), float64(sr.Dy())), background)

	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			dst.SetNRGBA(x-sr.Min.X, y-sr.Min.Y, Shade(c, tint))
		}
	}

	return dst
}
