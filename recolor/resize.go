package recolor

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

// resize scales img to a size x size square. Sources that are not square are centered and
// keep their aspect ratio, leaving transparent bands on the short side.
func resize(logger *slog.Logger, img image.Image, size int) image.Image {
	srcBounds := img.Bounds()
	if srcBounds.Dx() == size && srcBounds.Dy() == size {
		return img
	}

	destSize := image.Rect(0, 0, size, size)
	destBounds := destSize
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	switch {
	case srcW > srcH:
		h := size * srcH / srcW
		destBounds.Min.Y = (size - h) / 2
		destBounds.Max.Y = destBounds.Min.Y + h
	case srcH > srcW:
		w := size * srcW / srcH
		destBounds.Min.X = (size - w) / 2
		destBounds.Max.X = destBounds.Min.X + w
	}

	logger.Info("resizing", "from", srcBounds.Size(), "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := image.NewNRGBA(destSize)
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Over, nil)

	return dest
}
