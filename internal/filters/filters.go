// Filters perform color manipulation and per-pixel operations
package filters

import "image"

// Inverts (negates) the R, G and B channels of every pixel, in-place.
// Fully transparent pixels (alpha == 0) are left untouched, and alpha is
// preserved everywhere, so a logo's transparent background stays
// transparent. Applying Invert twice restores the original buffer.
func Invert(img *image.NRGBA) {
	bounds := img.Bounds()

	// Iterate rows
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := img.PixOffset(bounds.Min.X, y)

		// Iterate pixels in row (4 bytes per pixel: R, G, B, A)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.Pix[i+3] != 0 {
				img.Pix[i+0] = 255 - img.Pix[i+0]
				img.Pix[i+1] = 255 - img.Pix[i+1]
				img.Pix[i+2] = 255 - img.Pix[i+2]
			}
			i += 4
		}
	}
}
