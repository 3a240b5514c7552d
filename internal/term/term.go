// Renders images in the terminal as ANSI truecolor blocks.
package term

import (
	"fmt"
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Preview prints img to w, one background-colored block of two spaces per
// pixel. Images larger than fit x fit are downscaled first. Meant for a
// rough visual check, not faithful rendering.
func Preview(w io.Writer, img image.Image, fit int) {
	img = Fit(img, fit)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fmt.Fprint(w, coloredBlock("  ", int(r>>8), int(g>>8), int(b>>8)))
		}
		fmt.Fprintln(w)
	}
}

// Fit downscales img so that neither side exceeds fit pixels, preserving
// the aspect ratio. If fit <= 0 or the image already fits, img is returned
// as-is.
func Fit(img image.Image, fit int) image.Image {
	bounds := img.Bounds()
	longest := max(bounds.Dx(), bounds.Dy())
	if fit <= 0 || longest <= fit {
		return img
	}

	ratio := float64(fit) / float64(longest)
	dst := image.NewNRGBA(image.Rect(
		0, 0,
		max(1, int(math.Round(float64(bounds.Dx())*ratio))),
		max(1, int(math.Round(float64(bounds.Dy())*ratio))),
	))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Print a Colored Block in terminal
func coloredBlock(block string, red, green, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
