// Package imageio loads image files into NRGBA buffers and writes them
// back in their original format.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// The encodable formats register their decoders via format.go's
	// imports; WebP is decode-only and needs the blank import here.
	_ "golang.org/x/image/webp"
)

// Load decodes the file at path into a straight-alpha NRGBA buffer and
// reports the format it was stored in. Nothing is created or modified on
// disk, even on failure.
func Load(path string) (*image.NRGBA, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, name, err := image.Decode(f)
	if err != nil {
		if err == image.ErrFormat {
			return nil, FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
		return nil, FormatUnknown, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return toNRGBA(img), formatFromName(name), nil
}

// Save encodes img in format f and overwrites the file at path. The
// original content is destroyed; there is no backup and no rollback on a
// partial write.
func Save(path string, img image.Image, f Format) error {
	encode := encoder(f)
	if encode == nil {
		return fmt.Errorf("%w: cannot write %q back as %s", ErrUnsupportedFormat, path, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// toNRGBA converts img to non-premultiplied RGBA. Premultiplied storage
// would change the stored RGB of partially transparent pixels.
func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok {
		return m
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
