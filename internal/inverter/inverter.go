// Package inverter ties the pipeline together: decode, invert, encode,
// overwrite.
package inverter

import (
	"context"
	"image"

	"github.com/anas-shakeel/go-invert/internal/filters"
	"github.com/anas-shakeel/go-invert/internal/imageio"
	"github.com/anas-shakeel/go-invert/internal/logger"
)

// InvertInPlace loads the image at path, inverts the RGB channels of every
// non-transparent pixel, and overwrites the file with the result, keeping
// the original format. The inverted buffer is returned so callers can
// render it without re-reading the file.
//
// There is a single linear failure path: any error (missing file,
// undecodable data, unwritable format, write failure) aborts the operation
// and the caller decides how to report it. A failed load leaves the file
// untouched.
func InvertInPlace(ctx context.Context, path string) (*image.NRGBA, error) {
	img, format, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}

	filters.Invert(img)

	if err := imageio.Save(path, img, format); err != nil {
		return nil, err
	}

	logger.For(ctx).Info("Successfully inverted colors",
		"path", path,
		"format", format,
	)
	return img, nil
}
