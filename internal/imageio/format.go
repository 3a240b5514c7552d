package imageio

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format represents a supported image format.
type Format string

const (
	FormatUnknown Format = ""
	FormatPNG     Format = "PNG"
	FormatJPEG    Format = "JPEG"
	FormatGIF     Format = "GIF"
	FormatBMP     Format = "BMP"
	FormatTIFF    Format = "TIFF"
	FormatWebP    Format = "WebP"
)

// formatFromName maps the format name reported by image.Decode.
func formatFromName(name string) Format {
	switch name {
	case "png":
		return FormatPNG
	case "jpeg":
		return FormatJPEG
	case "gif":
		return FormatGIF
	case "bmp":
		return FormatBMP
	case "tiff":
		return FormatTIFF
	case "webp":
		return FormatWebP
	}
	return FormatUnknown
}

// encoder returns the encode function for f, or nil when f cannot be
// written back (WebP has no encoder, only a decoder).
func encoder(f Format) func(io.Writer, image.Image) error {
	switch f {
	case FormatPNG:
		return png.Encode
	case FormatJPEG:
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, nil)
		}
	case FormatGIF:
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}
	case FormatBMP:
		return bmp.Encode
	case FormatTIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}
	}
	return nil
}
