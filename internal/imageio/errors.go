package imageio

import "errors"

var (
	// ErrUnsupportedFormat is returned when the file's format cannot be
	// detected, or has no encoder for writing back.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrDecode is returned when the file cannot be opened or decoded.
	ErrDecode = errors.New("imageio: decode failed")

	// ErrEncode is returned when encoding or writing the file back fails.
	ErrEncode = errors.New("imageio: encode failed")
)
