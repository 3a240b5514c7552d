// Go-Invert inverts the colors of an image file in place, leaving fully
// transparent pixels alone (handy for flipping a logo between light and
// dark backgrounds).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"github.com/anas-shakeel/go-invert/internal/inverter"
	"github.com/anas-shakeel/go-invert/internal/logger"
	"github.com/anas-shakeel/go-invert/internal/term"
)

var slogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// previewFit keeps -preview output small enough for a terminal.
const previewFit = 48

var (
	preview = flag.Bool(
		"preview",
		false,
		"Render the inverted image in the terminal afterwards",
	)
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	ctx := logger.SetContext(context.Background(), slogger)
	img, err := inverter.InvertInPlace(ctx, path)
	if err != nil {
		slogger.Error(
			"Error processing image",
			"err", err,
			"path", path,
		)
		return 1
	}

	if *preview {
		term.Preview(os.Stdout, img, previewFit)
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] <image>\n\nExample: %s public/tithe_logo.png\n\nFlags:\n",
		os.Args[0], os.Args[0])
	flag.PrintDefaults()
}
