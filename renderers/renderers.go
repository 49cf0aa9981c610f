package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/figure"
	"github.com/tdewolff/figure/renderers/rasterizer"
	"github.com/tdewolff/figure/renderers/svg"
	"golang.org/x/image/tiff"
)

type Options struct {
	Scale  float64
	JPG    *jpeg.Options
	GIF    *gif.Options
	TIFF   *tiff.Options
	SVG    *svg.Options
	Raster *rasterizer.Options
}

// Scale is the number of pixels per unit of raster output.
type Scale float64

func parseOptions(opts []interface{}) (Options, error) {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case Scale:
			options.Scale = float64(o)
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *rasterizer.Options:
			options.Raster = o
		default:
			return options, fmt.Errorf("unknown option: %v", opt)
		}
	}
	return options, nil
}

// Write paints the figures on a surface of the given size and writes it in the format given by the
// extension, such as ".svg" or ".png".
func Write(w io.Writer, ext string, width, height float64, figs []figure.Figure, opts ...interface{}) error {
	options, err := parseOptions(opts)
	if err != nil {
		return err
	}

	switch ext = strings.ToLower(ext); ext {
	case ".svg":
		s := svg.New(w, width, height, options.SVG)
		for _, fig := range figs {
			fig.Paint(s)
		}
		return s.Close()
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		ropts := rasterizer.DefaultOptions
		if options.Raster != nil {
			ropts = *options.Raster
		}
		if options.Scale != 0.0 {
			ropts.Scale = options.Scale
		}
		img := rasterizer.Draw(width, height, &ropts, figs...)
		switch ext {
		case ".png":
			return png.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, options.JPG)
		case ".gif":
			return gif.Encode(w, img, options.GIF)
		}
		return tiff.Encode(w, img, options.TIFF)
	}
	return fmt.Errorf("unknown file extension: %v", ext)
}

// WriteFile writes the figures to a file, the format follows from the filename's extension.
func WriteFile(filename string, width, height float64, figs []figure.Figure, opts ...interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, filepath.Ext(filename), width, height, figs, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
