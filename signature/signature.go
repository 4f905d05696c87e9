// seehuhn.de/go/checkprint - print bank checks as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package signature prepares signature images for placement on a check.
//
// Every image is normalized into a strip of exactly [Width]×[Height]
// pixels: transparency is flattened onto white, the image is scaled to
// the strip height (or to the strip width, for very wide images), padded
// with white to fill the strip with the signature anchored at the bottom
// left, and finally flipped upside down.  The flip compensates for the
// inverted y axis of the page canvas, see [seehuhn.de/go/checkprint/layout].
package signature

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	// image decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/checkprint"
)

// Size of the normalized signature strip, in pixels.
const (
	Width  = 1500
	Height = 250
)

// Signature is a normalized signature image.
type Signature struct {
	// Name is the file name the image was read from, without directory.
	Name string

	// Image is exactly Width×Height pixels and fully opaque.
	Image *image.NRGBA
}

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether the file name has one of the recognized image
// file extensions.
func IsImageFile(name string) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

// Files returns the names of the image files in dir, sorted in ascending
// lexicographic order.  Sub-directories are not searched.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// All returns the normalized images in dir, in the order given by [Files].
// The directory is scanned anew every time the sequence is iterated.
// Iteration stops after the first error.
func All(dir string) iter.Seq2[*Signature, error] {
	return func(yield func(*Signature, error) bool) {
		names, err := Files(dir)
		if err != nil {
			yield(nil, &checkprint.ConfigError{Source: dir, Err: err})
			return
		}
		for _, name := range names {
			src, err := decodeFile(filepath.Join(dir, name))
			if err != nil {
				yield(nil, &checkprint.ConfigError{Source: dir, Key: name, Err: err})
				return
			}
			if !yield(&Signature{Name: name, Image: Normalize(src)}, nil) {
				return
			}
		}
	}
}

// Load reads and normalizes all images in dir.
// If any of the image files cannot be decoded, an error is returned and
// no images are returned.
func Load(dir string) ([]*Signature, error) {
	var res []*Signature
	for sig, err := range All(dir) {
		if err != nil {
			return nil, err
		}
		res = append(res, sig)
	}
	return res, nil
}

func decodeFile(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	return img, nil
}

// Normalize converts src into a signature strip of Width×Height pixels.
func Normalize(src image.Image) *image.NRGBA {
	flat := flatten(src)

	w, h := flat.Bounds().Dx(), flat.Bounds().Dy()
	newW, newH := scaledSize(w, h)
	if newW != w || newH != h {
		flat = imaging.Resize(flat, newW, newH, imaging.Lanczos)
	}

	strip := imaging.New(Width, Height, color.White)
	// The content sits at the left edge and at the bottom.
	strip = imaging.Paste(strip, flat, image.Pt(0, Height-newH))

	return imaging.FlipV(strip)
}

// flatten composes src over an opaque white background.
func flatten(src image.Image) *image.NRGBA {
	b := src.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, src, image.Point{}, 1)
}

// scaledSize returns the size of a w×h image scaled to height Height,
// or to width Width if the scaled image would otherwise be wider than
// Width.  Fractional sizes are truncated.
func scaledSize(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, Height
	}
	aspect := float64(w) / float64(h)
	newW := int(Height * aspect)
	newH := Height
	if newW > Width {
		newW = Width
		newH = int(Width / aspect)
	}
	return max(newW, 1), max(newH, 1)
}
