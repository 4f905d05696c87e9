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

package signature

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/checkprint"
)

// block returns a w×h image, filled with c.
func block(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, fname string, img image.Image) {
	t.Helper()
	fd, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	err = png.Encode(fd, img)
	if err != nil {
		t.Fatal(err)
	}
	err = fd.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func isWhite(c color.NRGBA) bool {
	return c.R > 240 && c.G > 240 && c.B > 240
}

func isDark(c color.NRGBA) bool {
	return c.R < 15 && c.G < 15 && c.B < 15
}

func checkStrip(t *testing.T, img *image.NRGBA) {
	t.Helper()
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("wrong size %dx%d", b.Dx(), b.Dy())
	}
	if !img.Opaque() {
		t.Fatal("image is not opaque")
	}
}

func TestScaledSize(t *testing.T) {
	cases := []struct {
		w, h, newW, newH int
	}{
		{300, 50, 1500, 250},
		{100, 100, 250, 250},
		{200, 400, 125, 250},
		{3000, 100, 1500, 50},
		{1, 10000, 1, 250},
	}
	for _, c := range cases {
		w, h := scaledSize(c.w, c.h)
		if w != c.newW || h != c.newH {
			t.Errorf("scaledSize(%d, %d) = %d, %d, want %d, %d",
				c.w, c.h, w, h, c.newW, c.newH)
		}
	}
}

// TestNormalizeFlip checks that transparency becomes white and that the
// image is mirrored vertically.
func TestNormalizeFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 50))
	for y := 0; y < 25; y++ {
		for x := 0; x < 300; x++ {
			src.Set(x, y, color.Black)
		}
	}
	// the lower half stays fully transparent

	out := Normalize(src)
	checkStrip(t, out)

	if c := out.NRGBAAt(750, 20); !isWhite(c) {
		t.Errorf("top half: got %v, want white", c)
	}
	if c := out.NRGBAAt(750, 230); !isDark(c) {
		t.Errorf("bottom half: got %v, want black", c)
	}
}

// TestNormalizePadding checks that narrow images are anchored at the left.
func TestNormalizePadding(t *testing.T) {
	out := Normalize(block(100, 100, color.Black))
	checkStrip(t, out)

	if c := out.NRGBAAt(100, 125); !isDark(c) {
		t.Errorf("content: got %v, want black", c)
	}
	if c := out.NRGBAAt(1000, 125); !isWhite(c) {
		t.Errorf("padding: got %v, want white", c)
	}
}

// TestNormalizeWide checks that images hitting the width limit are padded
// at the top, which ends up at the bottom after the flip.
func TestNormalizeWide(t *testing.T) {
	out := Normalize(block(3000, 100, color.Black))
	checkStrip(t, out)

	if c := out.NRGBAAt(750, 25); !isDark(c) {
		t.Errorf("content: got %v, want black", c)
	}
	if c := out.NRGBAAt(750, 150); !isWhite(c) {
		t.Errorf("padding: got %v, want white", c)
	}
}

func TestFlatten(t *testing.T) {
	// bounds which do not start at the origin
	src := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	src.SetNRGBA(10, 20, color.NRGBA{A: 255})
	src.SetNRGBA(11, 20, color.NRGBA{A: 128})

	out := flatten(src)
	if b := out.Bounds(); b != image.Rect(0, 0, 4, 2) {
		t.Fatalf("wrong bounds %v", b)
	}
	if !out.Opaque() {
		t.Fatal("result is not opaque")
	}
	if c := out.NRGBAAt(0, 0); !isDark(c) {
		t.Errorf("opaque pixel: got %v, want black", c)
	}
	if c := out.NRGBAAt(1, 0); c.R < 120 || c.R > 135 {
		t.Errorf("half transparent pixel: got %v, want mid gray", c)
	}
	if c := out.NRGBAAt(3, 1); !isWhite(c) {
		t.Errorf("transparent pixel: got %v, want white", c)
	}
}

func TestNormalizeGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 60, 10))
	out := Normalize(src)
	checkStrip(t, out)
	if c := out.NRGBAAt(10, 10); !isDark(c) {
		t.Errorf("got %v, want black", c)
	}
}

func TestOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), block(20, 20, color.Black))
	writePNG(t, filepath.Join(dir, "a.png"), block(40, 20, color.Black))
	writePNG(t, filepath.Join(dir, "c.png"), block(60, 20, color.Black))
	err := os.WriteFile(filepath.Join(dir, "user_info.txt"), []byte("Name: X\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.Mkdir(filepath.Join(dir, "d.png"), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	sigs, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range sigs {
		names = append(names, s.Name)
		checkStrip(t, s.Image)
	}
	if d := cmp.Diff([]string{"a.png", "b.png", "c.png"}, names); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}

func TestAllRestartable(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "1.png"), block(20, 20, color.Black))

	count := func() int {
		n := 0
		for _, err := range All(dir) {
			if err != nil {
				t.Fatal(err)
			}
			n++
		}
		return n
	}
	if n := count(); n != 1 {
		t.Fatalf("got %d images, want 1", n)
	}

	writePNG(t, filepath.Join(dir, "2.png"), block(20, 20, color.Black))
	if n := count(); n != 2 {
		t.Fatalf("got %d images after rescan, want 2", n)
	}
}

func TestCorruptImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), block(20, 20, color.Black))
	err := os.WriteFile(filepath.Join(dir, "b.png"), []byte("not a png"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	sigs, err := Load(dir)
	if sigs != nil {
		t.Error("partial result returned")
	}
	var cfgErr *checkprint.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Key != "b.png" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("missing error")
	}
}

func TestEmptyDirectory(t *testing.T) {
	sigs, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(sigs) != 0 {
		t.Errorf("got %d images", len(sigs))
	}
}
