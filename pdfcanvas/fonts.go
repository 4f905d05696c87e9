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

package pdfcanvas

import (
	"errors"
	"fmt"
	"path/filepath"

	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/checkprint"
	"seehuhn.de/go/checkprint/layout"
)

// Default font file names, as looked for by [LoadFonts].
const (
	DefaultMICR    = "GnuMICR.ttf"
	DefaultRegular = "Roboto-Regular.ttf"
	DefaultBold    = "Roboto-Black.ttf"
)

// Fonts holds the three fonts used on a check.
// The fonts are loaded once and can be used for any number of documents.
type Fonts struct {
	Regular *truetype.Instance
	Bold    *truetype.Instance
	MICR    *truetype.Instance
}

// LoadFonts loads the fonts with the default file names from dir.
func LoadFonts(dir string) (*Fonts, error) {
	return LoadFontFiles(
		filepath.Join(dir, DefaultMICR),
		filepath.Join(dir, DefaultRegular),
		filepath.Join(dir, DefaultBold),
	)
}

// LoadFontFiles loads the three fonts from the given TrueType files.
func LoadFontFiles(micr, regular, bold string) (*Fonts, error) {
	res := &Fonts{}
	var err error
	res.MICR, err = loadFont(micr)
	if err != nil {
		return nil, err
	}
	res.Regular, err = loadFont(regular)
	if err != nil {
		return nil, err
	}
	res.Bold, err = loadFont(bold)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func loadFont(fname string) (*truetype.Instance, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, &checkprint.ConfigError{Source: fname, Err: err}
	}
	if !info.IsGlyf() {
		return nil, &checkprint.ConfigError{
			Source: fname,
			Err:    fmt.Errorf("%w: not a TrueType font", checkprint.ErrInvalid),
		}
	}
	F, err := truetype.New(info, nil)
	if err != nil {
		return nil, &checkprint.ConfigError{Source: fname, Err: err}
	}
	return F, nil
}

func (f *Fonts) get(face layout.Face) (*truetype.Instance, error) {
	var F *truetype.Instance
	switch face {
	case layout.Regular:
		F = f.Regular
	case layout.Bold:
		F = f.Bold
	case layout.MICR:
		F = f.MICR
	}
	if F == nil {
		return nil, errors.New("no font for face " + face.String())
	}
	return F, nil
}
