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

// Package layout places the fields of a check onto a page.
//
// All coordinates used in this package are PDF points, measured from the
// top left corner of the page, with the y axis pointing downwards.  A
// [Canvas] must use the same convention.  In particular, images are drawn
// into this top-down coordinate frame, so that the first pixel row of an
// image ends up at the bottom of its rectangle.  Signature images are
// prepared accordingly by [seehuhn.de/go/checkprint/signature].
package layout

import (
	"fmt"
	"image"

	"seehuhn.de/go/checkprint"
)

// Face selects one of the three fonts used on a check.
type Face int

// The available font faces.
const (
	Regular Face = iota
	Bold
	MICR
)

func (f Face) String() string {
	switch f {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case MICR:
		return "MICR"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Canvas is a drawing surface for one page.
//
// Drawing methods do not return errors.  Implementations which can fail
// keep the first error and report it when the page is finished.
type Canvas interface {
	// DrawText draws text with its baseline starting at (x, y).
	DrawText(face Face, size, x, y float64, text string)

	// DrawLine strokes a straight line.
	DrawLine(x1, y1, x2, y2 float64)

	// DrawImage draws img into the rectangle with top left corner (x, y).
	DrawImage(img image.Image, x, y, width, height float64)
}

// CheckRecord reports an error if rec contains a field which has no
// placement in v.
func (v *View) CheckRecord(rec checkprint.Record) error {
	for _, f := range rec.Fields {
		if _, ok := v.Record.Lookup(f.Name); !ok {
			return &checkprint.ConfigError{
				Source: "record table",
				Key:    f.Name,
				Err:    checkprint.ErrMissing,
			}
		}
	}
	return nil
}

// Render draws one check onto c.
//
// The cut line is drawn first, followed by the MICR line, the amount box,
// the signature images, the static texts of v and the fields of rec.
// Signature images are drawn into the slots of v; surplus images are
// ignored and missing images leave their slots empty.  The record is
// checked with [View.CheckRecord] before anything is drawn.
func Render(c Canvas, v *View, rec checkprint.Record, sigs []image.Image) error {
	err := v.CheckRecord(rec)
	if err != nil {
		return err
	}
	number, _ := rec.Get(checkprint.FieldNumber)

	c.DrawLine(v.CutLine.X1, v.CutLine.Y1, v.CutLine.X2, v.CutLine.Y2)

	micr := MICRLine(number, v.RoutingNumber, v.AccountNumber)
	c.DrawText(MICR, v.MICR.Size, v.MICR.X, v.MICR.Y, micr)

	drawBox(c, v.AmountBox)

	for i, slot := range v.Slots {
		if i >= len(sigs) {
			break
		}
		c.DrawImage(sigs[i], slot.X, slot.Y, slot.Width, slot.Height)
	}

	for _, t := range v.Static {
		face := Regular
		if t.Bold {
			face = Bold
		}
		c.DrawText(face, t.Size, t.X, t.Y, t.Text)
	}

	for _, f := range rec.Fields {
		p, _ := v.Record.Lookup(f.Name)
		face := Regular
		if p.Bold {
			face = Bold
		}
		c.DrawText(face, p.Size, p.X, p.Y, f.Value)
	}

	return nil
}

// drawBox draws the outline of r as four separate line segments.
func drawBox(c Canvas, r Rect) {
	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.Width, r.Y+r.Height
	c.DrawLine(x1, y1, x1, y2)
	c.DrawLine(x2, y1, x2, y2)
	c.DrawLine(x1, y1, x2, y1)
	c.DrawLine(x1, y2, x2, y2)
}
