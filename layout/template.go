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

package layout

import (
	"maps"

	"seehuhn.de/go/checkprint"
)

// Placement gives the position and font size of one text field.
// Coordinates are in PDF points, measured from the top left corner of the
// page, with y increasing downwards.  (X, Y) is the start of the text
// baseline.
type Placement struct {
	Field string
	X, Y  float64
	Size  float64
	Bold  bool
}

// Table is an ordered list of text placements.
// Fields are drawn in table order.
type Table []Placement

// Lookup returns the placement for the given field.
func (t Table) Lookup(field string) (Placement, bool) {
	for _, p := range t {
		if p.Field == field {
			return p, true
		}
	}
	return Placement{}, false
}

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Line is a straight line segment in page coordinates.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Template describes the check form.
type Template struct {
	// Static lists the fields which are the same on every check.
	Static Table

	// Text gives the built-in text of static fields.  Values in the static
	// info take precedence.
	Text map[string]string

	// Record lists the per-check fields.  Every field of every record must
	// be listed here.
	Record Table

	// MICR gives the position and size of the machine readable line.
	MICR Placement

	// AmountBox is the box around the numeric amount.
	AmountBox Rect

	// CutLine separates the check from the rest of the page.
	CutLine Line

	// Signatures lists the signature slots.  Slot 0 is used for
	// single-signature checks, slots 0 and 1 for dual-signature checks.
	Signatures []Rect

	// Dual describes the additional captions used when two signatures are
	// required.
	Dual DualCaptions
}

// DualCaptions describes how the signature captions change when a check
// needs two signatures.  All positions are given relative to the position
// of the static field "signature1".
type DualCaptions struct {
	// Notice replaces the text of field "signature2", and the field is
	// moved by NoticeDX, NoticeDY.
	Notice             string
	NoticeDX, NoticeDY float64

	// A copy of the "signature1" watermark is added at WatermarkDX,
	// WatermarkDY, as field "signature3".
	WatermarkDX, WatermarkDY float64

	// Caption is added as field "signature4" at CaptionDX, CaptionDY, using
	// the font size of "signature2".
	Caption              string
	CaptionDX, CaptionDY float64
}

// Names of the static boilerplate fields.
const (
	fieldDate       = "date"
	fieldPayLine    = "pay_line"
	fieldPayBox     = "pay_box"
	fieldPayTo1     = "pay_to1"
	fieldPayTo2     = "pay_to2"
	fieldMemo       = "memo"
	fieldSignature1 = "signature1"
	fieldSignature2 = "signature2"
	fieldSignature3 = "signature3"
	fieldSignature4 = "signature4"
)

// Captions printed below the signature line.
const (
	CaptionSingle = "AUTHORIZED SIGNATURE"
	CaptionDual   = "AUTHORIZED SIGNATURES"
	NoticeDual    = "NOT VALID WITHOUT TWO SIGNATURES"
)

const watermark = "|AUTHORIZED|SIGNATURE|NOT|VALID|WITHOUT|ORIGINAL|SIGNATURE|" +
	"AUTHORIZED|SIGNATURE|VOID|IF|ALTERED|AUTHORIZED|SIGNATURE|" +
	"DO|NOT|ACCEPT|WITHOUT|VERIFYING|AUTHORIZED|SIGNATURE|LINE|"

// Default returns the built-in check form, on US Letter paper, with the
// check occupying the top third of the page.
// Every call returns a new copy, which the caller may modify.
func Default() *Template {
	return &Template{
		Static: Table{
			{Field: checkprint.KeyName, X: 36, Y: 38, Size: 14, Bold: true},
			{Field: checkprint.KeyAddressLine1, X: 36, Y: 50, Size: 10},
			{Field: checkprint.KeyAddressLine2, X: 36, Y: 62, Size: 10},
			{Field: checkprint.KeyBankName, X: 240, Y: 38, Size: 10},
			{Field: checkprint.KeyBankAddressLine1, X: 240, Y: 50, Size: 10},
			{Field: checkprint.KeyBankAddressLine2, X: 240, Y: 62, Size: 10},
			{Field: fieldDate, X: 420, Y: 62, Size: 10},
			{Field: fieldPayLine, X: 36, Y: 110, Size: 10},
			{Field: fieldPayBox, X: 485, Y: 110, Size: 14},
			{Field: fieldPayTo1, X: 36, Y: 138, Size: 10},
			{Field: fieldPayTo2, X: 36, Y: 150, Size: 10},
			{Field: fieldMemo, X: 36, Y: 200, Size: 10},
			{Field: fieldSignature1, X: 388, Y: 200, Size: 2},
			{Field: fieldSignature2, X: 430, Y: 210, Size: 8},
		},
		Text: map[string]string{
			fieldDate:       "DATE: _______________",
			fieldPayLine:    "PAY _______________________________________________________ AND _____ / 100 DOLLARS",
			fieldPayBox:     "$",
			fieldPayTo1:     "TO THE",
			fieldPayTo2:     "ORDER OF _________________________________________________",
			fieldMemo:       "MEMO:____________________________________________",
			fieldSignature1: watermark,
			fieldSignature2: CaptionSingle,
		},
		Record: Table{
			{Field: checkprint.FieldNumber, X: 540, Y: 36, Size: 10},
			{Field: checkprint.FieldDate, X: 452, Y: 59, Size: 10},
			{Field: checkprint.FieldAmount, X: 504, Y: 108, Size: 10},
			{Field: checkprint.FieldPayee, X: 94, Y: 147, Size: 10},
			{Field: checkprint.FieldMemo, X: 76, Y: 198, Size: 10},
			{Field: checkprint.FieldAmountText, X: 62, Y: 108, Size: 10},
			{Field: checkprint.FieldDecimal, X: 336, Y: 108, Size: 10},
		},
		MICR:      Placement{Field: "micr", X: 36, Y: 230, Size: 12},
		AmountBox: Rect{X: 476, Y: 90, Width: 98, Height: 30},
		CutLine:   Line{X1: 36, Y1: 270, X2: 576, Y2: 270},
		Signatures: []Rect{
			{X: 390, Y: 144, Width: 180, Height: 30},
			{X: 390, Y: 104, Width: 180, Height: 30},
		},
		Dual: DualCaptions{
			Notice:      NoticeDual,
			NoticeDX:    20,
			NoticeDY:    10,
			WatermarkDX: 0,
			WatermarkDY: -40,
			Caption:     CaptionDual,
			CaptionDX:   42,
			CaptionDY:   -30,
		},
	}
}

// Clone returns a deep copy of t.
func (t *Template) Clone() *Template {
	res := *t
	res.Static = append(Table(nil), t.Static...)
	res.Record = append(Table(nil), t.Record...)
	res.Signatures = append([]Rect(nil), t.Signatures...)
	res.Text = maps.Clone(t.Text)
	return &res
}
