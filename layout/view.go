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
	"errors"
	"fmt"

	"seehuhn.de/go/checkprint"
)

// Text is a static text element, ready to be drawn.
type Text struct {
	Placement
	Text string
}

// View is the resolved layout of one document.
// A View is computed from a [Template] and a [checkprint.StaticInfo] and
// contains everything which is the same on every check of a run.
// Views are not modified after construction and can be shared between
// documents.
type View struct {
	Static []Text

	Record Table

	MICR          Placement
	RoutingNumber string
	AccountNumber string

	AmountBox Rect
	CutLine   Line

	// Slots lists the signature slots in use, one per required signature.
	Slots []Rect
}

// View resolves the template for the given static info.
// If required is 2, the dual-signature captions are added and two
// signature slots are used.  The template itself is not modified.
func (t *Template) View(info checkprint.StaticInfo, required int) (*View, error) {
	if required < 1 || required > 2 {
		return nil, &checkprint.ConfigError{
			Source: "static info",
			Key:    checkprint.KeySignaturesRequired,
			Err:    fmt.Errorf("%w: %d signatures", checkprint.ErrInvalid, required),
		}
	}
	if len(t.Signatures) < required {
		return nil, &checkprint.ConfigError{
			Source: "template",
			Key:    "signature slots",
			Err:    fmt.Errorf("%w: need %d, have %d", checkprint.ErrMissing, required, len(t.Signatures)),
		}
	}

	v := &View{
		Static:    make([]Text, 0, len(t.Static)+2),
		Record:    append(Table(nil), t.Record...),
		MICR:      t.MICR,
		AmountBox: t.AmountBox,
		CutLine:   t.CutLine,
		Slots:     append([]Rect(nil), t.Signatures[:required]...),
	}

	for _, p := range t.Static {
		text, ok := info[p.Field]
		if !ok {
			text, ok = t.Text[p.Field]
		}
		if !ok {
			return nil, &checkprint.ConfigError{
				Source: "static info",
				Key:    p.Field,
				Err:    checkprint.ErrMissing,
			}
		}
		v.Static = append(v.Static, Text{Placement: p, Text: text})
	}

	var missing error
	v.RoutingNumber, missing = lookup(info, checkprint.KeyRoutingNumber)
	if missing != nil {
		return nil, missing
	}
	v.AccountNumber, missing = lookup(info, checkprint.KeyAccountNumber)
	if missing != nil {
		return nil, missing
	}

	if required == 2 {
		err := t.Dual.apply(v)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// apply adds the dual-signature captions to v.
func (d *DualCaptions) apply(v *View) error {
	i1 := v.index(fieldSignature1)
	i2 := v.index(fieldSignature2)
	if i1 < 0 || i2 < 0 {
		return &checkprint.ConfigError{
			Source: "template",
			Key:    fieldSignature1 + "/" + fieldSignature2,
			Err:    checkprint.ErrMissing,
		}
	}
	sig1 := v.Static[i1]

	notice := &v.Static[i2]
	notice.Text = d.Notice
	notice.X = sig1.X + d.NoticeDX
	notice.Y = sig1.Y + d.NoticeDY

	v.Static = append(v.Static,
		Text{
			Placement: Placement{
				Field: fieldSignature4,
				X:     sig1.X + d.CaptionDX,
				Y:     sig1.Y + d.CaptionDY,
				Size:  notice.Size,
			},
			Text: d.Caption,
		},
		Text{
			Placement: Placement{
				Field: fieldSignature3,
				X:     sig1.X + d.WatermarkDX,
				Y:     sig1.Y + d.WatermarkDY,
				Size:  sig1.Size,
			},
			Text: sig1.Text,
		},
	)
	return nil
}

func (v *View) index(field string) int {
	for i, t := range v.Static {
		if t.Field == field {
			return i
		}
	}
	return -1
}

func lookup(info checkprint.StaticInfo, key string) (string, error) {
	val, ok := info[key]
	if !ok {
		return "", &checkprint.ConfigError{Source: "static info", Key: key, Err: checkprint.ErrMissing}
	}
	return val, nil
}

// Validate checks, once before any document is written, that the template
// can render checks with the given static info and record fields.
// All problems found are reported together.
func (t *Template) Validate(info checkprint.StaticInfo, fields []string) error {
	var errs []error

	required, err := info.SignaturesRequired()
	if err != nil {
		errs = append(errs, &checkprint.ConfigError{
			Source: "static info",
			Key:    checkprint.KeySignaturesRequired,
			Err:    err,
		})
	} else if _, err := t.View(info, required); err != nil {
		errs = append(errs, err)
	}

	hasNumber := false
	for _, f := range fields {
		if f == checkprint.FieldNumber {
			hasNumber = true
		}
		if _, ok := t.Record.Lookup(f); !ok {
			errs = append(errs, &checkprint.ConfigError{
				Source: "record table",
				Key:    f,
				Err:    checkprint.ErrMissing,
			})
		}
	}
	if !hasNumber {
		errs = append(errs, &checkprint.ConfigError{
			Source: "check list",
			Key:    checkprint.FieldNumber,
			Err:    checkprint.ErrMissing,
		})
	}

	return errors.Join(errs...)
}
