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

// Package amount derives the spelled-out amount and the cents field of a
// check from its numeric amount.
package amount

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"seehuhn.de/go/checkprint"
)

// TextWidth is the width, in characters, of the dash-padded amount text,
// counting the words, the separating space and the dashes.
// The value matches the pay line of the printed check form.
const TextWidth = 48

// Derived holds the fields computed from an amount.
type Derived struct {
	// Parsed is false if the amount could not be read as a number.
	// In this case Text and Cents are empty.
	Parsed bool

	// Text is the integer part of the amount in words, padded with a space
	// and dashes to TextWidth characters.
	Text string

	// Cents is the two-digit fractional part, e.g. "05" or "00".
	Cents string
}

// Derive computes the amount text and the cents for the given amount.
//
// The cents are floor(amount*100) mod 100, computed in exact decimal
// arithmetic.  For negative amounts the cents of the absolute value are
// used.
func Derive(amount string) Derived {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Derived{}
	}

	whole := d.Truncate(0)
	if !whole.Abs().LessThan(maxWhole) {
		// too large to spell out
		return Derived{}
	}

	cents := d.Abs().Shift(2).Floor().Mod(hundred).IntPart()

	return Derived{
		Parsed: true,
		Text:   Pad(Words(whole.IntPart())),
		Cents:  formatCents(cents),
	}
}

// Pad appends a space and enough dashes to make s TextWidth characters
// wide.  Strings of length 0 or 1 are returned unchanged; strings which
// are already TextWidth characters or longer get a single trailing space.
func Pad(s string) string {
	n := len(s)
	if n <= 1 {
		return s
	}
	return s + " " + strings.Repeat("-", max(TextWidth-1-n, 0))
}

// Apply sets the derived fields [checkprint.FieldAmountText] and
// [checkprint.FieldDecimal] of rec.  A record with a missing or
// unparsable amount gets empty derived fields.
func Apply(rec *checkprint.Record) Derived {
	val, _ := rec.Get(checkprint.FieldAmount)
	res := Derive(val)
	rec.Set(checkprint.FieldAmountText, res.Text)
	rec.Set(checkprint.FieldDecimal, res.Cents)
	return res
}

func formatCents(c int64) string {
	if c < 10 {
		return "0" + strconv.FormatInt(c, 10)
	}
	return strconv.FormatInt(c, 10)
}

var (
	hundred = decimal.NewFromInt(100)

	// maxWhole bounds the integer part to what Words can spell out.
	maxWhole = decimal.NewFromInt(MaxWords)
)
