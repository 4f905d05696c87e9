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

package amount

import (
	"strings"

	"github.com/divan/num2words"
)

// MaxWords is the smallest magnitude which [Words] cannot spell out.
const MaxWords = 1_000_000_000_000

// Words spells out n as an English cardinal number, using single spaces
// between the words.  The output contains no "and", no commas and no
// hyphens, e.g. "one thousand two hundred thirty four".
// The magnitude of n must be less than [MaxWords].
func Words(n int64) string {
	if n < 0 {
		return "minus " + Words(-n)
	}
	w := num2words.Convert(int(n))
	w = strings.ReplaceAll(w, " and", "")
	w = strings.ReplaceAll(w, ",", "")
	return strings.ReplaceAll(w, "-", " ")
}
