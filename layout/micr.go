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

// Control symbols of the E-13B MICR font, as mapped in the usual MICR
// TrueType fonts.
const (
	// MICROnUs brackets the check number (and, on business checks, the
	// account number).
	MICROnUs = 'C'

	// MICRTransit brackets the routing number.
	MICRTransit = 'A'
)

// MICRLine returns the text of the machine readable line at the bottom of
// the check.
func MICRLine(number, routing, account string) string {
	const onUs, transit = string(MICROnUs), string(MICRTransit)
	return onUs + number + onUs + "   " +
		transit + routing + transit + " " +
		account + onUs
}
