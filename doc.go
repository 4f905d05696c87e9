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

// Package checkprint contains the data types shared by the check printing
// packages.
//
// A run prints one PDF document per check.  The inputs are a [StaticInfo]
// with the payer and bank details, a list of [Record] values, one per
// check, and a directory of signature images.
//
// The work is split over the following packages:
//
//   - [seehuhn.de/go/checkprint/input] reads the two text input files.
//   - [seehuhn.de/go/checkprint/amount] spells out the amount and computes
//     the cents.
//   - [seehuhn.de/go/checkprint/signature] prepares the signature images.
//   - [seehuhn.de/go/checkprint/layout] places everything on the page.
//   - [seehuhn.de/go/checkprint/pdfcanvas] writes the PDF files.
//   - [seehuhn.de/go/checkprint/batch] drives one document per record.
package checkprint
