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

// Package pdfcanvas writes check pages as PDF files.
//
// A [Page] implements [layout.Canvas].  Canvas coordinates have their
// origin in the top left corner of the page, with y increasing downwards;
// they are converted to PDF user space when drawing.  Images are drawn
// inside the top-down frame, which turns them upside down on the page.
package pdfcanvas

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"seehuhn.de/go/checkprint"
	"seehuhn.de/go/checkprint/layout"
)

// Paper is the page size used for checks: US Letter.
var Paper = document.Letter

// Page is a single-page PDF document.
type Page struct {
	page   *document.Page
	fonts  *Fonts
	path   string
	height float64

	err error
}

var _ layout.Canvas = (*Page)(nil)

// Create starts a new PDF file with a single page.
// The file is written when [Page.Close] is called.
func Create(path string, fonts *Fonts) (*Page, error) {
	page, err := document.CreateSinglePage(path, Paper, pdf.V1_7, nil)
	if err != nil {
		return nil, &checkprint.OutputError{Path: path, Err: err}
	}
	return &Page{
		page:   page,
		fonts:  fonts,
		path:   path,
		height: Paper.URy - Paper.LLy,
	}, nil
}

// DrawText implements the [layout.Canvas] interface.
func (p *Page) DrawText(face layout.Face, size, x, y float64, text string) {
	if p.err != nil || text == "" {
		return
	}
	F, err := p.fonts.get(face)
	if err != nil {
		p.err = err
		return
	}

	p.page.TextBegin()
	p.page.TextSetFont(F, size)
	p.page.TextFirstLine(x, p.height-y)
	p.page.TextShow(text)
	p.page.TextEnd()
}

// DrawLine implements the [layout.Canvas] interface.
func (p *Page) DrawLine(x1, y1, x2, y2 float64) {
	if p.err != nil {
		return
	}
	p.page.MoveTo(x1, p.height-y1)
	p.page.LineTo(x2, p.height-y2)
	p.page.Stroke()
}

// DrawImage implements the [layout.Canvas] interface.
//
// The rectangle is given in top-down coordinates, and the image is mapped
// into it without correcting the orientation: the first row of pixels
// lands at the bottom edge of the rectangle.
func (p *Page) DrawImage(img image.Image, x, y, width, height float64) {
	if p.err != nil {
		return
	}
	xObj := pdfimage.FromImage(img, color.DeviceRGBSpace, 8)

	p.page.PushGraphicsState()
	p.page.Transform(matrix.Translate(x, p.height-y))
	p.page.Transform(matrix.Scale(width, -height))
	p.page.DrawXObject(xObj)
	p.page.PopGraphicsState()
}

// Close finishes the page and writes the PDF file.
func (p *Page) Close() error {
	err := p.page.Close()
	if p.err != nil {
		err = p.err
	}
	if err != nil {
		return &checkprint.OutputError{Path: p.path, Err: err}
	}
	return nil
}
