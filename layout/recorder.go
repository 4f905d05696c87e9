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

import "image"

// A Recorder is a [Canvas] which records the drawing operations.
type Recorder struct {
	Ops []Op
}

// OpKind identifies the type of a recorded operation.
type OpKind int

// The recorded operation types.
const (
	OpText OpKind = iota
	OpLine
	OpImage
)

// Op is a recorded drawing operation.
// Only the fields relevant for the given Kind are set.
type Op struct {
	Kind OpKind

	Face Face
	Size float64
	Text string

	X, Y float64

	// X2, Y2 is the end point of a line.
	X2, Y2 float64

	// Width and Height give the image size on the page.
	Width, Height float64
	Image         image.Image
}

var _ Canvas = (*Recorder)(nil)

// DrawText implements the [Canvas] interface.
func (r *Recorder) DrawText(face Face, size, x, y float64, text string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Face: face, Size: size, X: x, Y: y, Text: text})
}

// DrawLine implements the [Canvas] interface.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

// DrawImage implements the [Canvas] interface.
func (r *Recorder) DrawImage(img image.Image, x, y, width, height float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, Width: width, Height: height, Image: img})
}

// Texts returns the recorded text strings, in drawing order.
func (r *Recorder) Texts() []string {
	var res []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			res = append(res, op.Text)
		}
	}
	return res
}

// Images returns the recorded image operations.
func (r *Recorder) Images() []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == OpImage {
			res = append(res, op)
		}
	}
	return res
}

// ApplyTo replays the recorded operations on c.
func (r *Recorder) ApplyTo(c Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpText:
			c.DrawText(op.Face, op.Size, op.X, op.Y, op.Text)
		case OpLine:
			c.DrawLine(op.X, op.Y, op.X2, op.Y2)
		case OpImage:
			c.DrawImage(op.Image, op.X, op.Y, op.Width, op.Height)
		}
	}
}
