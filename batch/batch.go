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

// Package batch writes one check document per record.
package batch

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"seehuhn.de/go/checkprint"
	"seehuhn.de/go/checkprint/layout"
	"seehuhn.de/go/checkprint/signature"
)

// Page is a drawing surface for one output document.
type Page interface {
	layout.Canvas

	// Close finishes the document and writes it to persistent storage.
	Close() error
}

// Emitter writes check documents.
type Emitter struct {
	Template *layout.Template
	Info     checkprint.StaticInfo

	// SignatureDir is scanned for signature images, once per document.
	SignatureDir string

	// OutDir is the directory the documents are written to.
	OutDir string

	// Create starts a new output document at the given path.
	Create func(path string) (Page, error)

	// Log, if not nil, receives one line per document written.
	Log *log.Logger
}

// Run writes one document per record, in order.  Each document is named
// after the Number field of its record.  Processing stops at the first
// error.  The paths of all documents written so far are returned.
func (e *Emitter) Run(records []checkprint.Record) ([]string, error) {
	required, err := e.Info.SignaturesRequired()
	if err != nil {
		return nil, &checkprint.ConfigError{
			Source: "static info",
			Key:    checkprint.KeySignaturesRequired,
			Err:    err,
		}
	}

	var written []string
	for i, rec := range records {
		path, err := e.emit(rec, required)
		if err != nil {
			return written, fmt.Errorf("check %d: %w", i+1, err)
		}
		written = append(written, path)
		if e.Log != nil {
			e.Log.Printf("wrote %s", path)
		}
	}
	return written, nil
}

func (e *Emitter) emit(rec checkprint.Record, required int) (string, error) {
	number, _ := rec.Get(checkprint.FieldNumber)
	path, err := e.outputPath(number)
	if err != nil {
		return "", err
	}

	view, err := e.Template.View(e.Info, required)
	if err != nil {
		return "", err
	}

	err = view.CheckRecord(rec)
	if err != nil {
		return "", err
	}

	sigs, err := signature.Load(e.SignatureDir)
	if err != nil {
		return "", err
	}
	images := make([]image.Image, len(sigs))
	for i, s := range sigs {
		images[i] = s.Image
	}

	page, err := e.Create(path)
	if err != nil {
		return "", err
	}
	err = layout.Render(page, view, rec, images)
	if err != nil {
		page.Close()
		return "", err
	}
	err = page.Close()
	if err != nil {
		return "", err
	}
	return path, nil
}

// outputPath returns the file name for the check with the given number.
func (e *Emitter) outputPath(number string) (string, error) {
	if number == "" || strings.ContainsAny(number, `/\`) {
		return "", &checkprint.ConfigError{
			Source: "check list",
			Key:    checkprint.FieldNumber,
			Err:    fmt.Errorf("%w: %q cannot be used as a file name", checkprint.ErrInvalid, number),
		}
	}
	return filepath.Join(e.OutDir, number+".pdf"), nil
}
