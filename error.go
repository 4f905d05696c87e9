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

package checkprint

import (
	"errors"
	"strconv"
)

var (
	// ErrMissing indicates that a required entry is absent, for example a
	// static info field or a coordinate table entry.
	ErrMissing = errors.New("missing entry")

	// ErrInvalid indicates that an entry is present but cannot be used.
	ErrInvalid = errors.New("invalid entry")
)

// ConfigError is returned when the inputs, the layout tables or the
// font and image assets are unusable.  Errors of this type abort the whole
// batch.
type ConfigError struct {
	// Source names where the problem was found, e.g. a file name or
	// "record table".
	Source string

	// Line is the 1-based line number within Source, or 0 if unknown.
	Line int

	// Key is the affected field name, if any.
	Key string

	Err error
}

func (err *ConfigError) Error() string {
	msg := err.Source
	if err.Line > 0 {
		msg += ":" + strconv.Itoa(err.Line)
	}
	if err.Key != "" {
		msg += ": " + strconv.Quote(err.Key)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// OutputError is returned when an output document cannot be written.
type OutputError struct {
	Path string
	Err  error
}

func (err *OutputError) Error() string {
	return "cannot write " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *OutputError) Unwrap() error {
	return err.Err
}
