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

// Package input reads the static info file and the check list.
//
// Both files are line based text files.  Lines starting with '#' and blank
// lines are ignored.  The files may be encoded as UTF-8 (with or without
// byte order mark) or as UTF-16 with byte order mark.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seehuhn.de/go/checkprint"
)

// ReadStaticInfoFile reads a static info file.
func ReadStaticInfoFile(fname string) (checkprint.StaticInfo, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, &checkprint.ConfigError{Source: fname, Err: err}
	}
	defer fd.Close()
	return ReadStaticInfo(fd, fname)
}

// ReadStaticInfo reads "key: value" lines.
// White space around keys and values, as well as single quote characters
// in keys, are removed.  If a key occurs more than once, the last value
// is used.  The name source is used in error messages.
func ReadStaticInfo(r io.Reader, source string) (checkprint.StaticInfo, error) {
	info := checkprint.StaticInfo{}
	err := scanLines(r, func(lineNo int, line string) error {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return &checkprint.ConfigError{
				Source: source,
				Line:   lineNo,
				Err:    fmt.Errorf("%w: expected \"key: value\"", checkprint.ErrInvalid),
			}
		}
		key = strings.TrimSpace(strings.ReplaceAll(key, "'", ""))
		info[key] = strings.TrimSpace(value)
		return nil
	})
	if err != nil {
		return nil, wrapRead(err, source)
	}
	return info, nil
}

// CheckList is the contents of a check list file.
type CheckList struct {
	// Header gives the field names, in column order.
	Header []string

	Records []checkprint.Record
}

// ReadChecksFile reads a check list file.
func ReadChecksFile(fname string) (*CheckList, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, &checkprint.ConfigError{Source: fname, Err: err}
	}
	defer fd.Close()
	return ReadChecks(fd, fname)
}

// ReadChecks reads a tab separated check list.
//
// The first line gives the field names, every following line describes one
// check.  Runs of tab characters separate the columns, so a column cannot
// be left empty; a single "." stands for an empty value instead.  Missing
// trailing values are empty, surplus values are ignored.
func ReadChecks(r io.Reader, source string) (*CheckList, error) {
	res := &CheckList{}
	err := scanLines(r, func(lineNo int, line string) error {
		if res.Header == nil {
			for _, name := range splitTabs(line) {
				if name != "" {
					res.Header = append(res.Header, name)
				}
			}
			return nil
		}

		values := splitTabs(line)
		rec := checkprint.Record{Fields: make([]checkprint.Field, len(res.Header))}
		for i, name := range res.Header {
			var val string
			if i < len(values) && values[i] != "." {
				val = values[i]
			}
			rec.Fields[i] = checkprint.Field{Name: name, Value: val}
		}
		res.Records = append(res.Records, rec)
		return nil
	})
	if err != nil {
		return nil, wrapRead(err, source)
	}
	return res, nil
}

func splitTabs(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// scanLines calls fn for every line which is neither blank nor a comment.
// Line numbers start at 1.
func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	// BOMOverride switches to UTF-16 if a UTF-16 byte order mark is found,
	// and strips a UTF-8 byte order mark.
	dec := transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	scanner := bufio.NewScanner(dec)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		err := fn(lineNo, line)
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func wrapRead(err error, source string) error {
	var cfgErr *checkprint.ConfigError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &checkprint.ConfigError{Source: source, Err: err}
}
