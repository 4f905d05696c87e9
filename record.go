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
	"strings"
)

// Field names used by the check list.
const (
	FieldNumber = "Number"
	FieldDate   = "Date"
	FieldAmount = "Amount"
	FieldPayee  = "Payee"
	FieldMemo   = "Memo"

	// FieldAmountText and FieldDecimal are derived from FieldAmount.
	FieldAmountText = "amount_text"
	FieldDecimal    = "decimal"
)

// Keys used in the static info file.
const (
	KeyName               = "Name"
	KeyAddressLine1       = "Address Line1"
	KeyAddressLine2       = "Address Line2"
	KeyBankName           = "Bank Name"
	KeyBankAddressLine1   = "Bank Address Line1"
	KeyBankAddressLine2   = "Bank Address Line2"
	KeyRoutingNumber      = "Routing Number"
	KeyAccountNumber      = "Account Number"
	KeySignaturesRequired = "Signatures Required"
)

// RequiredKeys lists the static info keys which must be present.
var RequiredKeys = []string{
	KeyRoutingNumber,
	KeyAccountNumber,
	KeySignaturesRequired,
	KeyName,
	KeyAddressLine1,
	KeyAddressLine2,
	KeyBankName,
	KeyBankAddressLine1,
	KeyBankAddressLine2,
}

// StaticInfo holds the text which is the same on every check of a run:
// payer and bank identity, account numbers and boilerplate captions.
// A StaticInfo is not modified after loading.
type StaticInfo map[string]string

// Merge returns a new StaticInfo containing the entries of s, overlaid by
// the entries of other.
func (s StaticInfo) Merge(other StaticInfo) StaticInfo {
	res := make(StaticInfo, len(s)+len(other))
	for k, v := range s {
		res[k] = v
	}
	for k, v := range other {
		res[k] = v
	}
	return res
}

// Check verifies that all of [RequiredKeys] are present.
func (s StaticInfo) Check(source string) error {
	for _, key := range RequiredKeys {
		if _, ok := s[key]; !ok {
			return &ConfigError{Source: source, Key: key, Err: ErrMissing}
		}
	}
	return nil
}

// SignaturesRequired returns the number of signatures a check needs, either
// 1 or 2.  Only the value "1" selects a single signature, every other value
// selects two.
func (s StaticInfo) SignaturesRequired() (int, error) {
	val, ok := s[KeySignaturesRequired]
	if !ok {
		return 0, ErrMissing
	}
	if strings.TrimSpace(val) == "1" {
		return 1, nil
	}
	return 2, nil
}

// Field is a named value of a check record.
type Field struct {
	Name  string
	Value string
}

// Record is one check of the check list.
// The fields are kept in input order, followed by derived fields.
type Record struct {
	Fields []Field
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Set replaces the value of the named field, or appends a new field
// if no field of this name exists.
func (r *Record) Set(name, value string) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Names returns the field names in order.
func (r *Record) Names() []string {
	res := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		res[i] = f.Name
	}
	return res
}
