/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package op

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Op is a validated native operation path.
type Op string

const (
	// MaxSegments bounds the path depth (module.Interface.Method plus one
	// spare for nested helpers).
	MaxSegments = 4

	// MaxLength bounds the total length of an Op.
	MaxLength = 160
)

// opFmt accepts 1..MaxSegments identifiers separated by dots. Segments are
// C identifiers, so case is significant.
const opFmt = `^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,3}$`

var opRe = regexp.MustCompile(opFmt)

var (
	// ErrInvalidFormat is returned when an Op is not a dotted identifier path.
	ErrInvalidFormat = errors.New("op: invalid format")
	// ErrTooLong is returned when an Op exceeds MaxLength.
	ErrTooLong = errors.New("op: too long")
)

var (
	_ encoding.TextMarshaler   = Op("")
	_ encoding.TextUnmarshaler = (*Op)(nil)
)

// Empty means "operation not recorded".
const Empty Op = ""

// separators lists spellings people paste from other languages and docs.
var separators = strings.NewReplacer("::", ".", "->", ".", "/", ".")

// Normalize trims s and rewrites "::", "->" and "/" separators to ".".
// It does not change case and does not validate.
func Normalize(s string) string {
	return separators.Replace(strings.TrimSpace(s))
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Op, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Op(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it
// rejects the empty string.
func MustParse(s string) Op {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if o == Empty {
		panic("op: empty op in MustParse")
	}
	return o
}

// Of joins an interface and a method, e.g. Of("IDWriteFactory", "CreateTextLayout").
// It panics when the result is invalid, so it belongs in var blocks.
func Of(iface, method string) Op {
	return MustParse(iface + "." + method)
}

// Validate reports whether o is canonical. Empty is valid.
func Validate(o Op) error {
	if o == Empty {
		return nil
	}
	return validate(string(o))
}

// Interface returns everything before the last segment, or "" for a
// single-segment Op.
func (o Op) Interface() string {
	if i := strings.LastIndexByte(string(o), '.'); i >= 0 {
		return string(o[:i])
	}
	return ""
}

// Method returns the last segment.
func (o Op) Method() string {
	if i := strings.LastIndexByte(string(o), '.'); i >= 0 {
		return string(o[i+1:])
	}
	return string(o)
}

// String returns o unchanged.
func (o Op) String() string { return string(o) }

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if err := Validate(o); err != nil {
		return nil, err
	}
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength {
		return ErrTooLong
	}
	if !opRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
