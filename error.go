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

package dwrite

import (
	"maps"
	"strings"

	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
)

// Error is a failed native call.
//
// It carries:
//   - Code: the normalized HRESULT (required, should be a failure code);
//   - Op: the native operation that returned it, e.g.
//     "IDWriteFactory.CreateTextFormat" (optional);
//   - Details: arbitrary key/value payload for logs and API bodies;
//   - Cause: a wrapped underlying error;
//   - Source: where diagnostic text comes from (nil means the system).
//
// Diagnostic text is never stored on the error. Error() and Text() ask the
// Source each time, so a caller that only needs the code pays nothing for
// the message lookup.
//
// All WithX helpers return a shallow copy, so Error values can be shared.
type Error struct {
	Code    hresult.HRESULT
	Op      op.Op
	Details map[string]any
	Cause   error
	Source  hresult.MessageSource
}

// E builds an Error for hr raised by o and applies opts in order.
func E(hr hresult.HRESULT, o op.Op, opts ...Option) *Error {
	e := &Error{Code: hr, Op: o}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Check returns nil when hr is a success code and an *Error otherwise.
// It is the usual way to turn a vtable call's return value into an error.
func Check(hr hresult.HRESULT, o op.Op, opts ...Option) error {
	if hr.Succeeded() {
		return nil
	}
	return E(hr, o, opts...)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<op>: <hresult> (<name>): <text>
//
// where each of op, name and text is left out when unknown.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if e.Op != op.Empty {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	b.WriteString(e.Code.String())
	if n := e.Code.Name(); n != "" {
		b.WriteString(" (")
		b.WriteString(n)
		b.WriteByte(')')
	}
	if text, ok := e.Text(); ok {
		b.WriteString(": ")
		b.WriteString(text)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Text resolves the diagnostic text for e.Code, trimmed of the trailing
// line break system messages carry. It reports false when none exists.
func (e *Error) Text() (string, bool) {
	src := e.Source
	var (
		msg string
		ok  bool
	)
	if src == nil {
		msg, ok = hresult.System().Message(e.Code)
	} else {
		msg, ok = src.Message(e.Code)
	}
	if !ok {
		return "", false
	}
	msg = strings.TrimSpace(msg)
	return msg, msg != ""
}

// HRESULT returns e.Code. It lets hresult.FromError recover the code
// through any wrapping.
func (e *Error) HRESULT() hresult.HRESULT { return e.Code }

// Operation returns the native operation name, or "".
func (e *Error) Operation() string { return string(e.Op) }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error or bare HRESULT with the same
// code, so errors.Is(err, hresult.E_ACCESSDENIED) works.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return t != nil && e.Code == t.Code
	case hresult.HRESULT:
		return e.Code == t
	}
	return false
}

// WithOp returns a shallow copy of e with the operation replaced.
func (e *Error) WithOp(o op.Op) *Error {
	cp := *e
	cp.Op = o
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in
// Details. The map is always copied.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details,
// kv winning on conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with err attached as the cause.
// A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// WithSource returns a shallow copy of e that resolves text through src.
func (e *Error) WithSource(src hresult.MessageSource) *Error {
	cp := *e
	cp.Source = src
	return &cp
}
