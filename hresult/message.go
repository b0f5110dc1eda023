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

package hresult

import (
	"errors"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"

	"dirpx.dev/dwrite/internal/zlog"
)

// MessageSource resolves diagnostic text for a code. Returning false means
// "no text available", which is a normal outcome and not a failure.
type MessageSource interface {
	Message(hr HRESULT) (string, bool)
}

// MessageFunc adapts a function to MessageSource.
type MessageFunc func(hr HRESULT) (string, bool)

// Message implements MessageSource.
func (f MessageFunc) Message(hr HRESULT) (string, bool) { return f(hr) }

// Messages is a fixed table of diagnostic texts. Empty strings count as
// absent.
type Messages map[HRESULT]string

// Message implements MessageSource.
func (m Messages) Message(hr HRESULT) (string, bool) {
	s, ok := m[hr]
	return s, ok && s != ""
}

// Chain returns a source that asks each of srcs in order and returns the
// first text found. Nil sources are skipped.
func Chain(srcs ...MessageSource) MessageSource {
	cp := make([]MessageSource, 0, len(srcs))
	for _, s := range srcs {
		if s != nil {
			cp = append(cp, s)
		}
	}
	return MessageFunc(func(hr HRESULT) (string, bool) {
		for _, s := range cp {
			if msg, ok := s.Message(hr); ok {
				return msg, true
			}
		}
		return "", false
	})
}

// System returns the platform message source used by Describe.
func System() MessageSource { return systemSource{} }

// Describe returns the platform's default-locale diagnostic text for hr.
//
// The text is looked up on every call and never cached. An unknown code
// yields ("", false) and a debug log entry.
func Describe(hr HRESULT) (string, bool) {
	msg, ok := systemSource{}.Message(hr)
	if !ok {
		zlog.Named("hresult").Debug("no diagnostic text",
			zap.Stringer("hresult", hr))
	}
	return msg, ok
}

// FromError extracts an HRESULT from err.
//
// A nil error is S_OK. Errors carrying an HRESULT (a bare HRESULT or
// anything with an HRESULT() HRESULT method) yield that code. A
// syscall.Errno, which is what LazyProc.Call returns as its last value on
// Windows, is a Win32 error number and goes through FromWin32. Anything
// else is E_FAIL.
func FromError(err error) HRESULT {
	if err == nil {
		return S_OK
	}
	var carrier interface{ HRESULT() HRESULT }
	if errors.As(err, &carrier) {
		return carrier.HRESULT()
	}
	var hr HRESULT
	if errors.As(err, &hr) {
		return hr
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return FromWin32(uint32(errno))
	}
	return E_FAIL
}

// decodeLossy decodes native message bytes as UTF-8, replacing invalid
// sequences with U+FFFD.
func decodeLossy(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
