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
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HRESULT is a normalized native result code.
//
// The zero value is S_OK.
type HRESULT int32

const (
	// severityFailure is the failure-severity bit (SEVERITY_ERROR << 31).
	severityFailure = 0x80000000

	// customerBit marks codes defined outside of Microsoft.
	customerBit = 0x20000000

	// facilityMask mirrors the HRESULT_FACILITY macro: 13 bits above the
	// code, including the two reserved bits.
	facilityMask = 0x1FFF
)

var (
	// ErrInvalid is returned when a value cannot be parsed as an HRESULT.
	ErrInvalid = errors.New("hresult: invalid value")
)

var (
	_ encoding.TextMarshaler   = HRESULT(0)
	_ encoding.TextUnmarshaler = (*HRESULT)(nil)
	_ error                    = HRESULT(0)
)

// FromWin32 normalizes a system-origin error number into an HRESULT.
//
// Values whose signed interpretation is <= 0 are already success- or
// failure-shaped and are returned unchanged. Everything else is masked to
// its low 16 bits and tagged with FacilityWin32 and the failure bit, the
// same as the HRESULT_FROM_WIN32 macro. The function is total and
// idempotent: FromWin32(uint32(FromWin32(c))) == FromWin32(c).
func FromWin32(code uint32) HRESULT {
	if int32(code) <= 0 {
		return HRESULT(int32(code))
	}
	return HRESULT(int32((code & 0x0000FFFF) | uint32(FacilityWin32)<<16 | severityFailure))
}

// Succeeded reports whether hr is a success or informational code.
func (hr HRESULT) Succeeded() bool { return hr >= 0 }

// Failed reports whether hr has the failure-severity bit set.
func (hr HRESULT) Failed() bool { return hr < 0 }

// Severity returns 1 for failures and 0 otherwise.
func (hr HRESULT) Severity() uint32 { return uint32(hr) >> 31 }

// Customer reports whether the customer bit is set.
func (hr HRESULT) Customer() bool { return uint32(hr)&customerBit != 0 }

// Facility returns the subsystem that defined the code.
func (hr HRESULT) Facility() Facility {
	return Facility((uint32(hr) >> 16) & facilityMask)
}

// Code returns the low 16 bits of hr.
func (hr HRESULT) Code() uint16 { return uint16(uint32(hr) & 0xFFFF) }

// Win32 returns the Win32 error number hr was built from. It reports false
// when hr is not a FacilityWin32 failure (S_OK maps to ERROR_SUCCESS).
func (hr HRESULT) Win32() (uint32, bool) {
	if hr == S_OK {
		return 0, true
	}
	if hr.Failed() && hr.Facility() == FacilityWin32 {
		return uint32(hr.Code()), true
	}
	return 0, false
}

// Name returns the symbolic name of a well-known code, or "".
func (hr HRESULT) Name() string { return names[hr] }

// String returns the canonical hexadecimal form, e.g. "0x80070005".
func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}

// Error implements the error interface so a bare HRESULT can travel up a
// call stack. The text is looked up in System on every call. Unlike
// Describe, a missing text is not logged.
func (hr HRESULT) Error() string {
	var b strings.Builder
	b.WriteString(hr.String())
	if n := hr.Name(); n != "" {
		b.WriteString(" (")
		b.WriteString(n)
		b.WriteByte(')')
	}
	if msg, ok := (systemSource{}).Message(hr); ok {
		if msg = strings.TrimSpace(msg); msg != "" {
			b.WriteString(": ")
			b.WriteString(msg)
		}
	}
	return b.String()
}

// Parse reads an HRESULT written as hex ("0x80070005"), as a signed or
// unsigned decimal ("-2147024891", "2147942405"), or as a well-known name
// ("E_ACCESSDENIED").
func Parse(s string) (HRESULT, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return S_OK, ErrInvalid
	}
	if hr, ok := byName[strings.ToUpper(s)]; ok {
		return hr, nil
	}
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return S_OK, ErrInvalid
		}
		return HRESULT(int32(uint32(v))), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < -1<<31 || v > 1<<32-1 {
		return S_OK, ErrInvalid
	}
	return HRESULT(int32(uint32(v))), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) HRESULT {
	hr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return hr
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (hr HRESULT) MarshalText() ([]byte, error) {
	return []byte(hr.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every form
// Parse accepts.
func (hr *HRESULT) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*hr = parsed
	return nil
}
