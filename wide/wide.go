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

package wide

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encode returns the UTF-16 encoding of s without a terminator.
//
// Code points above U+FFFF become surrogate pairs. Bytes of s that are not
// valid UTF-8 are encoded as U+FFFD.
func Encode(s string) []uint16 {
	return appendUTF16(make([]uint16, 0, Len(s)), s)
}

// EncodeNull returns Encode(s) followed by exactly one zero unit.
func EncodeNull(s string) []uint16 {
	buf := appendUTF16(make([]uint16, 0, Len(s)+1), s)
	return append(buf, 0)
}

// Len returns the number of UTF-16 code units Encode(s) produces, without
// allocating.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Decode converts UTF-16 code units back to a Go string. Decoding stops at
// the first zero unit, so both Encode and EncodeNull output round-trip.
// Unpaired surrogates decode to U+FFFD.
func Decode(u []uint16) string {
	for i, v := range u {
		if v == 0 {
			u = u[:i]
			break
		}
	}
	buf := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		r := rune(u[i])
		if utf16.IsSurrogate(r) && i+1 < len(u) {
			if dec := utf16.DecodeRune(r, rune(u[i+1])); dec != utf8.RuneError {
				buf = utf8.AppendRune(buf, dec)
				i++
				continue
			}
		}
		if utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}

// Ptr returns a pointer to the first unit of u, or nil when u is empty.
// The pointer is only valid while u is reachable: keep u alive (for
// example with runtime.KeepAlive) until the native call returns.
func Ptr(u []uint16) *uint16 {
	if len(u) == 0 {
		return nil
	}
	return &u[0]
}

func appendUTF16(dst []uint16, s string) []uint16 {
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}
	return dst
}
