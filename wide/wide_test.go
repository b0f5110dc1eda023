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
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNull_AB(t *testing.T) {
	require.Equal(t, []uint16{0x0041, 0x0042, 0x0000}, EncodeNull("AB"))
}

func TestEncodeNull_IsEncodePlusZero(t *testing.T) {
	for _, s := range []string{"", "a", "Segoe UI", "Grüße", "日本語", "𝄞 clef", "a\x00b"} {
		want := append(Encode(s), 0)
		assert.Equal(t, want, EncodeNull(s), "input %q", s)
	}
}

func TestEncode_BMPLengthIsCodepointCount(t *testing.T) {
	for _, s := range []string{"", "Calibri", "Ελληνικά", "עִבְרִית", "한국어", "�"} {
		assert.Len(t, Encode(s), utf8.RuneCountInString(s), "input %q", s)
		assert.Equal(t, len(Encode(s)), Len(s), "input %q", s)
	}
}

func TestEncode_SurrogatePairs(t *testing.T) {
	got := Encode("𝄞")
	require.Equal(t, []uint16{0xD834, 0xDD1E}, got)
	require.Equal(t, 2, Len("𝄞"))

	got = Encode("a😀b")
	require.Equal(t, []uint16{'a', 0xD83D, 0xDE00, 'b'}, got)
}

func TestEncode_InvalidUTF8BecomesReplacement(t *testing.T) {
	require.Equal(t, []uint16{'x', 0xFFFD, 'y'}, Encode("x\xffy"))
}

func TestEncode_EmptyIsEmpty(t *testing.T) {
	assert.Empty(t, Encode(""))
	assert.Equal(t, []uint16{0}, EncodeNull(""))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want string
	}{
		{"plain", []uint16{'A', 'B'}, "AB"},
		{"terminated", []uint16{'A', 'B', 0, 'C'}, "AB"},
		{"pair", []uint16{0xD834, 0xDD1E}, "𝄞"},
		{"lone high", []uint16{'a', 0xD834}, "a�"},
		{"lone low", []uint16{0xDD1E, 'b'}, "�b"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestDecode_ReversesEncode(t *testing.T) {
	for _, s := range []string{"Arial", "Grüße", "𝄞 and 😀", ""} {
		assert.Equal(t, s, Decode(Encode(s)))
		assert.Equal(t, s, Decode(EncodeNull(s)))
	}
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Ptr(nil))
	assert.Nil(t, Ptr([]uint16{}))

	buf := EncodeNull("x")
	p := Ptr(buf)
	require.NotNil(t, p)
	assert.Equal(t, uint16('x'), *p)
}
