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
	"fmt"
	"syscall"
	"testing"
	"testing/quick"
)

func TestFromWin32_AccessDenied(t *testing.T) {
	bits := uint32(0x80000000) | uint32(FacilityWin32)<<16 | 0x0005
	want := HRESULT(int32(bits))

	got := FromWin32(ERROR_ACCESS_DENIED)
	if got != want {
		t.Fatalf("FromWin32(5) = %s, want %s", got, want)
	}
	if got != E_ACCESSDENIED {
		t.Fatalf("FromWin32(5) = %s, want E_ACCESSDENIED", got)
	}
}

func TestFromWin32_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
	}{
		{"success", 0},
		{"already normalized", 0x80070005},
		{"e_fail", 0x80004005},
		{"all bits", 0xFFFFFFFF},
		{"severity only", 0x80000000},
		{"dwrite", 0x88985002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromWin32(tt.in)
			if uint32(got) != tt.in {
				t.Fatalf("FromWin32(%#x) = %s, want unchanged", tt.in, got)
			}
		})
	}
}

func TestFromWin32_TagsPositiveCodes(t *testing.T) {
	for _, c := range []uint32{1, 5, 87, 122, 0x10005, 0x12345678, 0x7FFFFFFF} {
		got := FromWin32(c)
		if !got.Failed() {
			t.Fatalf("FromWin32(%#x) = %s, want failure bit set", c, got)
		}
		if got.Code() != uint16(c&0xFFFF) {
			t.Fatalf("FromWin32(%#x).Code() = %#x, want %#x", c, got.Code(), c&0xFFFF)
		}
		if got.Facility() != FacilityWin32 {
			t.Fatalf("FromWin32(%#x).Facility() = %s, want WIN32", c, got.Facility())
		}
	}
}

func TestFromWin32_Idempotent(t *testing.T) {
	f := func(c uint32) bool {
		once := FromWin32(c)
		return FromWin32(uint32(once)) == once
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 5000}); err != nil {
		t.Fatal(err)
	}
	for _, c := range []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF} {
		if !f(c) {
			t.Fatalf("idempotence broken for %#x", c)
		}
	}
}

func TestAccessors(t *testing.T) {
	if !S_OK.Succeeded() || !S_FALSE.Succeeded() || S_FALSE.Failed() {
		t.Fatal("S_OK / S_FALSE must be success codes")
	}
	if E_FAIL.Severity() != 1 || S_OK.Severity() != 0 {
		t.Fatal("severity bit mismatch")
	}
	if f := DWRITE_E_NOFONT.Facility(); f != FacilityDWrite {
		t.Fatalf("DWRITE_E_NOFONT facility = %s, want DWRITE", f)
	}
	if c := DWRITE_E_NOFONT.Code(); c != 0x5002 {
		t.Fatalf("DWRITE_E_NOFONT code = %#x, want 0x5002", c)
	}
	if w, ok := E_ACCESSDENIED.Win32(); !ok || w != ERROR_ACCESS_DENIED {
		t.Fatalf("E_ACCESSDENIED.Win32() = %d,%v; want 5,true", w, ok)
	}
	if _, ok := E_NOINTERFACE.Win32(); ok {
		t.Fatal("E_NOINTERFACE is not a WIN32 facility code")
	}
	if !FromWin32(0xA0FF0001).Customer() {
		t.Fatal("customer bit not reported")
	}
	if E_INVALIDARG.Customer() {
		t.Fatal("E_INVALIDARG has no customer bit")
	}
}

func TestString_And_Name(t *testing.T) {
	if s := E_ACCESSDENIED.String(); s != "0x80070005" {
		t.Fatalf("String() = %q", s)
	}
	if n := E_ACCESSDENIED.Name(); n != "E_ACCESSDENIED" {
		t.Fatalf("Name() = %q", n)
	}
	if n := FromWin32(0xA0FF0001).Name(); n != "" {
		t.Fatalf("unknown code must have no name, got %q", n)
	}
	if f := Facility(0x555).String(); f != "1365" {
		t.Fatalf("unknown facility String() = %q", f)
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want HRESULT
	}{
		{"hex", "0x80070005", E_ACCESSDENIED},
		{"hex upper prefix", "0X8898500C", DWRITE_E_NOCOLOR},
		{"signed decimal", "-2147024891", E_ACCESSDENIED},
		{"unsigned decimal", "2147942405", E_ACCESSDENIED},
		{"name", "E_NOINTERFACE", E_NOINTERFACE},
		{"name lower", " e_fail ", E_FAIL},
		{"zero", "0", S_OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "0x", "0x1FFFFFFFF", "E_NOPE", "4294967296", "-2147483649", "12abc"} {
		if got, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) = %s, %v; want ErrInvalid", in, got, err)
		}
	}
}

func TestText_RoundTrip(t *testing.T) {
	b, err := DWRITE_E_FILEACCESS.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "0x88985004" {
		t.Fatalf("MarshalText = %q", b)
	}
	var hr HRESULT
	if err := hr.UnmarshalText(b); err != nil || hr != DWRITE_E_FILEACCESS {
		t.Fatalf("UnmarshalText = %s, %v", hr, err)
	}
	if err := hr.UnmarshalText([]byte("junk")); err == nil {
		t.Fatal("UnmarshalText must reject junk")
	}
}

type coded struct{ hr HRESULT }

func (c coded) Error() string    { return "coded" }
func (c coded) HRESULT() HRESULT { return c.hr }

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want HRESULT
	}{
		{"nil", nil, S_OK},
		{"errno", syscall.Errno(5), E_ACCESSDENIED},
		{"wrapped errno", fmt.Errorf("call: %w", syscall.Errno(87)), E_INVALIDARG},
		{"bare hresult", E_NOINTERFACE, E_NOINTERFACE},
		{"wrapped hresult", fmt.Errorf("qi: %w", DWRITE_E_NOFONT), DWRITE_E_NOFONT},
		{"carrier", coded{E_POINTER}, E_POINTER},
		{"foreign", errors.New("boom"), E_FAIL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromError(tt.err); got != tt.want {
				t.Fatalf("FromError(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseFacility(t *testing.T) {
	tests := []struct {
		in   string
		want Facility
	}{
		{"WIN32", FacilityWin32},
		{"dwrite", FacilityDWrite},
		{" d2d ", FacilityDirect2D},
		{"7", FacilityWin32},
		{"0x898", FacilityDWrite},
		{"255", Facility(255)},
	}
	for _, tt := range tests {
		got, err := ParseFacility(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseFacility(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "NOPE", "0x2000", "-1"} {
		if _, err := ParseFacility(bad); !errors.Is(err, ErrInvalid) {
			t.Fatalf("ParseFacility(%q) err = %v, want ErrInvalid", bad, err)
		}
	}
}

func TestKnown(t *testing.T) {
	known := Known()
	if len(known) == 0 || known[0] != S_OK {
		t.Fatalf("Known() must start with S_OK, got %v", known)
	}
	for _, hr := range known {
		if hr.Name() == "" {
			t.Fatalf("%s has no name", hr.String())
		}
		if back, err := Parse(hr.Name()); err != nil || back != hr {
			t.Fatalf("Parse(%q) = %s, %v", hr.Name(), back.String(), err)
		}
	}
}
