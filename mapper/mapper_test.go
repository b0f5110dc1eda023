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

package mapper

import (
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dwrite/apis"
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
)

var (
	createTextFormat = op.MustParse("IDWriteFactory.CreateTextFormat")
	createTextLayout = op.MustParse("IDWriteFactory.CreateTextLayout")
)

func TestNew_Defaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(hr hresult.HRESULT, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(hr, op.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%s) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				hr.String(), st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(hresult.E_INVALIDARG, 400, codes.InvalidArgument)
	check(hresult.E_ACCESSDENIED, 403, codes.PermissionDenied)
	check(hresult.E_NOTIMPL, 501, codes.Unimplemented)
	check(hresult.E_OUTOFMEMORY, 503, codes.ResourceExhausted)
	check(hresult.E_ABORT, 408, codes.Canceled)
	check(hresult.DWRITE_E_FILENOTFOUND, 404, codes.NotFound)
	check(hresult.FromWin32(hresult.ERROR_FILE_NOT_FOUND), 404, codes.NotFound)
}

func TestSuccessAndFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(hresult.S_OK, op.Empty); st.HTTP != 200 || st.GRPC != codes.OK {
		t.Fatalf("S_OK => %+v; want 200/OK", st)
	}
	if st := m.Status(hresult.S_FALSE, createTextFormat); st.HTTP != 200 || st.GRPC != codes.OK {
		t.Fatalf("S_FALSE => %+v; want 200/OK", st)
	}
	// Facility ITF has no default, so an unknown ITF failure hits the fallback.
	itf := hresult.HRESULT(-0x7FFBFE00) // 0x80040200
	if st := m.Status(itf, op.Empty); st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("unknown failure => %+v; want 500/Internal", st)
	}

	m2, err := New(WithFallback(502, int(codes.Unavailable)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(itf, op.Empty); st.HTTP != 502 || st.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback => %+v; want 502/Unavailable", st)
	}
}

func TestFacilityDefaults(t *testing.T) {
	m, err := New(WithHTTPFacility(hresult.FacilityDWrite, 502))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// An unassigned DWRITE code: falls through to the facility tier.
	unassigned := hresult.HRESULT(-0x7767AF00) // 0x88985100
	if unassigned.Facility() != hresult.FacilityDWrite {
		t.Fatalf("test code has facility %v", unassigned.Facility())
	}
	st := m.Status(unassigned, createTextFormat)
	if st.HTTP != 502 || st.GRPC != codes.Internal {
		t.Fatalf("facility default => %+v; want 502/Internal", st)
	}
	// Code-level defaults still beat the facility.
	if got := m.HTTPStatus(hresult.DWRITE_E_NOFONT, op.Empty); got != 404 {
		t.Fatalf("code default must beat facility; got %d", got)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(hresult.E_INVALIDARG, 400),
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", 422),
		WithHTTPOverride(hresult.E_INVALIDARG, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(hresult.E_INVALIDARG, createTextFormat)
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(hresult.E_INVALIDARG, int(codes.InvalidArgument)),
		WithGRPCPrefix(hresult.E_INVALIDARG, "IDWriteFactory", int(codes.FailedPrecondition)),
		WithGRPCOverride(hresult.E_INVALIDARG, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(hresult.E_INVALIDARG, createTextFormat)
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", 422),
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory.CreateTextFormat", 409),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, createTextFormat); got != 409 {
		t.Fatalf("LPM failed: got %d, want 409", got)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, createTextLayout); got != 422 {
		t.Fatalf("shorter prefix failed: got %d, want 422", got)
	}
	// "IDWriteFactory" must not match "IDWriteFactory2" across a segment boundary.
	if got := m.HTTPStatus(hresult.E_INVALIDARG, op.MustParse("IDWriteFactory2.CreateTextFormat")); got != 400 {
		t.Fatalf("unexpected match across segment boundary: %d", got)
	}
	// Prefix rules are per code.
	if got := m.HTTPStatus(hresult.E_POINTER, createTextFormat); got != 400 {
		t.Fatalf("prefix leaked into another code: %d", got)
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "*.CreateTextLayout", 502),
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory.CreateTextLayout", 401),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, createTextLayout); got != 401 {
		t.Fatalf("exact must beat wildcard; got %d", got)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, op.MustParse("IDWriteFactory5.CreateTextLayout")); got != 502 {
		t.Fatalf("wildcard match failed; got %d, want 502", got)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, op.MustParse("CreateTextLayout")); got == 502 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "  IDWriteFactory::CreateTextFormat  ", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(hresult.E_INVALIDARG, createTextFormat); got != 599 {
		t.Fatalf("normalized prefix should match; got %d", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "   ", "*", "a..b", "1Factory", "a.b.c.d.e"} {
		if _, err := New(WithHTTPPrefix(hresult.E_FAIL, p, 500)); err == nil {
			t.Fatalf("prefix %q must be rejected", p)
		}
		if _, err := New(WithGRPCPrefix(hresult.E_FAIL, p, 13)); err == nil {
			t.Fatalf("gRPC prefix %q must be rejected", p)
		}
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", 422),
		WithGRPCPrefix(hresult.E_INVALIDARG, "IDWriteFactory", int(codes.FailedPrecondition)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(hresult.E_INVALIDARG, createTextFormat)
	for _, want := range []string{`source=prefix`, `pattern="IDWriteFactory"`, `grpc:`, `http:`, `name="E_INVALIDARG"`} {
		if !strings.Contains(exp, want) {
			t.Fatalf("Explain must include %s:\n%s", want, exp)
		}
	}
}

func TestImmutability(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	orig := defaultHTTP[hresult.E_INVALIDARG]
	defaultHTTP[hresult.E_INVALIDARG] = 599
	defer func() { defaultHTTP[hresult.E_INVALIDARG] = orig }()

	if got := m.HTTPStatus(hresult.E_INVALIDARG, op.Empty); got != orig {
		t.Fatalf("mapper observed a later change to the defaults: %d", got)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", 422),
		WithHTTPOverride(hresult.E_ABORT, 499),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(hresult.E_INVALIDARG, createTextFormat)
				_ = m.Status(hresult.E_ABORT, op.Empty)
				_ = m.Status(hresult.DWRITE_E_NOFONT, createTextLayout)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(hresult.E_INVALIDARG, createTextFormat)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(
		WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", 422),
		WithGRPCPrefix(hresult.E_INVALIDARG, "IDWriteFactory", int(codes.FailedPrecondition)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(hresult.E_INVALIDARG, createTextFormat)
	}
}

func BenchmarkMapperStatus_Fallback(b *testing.B) {
	m, _ := New()
	itf := hresult.HRESULT(-0x7FFBFE00)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(itf, op.Empty)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
