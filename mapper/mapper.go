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
	"fmt"
	"maps"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dwrite/apis"
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/mapper/internal/segmenttrie"
	"dirpx.dev/dwrite/op"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC, per code and per facility).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize all operation prefixes (via op.Normalize) and build per-code
//     segment tries supporting longest-prefix-match with '*' as a
//     single-segment wildcard.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	maps.Copy(b.httpDefaults, defaultHTTP)
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	maps.Copy(b.httpFacility, facilityHTTP)
	for k, v := range facilityGRPC {
		b.grpcFacility[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", identity)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", toCode)
	if err != nil {
		return nil, err
	}

	m := &mapper{
		http: table[int]{
			override: freeze(b.httpOverride, identity),
			trie:     httpTrie,
			def:      freeze(b.httpDefaults, identity),
			facility: freeze(b.httpFacility, identity),
			success:  http.StatusOK,
			fallback: b.fallbackHTTP,
		},
		grpc: table[codes.Code]{
			override: freeze(b.grpcOverride, toCode),
			trie:     grpcTrie,
			def:      freeze(b.grpcDefaults, toCode),
			facility: freeze(b.grpcFacility, toCode),
			success:  codes.OK,
			fallback: codes.Code(b.fallbackGRPC),
		},
	}
	return m, nil
}

// mapper is an immutable mapper implementation. Lookups are O(depth) and
// safe for concurrent use once constructed.
type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// table holds one transport's rules. V is int for HTTP and codes.Code for
// gRPC.
type table[V any] struct {
	// override holds explicit statuses for specific codes. They take
	// precedence over everything else.
	override map[hresult.HRESULT]V

	// trie stores per-code tries that resolve statuses based on operation
	// prefixes (dot-separated, with "*" for one-segment wildcards).
	trie map[hresult.HRESULT]*segmenttrie.Trie[V]

	// def holds the base status for a code.
	def map[hresult.HRESULT]V

	// facility holds the status for failure codes without a code-level rule.
	facility map[hresult.Facility]V

	// success is returned for success codes nothing matched; fallback for
	// failure codes nothing matched.
	success  V
	fallback V
}

// resolution records which tier produced a value.
type resolution[V any] struct {
	val     V
	source  string // override | prefix | default | facility | success | fallback
	pattern string // set for source=prefix
}

func (t *table[V]) resolve(hr hresult.HRESULT, o op.Op) resolution[V] {
	if v, ok := t.override[hr]; ok {
		return resolution[V]{val: v, source: "override"}
	}
	if idx := t.trie[hr]; idx != nil {
		if v, ok, pat := idx.MatchWithPattern(string(o)); ok {
			return resolution[V]{val: v, source: "prefix", pattern: pat}
		}
	}
	if v, ok := t.def[hr]; ok {
		return resolution[V]{val: v, source: "default"}
	}
	if hr.Succeeded() {
		return resolution[V]{val: t.success, source: "success"}
	}
	if v, ok := t.facility[hr.Facility()]; ok {
		return resolution[V]{val: v, source: "facility"}
	}
	return resolution[V]{val: t.fallback, source: "fallback"}
}

// HTTPStatus resolves an HTTP status for hr raised by o.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code longest-prefix-match rule on the operation;
//  3. per-code default;
//  4. 200 for success codes;
//  5. per-facility default;
//  6. fallback (500 unless changed with WithFallback).
func (m *mapper) HTTPStatus(hr hresult.HRESULT, o op.Op) int {
	return m.http.resolve(hr, o).val
}

// GRPCStatus resolves a gRPC status for hr raised by o, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(hr hresult.HRESULT, o op.Op) codes.Code {
	return m.grpc.resolve(hr, o).val
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(hr hresult.HRESULT, o op.Op) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(hr, o),
		GRPC: m.GRPCStatus(hr, o),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (code, operation) pair.
//
// Example output:
//
//	hresult=0x80070057 name="E_INVALIDARG" op="IDWriteFactory.CreateTextFormat"
//	http: source=prefix pattern="IDWriteFactory" -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// source is one of override, prefix, default, success, facility or fallback.
// For facility matches the facility name is printed.
func (m *mapper) Explain(hr hresult.HRESULT, o op.Op) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "hresult=%s name=%q op=%q\n", hr.String(), hr.Name(), o)

	h := m.http.resolve(hr, o)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(h, hr), h.val)

	g := m.grpc.resolve(hr, o)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(g, hr), strings.ToUpper(g.val.String()), int(g.val))

	return b.String()
}

func describe[V any](r resolution[V], hr hresult.HRESULT) string {
	switch r.source {
	case "prefix":
		return fmt.Sprintf("source=prefix pattern=%q", r.pattern)
	case "facility":
		return fmt.Sprintf("source=facility facility=%s", hr.Facility())
	default:
		return "source=" + r.source
	}
}

// buildTries compiles per-code prefix rules into segment tries.
func buildTries[V any](rules map[hresult.HRESULT][]prefixRule, transport string, conv func(int) V) (map[hresult.HRESULT]*segmenttrie.Trie[V], error) {
	out := make(map[hresult.HRESULT]*segmenttrie.Trie[V], len(rules))
	for hr, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s op-prefix %q for %s: %w", transport, r.prefix, hr.String(), err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for %s: %w", transport, p, hr.String(), err)
			}
		}
		out[hr] = t
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// normalizePrefix applies op.Normalize and rejects empty prefixes.
// Structural checks (segment syntax, all-wildcard prefixes) are done by
// the trie on insert.
func normalizePrefix(raw string) (string, error) {
	p := op.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	if strings.Count(p, ".")+1 > op.MaxSegments {
		return "", fmt.Errorf("more than %d segments", op.MaxSegments)
	}
	return p, nil
}

// freeze makes an immutable copy of src, converting builder-style values.
// Empty maps become nil.
func freeze[K comparable, V any](src map[K]int, conv func(int) V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func identity(v int) int { return v }

func toCode(v int) codes.Code { return codes.Code(v) }
