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
	"dirpx.dev/dwrite/hresult"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given code. This affects the value used when no override and no
// per-operation rule is found.
func WithHTTPDefault(hr hresult.HRESULT, http int) Option {
	return func(b *builder) { b.httpDefaults[hr] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given code.
func WithGRPCDefault(hr hresult.HRESULT, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[hr] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over everything else for that code.
func WithHTTPOverride(hr hresult.HRESULT, http int) Option {
	return func(b *builder) { b.httpOverride[hr] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
func WithGRPCOverride(hr hresult.HRESULT, grpc int) Option {
	return func(b *builder) { b.grpcOverride[hr] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for the given code.
// The rule is evaluated against the operation (dot-separated). A more specific
// prefix wins. Use "*" to match a single segment.
func WithHTTPPrefix(hr hresult.HRESULT, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[hr] = append(b.httpPrefixes[hr], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for the given code.
func WithGRPCPrefix(hr hresult.HRESULT, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[hr] = append(b.grpcPrefixes[hr], prefixRule{prefix, grpc}) }
}

// WithHTTPFacility sets the HTTP status used for failure codes of facility
// f that have no code-level rule.
func WithHTTPFacility(f hresult.Facility, http int) Option {
	return func(b *builder) { b.httpFacility[f] = http }
}

// WithGRPCFacility sets the gRPC status used for failure codes of facility
// f that have no code-level rule.
func WithGRPCFacility(f hresult.Facility, grpc int) Option {
	return func(b *builder) { b.grpcFacility[f] = grpc }
}

// WithFallback replaces the statuses used for failure codes nothing else
// matched. The defaults are 500 and codes.Internal.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
