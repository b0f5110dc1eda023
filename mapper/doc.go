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

// Package mapper provides deterministic, immutable mappings from native
// result codes (dirpx.dev/dwrite/hresult) and the optional operation that
// returned them (dirpx.dev/dwrite/op) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// A failed native call is described by two parts:
//
//  1. an HRESULT (e.g. hresult.E_INVALIDARG, hresult.DWRITE_E_NOFONT),
//  2. an optional operation (e.g. "IDWriteFactory.CreateTextFormat").
//
// Services that render text on behalf of clients need to turn this pair
// into concrete status codes. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per HRESULT;
//   - prefix-aware: callers can add fine-grained rules for specific operations;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the HRESULT;
//  2. per-HRESULT longest-prefix-match (LPM) on the operation;
//  3. per-HRESULT default (library or user-adjusted);
//  4. per-facility default (e.g. anything from FACILITY_DWRITE);
//  5. global fallback: 200 / OK for success codes, 500 / Internal otherwise.
//
// Prefix rules are segment-aware: operations are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory", http.StatusUnprocessableEntity)
//	WithHTTPPrefix(hresult.E_INVALIDARG, "*.CreateTextLayout", http.StatusBadRequest)
//
// The more specific prefix wins.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(hresult.E_ABORT, 499), // nginx-style
//	    mapper.WithHTTPPrefix(hresult.E_INVALIDARG, "IDWriteFactory.CreateTextFormat", 422),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(hresult.E_INVALIDARG, op.Of("IDWriteFactory", "CreateTextFormat"))
//	// st.HTTP == 422, st.GRPC == codes.InvalidArgument
//
// Rules can also be loaded from YAML with LoadRules.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a particular
// (HRESULT, operation) was resolved, including which tier matched and, for
// prefixes, which pattern was used. It is intended for inspection and
// logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps or slices.
package mapper
