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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dwrite/hresult"
)

type prefixRule struct {
	// prefix is the raw, dot-separated operation prefix (may contain "*").
	// It is normalized and validated when we build the per-code trie.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// For gRPC we store ints in the builder and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	httpDefaults map[hresult.HRESULT]int
	grpcDefaults map[hresult.HRESULT]int

	httpOverride map[hresult.HRESULT]int
	grpcOverride map[hresult.HRESULT]int

	// per-code LPM rules, compiled into segment tries in New.
	httpPrefixes map[hresult.HRESULT][]prefixRule
	grpcPrefixes map[hresult.HRESULT][]prefixRule

	httpFacility map[hresult.Facility]int
	grpcFacility map[hresult.Facility]int

	// global fallbacks for failure codes that matched nothing.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[hresult.HRESULT]int, len(defaultHTTP)),
		grpcDefaults: make(map[hresult.HRESULT]int, len(defaultGRPC)),

		httpOverride: make(map[hresult.HRESULT]int),
		grpcOverride: make(map[hresult.HRESULT]int),
		httpPrefixes: make(map[hresult.HRESULT][]prefixRule),
		grpcPrefixes: make(map[hresult.HRESULT][]prefixRule),

		httpFacility: make(map[hresult.Facility]int, len(facilityHTTP)),
		grpcFacility: make(map[hresult.Facility]int, len(facilityGRPC)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
}
