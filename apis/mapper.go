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

package apis

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
)

// Mapper is an immutable, concurrency-safe view of the mapper rules.
// It resolves a native result code (and optionally the operation that
// returned it) into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for hr raised by o.
	// If no operation-specific rule exists, the mapper must fall back to the
	// code-level rule.
	HTTPStatus(hr hresult.HRESULT, o op.Op) int

	// GRPCStatus returns the gRPC status code for hr raised by o.
	GRPCStatus(hr hresult.HRESULT, o op.Op) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(hr hresult.HRESULT, o op.Op) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(hr hresult.HRESULT, o op.Op) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
