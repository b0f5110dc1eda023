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

import "dirpx.dev/dwrite/hresult"

// StatusError is an error classified by a native result code.
//
// The HRESULT is the primary value adapters use to decide which transport
// status to return. Implementations should return a failure code; a
// success code on an error is treated as E_FAIL at the boundary.
type StatusError interface {
	error

	// HRESULT returns the normalized native result code.
	HRESULT() hresult.HRESULT
}

// OperationError is an error that knows which native operation produced
// it, e.g. "IDWriteFactory.CreateTextFormat".
//
// The operation narrows down the code: E_INVALIDARG from CreateTextFormat
// and from CreateTextLayout are the same category but different call
// sites, and mappers may route them differently.
type OperationError interface {
	error

	// Operation returns the dot-separated operation path. It MAY be empty.
	Operation() string
}

// DetailedError represents an error that exposes zero or more structured
// details.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}
