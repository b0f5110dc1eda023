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

// ErrorDescriptor is a flat, transport-friendly description of a native
// failure together with the transport statuses it resolved to.
//
// It uses strings rather than hresult.HRESULT so that it can be logged or
// sent over a message bus without the consumer importing this module.
type ErrorDescriptor struct {
	// HRESULT is the canonical hex form of the code.
	HRESULT string `json:"hresult"`

	// Name is the symbolic name of a well-known code. It MAY be empty.
	Name string `json:"name,omitempty"`

	// Op is the native operation that failed. It MAY be empty.
	Op string `json:"op,omitempty"`

	// HTTPStatus is the HTTP status resolved for this failure. A value of 0
	// means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this
	// failure.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the diagnostic text, if one was available.
	Message string `json:"message,omitempty"`
}
