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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of a native error.
//
// The code and the diagnostic text are independent: Message is only set
// when a message source produced text for the code.
type ErrorView struct {
	// HRESULT is the canonical hex form of the code, e.g. "0x80070005".
	HRESULT string `json:"hresult"`
	// Name is the symbolic name of a well-known code, e.g. "E_ACCESSDENIED".
	Name string `json:"name,omitempty"`
	// Facility is the facility name, e.g. "WIN32" or "DWRITE".
	Facility string `json:"facility,omitempty"`
	// Op is the native operation that failed.
	Op string `json:"op,omitempty"`
	// Message is the diagnostic text, if any.
	Message string `json:"message,omitempty"`
	// Details is an optional list of additional details about the error.
	Details []Detail `json:"details,omitempty"`
}
