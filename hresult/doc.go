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

// Package hresult translates native Windows status codes into normalized
// HRESULT values and resolves their diagnostic text.
//
// An HRESULT is a signed 32-bit value laid out as:
//
//	S R C N X FFFFFFFFFFF CCCCCCCCCCCCCCCC
//	| | | | | |           |
//	| | | | | |           +- code (bits 0-15)
//	| | | | | +------------- facility (bits 16-26)
//	| | | | +--------------- reserved (bits 27-28)
//	| | +------------------- customer bit (bit 29)
//	+----------------------- severity (bit 31): 1 = failure
//
// Non-negative values are success or informational codes; negative values
// are failures. Raw Win32 error numbers (as returned by GetLastError) are
// not HRESULTs until they are tagged with FacilityWin32 and the failure
// bit, which is what FromWin32 does.
//
// Diagnostic text is deliberately decoupled from the code: Describe asks
// the platform for a message each time it is called and reports absence
// as a normal outcome, so callers can act on the code alone (log lines,
// metrics) and render text only where a human reads it.
package hresult
