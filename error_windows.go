//go:build windows && (386 || amd64 || arm64)

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

package dwrite

import (
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
)

// FromLastError builds an Error from the thread's last-error value. It has
// the same ordering precondition as hresult.CurrentError. A success value
// still yields E_FAIL, since the caller already knows the call failed.
func FromLastError(o op.Op, opts ...Option) *Error {
	hr := hresult.CurrentError()
	if hr.Succeeded() {
		hr = hresult.E_FAIL
	}
	return E(hr, o, opts...)
}

// FromCallError builds an Error from the last-error value returned by
// LazyProc.Call or syscall.SyscallN, with the same success fallback as
// FromLastError.
func FromCallError(o op.Op, callErr error, opts ...Option) *Error {
	hr := hresult.FromError(callErr)
	if hr.Succeeded() {
		hr = hresult.E_FAIL
	}
	return E(hr, o, opts...)
}
