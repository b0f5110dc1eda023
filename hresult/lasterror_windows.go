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

package hresult

// tebLastError returns TEB.LastErrorValue of the current OS thread. It is
// a plain memory read: no system call, so nothing resets the slot first.
func tebLastError() uint32

// CurrentError reads the calling thread's last-error value and normalizes
// it with FromWin32.
//
// The slot is thread-local and overwritten by the next native call, so
// this must run immediately after the fallible call, on the same locked OS
// thread (runtime.LockOSThread). For calls made through LazyProc.Call or
// syscall.SyscallN, the error those functions return carries the same
// value and FromError is the simpler path.
func CurrentError() HRESULT {
	return FromWin32(tebLastError())
}

// CurrentErrorText is Describe(CurrentError()). The code is read before
// the lookup, which makes native calls of its own.
func CurrentErrorText() (string, bool) {
	return Describe(CurrentError())
}
