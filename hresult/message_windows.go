//go:build windows

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

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procFormatMessageA = modkernel32.NewProc("FormatMessageA")
)

const formatFlags = windows.FORMAT_MESSAGE_ALLOCATE_BUFFER |
	windows.FORMAT_MESSAGE_FROM_SYSTEM |
	windows.FORMAT_MESSAGE_IGNORE_INSERTS

// systemSource asks FormatMessageA for the system message table entry.
type systemSource struct{}

func (systemSource) Message(hr HRESULT) (string, bool) {
	var buf *byte
	// nSize 0: with ALLOCATE_BUFFER the system sizes the buffer itself.
	n, _, _ := procFormatMessageA.Call(
		uintptr(formatFlags),
		0,
		uintptr(uint32(hr)),
		0, // default language
		uintptr(unsafe.Pointer(&buf)),
		0,
		0,
	)
	if buf != nil {
		defer windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(buf))))
	}
	if n == 0 || buf == nil {
		return "", false
	}
	return decodeLossy(unsafe.Slice(buf, int(n))), true
}
