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

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"dirpx.dev/dwrite"
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
	"dirpx.dev/dwrite/ownership"
)

// GUID is a COM interface identifier.
type GUID = windows.GUID

// IID_IUnknown is {00000000-0000-0000-C000-000000000046}.
var IID_IUnknown = GUID{
	Data1: 0x00000000,
	Data2: 0x0000,
	Data3: 0x0000,
	Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
}

var opQueryInterface = op.MustParse("IUnknown.QueryInterface")

// UnknownVtbl is the IUnknown method table.
type UnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// Unknown is the memory layout shared by every COM object: a pointer to
// its vtable.
type Unknown struct {
	Vtbl *UnknownVtbl
}

// AddRef increments the object's reference count and returns the new
// count. The count is informational only.
func (u *Unknown) AddRef() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.AddRef, uintptr(unsafe.Pointer(u)))
	return uint32(r)
}

// Release decrements the object's reference count and returns the new
// count. u must not be used after the call that drops the count to zero.
func (u *Unknown) Release() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.Release, uintptr(unsafe.Pointer(u)))
	return uint32(r)
}

// QueryInterface asks u for the interface iid. On success the returned
// pointer carries its own reference, which the caller owns.
func (u *Unknown) QueryInterface(iid *GUID) (*Unknown, error) {
	var out *Unknown
	r, _, _ := syscall.SyscallN(u.Vtbl.QueryInterface,
		uintptr(unsafe.Pointer(u)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
	)
	if err := Check(opQueryInterface, r); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, dwrite.E(hresult.E_POINTER, opQueryInterface)
	}
	return out, nil
}

// Adopt takes ownership of one reference to u. Closing the result calls
// Release exactly once. Make vtable calls on the adopted object through
// Owned.Use, or keep the owner alive with runtime.KeepAlive until they
// return.
func Adopt(u *Unknown) *ownership.Owned[*Unknown] {
	return ownership.Adopt(u, release)
}

func release(u *Unknown) error {
	u.Release()
	return nil
}

// Check converts the raw return value of a vtable call into an error.
// Success codes yield nil.
func Check(o op.Op, r uintptr) error {
	return dwrite.Check(hresult.HRESULT(int32(uint32(r))), o)
}
