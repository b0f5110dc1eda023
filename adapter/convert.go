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

// Package adapter converts native errors into the flat view types of
// package apis.
package adapter

import (
	"dirpx.dev/dwrite/apis"
)

// ToDescriptor converts a native error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. Message is set only when diagnostic text is available.
func ToDescriptor(e apis.StatusError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(e)
	return apis.ErrorDescriptor{
		HRESULT:    v.HRESULT,
		Name:       v.Name,
		Op:         v.Op,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
}

// ToView converts a native error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains.
//
// Errors that implement apis.ViewProvider render themselves. Otherwise the
// view is assembled from the optional interfaces the error implements.
func ToView(e apis.StatusError) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	if vp, ok := e.(apis.ViewProvider); ok {
		return vp.ErrorView()
	}
	hr := e.HRESULT()
	v := apis.ErrorView{
		HRESULT:  hr.String(),
		Name:     hr.Name(),
		Facility: hr.Facility().String(),
	}
	if oe, ok := e.(apis.OperationError); ok {
		v.Op = oe.Operation()
	}
	if t, ok := e.(interface{ Text() (string, bool) }); ok {
		if text, ok := t.Text(); ok {
			v.Message = text
		}
	}
	if de, ok := e.(apis.DetailedError); ok {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}
