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
	"fmt"
	"slices"

	"dirpx.dev/dwrite/apis"
)

// ErrorDetails renders Details as apis.Detail values sorted by key.
func (e *Error) ErrorDetails() []apis.Detail {
	if len(e.Details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]apis.Detail, 0, len(keys))
	for _, k := range keys {
		out = append(out, apis.Detail{
			Type:  "extra",
			Field: k,
			Info:  map[string]string{"value": fmt.Sprint(e.Details[k])},
		})
	}
	return out
}

// ErrorView returns a transport-friendly snapshot of e. The message is
// resolved once, at the time of the call.
func (e *Error) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		HRESULT:  e.Code.String(),
		Name:     e.Code.Name(),
		Facility: e.Code.Facility().String(),
		Op:       string(e.Op),
		Details:  e.ErrorDetails(),
	}
	if text, ok := e.Text(); ok {
		v.Message = text
	}
	return v
}

var (
	_ apis.StatusError    = (*Error)(nil)
	_ apis.OperationError = (*Error)(nil)
	_ apis.DetailedError  = (*Error)(nil)
	_ apis.ViewProvider   = (*Error)(nil)
)
