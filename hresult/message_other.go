//go:build !windows

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

// systemSource serves the built-in en-US texts of well-known codes. There
// is no system message table outside Windows.
type systemSource struct{}

func (systemSource) Message(hr HRESULT) (string, bool) {
	for _, w := range table {
		if w.hr == hr && w.text != "" {
			return w.text + "\r\n", true
		}
	}
	return "", false
}
