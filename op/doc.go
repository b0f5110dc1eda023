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

// Package op names the native operation an error came from.
//
// An Op is the dotted path of a COM call as it appears in the SDK headers,
// interface first:
//
//   - "IDWriteFactory.CreateTextFormat"
//   - "IDWriteTextLayout.GetMetrics"
//   - "kernel32.FormatMessageA"
//
// Ops keep their original casing so they can be grepped for in the
// Windows SDK. They are optional on errors: the zero value means the call
// site did not say.
package op
