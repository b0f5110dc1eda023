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

// Package wide marshals Go strings to and from the UTF-16 code units that
// native Windows entry points take.
//
// Native text arguments come in two conventions. Some entry points take a
// (pointer, length) pair and read exactly that many units: use Encode.
// Others read until a zero unit: use EncodeNull. Which one applies is a
// property of the callee, so the caller picks the variant.
//
// EncodeNull does not reject strings that contain NUL. A callee that trusts
// the terminator would silently stop at the first embedded zero, so keep
// such strings on the counted path.
package wide
