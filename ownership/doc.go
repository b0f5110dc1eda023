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

// Package ownership defines how native handles enter and leave Go.
//
// Every wrapped native object follows the same lifecycle:
//
//	Unowned --Build/Adopt--> Owned --Close--> Released
//	                           |
//	                           +--Detach--> Released (handle handed back out)
//
// There is no way back from Released. Three capability contracts cover the
// transitions, and every wrapper type implements them for its own handle
// type R:
//
//   - Builder: construct a new wrapper from typed arguments. The native
//     constructor's failure is returned as an error, never swallowed.
//   - Exposer: lend the raw handle for one native call. This is a borrow:
//     the wrapper still owns the handle, and the caller must neither keep
//     it past the wrapper's lifetime nor release it.
//   - Adopter: take ownership of a raw handle. The caller asserts that no
//     other wrapper owns it and that it has the right concrete type; the
//     caller must not use it through the native interface afterwards.
//
// Owned is the reusable single-owner cell behind those contracts. It
// releases its handle exactly once, on Close, or from a runtime cleanup if
// the owner becomes unreachable without being closed. Misuse that cannot
// be ruled out by the type system (exposing after release, adopting a zero
// handle) panics instead of handing a dangling handle to native code.
//
// Owned is not safe for concurrent use. Share a wrapper across goroutines
// only behind your own synchronization.
package ownership
