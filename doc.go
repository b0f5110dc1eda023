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

// Package dwrite is the native-boundary core of the dirpx DirectWrite
// bindings.
//
// It does not wrap any DirectWrite interface itself. It provides what the
// wrappers need to cross the boundary safely:
//
//   - Error, the structured error every failing native call is reported
//     as: an HRESULT, the operation that produced it, and diagnostic text
//     resolved on demand (package hresult);
//   - the ownership protocol for native handles (package ownership, with
//     COM reference counting in package com);
//   - UTF-16 string marshaling (package wide).
//
// Transport projections of Error live in grpcx, httpx and adapter, and the
// mapping from HRESULT to HTTP/gRPC statuses in mapper.
package dwrite
