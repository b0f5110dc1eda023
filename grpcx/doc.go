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

// Package grpcx projects native errors onto gRPC statuses.
//
// A server interceptor turns any returned error that carries an HRESULT
// (apis.StatusError, which *dwrite.Error implements) into a status whose
// code comes from an apis.Mapper and whose details hold a
// google.rpc.ErrorInfo with the HRESULT, facility, operation and
// diagnostic text. Clients read it back with ExtractInfo and HRESULT.
package grpcx
