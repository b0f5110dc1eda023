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

// Package httpx writes native errors as HTTP responses.
//
// The body is the JSON form of google.rpc.Status, the same payload gRPC
// carries, so HTTP and gRPC clients decode one shape.
package httpx

import (
	"net/http"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/dwrite/apis"
	"dirpx.dev/dwrite/grpcx"
)

// Meta carries extra context that the HTTP layer can add on top of the
// native error. All fields are optional.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int32
	Links             []*errdetails.Help_Link
}

// Writer is a thin adapter that knows how to turn a native error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes err as google.rpc.Status JSON and writes it to rw. The
// HTTP status is resolved via the Mapper; the JSON "code" field holds the
// gRPC code resolved for the same error.
//
// No automatic redaction or filtering is performed here.
func (w Writer) Write(rw http.ResponseWriter, err apis.StatusError, meta Meta) {
	if err == nil {
		return
	}

	ex := grpcx.Extras{RequestID: meta.RequestID, Links: meta.Links}
	if meta.RetryAfterSeconds > 0 {
		ex.Retry = &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		}
	}
	st := grpcx.Status(w.Mapper, err, ex)

	hr, o := grpcx.Identify(err)

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-HRESULT", hr.String())
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(w.Mapper.HTTPStatus(hr, o))

	// protojson is required for the Any-typed details and json_name field
	// names.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(st.Proto())
	_, _ = rw.Write(b)
}
