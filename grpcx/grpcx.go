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

package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dwrite/apis"
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/op"
)

// Domain is the ErrorInfo domain for errors produced by this module.
const Domain = "dwrite.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaHRESULT  = "hresult"
	MetaFacility = "facility"
	MetaOp       = "op"
	MetaText     = "text"
)

// Extras holds optional, rich metadata attached next to the ErrorInfo.
// All fields are optional.
type Extras struct {
	// RequestID identifies the request that failed.
	RequestID string

	// Retry provides client retry/backoff hints, e.g. for E_PENDING.
	Retry *errdetails.RetryInfo

	// Links are human-facing links to docs or support.
	Links []*errdetails.Help_Link

	// Debug carries a stack trace or detail string. Only set this for
	// trusted clients.
	Debug *errdetails.DebugInfo
}

// MetaFn extracts Extras from context and the native error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, err apis.StatusError) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps native errors into gRPC errors with ErrorInfo details.
//
// Errors that do not carry an HRESULT are returned as-is. The optional
// MetaFn adds extra details; nil means none.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	metaFn = orNoMeta(metaFn)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, m, metaFn, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	metaFn = orNoMeta(metaFn)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), m, metaFn, err)
	}
}

func orNoMeta(fn MetaFn) MetaFn {
	if fn != nil {
		return fn
	}
	return func(context.Context, apis.StatusError) Extras { return Extras{} }
}

func convert(ctx context.Context, m apis.Mapper, metaFn MetaFn, err error) error {
	// Already a gRPC status: not ours.
	if _, ok := gstatus.FromError(err); ok {
		return err
	}
	var se apis.StatusError
	if !errors.As(err, &se) {
		return err
	}
	return Status(m, se, metaFn(ctx, se)).Err()
}

// Status builds the gRPC status for err. If details cannot be attached,
// the bare status is returned.
func Status(m apis.Mapper, err apis.StatusError, ex Extras) *gstatus.Status {
	hr, o := Identify(err)
	st := m.Status(hr, o)
	info := NewErrorInfo(hr, o)

	msg := hr.String()
	if text, ok := messageOf(err); ok {
		info.Metadata[MetaText] = text
		msg = text
	}
	if o != op.Empty {
		msg = string(o) + ": " + msg
	}

	details := []protoadapt.MessageV1{protoadapt.MessageV1Of(info)}
	if ex.RequestID != "" {
		details = append(details, protoadapt.MessageV1Of(&errdetails.RequestInfo{RequestId: ex.RequestID}))
	}
	if ex.Retry != nil {
		details = append(details, protoadapt.MessageV1Of(ex.Retry))
	}
	if len(ex.Links) > 0 {
		details = append(details, protoadapt.MessageV1Of(&errdetails.Help{Links: ex.Links}))
	}
	if ex.Debug != nil {
		details = append(details, protoadapt.MessageV1Of(ex.Debug))
	}

	base := gstatus.New(gcodes.Code(st.GRPC), msg)
	if with, derr := base.WithDetails(details...); derr == nil {
		return with
	}
	return base
}

// Identify returns the code and operation a mapper should be asked about
// for err. A success code on an error is reported as E_FAIL.
func Identify(err apis.StatusError) (hresult.HRESULT, op.Op) {
	hr := err.HRESULT()
	if hr.Succeeded() {
		hr = hresult.E_FAIL
	}
	var o op.Op
	var oe apis.OperationError
	if errors.As(err, &oe) {
		o = op.Op(oe.Operation())
	}
	return hr, o
}

// NewErrorInfo builds the ErrorInfo detail for hr raised by o. The reason
// is the symbolic name of a well-known code, or HRESULT_XXXXXXXX.
func NewErrorInfo(hr hresult.HRESULT, o op.Op) *errdetails.ErrorInfo {
	reason := hr.Name()
	if reason == "" {
		reason = "HRESULT_" + strings.TrimPrefix(hr.String(), "0x")
	}
	md := map[string]string{
		MetaHRESULT:  hr.String(),
		MetaFacility: hr.Facility().String(),
	}
	if o != op.Empty {
		md[MetaOp] = string(o)
	}
	return &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: md,
	}
}

// messageOf resolves diagnostic text through the error's own Text method
// when it has one.
func messageOf(err error) (string, bool) {
	if t, ok := err.(interface{ Text() (string, bool) }); ok {
		return t.Text()
	}
	return "", false
}

// ExtractInfo pulls this module's ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// HRESULT recovers the native code from a gRPC error produced by this
// package.
func HRESULT(err error) (hresult.HRESULT, bool) {
	ei, ok := ExtractInfo(err)
	if !ok {
		return hresult.S_OK, false
	}
	raw := ei.GetMetadata()[MetaHRESULT]
	hr, perr := hresult.Parse(raw)
	if perr != nil {
		return hresult.S_OK, false
	}
	return hr, true
}
