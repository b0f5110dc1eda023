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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dwrite/hresult"
)

// defaultHTTP defines the library's built-in HTTP mappings for well-known codes.
// These are only defaults: callers are expected to adjust them at the boundary
// where HTTP is actually produced.
var defaultHTTP = map[hresult.HRESULT]int{
	// Generic COM failures.
	hresult.E_UNEXPECTED:   http.StatusInternalServerError,
	hresult.E_FAIL:         http.StatusInternalServerError,
	hresult.E_NOTIMPL:      http.StatusNotImplemented,
	hresult.E_NOINTERFACE:  http.StatusNotImplemented, // The object does not speak the requested interface version.
	hresult.E_OUTOFMEMORY:  http.StatusServiceUnavailable,
	hresult.E_INVALIDARG:   http.StatusBadRequest,
	hresult.E_POINTER:      http.StatusBadRequest,
	hresult.E_HANDLE:       http.StatusBadRequest,
	hresult.E_ACCESSDENIED: http.StatusForbidden,
	hresult.E_PENDING:      http.StatusServiceUnavailable, // Data not yet available; the client may retry.
	hresult.E_ABORT:        http.StatusRequestTimeout,

	// Win32 errors seen when loading fonts from disk.
	hresult.FromWin32(hresult.ERROR_FILE_NOT_FOUND): http.StatusNotFound,
	hresult.FromWin32(hresult.ERROR_PATH_NOT_FOUND): http.StatusNotFound,
	hresult.FromWin32(hresult.ERROR_NOT_SUPPORTED):  http.StatusNotImplemented,

	// DirectWrite.
	hresult.DWRITE_E_FILEFORMAT:               http.StatusUnprocessableEntity, // The font file is malformed.
	hresult.DWRITE_E_UNEXPECTED:               http.StatusInternalServerError,
	hresult.DWRITE_E_NOFONT:                   http.StatusNotFound,
	hresult.DWRITE_E_FILENOTFOUND:             http.StatusNotFound,
	hresult.DWRITE_E_FILEACCESS:               http.StatusForbidden,
	hresult.DWRITE_E_FONTCOLLECTIONOBSOLETE:   http.StatusConflict, // The collection changed under the caller.
	hresult.DWRITE_E_ALREADYREGISTERED:        http.StatusConflict,
	hresult.DWRITE_E_CACHEFORMAT:              http.StatusInternalServerError,
	hresult.DWRITE_E_CACHEVERSION:             http.StatusInternalServerError,
	hresult.DWRITE_E_UNSUPPORTEDOPERATION:     http.StatusNotImplemented,
	hresult.DWRITE_E_TEXTRENDERERINCOMPATIBLE: http.StatusBadRequest,
	hresult.DWRITE_E_FLOWDIRECTIONCONFLICTS:   http.StatusBadRequest,
	hresult.DWRITE_E_NOCOLOR:                  http.StatusNotFound,
}

// defaultGRPC defines the library's built-in gRPC mappings for well-known codes.
var defaultGRPC = map[hresult.HRESULT]codes.Code{
	hresult.E_UNEXPECTED:   codes.Internal,
	hresult.E_FAIL:         codes.Unknown,
	hresult.E_NOTIMPL:      codes.Unimplemented,
	hresult.E_NOINTERFACE:  codes.Unimplemented,
	hresult.E_OUTOFMEMORY:  codes.ResourceExhausted,
	hresult.E_INVALIDARG:   codes.InvalidArgument,
	hresult.E_POINTER:      codes.InvalidArgument,
	hresult.E_HANDLE:       codes.InvalidArgument,
	hresult.E_ACCESSDENIED: codes.PermissionDenied,
	hresult.E_PENDING:      codes.Unavailable,
	hresult.E_ABORT:        codes.Canceled,

	hresult.FromWin32(hresult.ERROR_FILE_NOT_FOUND): codes.NotFound,
	hresult.FromWin32(hresult.ERROR_PATH_NOT_FOUND): codes.NotFound,
	hresult.FromWin32(hresult.ERROR_NOT_SUPPORTED):  codes.Unimplemented,

	hresult.DWRITE_E_FILEFORMAT:               codes.InvalidArgument,
	hresult.DWRITE_E_UNEXPECTED:               codes.Internal,
	hresult.DWRITE_E_NOFONT:                   codes.NotFound,
	hresult.DWRITE_E_FILENOTFOUND:             codes.NotFound,
	hresult.DWRITE_E_FILEACCESS:               codes.PermissionDenied,
	hresult.DWRITE_E_FONTCOLLECTIONOBSOLETE:   codes.FailedPrecondition,
	hresult.DWRITE_E_ALREADYREGISTERED:        codes.AlreadyExists,
	hresult.DWRITE_E_CACHEFORMAT:              codes.DataLoss,
	hresult.DWRITE_E_CACHEVERSION:             codes.FailedPrecondition,
	hresult.DWRITE_E_UNSUPPORTEDOPERATION:     codes.Unimplemented,
	hresult.DWRITE_E_TEXTRENDERERINCOMPATIBLE: codes.InvalidArgument,
	hresult.DWRITE_E_FLOWDIRECTIONCONFLICTS:   codes.InvalidArgument,
	hresult.DWRITE_E_NOCOLOR:                  codes.NotFound,
}

// facilityHTTP and facilityGRPC catch failure codes that have no code-level
// rule, by the subsystem that defined them.
var facilityHTTP = map[hresult.Facility]int{
	hresult.FacilityRPC:    http.StatusServiceUnavailable,
	hresult.FacilityWin32:  http.StatusInternalServerError,
	hresult.FacilityDWrite: http.StatusInternalServerError,
}

var facilityGRPC = map[hresult.Facility]codes.Code{
	hresult.FacilityRPC:    codes.Unavailable,
	hresult.FacilityWin32:  codes.Unknown,
	hresult.FacilityDWrite: codes.Internal,
}
