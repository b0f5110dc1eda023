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

// Generic COM result codes.
//
// Failure constants are spelled as two's complement negations so they stay
// typed HRESULT constants without overflowing int32.
const (
	S_OK    HRESULT = 0x00000000
	S_FALSE HRESULT = 0x00000001

	E_UNEXPECTED   = HRESULT(-((0x8000FFFF ^ 0xFFFFFFFF) + 1))
	E_NOTIMPL      = HRESULT(-((0x80004001 ^ 0xFFFFFFFF) + 1))
	E_OUTOFMEMORY  = HRESULT(-((0x8007000E ^ 0xFFFFFFFF) + 1))
	E_INVALIDARG   = HRESULT(-((0x80070057 ^ 0xFFFFFFFF) + 1))
	E_NOINTERFACE  = HRESULT(-((0x80004002 ^ 0xFFFFFFFF) + 1))
	E_POINTER      = HRESULT(-((0x80004003 ^ 0xFFFFFFFF) + 1))
	E_HANDLE       = HRESULT(-((0x80070006 ^ 0xFFFFFFFF) + 1))
	E_ABORT        = HRESULT(-((0x80004004 ^ 0xFFFFFFFF) + 1))
	E_FAIL         = HRESULT(-((0x80004005 ^ 0xFFFFFFFF) + 1))
	E_ACCESSDENIED = HRESULT(-((0x80070005 ^ 0xFFFFFFFF) + 1))
	E_PENDING      = HRESULT(-((0x8000000A ^ 0xFFFFFFFF) + 1))
)

// DirectWrite result codes (FacilityDWrite).
const (
	DWRITE_E_FILEFORMAT               = HRESULT(-((0x88985000 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_UNEXPECTED               = HRESULT(-((0x88985001 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_NOFONT                   = HRESULT(-((0x88985002 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_FILENOTFOUND             = HRESULT(-((0x88985003 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_FILEACCESS               = HRESULT(-((0x88985004 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_FONTCOLLECTIONOBSOLETE   = HRESULT(-((0x88985005 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_ALREADYREGISTERED        = HRESULT(-((0x88985006 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_CACHEFORMAT              = HRESULT(-((0x88985007 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_CACHEVERSION             = HRESULT(-((0x88985008 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_UNSUPPORTEDOPERATION     = HRESULT(-((0x88985009 ^ 0xFFFFFFFF) + 1))
	DWRITE_E_TEXTRENDERERINCOMPATIBLE = HRESULT(-((0x8898500A ^ 0xFFFFFFFF) + 1))
	DWRITE_E_FLOWDIRECTIONCONFLICTS   = HRESULT(-((0x8898500B ^ 0xFFFFFFFF) + 1))
	DWRITE_E_NOCOLOR                  = HRESULT(-((0x8898500C ^ 0xFFFFFFFF) + 1))
)

// Win32 error numbers commonly seen at the DirectWrite boundary. They are
// system-origin codes: pass them through FromWin32 before comparing them
// with an HRESULT.
const (
	ERROR_SUCCESS             uint32 = 0
	ERROR_FILE_NOT_FOUND      uint32 = 2
	ERROR_PATH_NOT_FOUND      uint32 = 3
	ERROR_ACCESS_DENIED       uint32 = 5
	ERROR_INVALID_HANDLE      uint32 = 6
	ERROR_NOT_ENOUGH_MEMORY   uint32 = 8
	ERROR_OUTOFMEMORY         uint32 = 14
	ERROR_NOT_SUPPORTED       uint32 = 50
	ERROR_INVALID_PARAMETER   uint32 = 87
	ERROR_INSUFFICIENT_BUFFER uint32 = 122
	ERROR_MOD_NOT_FOUND       uint32 = 126
	ERROR_PROC_NOT_FOUND      uint32 = 127
	ERROR_MORE_DATA           uint32 = 234
)

type wellKnown struct {
	hr   HRESULT
	name string
	// text is the en-US system message, used where the platform has no
	// message table of its own.
	text string
}

var table = []wellKnown{
	{S_OK, "S_OK", "The operation completed successfully."},
	{S_FALSE, "S_FALSE", ""},
	{E_UNEXPECTED, "E_UNEXPECTED", "Catastrophic failure"},
	{E_NOTIMPL, "E_NOTIMPL", "Not implemented"},
	{E_OUTOFMEMORY, "E_OUTOFMEMORY", "Not enough memory resources are available to complete this operation."},
	{E_INVALIDARG, "E_INVALIDARG", "The parameter is incorrect."},
	{E_NOINTERFACE, "E_NOINTERFACE", "No such interface supported"},
	{E_POINTER, "E_POINTER", "Invalid pointer"},
	{E_HANDLE, "E_HANDLE", "The handle is invalid."},
	{E_ABORT, "E_ABORT", "Operation aborted"},
	{E_FAIL, "E_FAIL", "Unspecified error"},
	{E_ACCESSDENIED, "E_ACCESSDENIED", "Access is denied."},
	{E_PENDING, "E_PENDING", "The data necessary to complete this operation is not yet available."},

	{DWRITE_E_FILEFORMAT, "DWRITE_E_FILEFORMAT", "Indicates an error in an input file such as a font file."},
	{DWRITE_E_UNEXPECTED, "DWRITE_E_UNEXPECTED", "Indicates an error originating in DirectWrite code, which is not expected to occur but is safe to recover from."},
	{DWRITE_E_NOFONT, "DWRITE_E_NOFONT", "Indicates the specified font does not exist."},
	{DWRITE_E_FILENOTFOUND, "DWRITE_E_FILENOTFOUND", "A font file could not be opened because the file, directory, network location, drive, or other storage location does not exist or is unavailable."},
	{DWRITE_E_FILEACCESS, "DWRITE_E_FILEACCESS", "A font file exists but could not be opened due to access denied, sharing violation, or similar error."},
	{DWRITE_E_FONTCOLLECTIONOBSOLETE, "DWRITE_E_FONTCOLLECTIONOBSOLETE", "A font collection is obsolete due to changes in the system."},
	{DWRITE_E_ALREADYREGISTERED, "DWRITE_E_ALREADYREGISTERED", "The given interface is already registered."},
	{DWRITE_E_CACHEFORMAT, "DWRITE_E_CACHEFORMAT", "The font cache contains invalid data."},
	{DWRITE_E_CACHEVERSION, "DWRITE_E_CACHEVERSION", "A font cache file corresponds to a different version of DirectWrite."},
	{DWRITE_E_UNSUPPORTEDOPERATION, "DWRITE_E_UNSUPPORTEDOPERATION", "The operation is not supported for this type of font."},
	{DWRITE_E_TEXTRENDERERINCOMPATIBLE, "DWRITE_E_TEXTRENDERERINCOMPATIBLE", "The version of the text renderer interface is not compatible."},
	{DWRITE_E_FLOWDIRECTIONCONFLICTS, "DWRITE_E_FLOWDIRECTIONCONFLICTS", "The flow direction conflicts with the reading direction. They must be perpendicular to each other."},
	{DWRITE_E_NOCOLOR, "DWRITE_E_NOCOLOR", "The font or glyph run does not contain any colored glyphs."},
}

var (
	names  = make(map[HRESULT]string, len(table))
	byName = make(map[string]HRESULT, len(table))
)

func init() {
	for _, w := range table {
		names[w.hr] = w.name
		byName[w.name] = w.hr
	}
}

// Known returns the well-known codes in declaration order.
func Known() []HRESULT {
	out := make([]HRESULT, len(table))
	for i, w := range table {
		out[i] = w.hr
	}
	return out
}
