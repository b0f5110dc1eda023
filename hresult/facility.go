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

import (
	"fmt"
	"strconv"
	"strings"
)

// Facility identifies the subsystem that defined an HRESULT's meaning.
type Facility uint16

const (
	FacilityNull     Facility = 0
	FacilityRPC      Facility = 1
	FacilityDispatch Facility = 2
	FacilityStorage  Facility = 3
	FacilityITF      Facility = 4
	FacilityWin32    Facility = 7
	FacilityWindows  Facility = 8
	FacilitySecurity Facility = 9
	FacilityControl  Facility = 10
	FacilityCert     Facility = 11
	FacilityInternet Facility = 12
	FacilityDirect2D Facility = 0x899

	// FacilityDWrite is shared by DirectWrite and WIC (FACILITY_WINCODEC_ERR).
	FacilityDWrite Facility = 0x898
)

var facilityNames = map[Facility]string{
	FacilityNull:     "NULL",
	FacilityRPC:      "RPC",
	FacilityDispatch: "DISPATCH",
	FacilityStorage:  "STORAGE",
	FacilityITF:      "ITF",
	FacilityWin32:    "WIN32",
	FacilityWindows:  "WINDOWS",
	FacilitySecurity: "SECURITY",
	FacilityControl:  "CONTROL",
	FacilityCert:     "CERT",
	FacilityInternet: "INTERNET",
	FacilityDWrite:   "DWRITE",
	FacilityDirect2D: "D2D",
}

// String returns the facility's symbolic name, or its number when unknown.
func (f Facility) String() string {
	if n, ok := facilityNames[f]; ok {
		return n
	}
	return strconv.Itoa(int(f))
}

// ParseFacility accepts a facility name ("WIN32", case-insensitive) or a
// number in decimal or 0x hex.
func ParseFacility(s string) (Facility, error) {
	s = strings.TrimSpace(s)
	for f, n := range facilityNames {
		if strings.EqualFold(n, s) {
			return f, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil || v > facilityMask {
		return 0, fmt.Errorf("%w: facility %q", ErrInvalid, s)
	}
	return Facility(v), nil
}
