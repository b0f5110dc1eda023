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

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"dirpx.dev/dwrite/hresult"
)

// codeInfo is the JSON/YAML form of one decoded code.
type codeInfo struct {
	HRESULT  string `json:"hresult" yaml:"hresult"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Severity string `json:"severity" yaml:"severity"`
	Customer bool   `json:"customer,omitempty" yaml:"customer,omitempty"`
	Facility string `json:"facility" yaml:"facility"`
	Code     uint16 `json:"code" yaml:"code"`
	Win32    *int   `json:"win32,omitempty" yaml:"win32,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

func describeCode(hr hresult.HRESULT) codeInfo {
	ci := codeInfo{
		HRESULT:  hr.String(),
		Name:     hr.Name(),
		Severity: "success",
		Customer: hr.Customer(),
		Facility: hr.Facility().String(),
		Code:     hr.Code(),
	}
	if hr.Failed() {
		ci.Severity = "failure"
	}
	if w, ok := hr.Win32(); ok {
		n := int(w)
		ci.Win32 = &n
	}
	if text, ok := hresult.Describe(hr); ok {
		ci.Message = trimMessage(text)
	}
	return ci
}

func codeTable(infos []codeInfo) *tableData {
	t := newTable("HRESULT", "NAME", "SEVERITY", "FACILITY", "CODE", "WIN32", "MESSAGE")
	for _, ci := range infos {
		win32 := "-"
		if ci.Win32 != nil {
			win32 = strconv.Itoa(*ci.Win32)
		}
		t.add(ci.HRESULT, orDash(ci.Name), ci.Severity, ci.Facility, strconv.Itoa(int(ci.Code)), win32, orDash(ci.Message))
	}
	return t
}

func newDecodeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code>...",
		Short: "Decode HRESULTs into their parts",
		Long: `Decode one or more HRESULTs into severity, facility, code and the
system diagnostic text.

Codes may be hex (0x80070005), signed or unsigned decimal, or a well-known
name (E_ACCESSDENIED).

Examples:
  # Decode a single code
  hresult decode 0x88985002

  # Decode several codes as JSON
  hresult decode E_INVALIDARG -2147024891 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]codeInfo, 0, len(args))
			for _, a := range args {
				hr, err := hresult.Parse(a)
				if err != nil {
					return err
				}
				infos = append(infos, describeCode(hr))
			}
			return render(cmd.OutOrStdout(), g.output, codeTable(infos), infos)
		},
	}
}
