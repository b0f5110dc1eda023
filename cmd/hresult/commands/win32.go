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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dirpx.dev/dwrite/hresult"
)

type win32Info struct {
	Win32   string `json:"win32" yaml:"win32"`
	HRESULT string `json:"hresult" yaml:"hresult"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func newWin32Cmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "win32 <error>...",
		Short: "Normalize Win32 error numbers into HRESULTs",
		Long: `Normalize Win32 error numbers (as returned by GetLastError) into
HRESULTs. Values that are already HRESULTs pass through unchanged.

Examples:
  hresult win32 5
  hresult win32 2 3 0x80070057`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("WIN32", "HRESULT", "NAME", "MESSAGE")
			infos := make([]win32Info, 0, len(args))
			for _, a := range args {
				n, err := strconv.ParseUint(a, 0, 32)
				if err != nil {
					return fmt.Errorf("invalid Win32 error %q: %w", a, err)
				}
				hr := hresult.FromWin32(uint32(n))
				wi := win32Info{Win32: a, HRESULT: hr.String(), Name: hr.Name()}
				if text, ok := hresult.Describe(hr); ok {
					wi.Message = trimMessage(text)
				}
				infos = append(infos, wi)
				t.add(wi.Win32, wi.HRESULT, orDash(wi.Name), orDash(wi.Message))
			}
			return render(cmd.OutOrStdout(), g.output, t, infos)
		},
	}
}
