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
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/dwrite"
	"dirpx.dev/dwrite/adapter"
	"dirpx.dev/dwrite/hresult"
	"dirpx.dev/dwrite/mapper"
	"dirpx.dev/dwrite/op"
)

func newMapCmd(g *globalFlags) *cobra.Command {
	var (
		rulesFile string
		explain   bool
	)
	cmd := &cobra.Command{
		Use:   "map <code> [op]",
		Short: "Show the HTTP and gRPC statuses a code maps to",
		Long: `Resolve the HTTP and gRPC statuses for a code raised by an optional
operation, using the library defaults plus an optional YAML rule file.

Examples:
  hresult map E_INVALIDARG IDWriteFactory.CreateTextFormat
  hresult map 0x88985002 --rules rules.yaml --explain`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hr, err := hresult.Parse(args[0])
			if err != nil {
				return err
			}
			var o op.Op
			if len(args) == 2 {
				if o, err = op.Parse(args[1]); err != nil {
					return fmt.Errorf("invalid op %q: %w", args[1], err)
				}
			}

			var opts []mapper.Option
			if rulesFile != "" {
				if opts, err = loadRules(rulesFile); err != nil {
					return err
				}
			}
			m, err := mapper.New(opts...)
			if err != nil {
				return err
			}

			if explain {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), m.Explain(hr, o))
				return err
			}

			desc := adapter.ToDescriptor(dwrite.E(hr, o), m.Status(hr, o))
			t := newTable("FIELD", "VALUE")
			t.add("HRESULT", desc.HRESULT)
			t.add("Name", orDash(desc.Name))
			t.add("Op", orDash(desc.Op))
			t.add("HTTP", fmt.Sprint(desc.HTTPStatus))
			t.add("gRPC", m.GRPCStatus(hr, o).String())
			t.add("Message", orDash(desc.Message))
			return render(cmd.OutOrStdout(), g.output, t, desc)
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rule file applied on top of the defaults")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the resolution trace instead of a table")
	return cmd
}

func loadRules(path string) ([]mapper.Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules: %w", err)
	}
	defer func() { _ = f.Close() }()

	opts, err := mapper.LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return opts, nil
}
