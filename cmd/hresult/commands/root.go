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

// Package commands implements the hresult CLI.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dwrite"
)

// Version information injected at build time.
var Version = "dev"

type globalFlags struct {
	output  string
	verbose bool
}

// NewRootCmd builds the command tree. Each call returns an independent
// tree, so tests can run commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "hresult",
		Short: "Decode HRESULTs and their transport mappings",
		Long: `hresult decodes native result codes into their parts and diagnostic
text, normalizes Win32 error numbers, and explains which HTTP and gRPC
statuses a failed DirectWrite call maps to.

Use "hresult [command] --help" for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !g.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			dwrite.SetLogger(l)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&g.output, "output", "o", "table", "output format (table, json, yaml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug events to stderr")

	root.AddCommand(newDecodeCmd(g))
	root.AddCommand(newWin32Cmd(g))
	root.AddCommand(newListCmd(g))
	root.AddCommand(newMapCmd(g))

	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
