/*
Copyright 2024 The arcode Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
// Command arithmetic-compress arithmetic-codes a file under a static
// model measured up front and written as a file header (spec.md §6).
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gocompress/arcode/internal/cli"
	"github.com/gocompress/arcode/static"
)

func main() {
	var stateBits uint
	var verbose bool

	cmd := &cobra.Command{
		Use:   "arithmetic-compress <input> <output>",
		Short: "Compress a file with a static two-pass arithmetic coder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cli.NewLogger(verbose)
			code := cli.Run(log, func() error {
				out, err := os.Create(args[1])

				if err != nil {
					return err
				}

				defer out.Close()

				src := static.NewFileReopener(args[0])
				n, err := static.Compress(src, out, stateBits)

				if err != nil {
					return err
				}

				log.Info().Int64("bytes_in", n).Msg("compressed")
				return nil
			})

			os.Exit(code)
			return nil
		},
	}

	cmd.Flags().UintVar(&stateBits, "state-bits", 32, "arithmetic coder state width in bits")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable info-level logging")
	cli.Execute(cmd)
}
