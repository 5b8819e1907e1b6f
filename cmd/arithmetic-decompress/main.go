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
// Command arithmetic-decompress recovers a file written by
// arithmetic-compress.
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
		Use:   "arithmetic-decompress <input> <output>",
		Short: "Decompress a file produced by arithmetic-compress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cli.NewLogger(verbose)
			code := cli.Run(log, func() error {
				in, err := os.Open(args[0])

				if err != nil {
					return err
				}

				defer in.Close()

				out, err := os.Create(args[1])

				if err != nil {
					return err
				}

				defer out.Close()

				n, err := static.Decompress(in, out, stateBits)

				if err != nil {
					return err
				}

				log.Info().Int64("bytes_out", n).Msg("decompressed")
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
