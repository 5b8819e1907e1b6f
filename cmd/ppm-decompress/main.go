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
// Command ppm-decompress recovers a file written by ppm-compress. The
// --order flag must match the value used to compress it.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gocompress/arcode/bitio"
	"github.com/gocompress/arcode/coder"
	"github.com/gocompress/arcode/internal/cli"
	"github.com/gocompress/arcode/ppm"
)

func main() {
	var order int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ppm-decompress <input> <output>",
		Short: "Decompress a file produced by ppm-compress",
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

				model, err := ppm.NewModel(order, ppm.SymbolLimit, ppm.EscapeSymbol)

				if err != nil {
					return err
				}

				br := bitio.NewReader(in)
				dec, err := coder.NewDecoder(br)

				if err != nil {
					return err
				}

				pd := ppm.NewDecoder(model, dec)
				var total int64

				for {
					symbol, err := pd.DecodeSymbol()

					if err != nil {
						return err
					}

					if symbol == ppm.EOFSymbol {
						break
					}

					if _, err := out.Write([]byte{byte(symbol)}); err != nil {
						return err
					}

					total++
				}

				log.Info().Int64("bytes_out", total).Int("order", order).Msg("decompressed")
				return nil
			})

			os.Exit(code)
			return nil
		},
	}

	cmd.Flags().IntVar(&order, "order", 3, "PPM model order (>= -1)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable info-level logging")
	cli.Execute(cmd)
}
