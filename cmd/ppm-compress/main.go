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
// Command ppm-compress arithmetic-codes a file using prediction by
// partial matching (spec.md §6). The model order must match the value
// given to the corresponding ppm-decompress invocation.
package main

import (
	"io"
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
		Use:   "ppm-compress <input> <output>",
		Short: "Compress a file with a PPM arithmetic coder",
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

				bw := bitio.NewWriter(out)
				enc, err := coder.NewEncoder(bw)

				if err != nil {
					return err
				}

				pe := ppm.NewEncoder(model, enc)
				buf := make([]byte, 32*1024)
				var total int64

				for {
					n, rerr := in.Read(buf)

					for i := 0; i < n; i++ {
						if err := pe.EncodeSymbol(int(buf[i])); err != nil {
							return err
						}
					}

					total += int64(n)

					if rerr == io.EOF {
						break
					}

					if rerr != nil {
						return rerr
					}
				}

				if err := pe.Finish(ppm.EOFSymbol); err != nil {
					return err
				}

				if err := bw.Close(); err != nil {
					return err
				}

				log.Info().Int64("bytes_in", total).Int("order", order).Msg("compressed")
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
