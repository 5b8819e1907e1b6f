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
// Package cli is the shared scaffolding behind every cmd/ entry point:
// exit-code mapping from a CodecError's Kind, panic recovery around a
// command's Run, and a console zerolog.Logger threaded through explicitly
// rather than kept as package state, generalizing the teacher's
// app/Kanzi.go + app/InfoPrinter.go hand-rolled Printer into a real
// structured logger.
package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gocompress/arcode"
)

// Exit codes, generalizing the small ERR_* enumeration kanzi's
// app/Kanzi.go keeps for its own CLI failures.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitUsage           = 2
	ExitInvalidArgument = 3
	ExitIo              = 4
	ExitCorruptStream   = 5
)

// NewLogger builds a console-formatted zerolog.Logger at InfoLevel
// (WarnLevel when verbose is false), writing to os.Stderr so stdout stays
// free for any piped output.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel

	if verbose {
		level = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// ExitCodeFor maps an error returned from a codec operation to a process
// exit code, unwrapping a *arcode.CodecError via errors.Cause the way
// mewkiz-flac's CLI unwraps pkg/errors-wrapped causes before reporting.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	cause := errors.Cause(err)

	codecErr, ok := cause.(*arcode.CodecError)

	if !ok {
		return ExitInternal
	}

	switch codecErr.Kind {
	case arcode.InvalidArgument, arcode.InvalidSymbol, arcode.TotalTooLarge:
		return ExitInvalidArgument
	case arcode.Io:
		return ExitIo
	case arcode.UnexpectedEof:
		return ExitCorruptStream
	case arcode.ContractViolation:
		return ExitInternal
	default:
		return ExitInternal
	}
}

// Run executes fn, recovering any panic raised by a CodecError (the
// package's convention for programming errors) and converting it to a
// returned error, then reports the outcome on log and returns the
// process exit code to use. Every cmd/ main wires its RunE through Run
// so panics never escape to a bare stack trace on stderr.
func Run(log zerolog.Logger, fn func() error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if codecErr, ok := r.(*arcode.CodecError); ok {
				log.Error().Err(codecErr).Msg("aborted")
				code = ExitCodeFor(codecErr)
				return
			}

			log.Error().Interface("panic", r).Msg("internal error")
			code = ExitInternal
		}
	}()

	if err := fn(); err != nil {
		log.Error().Err(err).Msg("failed")
		return ExitCodeFor(err)
	}

	return ExitOK
}

// Execute runs cmd. Each command's RunE applies the exit code from Run
// itself with os.Exit, so Execute only exits, with ExitUsage, when cobra
// reports an argument or flag error.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
}
