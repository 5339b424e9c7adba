// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/textcodec/transcode"
)

var validateFlags = flag.NewFlagSet("validate", flag.ContinueOnError)

var (
	validateFile    = validateFlags.String("file", "", "path to read (default stdin)")
	validateFrom    = validateFlags.String("from", "utf8", "encoding to validate: utf8 or latin1")
	validateVerbose = validateFlags.Bool("v", false, "print a diagnostic for the first invalid byte")
)

func runValidate() error {
	b, err := readInput(*validateFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	switch *validateFrom {
	case "utf8":
		return validateUTF8(b)
	case "latin1":
		// Every byte sequence is valid Latin-1; report whether it also
		// happens to be valid UTF-8, the only other failure mode that
		// matters for an on-disk byte stream.
		slog.Info("latin1 input is always well-formed", "bytes", len(b), "validUTF8", transcode.IsUTF8(b))
		return nil
	default:
		return fmt.Errorf("unsupported -from value %q", *validateFrom)
	}
}

func validateUTF8(b []byte) error {
	upTo := transcode.ValidUpTo(b)
	if upTo == len(b) {
		slog.Info("input is valid UTF-8", "bytes", len(b))
		return nil
	}

	slog.Warn("invalid UTF-8", "validUpTo", upTo, "totalBytes", len(b))
	if !*validateVerbose {
		os.Exit(1)
	}

	diagnoseFailureAt(b, upTo)
	os.Exit(1)
	return nil
}

// diagnoseFailureAt re-decodes the code point at offset that ValidUpTo
// rejected, using a Reporter to surface exactly which detection rule fired.
func diagnoseFailureAt(b []byte, offset int) {
	cursor := offset + 1
	transcode.DecodeCodePoint(b[offset], &cursor, len(b), b, transcode.Reporter{
		BadLead: func() {
			slog.Error("bad lead byte", "offset", offset, "byte", fmt.Sprintf("%#02x", b[offset]))
		},
		NotEnough: func(available, needed int) {
			slog.Error("truncated sequence", "offset", offset, "available", available, "needed", needed)
		},
		BadTrailing: func(unitsObserved int) {
			slog.Error("bad continuation byte", "offset", offset, "unitsObserved", unitsObserved)
		},
		BadCodePoint: func(scalar rune, unitsObserved int) {
			slog.Error("decoded scalar out of range or a surrogate", "offset", offset, "scalar", fmt.Sprintf("%#x", scalar), "unitsObserved", unitsObserved)
		},
		NotShortest: func(scalar rune, unitsObserved int) {
			slog.Error("overlong encoding", "offset", offset, "scalar", fmt.Sprintf("%#x", scalar), "unitsObserved", unitsObserved)
		},
	})
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
