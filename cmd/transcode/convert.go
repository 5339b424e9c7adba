// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/textcodec/transcode"
)

var convertFlags = flag.NewFlagSet("convert", flag.ContinueOnError)

var (
	convertFile      = convertFlags.String("file", "", "path to read (default stdin)")
	convertFrom      = convertFlags.String("from", "utf16", "input encoding: utf16 (big-endian), utf8, or latin1")
	convertTo        = convertFlags.String("to", "utf8", "output encoding: utf8, utf16, or latin1")
	convertChunkSize = convertFlags.Int("chunk", 4096, "destination buffer size per chunk, in bytes (used by -from utf16 -to utf8 only)")
)

// runConvert reads input in the encoding named by -from and writes it to
// stdout in the encoding named by -to. The utf16-to-utf8 path runs one
// bounded chunk at a time, exercising ConvertUTF16ToUTF8Partial's
// resumability directly: each iteration hands the converter a fixed-size
// destination and feeds the unread remainder back in on the next pass, the
// same pattern a streaming transport would use.
func runConvert() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raw, err := readInput(*convertFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	switch *convertFrom {
	case "utf16":
		if len(raw)%2 != 0 {
			return fmt.Errorf("input length %d is not a whole number of UTF-16 code units", len(raw))
		}
		src := make([]uint16, len(raw)/2)
		for i := range src {
			src[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		}
		switch *convertTo {
		case "utf8":
			return convertToUTF8(ctx, src)
		case "latin1":
			return convertToLatin1(src)
		default:
			return fmt.Errorf("unsupported -from utf16 -to %q", *convertTo)
		}

	case "latin1":
		switch *convertTo {
		case "utf8":
			dst := make([]byte, 2*len(raw))
			n := transcode.ConvertLatin1ToUTF8(raw, dst)
			_, err := os.Stdout.Write(dst[:n])
			return err
		case "utf16":
			dst := make([]uint16, len(raw))
			transcode.ConvertLatin1ToUTF16(raw, dst)
			out := make([]byte, 2*len(dst))
			for i, u := range dst {
				out[2*i] = byte(u >> 8)
				out[2*i+1] = byte(u)
			}
			_, err := os.Stdout.Write(out)
			return err
		default:
			return fmt.Errorf("unsupported -from latin1 -to %q", *convertTo)
		}

	case "utf8":
		switch *convertTo {
		case "utf16":
			dst := make([]uint16, len(raw)+1)
			n := transcode.ConvertUTF8ToUTF16(raw, dst)
			out := make([]byte, 2*n)
			for i := 0; i < n; i++ {
				out[2*i] = byte(dst[i] >> 8)
				out[2*i+1] = byte(dst[i])
			}
			_, err := os.Stdout.Write(out)
			return err
		case "latin1":
			dst := make([]byte, len(raw))
			n := transcode.LossyConvertUTF8ToLatin1(raw, dst)
			_, err := os.Stdout.Write(dst[:n])
			return err
		default:
			return fmt.Errorf("unsupported -from utf8 -to %q", *convertTo)
		}

	default:
		return fmt.Errorf("unsupported -from value %q", *convertFrom)
	}
}

func convertToUTF8(ctx context.Context, src []uint16) error {
	dst := make([]byte, *convertChunkSize)
	chunks := 0
	for len(src) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		read, written := transcode.ConvertUTF16ToUTF8Partial(src, dst)
		if read == 0 && written == 0 {
			return fmt.Errorf("chunk size %d is too small to make progress", *convertChunkSize)
		}
		if _, err := os.Stdout.Write(dst[:written]); err != nil {
			return err
		}
		src = src[read:]
		chunks++
	}
	slog.Info("conversion complete", "to", "utf8", "chunks", chunks)
	return nil
}

func convertToLatin1(src []uint16) error {
	if !transcode.IsUTF16Latin1(src) {
		slog.Warn("input contains code units outside Latin-1; conversion is lossy")
	}
	dst := make([]byte, len(src))
	transcode.LossyConvertUTF16ToLatin1(src, dst)
	_, err := os.Stdout.Write(dst)
	return err
}
