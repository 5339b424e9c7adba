// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"log/slog"
	"os"

	"hermannm.dev/devlog"
)

var level slog.LevelVar

// setupLogging installs the console devlog handler by default, or a plain
// slog.NewTextHandler when json is true, mirroring the teacher's pattern of
// swapping handlers for machine consumption.
func setupLogging(json bool) {
	var handler slog.Handler
	if json {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: &level})
	} else {
		handler = devlog.NewHandler(os.Stdout, &devlog.Options{Level: &level})
	}
	slog.SetDefault(slog.New(handler))
}
