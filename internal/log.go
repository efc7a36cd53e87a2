// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package internal

import (
	"io"
	"log/slog"
)

// NewLogger create logger that write text to w.
// The verbose logger print each request on debug level, otherwise only
// warning and error are printed.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	var opts = &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
