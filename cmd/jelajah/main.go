// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Program jelajah crawl a web page and report the broken links on it.
//
// Run "jelajah help" for usage.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var ctx, stop = signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)

	var err = newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
