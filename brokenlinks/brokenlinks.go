// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package brokenlinks probe list of links using HTTP HEAD and report the
// links that are broken.
package brokenlinks

import (
	"context"
	"fmt"
)

// StatusUnreachable status for link that cannot be probed, for example
// not parseable by [url.Parse], timeout, connection refused, or the
// domain does not exist.
const StatusUnreachable = -1

// Scan the page at [Options.Url] and probe all of its links.
func Scan(ctx context.Context, opts Options) (result *Result, err error) {
	var logp = `Scan`
	var chk *Checker

	chk, err = New(opts)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	result, err = chk.CheckURL(ctx, opts.Url)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	return result, nil
}
