// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package brokenlinks

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~shulhan/jelajah/extractor"
)

// Options define the options for probing broken links.
type Options struct {
	// Client used to fetch the page and probe the links.
	// Default to [extractor.NewClient] with Insecure and Timeout.
	Client extractor.Doer

	// Parser for extracting links from the page at Url.
	Parser extractor.Parser

	// Logger print each probe on debug level.
	Logger *slog.Logger

	// The URL to be scanned by [Scan].
	Url string

	// IgnoreStatus comma separated list HTTP status code that will be
	// ignored on scan.
	// Link that return one of the IgnoreStatus will be assumed as
	// passed.
	// The status code must in between 100-511.
	IgnoreStatus string

	UserAgent string

	ignoreStatus []int

	// Policy define which HTTP status code is broken.
	// Default to PolicyNotFound.
	Policy Policy

	// Timeout for each request.
	// Zero means no timeout.
	Timeout time.Duration

	// MaxBodySize limit the size of page body at Url, in bytes.
	// Zero means no limit.
	MaxBodySize int64

	// MaxWorker define the maximum number of links probed at the same
	// time.
	// Default to 1, probe the links one by one.
	MaxWorker int

	// Insecure do not report error on server with invalid certificates.
	Insecure bool
}

func (opts *Options) init() (err error) {
	var logp = `Options`

	var listCode = strings.Split(opts.IgnoreStatus, ",")
	var val string

	opts.ignoreStatus = nil
	for _, val = range listCode {
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		var code int64
		code, err = strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf(`%s: invalid status code %q`, logp, val)
		}
		if code < http.StatusContinue ||
			code > http.StatusNetworkAuthenticationRequired {
			return fmt.Errorf(`%s: unknown status code %q`, logp, val)
		}
		opts.ignoreStatus = append(opts.ignoreStatus, int(code))
	}

	if opts.Policy != PolicyNotFound && opts.Policy != PolicyNotOK {
		return fmt.Errorf(`%s: unknown policy %d`, logp, opts.Policy)
	}
	if opts.MaxWorker <= 0 {
		opts.MaxWorker = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Client == nil {
		opts.Client = extractor.NewClient(opts.Insecure, opts.Timeout)
	}
	if opts.UserAgent == `` {
		opts.UserAgent = extractor.DefaultUserAgent
	}
	return nil
}
