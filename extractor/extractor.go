// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package extractor fetch a single HTML page and return all of the links
// inside its body as absolute URLs.
package extractor

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"git.sr.ht/~shulhan/jelajah/linkset"
	"git.sr.ht/~shulhan/jelajah/resolver"
)

// DefaultUserAgent is the User-Agent sent when [Options.UserAgent] is empty.
const DefaultUserAgent = `jelajah/0.1 (+https://git.sr.ht/~shulhan/jelajah)`

// Doer send the HTTP request and return its response.
// The [http.Client] implement this interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options for Extractor.
type Options struct {
	// Client used to send the request.
	// Default to [NewClient] with TLS verification and without timeout.
	Client Doer

	// Parser that return the href values from HTML.
	// Default to [NodeParser].
	Parser Parser

	// Logger print the page being fetched on debug level.
	// Default to logger that discard everything.
	Logger *slog.Logger

	UserAgent string

	// MaxBodySize limit the number of bytes read from response body.
	// Zero means no limit.
	MaxBodySize int64
}

func (opts *Options) init() {
	if opts.Client == nil {
		opts.Client = NewClient(false, 0)
	}
	if opts.Parser == nil {
		opts.Parser = NodeParser{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.UserAgent == `` {
		opts.UserAgent = DefaultUserAgent
	}
}

// Extractor fetch HTML page and extract its links.
// Extractor does not keep any state between calls, so it is safe to be
// used by multiple goroutines.
type Extractor struct {
	log  *slog.Logger
	opts Options
}

// New create new Extractor.
func New(opts Options) (ext *Extractor) {
	opts.init()
	ext = &Extractor{
		opts: opts,
		log:  opts.Logger,
	}
	return ext
}

// NewClient create HTTP client with the same transport setting for
// fetching page and probing links.
// If insecure is true, the client does not verify the server certificate.
// Zero timeout means no timeout.
func NewClient(insecure bool, timeout time.Duration) (httpc *http.Client) {
	var netDial = &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	var tlsConfig = &tls.Config{
		InsecureSkipVerify: insecure,
	}
	httpc = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:           netDial.DialContext,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          100,
			TLSClientConfig:       tlsConfig,
			TLSHandshakeTimeout:   10 * time.Second,
		},
	}
	return httpc
}

// ExtractLinks fetch the page at rawUrl and return all navigable links
// inside its body.
// Each link is resolved against rawUrl using [resolver.Resolve].
//
// The rawUrl is fetched once, without retry.
// It return [ErrInvalidURL] if rawUrl is not valid, or [ErrConnection] if
// the page cannot be fetched.
func (ext *Extractor) ExtractLinks(ctx context.Context, rawUrl string) (
	links linkset.Set, err error,
) {
	var logp = `ExtractLinks`

	var conn *Connection
	conn, err = ext.OpenConnection(ctx, rawUrl)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	var body string
	body, err = conn.ReadAll()
	conn.Close()
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	var hrefs []string
	hrefs, err = ext.opts.Parser.Hrefs(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(`%s: %s: %w`, logp, rawUrl, err)
	}

	links = linkset.New()
	for _, href := range hrefs {
		var link string
		var ok bool
		link, ok = resolver.Resolve(conn.Url, href)
		if !ok {
			continue
		}
		links.Add(link)
	}

	ext.log.Debug(`extracted`, `url`, rawUrl, `links`, links.Len())

	return links, nil
}
