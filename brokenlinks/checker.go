// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package brokenlinks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"git.sr.ht/~shulhan/jelajah/crawler"
	"git.sr.ht/~shulhan/jelajah/extractor"
	"git.sr.ht/~shulhan/jelajah/linkset"
)

// Checker probe the links and classify the response.
type Checker struct {
	crawler *crawler.Crawler
	log     *slog.Logger
	opts    Options
}

// New create new Checker.
// It return error if the options is not valid.
func New(opts Options) (chk *Checker, err error) {
	err = opts.init()
	if err != nil {
		return nil, err
	}

	var ext = extractor.New(extractor.Options{
		Client:      opts.Client,
		Parser:      opts.Parser,
		Logger:      opts.Logger,
		UserAgent:   opts.UserAgent,
		MaxBodySize: opts.MaxBodySize,
	})

	chk = &Checker{
		crawler: crawler.New(ext, crawler.Options{
			Logger: opts.Logger,
		}),
		log:  opts.Logger,
		opts: opts,
	}
	return chk, nil
}

// CheckURL extract the links from page at rawUrl and probe each of them.
// It return nil result and the error if the page cannot be fetched.
func (chk *Checker) CheckURL(ctx context.Context, rawUrl string) (
	result *Result, err error,
) {
	var logp = `CheckURL`
	var crawlResult *crawler.Result

	crawlResult, err = chk.crawler.Crawl(ctx, rawUrl, 1)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	result = chk.CheckLinks(ctx, crawlResult.Links)
	return result, nil
}

// CheckLinks probe each link once using HTTP HEAD.
//
// The link that cannot be probed is reported with [StatusUnreachable] and
// its error message in Result.Errors.
// The link that response with broken status, based on [Options.Policy], is
// reported with its HTTP status code, unless the status code is in
// [Options.IgnoreStatus].
//
// The returned result is never nil.
func (chk *Checker) CheckLinks(ctx context.Context, links linkset.Set) (
	result *Result,
) {
	var (
		mtx   sync.Mutex
		group errgroup.Group
	)

	result = newResult()
	group.SetLimit(chk.opts.MaxWorker)

	for _, link := range links.Slice() {
		group.Go(func() error {
			var code, errProbe = chk.probe(ctx, link)

			mtx.Lock()
			chk.classify(result, link, code, errProbe)
			mtx.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	return result
}

func (chk *Checker) classify(
	result *Result, link string, code int, errProbe error,
) {
	if errProbe != nil {
		chk.log.Warn(`unreachable`, `url`, link, `error`, errProbe)
		result.markBroken(link, StatusUnreachable, errProbe)
		return
	}
	if slices.Contains(chk.opts.ignoreStatus, code) {
		return
	}
	if chk.opts.Policy.isBroken(code) {
		chk.log.Warn(`broken`, `url`, link, `code`, code)
		result.markBroken(link, code, nil)
	}
}

// probe send HEAD request to link and return its HTTP status code.
func (chk *Checker) probe(ctx context.Context, link string) (
	code int, err error,
) {
	var req *http.Request

	req, err = http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		return StatusUnreachable, err
	}
	req.Header.Set(`User-Agent`, chk.opts.UserAgent)

	chk.log.Debug(`probe`, `method`, http.MethodHead, `url`, link)

	var httpResp *http.Response
	httpResp, err = chk.opts.Client.Do(req)
	if err != nil {
		return StatusUnreachable, err
	}
	_ = httpResp.Body.Close()

	return httpResp.StatusCode, nil
}
