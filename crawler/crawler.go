// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package crawler collect the links reachable from a page up to the
// maximum depth.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"git.sr.ht/~shulhan/jelajah/extractor"
	"git.sr.ht/~shulhan/jelajah/linkset"
)

// Options for Crawler.
type Options struct {
	// Logger print the page that failed to be expanded on warning
	// level.
	Logger *slog.Logger

	// MaxWorker define the maximum number of pages fetched at the same
	// time when expanding the links.
	// Default to 1, fetch the page one by one.
	MaxWorker int
}

func (opts *Options) init() {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.MaxWorker <= 0 {
		opts.MaxWorker = 1
	}
}

// Result of crawling.
type Result struct {
	// Links contains all links found from the root page and from the
	// pages that the root page link to.
	Links linkset.Set `json:"links"`

	// Failed contains the linked pages that cannot be fetched during
	// expansion, with the error message.
	Failed map[string]string `json:"failed,omitempty"`
}

func newResult() *Result {
	return &Result{
		Links:  linkset.New(),
		Failed: map[string]string{},
	}
}

// Crawler expand the links found on a page using [extractor.Extractor].
type Crawler struct {
	ext  *extractor.Extractor
	log  *slog.Logger
	opts Options
}

// New create new Crawler that fetch the page using ext.
func New(ext *extractor.Extractor, opts Options) (crawler *Crawler) {
	opts.init()
	crawler = &Crawler{
		ext:  ext,
		log:  opts.Logger,
		opts: opts,
	}
	return crawler
}

// Crawl collect the links from rootUrl up to depth.
//
// If depth is zero or negative, it return nil result without error, means
// nothing requested.
// If depth is 1, the result Links contains only the links inside the
// rootUrl page.
// If depth is 2 or more, each of link in the rootUrl page is fetched once
// and its links are merged into result.
// Every link in the rootUrl page is expanded, even when another link in
// the same page already discovered it.
// The links are never expanded beyond the second hop, regardless of depth.
//
// Error on fetching rootUrl is returned as is.
// Error on fetching the linked page does not stop the crawling, the page
// is recorded in Result.Failed instead.
func (crawler *Crawler) Crawl(ctx context.Context, rootUrl string, depth int) (
	result *Result, err error,
) {
	var logp = `Crawl`

	if depth <= 0 {
		return nil, nil
	}

	var rootLinks linkset.Set
	rootLinks, err = crawler.ext.ExtractLinks(ctx, rootUrl)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	result = newResult()
	if depth == 1 {
		result.Links = rootLinks
		return result, nil
	}

	err = crawler.expand(ctx, rootLinks, result)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}
	result.Links.Merge(rootLinks)

	return result, nil
}

// expand fetch each link in rootLinks once and merge their links into
// result.
// It only return error if the ctx is cancelled.
func (crawler *Crawler) expand(
	ctx context.Context, rootLinks linkset.Set, result *Result,
) (err error) {
	var (
		visited = linkset.New()
		mtx     sync.Mutex
		group   *errgroup.Group
	)

	group, ctx = errgroup.WithContext(ctx)
	group.SetLimit(crawler.opts.MaxWorker)

	for _, link := range rootLinks.Slice() {
		if !visited.Add(link) {
			continue
		}
		group.Go(func() error {
			var subLinks, errExtract = crawler.ext.ExtractLinks(ctx, link)

			mtx.Lock()
			defer mtx.Unlock()

			if errExtract != nil {
				crawler.log.Warn(`skip`, `url`, link, `error`, errExtract)
				result.Failed[link] = errExtract.Error()
				return ctx.Err()
			}
			result.Links.Merge(subLinks)
			return nil
		})
	}
	return group.Wait()
}
