// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/crawler"
)

type linkRow struct {
	Link  string `csv:"link"`
	Error string `csv:"error"`
}

type brokenRow struct {
	Link  string `csv:"link"`
	Error string `csv:"error"`
	Code  int    `csv:"code"`
}

// CSVWriter write the result as CSV with header.
type CSVWriter struct {
	out io.Writer
}

// WriteCrawl implement the [Writer] interface.
// The error column is filled for page that cannot be expanded.
func (w *CSVWriter) WriteCrawl(result *crawler.Result) error {
	var rows = make([]linkRow, 0, result.Links.Len())
	for _, link := range result.Links.Slice() {
		rows = append(rows, linkRow{
			Link:  link,
			Error: result.Failed[link],
		})
	}
	return gocsv.Marshal(&rows, w.out)
}

// WriteBroken implement the [Writer] interface.
func (w *CSVWriter) WriteBroken(result *brokenlinks.Result) error {
	var list = result.List()
	var rows = make([]brokenRow, 0, len(list))
	for _, broken := range list {
		rows = append(rows, brokenRow{
			Link:  broken.Link,
			Code:  broken.Code,
			Error: broken.Error,
		})
	}
	return gocsv.Marshal(&rows, w.out)
}
