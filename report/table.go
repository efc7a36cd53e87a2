// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"fmt"
	"io"

	"github.com/rodaine/table"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/crawler"
)

// TableWriter write the result as plain text table, for terminal.
type TableWriter struct {
	out io.Writer
}

// WriteCrawl implement the [Writer] interface.
func (w *TableWriter) WriteCrawl(result *crawler.Result) (err error) {
	var links = result.Links.Slice()
	if len(links) == 0 {
		_, err = fmt.Fprintln(w.out, `No links found.`)
		return err
	}

	var tbl = table.New(`Link`, `Error`).WithWriter(w.out)
	for _, link := range links {
		tbl.AddRow(link, result.Failed[link])
	}
	tbl.Print()
	return nil
}

// WriteBroken implement the [Writer] interface.
func (w *TableWriter) WriteBroken(result *brokenlinks.Result) (err error) {
	var list = result.List()
	if len(list) == 0 {
		_, err = fmt.Fprintln(w.out, `No broken links found.`)
		return err
	}

	var tbl = table.New(`Link`, `Code`, `Error`).WithWriter(w.out)
	for _, broken := range list {
		tbl.AddRow(broken.Link, broken.Code, broken.Error)
	}
	tbl.Print()
	return nil
}
