// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/crawler"
)

// MarkdownWriter write the result as Markdown document.
type MarkdownWriter struct {
	out io.Writer
}

// WriteCrawl implement the [Writer] interface.
func (w *MarkdownWriter) WriteCrawl(result *crawler.Result) error {
	var md = markdown.NewMarkdown(w.out)

	md.H1(`Links`)
	md.PlainText(``)

	var links = result.Links.Slice()
	if len(links) == 0 {
		md.PlainText(`No links found.`)
		return md.Build()
	}

	md.PlainText(fmt.Sprintf(`Found %d links.`, len(links)))
	md.PlainText(``)
	md.BulletList(links...)

	if len(result.Failed) != 0 {
		md.PlainText(``)
		md.H2(`Failed pages`)
		md.PlainText(``)

		var rows [][]string
		for _, link := range sortedKeys(result.Failed) {
			rows = append(rows, []string{link, result.Failed[link]})
		}
		md.Table(markdown.TableSet{
			Header: []string{`Page`, `Error`},
			Rows:   rows,
		})
	}
	return md.Build()
}

// WriteBroken implement the [Writer] interface.
func (w *MarkdownWriter) WriteBroken(result *brokenlinks.Result) error {
	var md = markdown.NewMarkdown(w.out)

	md.H1(`Broken links`)
	md.PlainText(``)

	var list = result.List()
	if len(list) == 0 {
		md.PlainText(`No broken links found.`)
		return md.Build()
	}

	var rows = make([][]string, 0, len(list))
	for _, broken := range list {
		rows = append(rows, []string{
			broken.Link,
			strconv.Itoa(broken.Code),
			broken.Error,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{`Link`, `Code`, `Error`},
		Rows:   rows,
	})
	return md.Build()
}
