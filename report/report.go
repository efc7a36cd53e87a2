// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package report write the result of crawling and probing in one of the
// supported format.
package report

import (
	"fmt"
	"io"
	"slices"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/crawler"
)

// List of supported format.
const (
	FormatJSON     = `json`
	FormatMarkdown = `markdown`
	FormatCSV      = `csv`
	FormatTable    = `table`
)

// Writer write the result into its output.
type Writer interface {
	WriteCrawl(result *crawler.Result) error
	WriteBroken(result *brokenlinks.Result) error
}

// NewWriter create Writer for the format.
// Empty format return the JSON writer.
func NewWriter(format string, out io.Writer) (w Writer, err error) {
	switch format {
	case ``, FormatJSON:
		return &JSONWriter{out: out}, nil
	case FormatMarkdown:
		return &MarkdownWriter{out: out}, nil
	case FormatCSV:
		return &CSVWriter{out: out}, nil
	case FormatTable:
		return &TableWriter{out: out}, nil
	}
	return nil, fmt.Errorf(`unknown format %q`, format)
}

// sortedKeys return the keys of map m in ascending order.
func sortedKeys(m map[string]string) (keys []string) {
	keys = make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
