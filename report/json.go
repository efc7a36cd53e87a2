// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"encoding/json"
	"io"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/crawler"
)

// JSONWriter write the result as indented JSON.
type JSONWriter struct {
	out io.Writer
}

// WriteCrawl implement the [Writer] interface.
func (w *JSONWriter) WriteCrawl(result *crawler.Result) error {
	return w.write(result)
}

// WriteBroken implement the [Writer] interface.
func (w *JSONWriter) WriteBroken(result *brokenlinks.Result) error {
	return w.write(result)
}

func (w *JSONWriter) write(v any) (err error) {
	var resultJson []byte
	resultJson, err = json.MarshalIndent(v, ``, `  `)
	if err != nil {
		return err
	}
	resultJson = append(resultJson, '\n')
	_, err = w.out.Write(resultJson)
	return err
}
