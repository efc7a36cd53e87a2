// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package brokenlinks

import (
	"slices"
	"strings"
)

// Broken store the broken link, HTTP status code, and the error message that
// cause it.
type Broken struct {
	Link  string `json:"link"`
	Error string `json:"error,omitempty"`
	Code  int    `json:"code"`
}

// Result store the result of probing the links.
type Result struct {
	// BrokenLinks store the broken link and its HTTP status code, or
	// [StatusUnreachable].
	BrokenLinks map[string]int `json:"broken_links"`

	// Errors store the error message for link with StatusUnreachable.
	Errors map[string]string `json:"errors,omitempty"`
}

func newResult() *Result {
	return &Result{
		BrokenLinks: map[string]int{},
		Errors:      map[string]string{},
	}
}

func (result *Result) markBroken(link string, code int, errProbe error) {
	result.BrokenLinks[link] = code
	if errProbe != nil {
		result.Errors[link] = errProbe.Error()
	}
}

// List return the broken links sorted by link.
func (result *Result) List() (list []Broken) {
	list = make([]Broken, 0, len(result.BrokenLinks))
	for link, code := range result.BrokenLinks {
		list = append(list, Broken{
			Link:  link,
			Error: result.Errors[link],
			Code:  code,
		})
	}
	slices.SortFunc(list, func(a, b Broken) int {
		return strings.Compare(a.Link, b.Link)
	})
	return list
}
