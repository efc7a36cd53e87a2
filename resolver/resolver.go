// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package resolver convert the raw value of href attribute into absolute
// URL, relative to the page where the attribute found.
package resolver

import (
	"net/url"
	"strings"
)

// listSkipPrefix contains prefix of href value that does not point to
// other page.
var listSkipPrefix = []string{
	`#`,
	`tel`,
	`?`,
	`mailto:`,
	`index`,
}

// Resolve the raw href value against the base URL of the page.
// It return ok as false if the href is not navigable link, for example
// link to element ID, phone number, or email.
//
// The href that start with "http" or "www." returned as is.
// The href that start with "/" is joined with the scheme and host of base.
// The href that start with "../" walk up the directory of base, one
// directory for each "../", but never pass the root of base host.
// Other href is appended to the base URL as is.
//
// The base must be valid, absolute URL.
func Resolve(base *url.URL, href string) (link string, ok bool) {
	href = strings.TrimSpace(href)

	for _, prefix := range listSkipPrefix {
		if strings.HasPrefix(href, prefix) {
			return ``, false
		}
	}
	if strings.HasPrefix(href, `http`) || strings.HasPrefix(href, `www.`) {
		return href, true
	}

	var root = base.Scheme + `://` + base.Host

	if strings.HasPrefix(href, `../`) {
		return resolveParent(root, base.EscapedPath(), href), true
	}
	if strings.HasPrefix(href, `/`) {
		return root + href, true
	}
	return base.String() + href, true
}

// resolveParent walk up the directory of basePath for each "../" in href.
func resolveParent(root, basePath, href string) (link string) {
	var dir = parentDir(basePath)

	for strings.HasPrefix(href, `../`) {
		href = href[3:]
		dir = parentDir(dir)
	}
	if dir == `` {
		return root + `/` + href
	}
	return root + dir + `/` + href
}

// parentDir return the path without its last segment.
// The root directory is returned as empty string.
func parentDir(path string) (dir string) {
	var idx = strings.LastIndexByte(path, '/')
	if idx <= 0 {
		return ``
	}
	return path[:idx]
}
