// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package jelajah contains the version and usage of jelajah program.
//
// The library is split into several packages: [linkset], [resolver],
// [extractor], [crawler], [brokenlinks], and [report].
//
// [linkset]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/linkset
// [resolver]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/resolver
// [extractor]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/extractor
// [crawler]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/crawler
// [brokenlinks]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/brokenlinks
// [report]: https://pkg.go.dev/git.sr.ht/~shulhan/jelajah/report
package jelajah

import (
	_ "embed"
)

// Version of jelajah program and module.
var Version = `0.1.0`

// GoEmbedReadme embed the README for showing the usage of program.
//
//go:embed README
var GoEmbedReadme string
