// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/spf13/cobra"

	"git.sr.ht/~shulhan/jelajah/crawler"
	"git.sr.ht/~shulhan/jelajah/extractor"
	"git.sr.ht/~shulhan/jelajah/linkset"
	"git.sr.ht/~shulhan/jelajah/report"
)

func newCrawlCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   `crawl [flags] URL`,
		Short: `Print the links found on page URL`,
		Long: `Crawl fetch the page at URL and print all of the links inside its body.

With depth 2 or more, each of the links is fetched once and its links
are included in the result.`,
		Args: exactURL,
		RunE: runCrawl,
	}

	cmd.Flags().IntP(`depth`, `d`, 1,
		`Crawl depth; 1 only the page at URL, 2 or more also the linked pages.`)
	cmd.Flags().IntP(`max-worker`, `w`, 1,
		`Maximum number of pages fetched at the same time.`)
	cmd.Flags().StringP(`parser`, `p`, extractor.ParserHTML,
		`HTML parser: html or query.`)
	cmd.Flags().Bool(`insecure`, false,
		`Do not report as error on server with invalid certificates.`)
	cmd.Flags().DurationP(`timeout`, `t`, 0,
		`Timeout for each request, for example "10s"; 0 means no timeout.`)
	cmd.Flags().String(`user-agent`, ``, `User-Agent for each request.`)
	addCommonFlags(cmd)

	return cmd
}

func runCrawl(cmd *cobra.Command, args []string) (err error) {
	var env *cmdEnv

	env, err = loadEnv(cmd)
	if err != nil {
		return err
	}

	var parser extractor.Parser
	parser, err = extractor.ParserByName(env.cfg.Parser)
	if err != nil {
		return err
	}

	var w report.Writer
	w, err = report.NewWriter(env.cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var ext = extractor.New(extractor.Options{
		Client:      extractor.NewClient(env.cfg.Insecure, env.timeout),
		Parser:      parser,
		Logger:      env.log,
		UserAgent:   env.cfg.UserAgent,
		MaxBodySize: env.cfg.MaxBodySize,
	})
	var crwl = crawler.New(ext, crawler.Options{
		Logger:    env.log,
		MaxWorker: env.cfg.MaxWorker,
	})

	var result *crawler.Result
	result, err = crwl.Crawl(cmd.Context(), args[0], env.cfg.Depth)
	if err != nil {
		return err
	}
	if result == nil {
		result = &crawler.Result{Links: linkset.New()}
	}
	return w.WriteCrawl(result)
}
