// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/spf13/cobra"

	"git.sr.ht/~shulhan/jelajah/brokenlinks"
	"git.sr.ht/~shulhan/jelajah/extractor"
	"git.sr.ht/~shulhan/jelajah/report"
)

func newBrokenlinksCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   `brokenlinks [flags] URL`,
		Short: `Print the broken links found on page URL`,
		Long: `Brokenlinks fetch the page at URL, probe each of its links using HTTP
HEAD, and print the links that are broken.

With policy "notfound" only the link that return 404 is broken.
With policy "notok" any link that does not return 200 is broken.
The link that cannot be reached is reported with status -1.`,
		Args: exactURL,
		RunE: runBrokenlinks,
	}

	cmd.Flags().String(`policy`, brokenlinks.PolicyNameNotFound,
		`Broken link policy: notfound or notok.`)
	cmd.Flags().String(`ignore-status`, ``,
		`Comma separated HTTP response status code to be ignored.`)
	cmd.Flags().Bool(`insecure`, false,
		`Do not report as error on server with invalid certificates.`)
	cmd.Flags().DurationP(`timeout`, `t`, 0,
		`Timeout for each request, for example "10s"; 0 means no timeout.`)
	cmd.Flags().IntP(`max-worker`, `w`, 1,
		`Maximum number of links probed at the same time.`)
	cmd.Flags().StringP(`parser`, `p`, extractor.ParserHTML,
		`HTML parser: html or query.`)
	cmd.Flags().String(`user-agent`, ``, `User-Agent for each request.`)
	addCommonFlags(cmd)

	return cmd
}

func runBrokenlinks(cmd *cobra.Command, args []string) (err error) {
	var env *cmdEnv

	env, err = loadEnv(cmd)
	if err != nil {
		return err
	}

	var opts = brokenlinks.Options{
		Logger:       env.log,
		Url:          args[0],
		IgnoreStatus: env.cfg.IgnoreStatus,
		UserAgent:    env.cfg.UserAgent,
		Timeout:      env.timeout,
		MaxBodySize:  env.cfg.MaxBodySize,
		MaxWorker:    env.cfg.MaxWorker,
		Insecure:     env.cfg.Insecure,
	}

	opts.Policy, err = brokenlinks.ParsePolicy(env.cfg.Policy)
	if err != nil {
		return err
	}
	opts.Parser, err = extractor.ParserByName(env.cfg.Parser)
	if err != nil {
		return err
	}

	var w report.Writer
	w, err = report.NewWriter(env.cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var result *brokenlinks.Result
	result, err = brokenlinks.Scan(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return w.WriteBroken(result)
}
