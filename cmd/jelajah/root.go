// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"git.sr.ht/~shulhan/jelajah"
	"git.sr.ht/~shulhan/jelajah/internal"
)

func newRootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:           `jelajah`,
		Short:         `Crawl web page and find the broken links`,
		Version:       jelajah.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP(`verbose`, `v`, false,
		`Print each request to stderr.`)
	cmd.PersistentFlags().StringP(`config`, `c`, ``,
		`Path to config file, yaml or toml.`)

	cmd.SetHelpCommand(newHelpCmd())
	cmd.AddCommand(newCrawlCmd())
	cmd.AddCommand(newBrokenlinksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// cmdEnv contains the configuration merged with the flags and the logger
// for running the command.
type cmdEnv struct {
	cfg     *internal.Config
	log     *slog.Logger
	timeout time.Duration
}

// loadEnv load the config file and override its values with the flags
// that explicitly set by user.
func loadEnv(cmd *cobra.Command) (env *cmdEnv, err error) {
	var flags = cmd.Flags()
	var configFile string

	configFile, err = flags.GetString(`config`)
	if err != nil {
		return nil, err
	}

	env = &cmdEnv{}
	env.cfg, err = internal.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	env.timeout = env.cfg.TimeoutDuration()

	overrideString(flags, `ignore-status`, &env.cfg.IgnoreStatus)
	overrideString(flags, `policy`, &env.cfg.Policy)
	overrideString(flags, `user-agent`, &env.cfg.UserAgent)
	overrideString(flags, `parser`, &env.cfg.Parser)
	overrideString(flags, `format`, &env.cfg.Format)
	overrideInt(flags, `depth`, &env.cfg.Depth)
	overrideInt(flags, `max-worker`, &env.cfg.MaxWorker)

	if flags.Changed(`max-body-size`) {
		env.cfg.MaxBodySize, _ = flags.GetInt64(`max-body-size`)
	}

	if flags.Changed(`insecure`) {
		env.cfg.Insecure, _ = flags.GetBool(`insecure`)
	}
	if flags.Changed(`timeout`) {
		env.timeout, _ = flags.GetDuration(`timeout`)
	}

	var verbose bool
	verbose, _ = flags.GetBool(`verbose`)
	env.log = internal.NewLogger(cmd.ErrOrStderr(), verbose)

	return env, nil
}

func overrideString(flags *pflag.FlagSet, name string, val *string) {
	if flags.Changed(name) {
		*val, _ = flags.GetString(name)
	}
}

func overrideInt(flags *pflag.FlagSet, name string, val *int) {
	if flags.Changed(name) {
		*val, _ = flags.GetInt(name)
	}
}

// addCommonFlags add the flags for output format and the maximum body size
// to cmd.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Int64(`max-body-size`, 0,
		`Maximum size of page body, in bytes; 0 means no limit.`)
	cmd.Flags().StringP(`format`, `f`, `json`,
		`Output format: json, markdown, csv, or table.`)
}

func exactURL(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf(`%s: missing argument URL`, cmd.Name())
	}
	return nil
}
