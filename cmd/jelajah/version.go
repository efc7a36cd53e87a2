// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"git.sr.ht/~shulhan/jelajah"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `version`,
		Short: `Print the program version`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var _, err = fmt.Fprintln(cmd.OutOrStdout(), jelajah.Version)
			return err
		},
	}
}

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `help`,
		Short: `Print the program usage`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var _, err = fmt.Fprintln(cmd.OutOrStdout(), jelajah.GoEmbedReadme)
			return err
		},
	}
}
