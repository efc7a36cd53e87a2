// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package internal contains the configuration and logger shared by the
// jelajah commands.
package internal

import (
	"github.com/adrg/xdg"
)

// ConfigFile return the path to the default config file.
// This variable defined here so the test file can override it.
var ConfigFile = DefaultConfigFile

// DefaultConfigFile search "jelajah/config.yaml" under the XDG config
// directories.
// It return empty path if the file does not exist in any of them.
func DefaultConfigFile() (configFile string) {
	var err error
	configFile, err = xdg.SearchConfigFile(`jelajah/config.yaml`)
	if err != nil {
		return ``
	}
	return configFile
}
