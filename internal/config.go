// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config define the default value for the command flags.
type Config struct {
	// Timeout for each request, in the format of [time.ParseDuration].
	Timeout string `yaml:"timeout" toml:"timeout"`

	IgnoreStatus string `yaml:"ignore_status" toml:"ignore_status"`
	Policy       string `yaml:"policy" toml:"policy"`
	UserAgent    string `yaml:"user_agent" toml:"user_agent"`
	Parser       string `yaml:"parser" toml:"parser"`
	Format       string `yaml:"format" toml:"format"`

	timeout time.Duration

	// MaxBodySize limit the size of page body, in bytes.
	MaxBodySize int64 `yaml:"max_body_size" toml:"max_body_size"`

	Depth     int  `yaml:"depth" toml:"depth"`
	MaxWorker int  `yaml:"max_worker" toml:"max_worker"`
	Insecure  bool `yaml:"insecure" toml:"insecure"`
}

// LoadConfig load the configuration from path.
// The file with ".toml" extension is decoded as TOML, others as YAML.
//
// If path is empty, it load the file returned by [ConfigFile].
// If there is no default config file, it return the default Config.
func LoadConfig(path string) (cfg *Config, err error) {
	var logp = `LoadConfig`

	cfg = &Config{}
	if path == `` {
		path = ConfigFile()
		if path == `` {
			err = cfg.init()
			return cfg, err
		}
	}

	var content []byte
	content, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	if strings.EqualFold(filepath.Ext(path), `.toml`) {
		err = toml.Unmarshal(content, cfg)
	} else {
		err = yaml.Unmarshal(content, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf(`%s: %s: %w`, logp, path, err)
	}

	err = cfg.init()
	if err != nil {
		return nil, fmt.Errorf(`%s: %s: %w`, logp, path, err)
	}
	return cfg, nil
}

func (cfg *Config) init() (err error) {
	if cfg.Depth == 0 {
		cfg.Depth = 1
	}
	if cfg.MaxBodySize < 0 {
		return fmt.Errorf(`invalid max_body_size %d`, cfg.MaxBodySize)
	}
	if cfg.Timeout != `` {
		cfg.timeout, err = time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf(`invalid timeout %q`, cfg.Timeout)
		}
	}
	return nil
}

// TimeoutDuration return the parsed Timeout.
func (cfg *Config) TimeoutDuration() time.Duration {
	return cfg.timeout
}
