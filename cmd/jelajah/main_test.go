// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	libnet "git.sr.ht/~shulhan/pakakeh.go/lib/net"
	"git.sr.ht/~shulhan/pakakeh.go/lib/test"

	"git.sr.ht/~shulhan/jelajah"
	"git.sr.ht/~shulhan/jelajah/internal"
)

const testAddress = `127.0.0.1:11860`

const testIndex = `<html><body>
<a href="/ok">ok</a>
<a href="/missing">missing</a>
<a href="mailto:x@example.com">mail</a>
</body></html>`

func TestMain(m *testing.M) {
	log.SetFlags(0)

	// Make the tests independent of the user config file.
	internal.ConfigFile = func() string {
		return ``
	}

	go func() {
		var mux = http.NewServeMux()
		mux.HandleFunc(`/{$}`, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(`Content-Type`, `text/html`)
			_, _ = w.Write([]byte(testIndex))
		})
		mux.HandleFunc(`/ok`, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		var testServer = &http.Server{
			Addr:           testAddress,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		var err = testServer.ListenAndServe()
		if err != nil {
			log.Fatal(err)
		}
	}()

	var err = libnet.WaitAlive(`tcp`, testAddress, 5*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func execute(args ...string) (out string, err error) {
	var (
		cmd = newRootCmd()
		buf bytes.Buffer
	)
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err = cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd(t *testing.T) {
	var testUrl = `http://` + testAddress + `/`

	var configFile = filepath.Join(t.TempDir(), `config.yaml`)
	var err = os.WriteFile(configFile, []byte("format: csv\npolicy: notok\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	type testCase struct {
		desc     string
		exp      string
		expError string
		args     []string
	}

	var listCase = []testCase{{
		desc: `version`,
		args: []string{`version`},
		exp:  jelajah.Version + "\n",
	}, {
		desc: `help`,
		args: []string{`help`},
		exp:  jelajah.GoEmbedReadme + "\n",
	}, {
		desc:     `crawl without URL`,
		args:     []string{`crawl`},
		expError: `crawl: missing argument URL`,
	}, {
		desc:     `crawl with unknown parser`,
		args:     []string{`crawl`, `--parser`, `xpath`, testUrl},
		expError: `unknown parser "xpath"`,
	}, {
		desc:     `crawl with unknown format`,
		args:     []string{`crawl`, `--format`, `xml`, testUrl},
		expError: `unknown format "xml"`,
	}, {
		desc: `crawl`,
		args: []string{`crawl`, testUrl},
		exp: `{
  "links": [
    "http://127.0.0.1:11860/missing",
    "http://127.0.0.1:11860/ok"
  ]
}
`,
	}, {
		desc: `crawl with depth zero`,
		args: []string{`crawl`, `--depth`, `0`, testUrl},
		exp: `{
  "links": []
}
`,
	}, {
		desc:     `crawl with max-body-size`,
		args:     []string{`crawl`, `--max-body-size`, `10`, testUrl},
		expError: `Crawl: ExtractLinks: ReadAll: connection error: http://127.0.0.1:11860/ body exceed 10 bytes`,
	}, {
		desc:     `brokenlinks with max-body-size`,
		args:     []string{`brokenlinks`, `--max-body-size`, `10`, testUrl},
		expError: `Scan: CheckURL: Crawl: ExtractLinks: ReadAll: connection error: http://127.0.0.1:11860/ body exceed 10 bytes`,
	}, {
		desc:     `brokenlinks with unknown policy`,
		args:     []string{`brokenlinks`, `--policy`, `none`, testUrl},
		expError: `unknown policy "none"`,
	}, {
		desc: `brokenlinks`,
		args: []string{`brokenlinks`, testUrl},
		exp: `{
  "broken_links": {
    "http://127.0.0.1:11860/missing": 404
  }
}
`,
	}, {
		desc: `brokenlinks with ignore-status`,
		args: []string{`brokenlinks`, `--ignore-status`, `404`, testUrl},
		exp: `{
  "broken_links": {}
}
`,
	}, {
		desc: `brokenlinks with config`,
		args: []string{`brokenlinks`, `--config`, configFile, testUrl},
		exp:  "link,error,code\nhttp://127.0.0.1:11860/missing,,404\n",
	}, {
		desc: `brokenlinks flag override config`,
		args: []string{`brokenlinks`, `--config`, configFile,
			`--format`, `json`, testUrl},
		exp: `{
  "broken_links": {
    "http://127.0.0.1:11860/missing": 404
  }
}
`,
	}}

	for _, tcase := range listCase {
		got, err := execute(tcase.args...)
		if err != nil {
			test.Assert(t, tcase.desc+` error`, tcase.expError, err.Error())
			continue
		}
		test.Assert(t, tcase.desc, tcase.exp, got)
	}
}

func TestRootCmd_verbose(t *testing.T) {
	var got, err = execute(`crawl`, `--verbose`, `http://`+testAddress+`/`)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `debug log`, true, strings.Contains(got, `level=DEBUG`))
}
