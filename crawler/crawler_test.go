// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package crawler_test

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	libnet "git.sr.ht/~shulhan/pakakeh.go/lib/net"
	"git.sr.ht/~shulhan/pakakeh.go/lib/test"

	"git.sr.ht/~shulhan/jelajah/crawler"
	"git.sr.ht/~shulhan/jelajah/extractor"
	"git.sr.ht/~shulhan/jelajah/linkset"
)

// The test run web server that serve content on "testdata/web".
//
//	index.html -> page1.html, page2.html, broken.html
//	page1.html -> a.html, page2.html
//	page2.html -> b.html, page3.html
//	page3.html -> c.html

const testAddress = `127.0.0.1:11850`

func TestMain(m *testing.M) {
	log.SetFlags(0)

	var fshandle = http.FileServer(http.Dir(`testdata/web`))

	go func() {
		var mux = http.NewServeMux()
		mux.Handle(`/`, fshandle)
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

func TestCrawler_Crawl(t *testing.T) {
	var testUrl = `http://` + testAddress

	var expSecondHop = &crawler.Result{
		Links: linkset.New(
			testUrl+`/a.html`,
			testUrl+`/b.html`,
			testUrl+`/broken.html`,
			testUrl+`/page1.html`,
			testUrl+`/page2.html`,
			testUrl+`/page3.html`,
		),
		Failed: map[string]string{
			testUrl + `/broken.html`: `ExtractLinks: ReadAll: connection error: ` +
				testUrl + `/broken.html return HTTP status code 404`,
		},
	}

	type testCase struct {
		exp       *crawler.Result
		desc      string
		url       string
		expError  string
		depth     int
		maxWorker int
	}

	var listCase = []testCase{{
		desc:  `depth zero`,
		url:   testUrl + `/`,
		depth: 0,
	}, {
		desc:  `negative depth`,
		url:   testUrl + `/`,
		depth: -1,
	}, {
		desc:     `invalid URL`,
		url:      `127.0.0.1:14594`,
		depth:    1,
		expError: `Crawl: ExtractLinks: OpenConnection: invalid URL "127.0.0.1:14594"`,
	}, {
		desc:     `root not reachable`,
		url:      `http://127.0.0.1:14594`,
		depth:    2,
		expError: `Crawl: ExtractLinks: OpenConnection: connection error: Get "http://127.0.0.1:14594": dial tcp 127.0.0.1:14594: connect: connection refused`,
	}, {
		desc:  `depth one`,
		url:   testUrl + `/`,
		depth: 1,
		exp: &crawler.Result{
			Links: linkset.New(
				testUrl+`/broken.html`,
				testUrl+`/page1.html`,
				testUrl+`/page2.html`,
			),
			Failed: map[string]string{},
		},
	}, {
		desc:  `depth two`,
		url:   testUrl + `/`,
		depth: 2,
		exp:   expSecondHop,
	}, {
		// The links from page3.html is never collected, the
		// expansion stop at the second hop.
		desc:  `depth five`,
		url:   testUrl + `/`,
		depth: 5,
		exp:   expSecondHop,
	}, {
		desc:      `depth two with workers`,
		url:       testUrl + `/`,
		depth:     2,
		maxWorker: 4,
		exp:       expSecondHop,
	}}

	var ext = extractor.New(extractor.Options{})
	var ctx = context.Background()

	for _, tcase := range listCase {
		var crwl = crawler.New(ext, crawler.Options{
			MaxWorker: tcase.maxWorker,
		})

		got, err := crwl.Crawl(ctx, tcase.url, tcase.depth)
		if err != nil {
			test.Assert(t, tcase.desc+` error`, tcase.expError, err.Error())
			continue
		}
		test.Assert(t, tcase.desc, tcase.exp, got)
	}
}

// Crawling with depth 1 return the same links as extracting the root page.
func TestCrawler_Crawl_depthOne(t *testing.T) {
	var testUrl = `http://` + testAddress + `/page1.html`
	var ctx = context.Background()
	var ext = extractor.New(extractor.Options{})
	var crwl = crawler.New(ext, crawler.Options{})

	expLinks, err := ext.ExtractLinks(ctx, testUrl)
	if err != nil {
		t.Fatal(err)
	}

	got, err := crwl.Crawl(ctx, testUrl, 1)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `Links`, expLinks, got.Links)
}

func TestCrawler_Crawl_cancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()

	var crwl = crawler.New(extractor.New(extractor.Options{}), crawler.Options{})

	_, err := crwl.Crawl(ctx, `http://`+testAddress+`/`, 2)
	test.Assert(t, `errors.Is context.Canceled`, true,
		errors.Is(err, context.Canceled))
}
