// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package extractor

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"
)

// Connection contains the response from fetching a page.
// The caller must call [Connection.Close] once finished.
type Connection struct {
	// Url of the page being requested.
	// This is the base for resolving relative links, even if the
	// client follow redirects.
	Url *url.URL

	resp *http.Response

	// closers contains the body decoder that need to be closed
	// before the response body.
	closers []io.Closer

	maxBodySize int64
}

// ParseURL parse and validate the rawUrl.
// The rawUrl must be absolute URL with scheme "http" or "https".
func ParseURL(rawUrl string) (pageUrl *url.URL, err error) {
	if rawUrl == `` {
		return nil, fmt.Errorf(`%w %q`, ErrInvalidURL, rawUrl)
	}
	pageUrl, err = url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf(`%w %q`, ErrInvalidURL, rawUrl)
	}
	if pageUrl.Scheme != `http` && pageUrl.Scheme != `https` {
		return nil, fmt.Errorf(`%w %q`, ErrInvalidURL, rawUrl)
	}
	if pageUrl.Host == `` {
		return nil, fmt.Errorf(`%w %q`, ErrInvalidURL, rawUrl)
	}
	return pageUrl, nil
}

// OpenConnection send GET request to rawUrl.
// It fail with [ErrInvalidURL] before any request is made if rawUrl is not
// valid, or with [ErrConnection] if the request failed.
func (ext *Extractor) OpenConnection(ctx context.Context, rawUrl string) (
	conn *Connection, err error,
) {
	var logp = `OpenConnection`

	var pageUrl *url.URL
	pageUrl, err = ParseURL(rawUrl)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet,
		pageUrl.String(), nil)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w: %w`, logp, ErrInvalidURL, err)
	}
	req.Header.Set(`User-Agent`, ext.opts.UserAgent)
	req.Header.Set(`Accept`, `text/html,application/xhtml+xml;q=0.9,*/*;q=0.8`)
	req.Header.Set(`Accept-Encoding`, `gzip, deflate, br`)

	ext.log.Debug(`fetch`, `method`, http.MethodGet, `url`, rawUrl)

	var httpResp *http.Response
	httpResp, err = ext.opts.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w: %w`, logp, ErrConnection, err)
	}

	conn = &Connection{
		Url:         pageUrl,
		resp:        httpResp,
		maxBodySize: ext.opts.MaxBodySize,
	}
	return conn, nil
}

// StatusCode return the HTTP status code of response.
func (conn *Connection) StatusCode() int {
	return conn.resp.StatusCode
}

// ReadAll read the whole response body as UTF-8 text.
// The body is decoded based on the Content-Encoding and the charset in
// Content-Type or in the HTML meta.
// It return [ErrConnection] if the response status code is 400 or above.
func (conn *Connection) ReadAll() (body string, err error) {
	var logp = `ReadAll`

	if conn.resp.StatusCode >= http.StatusBadRequest {
		return ``, fmt.Errorf(`%s: %w: %s return HTTP status code %d`,
			logp, ErrConnection, conn.Url, conn.resp.StatusCode)
	}

	var reader io.Reader
	reader, err = conn.decodeBody()
	if err != nil {
		return ``, fmt.Errorf(`%s: %w: %w`, logp, ErrConnection, err)
	}

	reader, err = charset.NewReader(reader, conn.resp.Header.Get(`Content-Type`))
	if err != nil {
		return ``, fmt.Errorf(`%s: %w: %w`, logp, ErrConnection, err)
	}
	if conn.maxBodySize > 0 {
		reader = io.LimitReader(reader, conn.maxBodySize+1)
	}

	var raw []byte
	raw, err = io.ReadAll(reader)
	if err != nil {
		return ``, fmt.Errorf(`%s: %w: %w`, logp, ErrConnection, err)
	}
	if conn.maxBodySize > 0 && int64(len(raw)) > conn.maxBodySize {
		return ``, fmt.Errorf(`%s: %w: %s body exceed %d bytes`,
			logp, ErrConnection, conn.Url, conn.maxBodySize)
	}
	return string(raw), nil
}

func (conn *Connection) decodeBody() (reader io.Reader, err error) {
	var encoding = conn.resp.Header.Get(`Content-Encoding`)
	encoding = strings.ToLower(strings.TrimSpace(encoding))

	switch encoding {
	case `gzip`:
		var gz *gzip.Reader
		gz, err = gzip.NewReader(conn.resp.Body)
		if err != nil {
			return nil, err
		}
		conn.closers = append(conn.closers, gz)
		return gz, nil
	case `deflate`:
		return conn.newDeflateReader()
	case `br`:
		return brotli.NewReader(conn.resp.Body), nil
	}
	return conn.resp.Body, nil
}

// newDeflateReader read the zlib wrapped DEFLATE body.
// Some servers send raw DEFLATE without zlib header, in that case the body
// is read as is.
func (conn *Connection) newDeflateReader() (reader io.Reader, err error) {
	var buf = bufio.NewReader(conn.resp.Body)

	var header []byte
	header, err = buf.Peek(2)
	if err == nil && isZlibHeader(header) {
		var zr io.ReadCloser
		zr, err = zlib.NewReader(buf)
		if err != nil {
			return nil, err
		}
		conn.closers = append(conn.closers, zr)
		return zr, nil
	}

	var fl = flate.NewReader(buf)
	conn.closers = append(conn.closers, fl)
	return fl, nil
}

// isZlibHeader return true if the first two bytes is valid zlib CMF and FLG,
// with compression method 8 and FCHECK, see RFC 1950 section 2.2.
func isZlibHeader(header []byte) bool {
	var cmf, flg = uint16(header[0]), uint16(header[1])
	return cmf&0x0f == 8 && (cmf<<8|flg)%31 == 0
}

// Close the response body, including its decoder.
func (conn *Connection) Close() {
	for x := len(conn.closers) - 1; x >= 0; x-- {
		_ = conn.closers[x].Close()
	}
	conn.closers = nil
	_ = conn.resp.Body.Close()
}
