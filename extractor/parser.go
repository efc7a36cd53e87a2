// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package extractor

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// List of parser name for [ParserByName].
const (
	ParserHTML  = `html`
	ParserQuery = `query`
)

// Parser return the value of href attribute from all elements inside the
// HTML body, in document order.
type Parser interface {
	Hrefs(body io.Reader) (hrefs []string, err error)
}

// ParserByName return the Parser by its name, either [ParserHTML] or
// [ParserQuery].
// Empty name return [NodeParser].
func ParserByName(name string) (parser Parser, err error) {
	switch name {
	case ``, ParserHTML:
		return NodeParser{}, nil
	case ParserQuery:
		return QueryParser{}, nil
	}
	return nil, fmt.Errorf(`unknown parser %q`, name)
}

// NodeParser walk the node tree from [html.Parse].
type NodeParser struct{}

// Hrefs implement the [Parser] interface.
func (NodeParser) Hrefs(body io.Reader) (hrefs []string, err error) {
	var doc *html.Node
	doc, err = html.Parse(body)
	if err != nil {
		return nil, err
	}

	var bodyNode *html.Node
	for node := range doc.Descendants() {
		if node.Type == html.ElementNode && node.DataAtom == atom.Body {
			bodyNode = node
			break
		}
	}
	if bodyNode == nil {
		return nil, nil
	}

	for node := range bodyNode.Descendants() {
		if node.Type != html.ElementNode {
			continue
		}
		for _, attr := range node.Attr {
			if attr.Key != `href` {
				continue
			}
			hrefs = append(hrefs, attr.Val)
			break
		}
	}
	return hrefs, nil
}

// QueryParser select the elements using goquery selector "body [href]".
type QueryParser struct{}

// Hrefs implement the [Parser] interface.
func (QueryParser) Hrefs(body io.Reader) (hrefs []string, err error) {
	var doc *goquery.Document
	doc, err = goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}
	doc.Find(`body [href]`).Each(func(_ int, sel *goquery.Selection) {
		var href, _ = sel.Attr(`href`)
		hrefs = append(hrefs, href)
	})
	return hrefs, nil
}
