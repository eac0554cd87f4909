package htmltree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driven"
)

// Ensure Rewriter implements the interface.
var _ driven.Rewriter = (*Rewriter)(nil)

// docEnvelope detects inputs that are full documents rather than
// body fragments.
var docEnvelope = regexp.MustCompile(`(?i)<!doctype|<html[\s>]`)

// Rewriter rewrites the text of markable timestamp elements in HTML.
type Rewriter struct{}

// New creates a new HTML tree rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Rewrite parses src, applies fn to every markable element in document
// order, and renders the result. Fragments are parsed in a body context
// and rendered without the implied html/head/body wrapper, so no
// structure beyond the replaced text changes.
func (r *Rewriter) Rewrite(_ context.Context, src []byte, fn driven.RewriteFunc) ([]byte, error) {
	if fn == nil {
		return nil, domain.ErrInvalidInput
	}

	if docEnvelope.Match(src) {
		doc, err := html.Parse(bytes.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}

		rewriteTree(doc, fn)

		var buf bytes.Buffer
		if err := html.Render(&buf, doc); err != nil {
			return nil, fmt.Errorf("rendering document: %w", err)
		}
		return buf.Bytes(), nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(bytes.NewReader(src), body)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		rewriteTree(node, fn)
		if err := html.Render(&buf, node); err != nil {
			return nil, fmt.Errorf("rendering fragment: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// rewriteTree walks the tree in pre-order and replaces the text of
// every markable element. Matched elements are not descended into
// since their children have just been replaced.
func rewriteTree(n *html.Node, fn driven.RewriteFunc) {
	if stamp, ok := stampFrom(n); ok {
		setText(n, fn(stamp))
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		rewriteTree(child, fn)
	}
}

// stampFrom reads the stamp configuration from a node, reporting
// whether the node carries the marker: a <time> element with the
// marker class and a datetime attribute.
func stampFrom(n *html.Node) (domain.Stamp, bool) {
	if n.Type != html.ElementNode || n.Data != domain.MarkerTag {
		return domain.Stamp{}, false
	}

	datetime, hasDatetime := attrValue(n, domain.DatetimeAttr)
	if !hasDatetime || !hasClass(n, domain.MarkerClass) {
		return domain.Stamp{}, false
	}

	format, _ := attrValue(n, domain.FormatAttr)
	return domain.Stamp{Datetime: datetime, Format: format}, true
}

// attrValue returns the value of the named attribute.
func attrValue(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// hasClass returns true if the node's class attribute contains the
// given class token.
func hasClass(n *html.Node, class string) bool {
	val, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(val) {
		if token == class {
			return true
		}
	}
	return false
}

// setText replaces all children of n with a single text node.
func setText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
