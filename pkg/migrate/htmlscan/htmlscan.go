// Package htmlscan extracts a single attribute value from a rendered HTML
// document without building a parse tree.
package htmlscan

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FirstAttr scans the token stream in document order and returns the first
// non-empty (after trimming) value of attr on a start tag named tag. Tag and
// attribute names match case-insensitively. A document with no such tag, or
// where every matching tag lacks the attribute, is simply not found;
// malformed markup degrades to not found at the point the tokenizer stops.
func FirstAttr(r io.Reader, tag, attr string) (string, bool) {
	z := html.NewTokenizer(r)
	tag = strings.ToLower(tag)

	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if strings.ToLower(string(name)) != tag {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if !strings.EqualFold(string(key), attr) {
					continue
				}
				if v := strings.TrimSpace(string(val)); v != "" {
					return v, true
				}
			}
		}
	}
}
