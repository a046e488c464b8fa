// Package render turns fetched HTML into the markdown-like text the
// extraction pipeline consumes: h1-h3 become '#' headings, anchors become
// [text](href) links, and bold spans keep their emphasis markers.
package render

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML renders HTML bytes to markdown-like text. Obvious boilerplate
// containers (nav, footer, aside, script) are skipped so segmentation sees
// listings rather than page chrome. Malformed input never errors: the parser
// is tolerant and the worst case is an empty string.
func FromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	root := findFirst(node, "body")
	if root == nil {
		root = node
	}
	var b strings.Builder
	renderBlocks(&b, root)
	return tidy(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

func renderBlocks(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "head":
			return
		case "h1", "h2", "h3":
			depth := int(n.Data[1] - '0')
			writeLine(b, strings.Repeat("#", depth)+" "+inlineText(n))
			return
		case "h4", "h5", "h6", "p", "li", "td", "dt", "dd":
			writeLine(b, inlineText(n))
			return
		case "br", "hr":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			writeLine(b, collapseSpaces(t))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderBlocks(b, c)
	}
}

func writeLine(b *strings.Builder, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	b.WriteString(line)
	b.WriteString("\n")
}

// inlineText flattens one block element, keeping anchor and bold markup in
// markdown form.
func inlineText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
			return
		case html.ElementNode:
			switch strings.ToLower(cur.Data) {
			case "script", "style", "noscript":
				return
			case "a":
				href := attr(cur, "href")
				text := strings.TrimSpace(plainText(cur))
				if href != "" && text != "" {
					b.WriteString("[" + text + "](" + href + ")")
					return
				}
			case "strong", "b":
				text := strings.TrimSpace(plainText(cur))
				if text != "" {
					b.WriteString("**" + text + "**")
					return
				}
			case "em", "i":
				text := strings.TrimSpace(plainText(cur))
				if text != "" {
					b.WriteString("*" + text + "*")
					return
				}
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return collapseSpaces(strings.TrimSpace(b.String()))
}

func plainText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// tidy collapses runs of blank lines and trims trailing whitespace.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimRight(line, " \t")
		if t == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, t)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return b.String()
}
