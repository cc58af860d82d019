// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package postcontent

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderInline is a display node produced by [Decode].
type RenderInline struct {
	Kind InlineKind
	// Text is the literal text of a [TextKind] node
	// or the display text of a [HashtagKind] link,
	// including the leading '#'.
	Text string
	// Target is the hashtag name without the leading '#'
	// for [HashtagKind] nodes.
	// Callers use it as a route or lookup key.
	Target string
}

// A RenderParagraph is a paragraph of display nodes.
type RenderParagraph []RenderInline

// Decode parses canonical markup into display paragraphs.
//
// Every paragraph element in the markup is split into one or more
// render paragraphs: a line break that is adjacent to another line break
// ends the current paragraph and is dropped,
// while an isolated line break is kept as a [LineBreakKind] node.
// Hashtag spans become [HashtagKind] links,
// and any other element is replaced by its content.
//
// Decode never fails.
// Malformed markup is recovered on a best-effort basis,
// and content outside of any paragraph element is kept as its own paragraph.
func Decode(markup string) []RenderParagraph {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		// Only reachable on a read error, which strings.Reader doesn't produce.
		return []RenderParagraph{{{Kind: TextKind, Text: markup}}}
	}

	var paragraphs []RenderParagraph
	var stray []RenderInline
	hasStray := false
	flushStray := func() {
		if hasStray {
			paragraphs = append(paragraphs, groupParagraphs(nil, stray)...)
		}
		stray = stray[:0]
		hasStray = false
	}
	for _, n := range nodes {
		switch {
		case n.Type == html.ElementNode && n.DataAtom == atom.P:
			flushStray()
			var flat []RenderInline
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				flat = flattenInline(flat, c)
			}
			paragraphs = groupParagraphs(paragraphs, flat)
		case n.Type == html.TextNode && !hasStray && strings.TrimSpace(n.Data) == "":
			// Formatting whitespace between blocks.
		case n.Type == html.TextNode || n.Type == html.ElementNode:
			stray = flattenInline(stray, n)
			hasStray = true
		}
	}
	flushStray()
	return paragraphs
}

// flattenInline appends the inline nodes represented by n to dst.
// Line breaks are appended as [LineBreakKind] nodes
// so that groupParagraphs can find split points.
func flattenInline(dst []RenderInline, n *html.Node) []RenderInline {
	switch n.Type {
	case html.TextNode:
		if n.Data != "" {
			dst = append(dst, RenderInline{Kind: TextKind, Text: n.Data})
		}
	case html.ElementNode:
		switch {
		case n.DataAtom == atom.Br:
			dst = append(dst, RenderInline{Kind: LineBreakKind})
		case hasClass(n, HashtagClass):
			display := textContent(n)
			if display == "" {
				break
			}
			dst = append(dst, RenderInline{
				Kind:   HashtagKind,
				Text:   display,
				Target: strings.TrimPrefix(display, "#"),
			})
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				dst = flattenInline(dst, c)
			}
		}
	}
	return dst
}

// groupParagraphs splits a flat list of inline nodes into paragraphs
// and appends them to dst.
// A line break is a split point if and only if
// the node before it or the node after it is also a line break.
// Split points do not start empty paragraphs,
// but the final paragraph is always appended, even if it is empty.
func groupParagraphs(dst []RenderParagraph, flat []RenderInline) []RenderParagraph {
	isBreak := func(i int) bool {
		return 0 <= i && i < len(flat) && flat[i].Kind == LineBreakKind
	}

	var curr RenderParagraph
	for i, node := range flat {
		if node.Kind != LineBreakKind {
			curr = curr.append(node)
			continue
		}
		if isBreak(i-1) || isBreak(i+1) {
			if len(curr) > 0 {
				dst = append(dst, curr)
				curr = nil
			}
			continue
		}
		curr = append(curr, node)
	}
	if curr == nil {
		curr = RenderParagraph{}
	}
	return append(dst, curr)
}

// append adds node to the end of p,
// merging adjacent text nodes.
func (p RenderParagraph) append(node RenderInline) RenderParagraph {
	if n := len(p); n > 0 && node.Kind == TextKind && p[n-1].Kind == TextKind {
		p[n-1].Text += node.Text
		return p
	}
	return append(p, node)
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			for _, field := range strings.Fields(attr.Val) {
				if field == class {
					return true
				}
			}
		}
	}
	return false
}

// textContent returns the concatenation of all text inside n.
func textContent(n *html.Node) string {
	sb := new(strings.Builder)
	stack := []*html.Node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.Type == html.TextNode {
			sb.WriteString(curr.Data)
			continue
		}
		for c := curr.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return sb.String()
}
