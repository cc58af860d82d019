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

// Package normhtml provides tokenizer-driven rewrites of post markup:
// stripping attributes from inline annotation tags
// and normalizing markup for comparison in tests.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TextEscaper escapes the characters that are significant in markup text.
var TextEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// AttrEscaper escapes the characters that are significant
// in a double-quoted attribute value.
var AttrEscaper = bytereplacer.New(
	"&", "&amp;",
	`"`, "&quot;",
)

// StripAttributes rewrites every start tag other than structural tags
// (paragraphs and line breaks) so that it carries at most
// a class attribute.
// All other bytes of b are copied through unchanged.
// The result is appended to dst.
func StripAttributes(dst []byte, b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return dst
		case html.StartTagToken, html.SelfClosingTagToken:
			raw := tok.Raw()
			tagBytes, hasAttr := tok.TagName()
			if !hasAttr || isStructuralTag(atom.Lookup(tagBytes)) {
				dst = append(dst, raw...)
				continue
			}
			// TagName and TagAttr reuse the tokenizer's buffer.
			tag := string(tagBytes)
			var class []byte
			hasClass := false
			for {
				k, v, more := tok.TagAttr()
				if string(k) == "class" && !hasClass {
					class = bytes.Clone(v)
					hasClass = true
				}
				if !more {
					break
				}
			}
			dst = append(dst, '<')
			dst = append(dst, tag...)
			if hasClass {
				dst = append(dst, ` class="`...)
				dst = append(dst, AttrEscaper.Replace(class)...)
				dst = append(dst, '"')
			}
			if tt == html.SelfClosingTagToken {
				dst = append(dst, '/')
			}
			dst = append(dst, '>')
		default:
			dst = append(dst, tok.Raw()...)
		}
	}
}

func isStructuralTag(a atom.Atom) bool {
	return a == atom.P || a == atom.Br
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeHTML strips insignificant output differences from HTML:
// runs of whitespace collapse to a single space,
// attributes are sorted by name,
// self-closing tags lose their slash,
// and text is re-escaped consistently.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := whitespaceRE.ReplaceAll(tok.Text(), []byte(" "))
			output = append(output, TextEscaper.Replace(data)...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			output = append(output, "</"...)
			output = append(output, tagBytes...)
			output = append(output, ">"...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					if attr.value != "" {
						output = append(output, `="`...)
						output = append(output, html.EscapeString(attr.value)...)
						output = append(output, `"`...)
					}
				}
			}
			output = append(output, ">"...)
		case html.CommentToken:
			output = append(output, tok.Raw()...)
		}
	}
}
