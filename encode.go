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
	"regexp"

	"golang.org/x/net/html/atom"
	"zombiezen.com/go/postcontent/internal/normhtml"
)

// HashtagClass is the class attribute value
// that marks an annotation span as a hashtag in canonical markup.
const HashtagClass = "hashtag"

// Encode serializes a document into canonical markup.
// The same document always produces the same string.
// A nil document encodes to the empty string.
//
// Encode does not special-case blank documents (see [Document.IsBlank]):
// whether they are stored as absent content is up to the caller.
// Hashtag tokens with an empty raw value produce unspecified output.
func Encode(doc *Document) string {
	return string(AppendMarkup(nil, doc))
}

// AppendMarkup appends the canonical markup of doc to dst
// and returns the resulting byte slice.
func AppendMarkup(dst []byte, doc *Document) []byte {
	if doc.Len() == 0 {
		return dst
	}
	var buf []byte
	for _, p := range doc.paragraphs {
		buf = appendParagraphMarkup(buf, p)
	}
	buf = collapseBreaks(buf)
	buf = trimBoundaryBreaks(buf)
	return normhtml.StripAttributes(dst, buf)
}

func appendParagraphMarkup(dst []byte, p Paragraph) []byte {
	dst = appendOpenTag(dst, atom.P)
	for _, in := range p {
		switch in.Kind() {
		case TextKind:
			dst = append(dst, normhtml.TextEscaper.Replace([]byte(in.Text()))...)
		case LineBreakKind:
			dst = appendOpenTag(dst, atom.Br)
		case HashtagKind:
			dst = append(dst, '<')
			dst = append(dst, atom.Span.String()...)
			dst = appendAttr(dst, "class", HashtagClass)
			for _, attr := range in.meta {
				if attr.Key == "class" {
					continue
				}
				dst = appendAttr(dst, attr.Key, attr.Val)
			}
			dst = append(dst, '>')
			dst = append(dst, normhtml.TextEscaper.Replace([]byte(in.Text()))...)
			dst = appendCloseTag(dst, atom.Span)
		}
	}
	return appendCloseTag(dst, atom.P)
}

func appendOpenTag(dst []byte, name atom.Atom) []byte {
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	return append(dst, '>')
}

func appendCloseTag(dst []byte, name atom.Atom) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, name.String()...)
	return append(dst, '>')
}

func appendAttr(dst []byte, key, value string) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, `="`...)
	dst = append(dst, normhtml.AttrEscaper.Replace([]byte(value))...)
	return append(dst, '"')
}

var (
	breakRunRE      = regexp.MustCompile(`<br\s*/?>(?:\s*<br\s*/?>){2,}`)
	leadingBreakRE  = regexp.MustCompile(`(<p(?:\s[^>]*)?>)<br\s*/?>(?:\s*<br\s*/?>)*`)
	trailingBreakRE = regexp.MustCompile(`<br\s*/?>(?:\s*<br\s*/?>)*</p>`)
)

// collapseBreaks replaces every run of three or more break markers
// (possibly separated by whitespace) with exactly two.
func collapseBreaks(b []byte) []byte {
	return breakRunRE.ReplaceAllLiteral(b, []byte("<br><br>"))
}

// trimBoundaryBreaks removes break markers
// directly after a paragraph's opening tag
// or directly before its closing tag.
// It assumes collapseBreaks has already run.
func trimBoundaryBreaks(b []byte) []byte {
	b = leadingBreakRE.ReplaceAll(b, []byte("$1"))
	return trailingBreakRE.ReplaceAllLiteral(b, []byte("</p>"))
}
