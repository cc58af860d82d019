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
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/atom"
)

// DefaultHashtagPath is the path prefix used for hashtag links
// when [HTMLRenderer.HashtagPath] is empty.
const DefaultHashtagPath = "/hashtag/"

// An HTMLRenderer converts decoded paragraphs into display HTML.
// The output only contains paragraphs, line breaks, and hashtag links,
// and all text is escaped,
// so it is safe to embed regardless of the markup's origin.
type HTMLRenderer struct {
	// HashtagPath is the path prefix of hashtag links.
	// The hashtag's target is path-escaped and appended to it.
	// If empty, DefaultHashtagPath is used.
	HashtagPath string
	// LinkClass is the class attribute of hashtag links.
	// If empty, HashtagClass is used.
	LinkClass string
}

// RenderHTML writes the given paragraphs to w as HTML
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, paragraphs []RenderParagraph) error {
	return new(HTMLRenderer).Render(w, paragraphs)
}

// Render writes the given paragraphs to w as HTML.
// It will return the first error encountered, if any.
func (r *HTMLRenderer) Render(w io.Writer, paragraphs []RenderParagraph) error {
	var buf []byte
	for i, p := range paragraphs {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = r.AppendParagraph(buf, p)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render post content to html: %w", err)
		}
	}
	return nil
}

// AppendParagraph appends the rendered HTML of a paragraph to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendParagraph(dst []byte, p RenderParagraph) []byte {
	state := &renderState{
		HTMLRenderer: r,
		dst:          dst,
	}
	state.openTag(atom.P)
	for _, in := range p {
		state.inline(in)
	}
	state.closeTag(atom.P)
	return state.dst
}

type renderState struct {
	*HTMLRenderer
	dst []byte
}

func (r *renderState) openTagAttr(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
}

func (r *renderState) openTag(name atom.Atom) {
	r.openTagAttr(name)
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(name atom.Atom) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) inline(in RenderInline) {
	switch in.Kind {
	case TextKind:
		r.dst = escapeHTML(r.dst, in.Text)
	case LineBreakKind:
		r.openTag(atom.Br)
	case HashtagKind:
		path := r.HashtagPath
		if path == "" {
			path = DefaultHashtagPath
		}
		class := r.LinkClass
		if class == "" {
			class = HashtagClass
		}
		r.openTagAttr(atom.A)
		r.dst = append(r.dst, ` class="`...)
		r.dst = escapeHTML(r.dst, class)
		r.dst = append(r.dst, `" href="`...)
		r.dst = escapeHTML(r.dst, NormalizeURI(path)+url.PathEscape(in.Target))
		r.dst = append(r.dst, `">`...)
		r.dst = escapeHTML(r.dst, in.Text)
		r.closeTag(atom.A)
	}
}

// escapeHTML appends the HTML-escaped version of a string to a byte slice.
func escapeHTML(dst []byte, src string) []byte {
	verbatimStart := 0
	for i := 0; i < len(src); i++ {
		var esc string
		switch src[i] {
		case '&':
			esc = "&amp;"
		case '\'':
			// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		dst = append(dst, src[verbatimStart:i]...)
		dst = append(dst, esc...)
		verbatimStart = i + 1
	}
	return append(dst, src[verbatimStart:]...)
}

// NormalizeURI percent-encodes any characters in a string
// that are not reserved or unreserved URI characters.
// Existing percent-encoded octets are kept as-is.
func NormalizeURI(s string) string {
	// RFC 3986 reserved and unreserved characters.
	const safeSet = `;/?:@&=+$,-_.!~*'()#`

	sb := new(strings.Builder)
	sb.Grow(len(s))
	skip := 0
	var buf [utf8.UTFMax]byte
	for i, c := range s {
		if skip > 0 {
			skip--
			sb.WriteRune(c)
			continue
		}
		switch {
		case c == '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				skip = 2
				sb.WriteByte('%')
			} else {
				sb.WriteString("%25")
			}
		case (c < 0x80 && (isASCIILetter(byte(c)) || isASCIIDigit(byte(c)))) || strings.ContainsRune(safeSet, c):
			sb.WriteRune(c)
		default:
			n := utf8.EncodeRune(buf[:], c)
			for _, b := range buf[:n] {
				sb.WriteByte('%')
				sb.WriteByte(urlHexDigit(b >> 4))
				sb.WriteByte(urlHexDigit(b & 0x0f))
			}
		}
	}
	return sb.String()
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' || isASCIIDigit(c)
}

func urlHexDigit(x byte) byte {
	switch {
	case x < 0xa:
		return '0' + x
	case x < 0x10:
		return 'A' + x - 0xa
	default:
		panic("out of bounds")
	}
}
