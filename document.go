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

// Package postcontent converts rich text post bodies
// between an editable document model and canonical markup.
//
// The editor side builds a [Document] out of paragraphs of text runs,
// line breaks, and hashtag tokens.
// [Encode] turns a document into the canonical markup string that is stored,
// and [Decode] turns stored markup back into paragraphs
// of [RenderInline] nodes suitable for display.
package postcontent

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// InlineKind is an enumeration of the inline node types
// used by both [Inline] and [RenderInline].
type InlineKind uint16

const (
	// TextKind is a run of plain text.
	TextKind InlineKind = 1 + iota
	// LineBreakKind is an explicit line break within a paragraph.
	LineBreakKind
	// HashtagKind is an atomic hashtag token.
	// Its text always begins with '#'.
	HashtagKind
)

// String returns the name of the kind.
func (kind InlineKind) String() string {
	switch kind {
	case TextKind:
		return "Text"
	case LineBreakKind:
		return "LineBreak"
	case HashtagKind:
		return "Hashtag"
	default:
		return "InlineKind(" + strconv.Itoa(int(kind)) + ")"
	}
}

// Inline is a single element of a [Paragraph]:
// a text run, a line break, or a hashtag token.
// The zero value is not a valid inline.
// Inlines are values: editing a document replaces them wholesale.
type Inline struct {
	kind InlineKind
	text string
	meta []html.Attribute
}

// Text returns a text run inline.
func Text(s string) Inline {
	return Inline{kind: TextKind, text: s}
}

// LineBreak returns a line break inline.
func LineBreak() Inline {
	return Inline{kind: LineBreakKind}
}

// Hashtag returns a hashtag token inline.
// raw must begin with '#' and be followed by a non-empty name
// without whitespace.
// The editor is responsible for producing well-formed tokens;
// Hashtag does not validate raw.
//
// meta holds any extra attributes the editor attaches to the token.
// They are kept in the document but never reach the canonical markup.
func Hashtag(raw string, meta ...html.Attribute) Inline {
	return Inline{
		kind: HashtagKind,
		text: raw,
		meta: slices.Clone(meta),
	}
}

// Kind returns the type of inline node.
func (in Inline) Kind() InlineKind {
	return in.kind
}

// Text returns the text of a text run or the raw token of a hashtag
// (including the leading '#').
// It returns the empty string for line breaks.
func (in Inline) Text() string {
	return in.text
}

// Metadata returns a copy of the extra attributes carried by a hashtag token.
func (in Inline) Metadata() []html.Attribute {
	return slices.Clone(in.meta)
}

func (in Inline) clone() Inline {
	in.meta = slices.Clone(in.meta)
	return in
}

// A Paragraph is an ordered sequence of inlines.
// An empty paragraph is valid and renders as an empty line.
type Paragraph []Inline

func (p Paragraph) clone() Paragraph {
	if p == nil {
		return nil
	}
	clone := make(Paragraph, len(p))
	for i, in := range p {
		clone[i] = in.clone()
	}
	return clone
}

// A Document is the in-memory model of a post body being edited.
// It is owned by a single editing session.
//
// Methods that take indices panic if the indices are out of range,
// like slice indexing.
type Document struct {
	paragraphs []Paragraph
}

// NewDocument returns a document containing copies of the given paragraphs.
func NewDocument(paragraphs ...Paragraph) *Document {
	doc := new(Document)
	for _, p := range paragraphs {
		doc.paragraphs = append(doc.paragraphs, p.clone())
	}
	return doc
}

// Load rebuilds a document from canonical markup,
// as when an existing post is opened for editing.
// Hashtag links become hashtag tokens.
func Load(markup string) *Document {
	doc := new(Document)
	for _, rp := range Decode(markup) {
		p := make(Paragraph, 0, len(rp))
		for _, ri := range rp {
			switch ri.Kind {
			case TextKind:
				p = append(p, Text(ri.Text))
			case LineBreakKind:
				p = append(p, LineBreak())
			case HashtagKind:
				p = append(p, Hashtag(ri.Text))
			}
		}
		doc.paragraphs = append(doc.paragraphs, p)
	}
	return doc
}

// Len returns the number of paragraphs in the document.
// Calling Len on a nil document returns 0.
func (doc *Document) Len() int {
	if doc == nil {
		return 0
	}
	return len(doc.paragraphs)
}

// Paragraph returns a copy of the i'th paragraph.
func (doc *Document) Paragraph(i int) Paragraph {
	return doc.paragraphs[i].clone()
}

// Paragraphs returns a copy of every paragraph in the document.
func (doc *Document) Paragraphs() []Paragraph {
	if doc.Len() == 0 {
		return nil
	}
	ps := make([]Paragraph, len(doc.paragraphs))
	for i, p := range doc.paragraphs {
		ps[i] = p.clone()
	}
	return ps
}

// AppendParagraph adds a copy of p to the end of the document.
func (doc *Document) AppendParagraph(p Paragraph) {
	doc.paragraphs = append(doc.paragraphs, p.clone())
}

// InsertParagraph inserts a copy of p so that it becomes the i'th paragraph.
func (doc *Document) InsertParagraph(i int, p Paragraph) {
	doc.paragraphs = slices.Insert(doc.paragraphs, i, p.clone())
}

// ReplaceParagraph replaces the i'th paragraph with a copy of p.
func (doc *Document) ReplaceParagraph(i int, p Paragraph) {
	doc.paragraphs[i] = p.clone()
}

// RemoveParagraph deletes the i'th paragraph.
func (doc *Document) RemoveParagraph(i int) {
	doc.paragraphs = slices.Delete(doc.paragraphs, i, i+1)
}

// InsertInline inserts in so that it becomes
// the j'th inline of the i'th paragraph.
func (doc *Document) InsertInline(i, j int, in Inline) {
	p := doc.paragraphs[i].clone()
	doc.paragraphs[i] = slices.Insert(p, j, in.clone())
}

// ReplaceInline replaces the j'th inline of the i'th paragraph.
func (doc *Document) ReplaceInline(i, j int, in Inline) {
	p := doc.paragraphs[i].clone()
	p[j] = in.clone()
	doc.paragraphs[i] = p
}

// RemoveInline deletes the j'th inline of the i'th paragraph.
func (doc *Document) RemoveInline(i, j int) {
	p := doc.paragraphs[i].clone()
	doc.paragraphs[i] = slices.Delete(p, j, j+1)
}

// SplitParagraph splits the i'th paragraph before its j'th inline.
// Inlines from j onward move into a new paragraph placed after it.
// j may equal the paragraph's length, which appends an empty paragraph.
func (doc *Document) SplitParagraph(i, j int) {
	p := doc.paragraphs[i]
	head := p[:j:j].clone()
	tail := p[j:].clone()
	if tail == nil {
		tail = Paragraph{}
	}
	doc.paragraphs[i] = head
	doc.paragraphs = slices.Insert(doc.paragraphs, i+1, tail)
}

// MergeParagraphs appends the inlines of paragraph i+1 to paragraph i
// and removes paragraph i+1.
func (doc *Document) MergeParagraphs(i int) {
	merged := append(doc.paragraphs[i].clone(), doc.paragraphs[i+1].clone()...)
	doc.paragraphs[i] = merged
	doc.paragraphs = slices.Delete(doc.paragraphs, i+1, i+2)
}

// Reset removes all paragraphs from the document.
func (doc *Document) Reset() {
	doc.paragraphs = nil
}

// Clone returns a deep copy of the document.
func (doc *Document) Clone() *Document {
	if doc == nil {
		return nil
	}
	return &Document{paragraphs: doc.Paragraphs()}
}

// IsBlank reports whether the document has no hashtags
// and no text other than whitespace.
// Callers typically submit blank documents as absent content
// rather than encoding them.
func (doc *Document) IsBlank() bool {
	if doc == nil {
		return true
	}
	for _, p := range doc.paragraphs {
		for _, in := range p {
			switch in.Kind() {
			case HashtagKind:
				return false
			case TextKind:
				if strings.IndexFunc(in.Text(), isNotSpace) >= 0 {
					return false
				}
			}
		}
	}
	return true
}

func isNotSpace(c rune) bool {
	return !unicode.IsSpace(c)
}
