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

// Package format writes post content as plain text.
package format

import (
	"io"

	"zombiezen.com/go/postcontent"
)

// Format writes the given paragraphs as plain text to the given writer.
// Paragraphs are separated by a blank line,
// line breaks become newlines,
// and hashtags are written as their display text.
func Format(w io.Writer, paragraphs []postcontent.RenderParagraph) error {
	ww := &errWriter{w: w}
	for _, p := range paragraphs {
		if ww.hasWritten {
			ww.WriteString("\n")
		}
		for _, in := range p {
			switch in.Kind {
			case postcontent.TextKind, postcontent.HashtagKind:
				ww.WriteString(in.Text)
			case postcontent.LineBreakKind:
				ww.WriteString("\n")
			}
		}
		ww.WriteString("\n")
	}
	return ww.err
}

// FormatDocument writes an editor document as plain text to the given writer
// using the same conventions as [Format].
// Unlike Format, the document's line breaks are written as-is
// without grouping.
func FormatDocument(w io.Writer, doc *postcontent.Document) error {
	ww := &errWriter{w: w}
	postcontent.Walk(doc.AsNode(), &postcontent.WalkOptions{
		Pre: func(c *postcontent.Cursor) bool {
			n := c.Node()
			if n.IsParagraph() {
				if ww.hasWritten {
					ww.WriteString("\n")
				}
				return true
			}
			if in, ok := n.Inline(); ok {
				switch in.Kind() {
				case postcontent.TextKind, postcontent.HashtagKind:
					ww.WriteString(in.Text())
				case postcontent.LineBreakKind:
					ww.WriteString("\n")
				}
				return false
			}
			return true
		},
		Post: func(c *postcontent.Cursor) bool {
			if c.Node().IsParagraph() {
				ww.WriteString("\n")
			}
			return ww.err == nil
		},
	})
	return ww.err
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
