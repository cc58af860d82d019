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

// Package textlayout lays out decoded post content
// on a grid of fixed-width terminal cells.
package textlayout

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"zombiezen.com/go/postcontent"
)

// Measurer lays out paragraphs into lines of at most Width cells.
// It implements [truncate.Measurer].
//
// Each paragraph starts on a new line and line breaks start new lines.
// Text wraps at whitespace where possible
// and words longer than a line are split between grapheme clusters.
// Hashtags are never split.
//
// [truncate.Measurer]: zombiezen.com/go/postcontent/truncate#Measurer
type Measurer struct {
	// Width is the maximum number of cells in a line.
	// If Width is zero or negative, lines are never wrapped.
	Width int
	// LineHeight is the height of a single line.
	// If zero, a line has a height of 1.
	LineHeight float64
}

// Measure returns the height of the laid out paragraphs.
// If lineClamp is positive, at most lineClamp lines are counted.
func (m Measurer) Measure(paragraphs []postcontent.RenderParagraph, lineClamp int) (float64, error) {
	n := len(m.Layout(paragraphs, lineClamp))
	lineHeight := m.LineHeight
	if lineHeight == 0 {
		lineHeight = 1
	}
	return float64(n) * lineHeight, nil
}

// Layout returns the visual lines of the paragraphs.
// Trailing whitespace is removed from every line
// and whitespace inside text is displayed as a single space per cluster.
// If lineClamp is positive, only the first lineClamp lines are returned.
func (m Measurer) Layout(paragraphs []postcontent.RenderParagraph, lineClamp int) []string {
	var lines []string
	for _, p := range paragraphs {
		var units []unit
		flushLine := func() {
			lines = m.wrap(lines, units)
			units = units[:0]
		}
		for _, in := range p {
			switch in.Kind {
			case postcontent.TextKind:
				units = appendTextUnits(units, in.Text)
			case postcontent.HashtagKind:
				units = append(units, unit{
					text:  in.Text,
					width: uniseg.StringWidth(in.Text),
				})
			case postcontent.LineBreakKind:
				flushLine()
			}
		}
		flushLine()
		if lineClamp > 0 && len(lines) >= lineClamp {
			return lines[:lineClamp]
		}
	}
	return lines
}

type unit struct {
	text         string
	width        int
	isWhitespace bool
}

func appendTextUnits(dst []unit, text string) []unit {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if isSpace(cluster) {
			dst = append(dst, unit{text: " ", width: 1, isWhitespace: true})
			continue
		}
		dst = append(dst, unit{
			text:  cluster,
			width: uniseg.StringWidth(cluster),
		})
	}
	return dst
}

// wrap appends the lines of a single unbroken run of units to dst.
// An empty run produces a single empty line.
func (m Measurer) wrap(dst []string, units []unit) []string {
	if m.Width <= 0 || len(units) == 0 {
		return append(dst, joinUnits(units))
	}
	for start := 0; start < len(units); {
		if start > 0 {
			for start < len(units) && units[start].isWhitespace {
				start++
			}
			if start >= len(units) {
				break
			}
		}

		used := 0
		overflow := start
		for overflow < len(units) {
			w := units[overflow].width
			if used > 0 && used+w > m.Width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		// A line followed by whitespace already ends on a word boundary.
		if overflow < len(units) && !units[overflow].isWhitespace {
			if br, ok := findWordBreak(units, start, overflow); ok {
				end = br
			}
		}
		dst = append(dst, joinUnits(units[start:end]))
		start = end
	}
	return dst
}

// findWordBreak returns the index just past the last run of whitespace
// in units[start:overflow].
func findWordBreak(units []unit, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

func joinUnits(units []unit) string {
	sb := new(strings.Builder)
	for _, u := range units {
		sb.WriteString(u.text)
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

func isSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return cluster != ""
}
