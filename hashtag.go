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

import "golang.org/x/text/cases"

// ExtractHashtags returns the raw value (including the leading '#')
// of every hashtag token in doc, in document order.
// Duplicates are kept; see [UniqueHashtags].
func ExtractHashtags(doc *Document) []string {
	var tags []string
	Walk(doc.AsNode(), &WalkOptions{
		Pre: func(c *Cursor) bool {
			if in, ok := c.Node().Inline(); ok && in.Kind() == HashtagKind {
				tags = append(tags, in.Text())
			}
			return true
		},
	})
	return tags
}

// RenderHashtags returns the display text of every hashtag link
// in the given paragraphs, in order.
// Duplicates are kept.
func RenderHashtags(paragraphs []RenderParagraph) []string {
	var tags []string
	for _, p := range paragraphs {
		for _, in := range p {
			if in.Kind == HashtagKind {
				tags = append(tags, in.Text)
			}
		}
	}
	return tags
}

// UniqueHashtags returns tags with later duplicates removed.
// Hashtags are compared by their Unicode case folding,
// so "#Go" and "#go" are the same hashtag.
// The first occurrence's spelling is kept.
func UniqueHashtags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		key := fold.String(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tag)
	}
	return unique
}
