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
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"
)

type jsonDocument struct {
	Paragraphs [][]jsonInline `json:"paragraphs"`
}

type jsonInline struct {
	Text    *string         `json:"text,omitempty"`
	Break   bool            `json:"break,omitempty"`
	Hashtag *string         `json:"hashtag,omitempty"`
	Meta    []jsonAttribute `json:"meta,omitempty"`
}

type jsonAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MarshalJSON encodes the document as an object
// with a "paragraphs" array of inline arrays.
// Each inline is one of {"text": "..."}, {"break": true},
// or {"hashtag": "#...", "meta": [{"key": "...", "value": "..."}]}.
func (doc *Document) MarshalJSON() ([]byte, error) {
	jd := jsonDocument{Paragraphs: make([][]jsonInline, 0, doc.Len())}
	for _, p := range doc.paragraphs {
		jp := make([]jsonInline, 0, len(p))
		for _, in := range p {
			text := in.Text()
			switch in.Kind() {
			case TextKind:
				jp = append(jp, jsonInline{Text: &text})
			case LineBreakKind:
				jp = append(jp, jsonInline{Break: true})
			case HashtagKind:
				ji := jsonInline{Hashtag: &text}
				for _, attr := range in.meta {
					ji.Meta = append(ji.Meta, jsonAttribute{Key: attr.Key, Value: attr.Val})
				}
				jp = append(jp, ji)
			default:
				return nil, fmt.Errorf("marshal post document: paragraph contains invalid inline")
			}
		}
		jd.Paragraphs = append(jd.Paragraphs, jp)
	}
	return json.Marshal(jd)
}

// UnmarshalJSON decodes a document in the format produced by MarshalJSON,
// replacing the document's contents.
func (doc *Document) UnmarshalJSON(data []byte) error {
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return fmt.Errorf("unmarshal post document: %w", err)
	}
	paragraphs := make([]Paragraph, 0, len(jd.Paragraphs))
	for i, jp := range jd.Paragraphs {
		p := make(Paragraph, 0, len(jp))
		for j, ji := range jp {
			in, err := ji.toInline()
			if err != nil {
				return fmt.Errorf("unmarshal post document: paragraphs[%d][%d]: %w", i, j, err)
			}
			p = append(p, in)
		}
		paragraphs = append(paragraphs, p)
	}
	doc.paragraphs = paragraphs
	return nil
}

func (ji jsonInline) toInline() (Inline, error) {
	n := 0
	if ji.Text != nil {
		n++
	}
	if ji.Break {
		n++
	}
	if ji.Hashtag != nil {
		n++
	}
	if n != 1 {
		return Inline{}, fmt.Errorf("inline must have exactly one of text, break, or hashtag")
	}
	switch {
	case ji.Text != nil:
		return Text(*ji.Text), nil
	case ji.Break:
		return LineBreak(), nil
	default:
		if len(*ji.Hashtag) < 2 || (*ji.Hashtag)[0] != '#' {
			return Inline{}, fmt.Errorf("hashtag %q must be '#' followed by a name", *ji.Hashtag)
		}
		meta := make([]html.Attribute, 0, len(ji.Meta))
		for _, attr := range ji.Meta {
			meta = append(meta, html.Attribute{Key: attr.Key, Val: attr.Value})
		}
		return Hashtag(*ji.Hashtag, meta...), nil
	}
}
