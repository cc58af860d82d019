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

// Package golden provides a corpus of post content examples
// shared by tests across the module.
package golden

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

// Example is a single entry in the corpus.
type Example struct {
	Name string `json:"name"`
	// Document is the JSON form of an editor document.
	// It is empty for examples that only exercise decoding.
	Document json.RawMessage `json:"document,omitempty"`
	// Markup is the canonical markup of Document,
	// or arbitrary stored markup if Document is empty.
	Markup string `json:"markup"`
	// Render is the decoded form of Markup.
	// Each inline is written as "text:...", "br", or "tag:#...".
	Render [][]string `json:"render"`
}

// HasDocument reports whether the example has an editor document.
func (ex Example) HasDocument() bool {
	return len(ex.Document) > 0
}

//go:embed examples.json
var examplesData []byte

// Load returns the examples in the corpus.
func Load() ([]Example, error) {
	var examples []Example
	if err := json.Unmarshal(examplesData, &examples); err != nil {
		return nil, fmt.Errorf("load golden examples: %w", err)
	}
	return examples, nil
}

// Inline is a parsed inline of [Example.Render].
type Inline struct {
	Break   bool
	Text    string
	Hashtag string
}

// ParseInline parses an inline of [Example.Render].
func ParseInline(s string) (Inline, error) {
	switch {
	case s == "br":
		return Inline{Break: true}, nil
	case strings.HasPrefix(s, "text:"):
		return Inline{Text: strings.TrimPrefix(s, "text:")}, nil
	case strings.HasPrefix(s, "tag:"):
		return Inline{Hashtag: strings.TrimPrefix(s, "tag:")}, nil
	default:
		return Inline{}, fmt.Errorf("parse golden inline %q: unknown form", s)
	}
}
