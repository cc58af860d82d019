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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGroupParagraphs(t *testing.T) {
	var (
		br = RenderInline{Kind: LineBreakKind}
		a  = RenderInline{Kind: TextKind, Text: "a"}
		b  = RenderInline{Kind: TextKind, Text: "b"}
		c  = RenderInline{Kind: TextKind, Text: "c"}
		x  = RenderInline{Kind: HashtagKind, Text: "#x", Target: "x"}
	)
	tests := []struct {
		name string
		flat []RenderInline
		want []RenderParagraph
	}{
		{
			name: "Empty",
			flat: nil,
			want: []RenderParagraph{{}},
		},
		{
			name: "SplitPoint",
			flat: []RenderInline{a, br, br, b},
			want: []RenderParagraph{{a}, {b}},
		},
		{
			name: "IsolatedBreak",
			flat: []RenderInline{a, br, b},
			want: []RenderParagraph{{a, br, b}},
		},
		{
			name: "LongRun",
			flat: []RenderInline{a, br, br, br, br, b},
			want: []RenderParagraph{{a}, {b}},
		},
		{
			name: "Mixed",
			flat: []RenderInline{a, br, b, br, br, c},
			want: []RenderParagraph{{a, br, b}, {c}},
		},
		{
			name: "OnlyBreak",
			flat: []RenderInline{br},
			want: []RenderParagraph{{br}},
		},
		{
			name: "OnlyBreaks",
			flat: []RenderInline{br, br},
			want: []RenderParagraph{{}},
		},
		{
			name: "FirstPosition",
			flat: []RenderInline{br, a},
			want: []RenderParagraph{{br, a}},
		},
		{
			name: "LastPosition",
			flat: []RenderInline{a, br},
			want: []RenderParagraph{{a, br}},
		},
		{
			name: "LeadingSplitPoint",
			flat: []RenderInline{br, br, a},
			want: []RenderParagraph{{a}},
		},
		{
			name: "TrailingSplitPoint",
			flat: []RenderInline{a, br, br},
			want: []RenderParagraph{{a}, {}},
		},
		{
			name: "MergeText",
			flat: []RenderInline{a, b, x, c},
			want: []RenderParagraph{{
				{Kind: TextKind, Text: "ab"},
				x,
				c,
			}},
		},
		{
			name: "Hashtags",
			flat: []RenderInline{x, br, br, x, br, x},
			want: []RenderParagraph{{x}, {x, br, x}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := groupParagraphs(nil, test.flat)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("groupParagraphs(nil, ...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupParagraphsDoesNotModifyInput(t *testing.T) {
	flat := []RenderInline{
		{Kind: TextKind, Text: "a"},
		{Kind: TextKind, Text: "b"},
	}
	groupParagraphs(nil, flat)
	if flat[0].Text != "a" {
		t.Errorf("flat[0].Text = %q after grouping; want %q", flat[0].Text, "a")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []RenderParagraph
	}{
		{
			name:   "Empty",
			markup: "",
			want:   nil,
		},
		{
			name:   "HashtagTarget",
			markup: `<p><span class="hashtag">#café</span></p>`,
			want: []RenderParagraph{{
				{Kind: HashtagKind, Text: "#café", Target: "café"},
			}},
		},
		{
			name:   "HashtagWithoutSign",
			markup: `<p><span class="hashtag">news</span></p>`,
			want: []RenderParagraph{{
				{Kind: HashtagKind, Text: "news", Target: "news"},
			}},
		},
		{
			name:   "NestedHashtagContent",
			markup: `<p><span class="hashtag"><b>#a</b>b</span></p>`,
			want: []RenderParagraph{{
				{Kind: HashtagKind, Text: "#ab", Target: "ab"},
			}},
		},
		{
			name:   "BreakInsideUnknownElement",
			markup: "<p><em>a<br><br>b</em></p>",
			want: []RenderParagraph{
				{{Kind: TextKind, Text: "a"}},
				{{Kind: TextKind, Text: "b"}},
			},
		},
		{
			name:   "SelfClosingBreaks",
			markup: "<p>a<br/><br />b</p>",
			want: []RenderParagraph{
				{{Kind: TextKind, Text: "a"}},
				{{Kind: TextKind, Text: "b"}},
			},
		},
		{
			name:   "TrailingBreaks",
			markup: "<p>a<br><br></p>",
			want: []RenderParagraph{
				{{Kind: TextKind, Text: "a"}},
				{},
			},
		},
		{
			name:   "Comment",
			markup: "<p>a<!-- note -->b</p>",
			want: []RenderParagraph{
				{{Kind: TextKind, Text: "ab"}},
			},
		},
		{
			name:   "StrayHashtag",
			markup: `<span class="hashtag">#x</span><p>a</p>`,
			want: []RenderParagraph{
				{{Kind: HashtagKind, Text: "#x", Target: "x"}},
				{{Kind: TextKind, Text: "a"}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Decode(test.markup)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Decode(%q) (-want +got):\n%s", test.markup, diff)
			}
		})
	}
}
