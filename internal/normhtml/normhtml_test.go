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

package normhtml

import "testing"

func TestStripAttributes(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"", ""},
		{"<p>a</p>", "<p>a</p>"},
		{`<p class="x">a<br></p>`, `<p class="x">a<br></p>`},
		{`<span class="hashtag">#a</span>`, `<span class="hashtag">#a</span>`},
		{`<span class="hashtag" data-id="7">#a</span>`, `<span class="hashtag">#a</span>`},
		{`<span data-id="7" class="hashtag" contenteditable="false">#a</span>`, `<span class="hashtag">#a</span>`},
		{`<span data-id="7">x</span>`, `<span>x</span>`},
		{`<em style="color: red">x</em>`, `<em>x</em>`},
		{`<span class='a&amp;"b'>x</span>`, `<span class="a&amp;&quot;b">x</span>`},
		{`<img src="x.png" class="emoji"/>`, `<img class="emoji"/>`},
		{"<p>a &amp; b &lt; c</p>", "<p>a &amp; b &lt; c</p>"},
		{"<p>a<!-- hi --></p>", "<p>a<!-- hi --></p>"},
	}
	for _, test := range tests {
		if got := StripAttributes(nil, []byte(test.b)); string(got) != test.want {
			t.Errorf("StripAttributes(nil, %q) = %q; want %q", test.b, got, test.want)
		}
	}
}

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a  \t b</p>", "<p>a b</p>"},
		{"<p>a  \t\nb</p>", "<p>a b</p>"},
		{"<br />", "<br>"},
		{`<a title="bar" HREF="foo">x</a>`, `<a href="foo" title="bar">x</a>`},
		{"&amp;&gt;&lt;", "&amp;&gt;&lt;"},
	}
	for _, test := range tests {
		if got := NormalizeHTML([]byte(test.b)); string(got) != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}
