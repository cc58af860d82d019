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

package postcontent_test

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/net/html"
	"zombiezen.com/go/postcontent"
)

func Example() {
	// Build a document the way an editor would.
	doc := postcontent.NewDocument(postcontent.Paragraph{
		postcontent.Text("Off to "),
		postcontent.Hashtag("#travel", html.Attribute{Key: "data-id", Val: "42"}),
		postcontent.Text(" tomorrow!"),
		postcontent.LineBreak(),
		postcontent.LineBreak(),
		postcontent.LineBreak(),
		postcontent.Text("See you soon."),
	})

	// Encode to canonical markup for storage.
	markup := postcontent.Encode(doc)
	fmt.Println(markup)

	// Decode stored markup and render it for display.
	postcontent.RenderHTML(os.Stdout, postcontent.Decode(markup))
	// Output:
	// <p>Off to <span class="hashtag">#travel</span> tomorrow!<br><br>See you soon.</p>
	// <p>Off to <a class="hashtag" href="/hashtag/travel">#travel</a> tomorrow!</p>
	// <p>See you soon.</p>
}

func ExampleDecode() {
	paragraphs := postcontent.Decode(`<p>a<br>b<br><br><span class="hashtag">#c</span></p>`)
	for i, p := range paragraphs {
		fmt.Printf("paragraph %d:\n", i)
		for _, in := range p {
			switch in.Kind {
			case postcontent.TextKind:
				fmt.Printf("  text %q\n", in.Text)
			case postcontent.LineBreakKind:
				fmt.Println("  line break")
			case postcontent.HashtagKind:
				fmt.Printf("  hashtag %q -> %q\n", in.Text, in.Target)
			}
		}
	}
	// Output:
	// paragraph 0:
	//   text "a"
	//   line break
	//   text "b"
	// paragraph 1:
	//   hashtag "#c" -> "c"
}

func ExampleNewSubmission() {
	doc := postcontent.NewDocument(postcontent.Paragraph{
		postcontent.Text("Hello "),
		postcontent.Hashtag("#gophers"),
	})
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.Encode(postcontent.NewSubmission(doc))
	// Output:
	// {"content":"<p>Hello <span class=\"hashtag\">#gophers</span></p>","hashtags":["#gophers"]}
}

func ExampleUniqueHashtags() {
	doc := postcontent.Load(`<p><span class="hashtag">#Go</span> and <span class="hashtag">#go</span>` +
		` and <span class="hashtag">#rust</span></p>`)
	fmt.Println(postcontent.UniqueHashtags(postcontent.ExtractHashtags(doc)))
	// Output:
	// [#Go #rust]
}
