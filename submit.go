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

// Submission is the body a client sends when creating or updating a post.
type Submission struct {
	// Content is the canonical markup of the post,
	// or empty if the post has no content.
	Content string `json:"content"`
	// Hashtags lists the raw hashtag tokens of the post in document order.
	Hashtags []string `json:"hashtags"`
}

// NewSubmission encodes doc and extracts its hashtags.
// A blank document (see [Document.IsBlank])
// yields empty content and no hashtags.
func NewSubmission(doc *Document) Submission {
	if doc.IsBlank() {
		return Submission{Hashtags: []string{}}
	}
	tags := ExtractHashtags(doc)
	if tags == nil {
		tags = []string{}
	}
	return Submission{
		Content:  Encode(doc),
		Hashtags: tags,
	}
}
