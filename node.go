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

import "unsafe"

const (
	nodeTypeDocument = 1 + iota
	nodeTypeParagraph
	nodeTypeInline
)

// Node is a pointer to a [Document], one of its paragraphs, or an [Inline].
// Nodes can be compared for equality using the == operator.
type Node struct {
	ptr unsafe.Pointer
	typ uint8
}

// AsNode converts the document to a [Node] pointer.
func (doc *Document) AsNode() Node {
	if doc == nil {
		return Node{}
	}
	return Node{
		typ: nodeTypeDocument,
		ptr: unsafe.Pointer(doc),
	}
}

// Document returns the referenced document
// or nil if the pointer does not reference a document.
func (n Node) Document() *Document {
	if n.typ != nodeTypeDocument {
		return nil
	}
	return (*Document)(n.ptr)
}

// IsParagraph reports whether the pointer references a paragraph.
func (n Node) IsParagraph() bool {
	return n.typ == nodeTypeParagraph
}

// Paragraph returns a copy of the referenced paragraph
// or nil if the pointer does not reference a paragraph.
func (n Node) Paragraph() Paragraph {
	if n.typ != nodeTypeParagraph {
		return nil
	}
	return (*Paragraph)(n.ptr).clone()
}

// Inline returns a copy of the referenced inline
// and whether the pointer references an inline.
func (n Node) Inline() (_ Inline, ok bool) {
	if n.typ != nodeTypeInline {
		return Inline{}, false
	}
	return (*Inline)(n.ptr).clone(), true
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on the zero value returns 0.
func (n Node) ChildCount() int {
	switch n.typ {
	case nodeTypeDocument:
		return (*Document)(n.ptr).Len()
	case nodeTypeParagraph:
		return len(*(*Paragraph)(n.ptr))
	default:
		return 0
	}
}

// Child returns the i'th child of the node.
func (n Node) Child(i int) Node {
	switch n.typ {
	case nodeTypeDocument:
		return Node{
			typ: nodeTypeParagraph,
			ptr: unsafe.Pointer(&(*Document)(n.ptr).paragraphs[i]),
		}
	case nodeTypeParagraph:
		return Node{
			typ: nodeTypeInline,
			ptr: unsafe.Pointer(&(*(*Paragraph)(n.ptr))[i]),
		}
	case nodeTypeInline:
		panic("Child on inline Node")
	default:
		panic("Child on nil Node")
	}
}
