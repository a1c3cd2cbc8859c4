// Copyright 2025 Ross Light
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

package lightmark

import (
	"fmt"
	"strings"
)

// A Block is a structural element in a lightmark document.
// Blocks are immutable once their owning context finalizes them.
type Block struct {
	kind        BlockKind
	text        string
	elements    []Element
	level       int
	language    string
	anchor      int
	applyFilter bool
}

func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Text returns the block's leaf text.
// It is empty for container blocks.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Elements returns the block's children.
// Only Quote, UList, OList, and ListItem blocks have children.
func (b *Block) Elements() []Element {
	if b == nil {
		return nil
	}
	return b.elements
}

// Level returns the heading depth.
// It is zero for any block other than a Headline.
func (b *Block) Level() int {
	if b == nil {
		return 0
	}
	return b.level
}

// Language returns the fence's language tag.
// It is empty for any block other than a Code block.
func (b *Block) Language() string {
	if b == nil {
		return ""
	}
	return b.language
}

// Anchor returns the heading's cross-reference number,
// assigned in document order starting at 1,
// or zero if the block is not an anchored Headline.
func (b *Block) Anchor() int {
	if b == nil {
		return 0
	}
	return b.anchor
}

// ApplyFilter reports whether the block's text is eligible for the
// inline filter chain. It is false for Code blocks.
func (b *Block) ApplyFilter() bool {
	return b != nil && b.applyFilter
}

// String returns a debugging representation of the block.
func (b *Block) String() string {
	switch b.Kind() {
	case HeadlineKind:
		return fmt.Sprintf("Headline(%d, %q)", b.level, b.text)
	case CodeKind:
		return fmt.Sprintf("Code(%q, %q)", b.language, b.text)
	case ParagraphKind:
		return fmt.Sprintf("Paragraph(%q)", b.text)
	case QuoteKind, UListKind, OListKind, ListItemKind:
		parts := make([]string, 0, len(b.elements))
		for _, e := range b.elements {
			parts = append(parts, e.String())
		}
		return fmt.Sprintf("%v[%s]", b.Kind(), strings.Join(parts, ", "))
	default:
		return b.Kind().String()
	}
}

// BlockKind is an enumeration of the kinds of [Block].
type BlockKind uint8

const (
	ParagraphKind BlockKind = 1 + iota
	HeadlineKind
	HLineKind
	CodeKind
	QuoteKind
	UListKind
	OListKind
	ListItemKind
	NullKind
)

func (kind BlockKind) String() string {
	switch kind {
	case ParagraphKind:
		return "Paragraph"
	case HeadlineKind:
		return "Headline"
	case HLineKind:
		return "HLine"
	case CodeKind:
		return "Code"
	case QuoteKind:
		return "Quote"
	case UListKind:
		return "UList"
	case OListKind:
		return "OList"
	case ListItemKind:
		return "ListItem"
	case NullKind:
		return "Null"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint8(kind))
	}
}

// An Element is one child of a container block:
// either a nested [*Block] or a raw line of text.
type Element struct {
	block *Block
	text  string
}

// BlockElement wraps a block as an element.
func BlockElement(b *Block) Element {
	return Element{block: b}
}

// TextElement wraps a raw text line as an element.
func TextElement(text string) Element {
	return Element{text: text}
}

// Block returns the nested block
// or nil if the element holds raw text.
func (e Element) Block() *Block {
	return e.block
}

// Text returns the raw text line.
// It is empty if the element holds a block.
func (e Element) Text() string {
	return e.text
}

// IsText reports whether the element holds raw text rather than a block.
func (e Element) IsText() bool {
	return e.block == nil
}

// String returns a debugging representation of the element.
func (e Element) String() string {
	if e.IsText() {
		return fmt.Sprintf("%q", e.text)
	}
	return e.block.String()
}
