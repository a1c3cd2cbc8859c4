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
	"strconv"
	"strings"
)

func matchUList(line string) bool {
	return strings.HasPrefix(line, "- ")
}

// An ordered list must start at ordinal 1; a line like "3. x" with no
// open list is prose.
func matchOList(line string) bool {
	return strings.HasPrefix(line, "1. ")
}

// listContext parses an unordered or ordered list. Every member line
// must carry the context's indentation. A line that carries it and
// starts with the expected marker opens a new item; a line indented
// past the marker column is continuation content for the current item
// and may open a nested context of any registered type; anything else
// ends the list.
//
// Ordered ordinals must be strictly sequential starting at 1:
// a gap or repeat ends the list.
type listContext struct {
	ordered  bool
	indent   int
	next     int // next expected ordinal (ordered only)
	item     *Block
	elements []Element
}

func newUListContext(indent int) Context {
	return &listContext{indent: indent}
}

func newOListContext(indent int) Context {
	return &listContext{ordered: true, indent: indent, next: 1}
}

func (c *listContext) marker() string {
	if c.ordered {
		return strconv.Itoa(c.next) + ". "
	}
	return "- "
}

// markerWidth is the column width continuation lines must clear.
// Unordered items use a fixed 2 columns regardless of marker text;
// ordered items use the digit width of the next expected ordinal.
// The asymmetry is intentional.
func (c *listContext) markerWidth() int {
	if c.ordered {
		return len(strconv.Itoa(c.next)) + 2
	}
	return 2
}

func (c *listContext) Handle(p *Parser, line string) (handleResult, error) {
	rest, ok := stripIndent(line, c.indent)
	if !ok {
		return exited, nil
	}
	if marker := c.marker(); strings.HasPrefix(rest, marker) {
		c.flushItem()
		c.item = &Block{kind: ListItemKind, applyFilter: true}
		c.item.elements = append(c.item.elements, BlockElement(&Block{
			kind:        ParagraphKind,
			text:        rest[len(marker):],
			applyFilter: true,
		}))
		if c.ordered {
			c.next++
		}
		return consumed, nil
	}
	width := c.markerWidth()
	if c.item != nil && len(rest) >= width && isBlank(rest[:width]) && !isBlank(rest) {
		inner := rest[width:]
		if t, ok := p.Probe(inner); ok {
			p.Push(t, c.indent+width)
			return delegated, nil
		}
		c.item.elements = append(c.item.elements, BlockElement(&Block{
			kind:        ParagraphKind,
			text:        inner,
			applyFilter: true,
		}))
		return consumed, nil
	}
	return exited, nil
}

// Accept routes finalized nested blocks into the current list item
// rather than directly into the list.
func (c *listContext) Accept(b *Block) {
	if c.item != nil {
		c.item.elements = append(c.item.elements, BlockElement(b))
		return
	}
	c.elements = append(c.elements, BlockElement(b))
}

func (c *listContext) OnExit() {
	c.flushItem()
}

func (c *listContext) flushItem() {
	if c.item != nil {
		c.elements = append(c.elements, BlockElement(c.item))
		c.item = nil
	}
}

func (c *listContext) Create() *Block {
	kind := UListKind
	if c.ordered {
		kind = OListKind
	}
	return &Block{kind: kind, elements: c.elements, applyFilter: true}
}
