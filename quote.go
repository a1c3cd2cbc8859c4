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

import "strings"

func matchQuote(line string) bool {
	return strings.HasPrefix(line, ">")
}

// quoteContext parses a block quote. Each quoted line is kept as a raw
// string element with its leading ">" stripped; the renderer joins the
// lines with paragraph breaks. The first line that is not a quote line
// ends the block without being consumed.
type quoteContext struct {
	indent   int
	elements []Element
}

func newQuoteContext(indent int) Context {
	return &quoteContext{indent: indent}
}

func (c *quoteContext) Handle(p *Parser, line string) (handleResult, error) {
	rest, ok := stripIndent(line, c.indent)
	if !ok || !strings.HasPrefix(rest, ">") {
		return exited, nil
	}
	text := strings.TrimPrefix(rest, ">")
	text = strings.TrimPrefix(text, " ")
	c.elements = append(c.elements, TextElement(text))
	return consumed, nil
}

func (c *quoteContext) Accept(b *Block) {
	c.elements = append(c.elements, BlockElement(b))
}

func (c *quoteContext) OnExit() {}

func (c *quoteContext) Create() *Block {
	return &Block{kind: QuoteKind, elements: c.elements, applyFilter: true}
}
