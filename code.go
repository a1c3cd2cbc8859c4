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

// fence is the delimiter marking the start and end of a verbatim code
// region. The opening fence may carry a trailing language tag.
const fence = "```"

func matchCode(line string) bool {
	return strings.HasPrefix(line, fence)
}

// codeContext parses a fenced code block. Two sub-states: before the
// opening fence has been consumed, and inside the fence, where every
// line is accumulated verbatim after its indentation is stripped.
// A content line that does not carry the expected indentation is a
// structural error, not a truncation.
type codeContext struct {
	indent   int
	open     bool
	closed   bool
	language string
	lines    []string
}

func newCodeContext(indent int) Context {
	return &codeContext{indent: indent}
}

func (c *codeContext) Handle(p *Parser, line string) (handleResult, error) {
	if c.closed {
		return exited, nil
	}
	if !c.open {
		rest, ok := stripIndent(line, c.indent)
		if !ok || !strings.HasPrefix(rest, fence) {
			return exited, nil
		}
		c.open = true
		c.language = strings.TrimSpace(rest[len(fence):])
		return consumed, nil
	}
	rest, err := c.stripContentIndent(p, line)
	if err != nil {
		return exited, err
	}
	if strings.TrimSpace(rest) == fence {
		c.closed = true
		return consumed, nil
	}
	c.lines = append(c.lines, rest)
	return consumed, nil
}

// stripContentIndent removes the fence's indentation from a content
// line. Blank lines are kept as empty content lines; any other line
// missing the indentation fails the parse.
func (c *codeContext) stripContentIndent(p *Parser, line string) (string, error) {
	if c.indent == 0 {
		return line, nil
	}
	if isBlank(line) {
		return "", nil
	}
	if len(line) < c.indent || !isBlank(line[:c.indent]) {
		return "", &IndentError{Line: p.Lineno(), Columns: c.indent}
	}
	return line[c.indent:], nil
}

func (c *codeContext) Accept(*Block) {}

// OnExit has nothing to flush: an unterminated fence at end of input
// keeps whatever lines were accumulated.
func (c *codeContext) OnExit() {}

func (c *codeContext) Create() *Block {
	return &Block{
		kind:     CodeKind,
		text:     strings.Join(c.lines, "\n"),
		language: c.language,
	}
}
