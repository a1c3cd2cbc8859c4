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

// Package lightmark converts a lightweight markup dialect
// into a block tree and renders that tree into HTML.
//
// Parsing is a line-driven automaton over a stack of contexts,
// one per currently-open construct. Each line is offered to the top of
// the stack; a context either consumes it, pushes a nested context for
// it, or rejects it, in which case the context is closed and the same
// line is re-offered to the enclosing context.
package lightmark

import (
	"fmt"
	"strings"
)

// A Parser owns the line cursor and the context stack for one document.
// The zero value is not usable; call [NewParser].
// A Parser must not be shared between goroutines,
// but separate Parsers may run in parallel on independent documents.
type Parser struct {
	types []ContextType

	lines  []string
	pos    int
	stack  []Context
	blocks []*Block
	anchor int
}

// NewParser returns a parser using the given context types in priority
// order. A nil list means [DefaultContextTypes].
func NewParser(types []ContextType) *Parser {
	if types == nil {
		types = DefaultContextTypes()
	}
	return &Parser{types: types}
}

// Parse splits a document into its top-level block sequence
// using the default context types.
func Parse(source string) ([]*Block, error) {
	return NewParser(nil).Parse(source)
}

// Parse splits a document into its top-level block sequence.
// Each call operates on a fresh cursor and context stack.
// The only error condition is a structural indentation violation
// inside an indentation-scoped construct; see [IndentError].
func (p *Parser) Parse(source string) ([]*Block, error) {
	p.lines = splitLines(source)
	p.pos = 0
	p.stack = nil
	p.blocks = nil
	p.anchor = 0

	for p.pos < len(p.lines) {
		line := strings.TrimRight(p.lines[p.pos], " \t\r")
		if len(p.stack) == 0 {
			if t, ok := p.Probe(line); ok {
				p.Push(t, 0)
				continue
			}
			// Universal fallback: an unclaimed line is a paragraph.
			if !isBlank(line) {
				p.emit(&Block{kind: ParagraphKind, text: line, applyFilter: true})
			}
			p.pos++
			continue
		}
		top := p.stack[len(p.stack)-1]
		res, err := top.Handle(p, line)
		if err != nil {
			return nil, err
		}
		switch res {
		case consumed:
			p.pos++
		case exited:
			p.pop()
		case delegated:
			// The nested context is now on top; re-offer the same line.
		}
	}

	// Drain: end of input force-closes every open construct,
	// deepest first, with whatever it accumulated.
	for len(p.stack) > 0 {
		p.pop()
	}
	return p.blocks, nil
}

// Lineno returns the 1-based number of the line at the cursor.
func (p *Parser) Lineno() int {
	return p.pos + 1
}

// Probe returns the first registered context type whose predicate
// matches the line. The line must already be stripped of any
// indentation owned by enclosing contexts.
func (p *Parser) Probe(line string) (ContextType, bool) {
	for _, t := range p.types {
		if t.Match(line) {
			return t, true
		}
	}
	return ContextType{}, false
}

// Push opens a new context of the given type expecting the given
// indentation on every member line.
func (p *Parser) Push(t ContextType, indent int) {
	p.stack = append(p.stack, t.New(indent))
}

// pop closes the top context and hands its block to the next frame,
// or to the top-level sequence if the stack is now empty.
func (p *Parser) pop() {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	top.OnExit()
	b := top.Create()
	if b == nil {
		return
	}
	if b.kind == HeadlineKind && b.anchor == 0 {
		p.anchor++
		b.anchor = p.anchor
	}
	if len(p.stack) > 0 {
		p.stack[len(p.stack)-1].Accept(b)
	} else {
		p.emit(b)
	}
}

func (p *Parser) emit(b *Block) {
	p.blocks = append(p.blocks, b)
}

// splitLines splits the source on line boundaries,
// trimming trailing blank lines.
func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for len(lines) > 0 && isBlank(strings.TrimRight(lines[len(lines)-1], "\r")) {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// An IndentError reports a line inside an indentation-scoped construct
// (such as a code fence nested in a list item) that does not carry the
// indentation the construct demands. Truncating such a line would
// silently corrupt verbatim content, so the parse fails instead.
type IndentError struct {
	Line    int // 1-based line number
	Columns int // indentation columns the construct expects
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns of indentation", e.Line, e.Columns)
}
