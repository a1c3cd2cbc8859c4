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

// handleResult reports what a context did with the line it was offered.
type handleResult int8

const (
	// exited means the line was rejected: the parser pops the context
	// and re-offers the same line to the enclosing context.
	// A rejected line is never dropped nor double-consumed.
	exited handleResult = iota
	// consumed means the line belongs to the context
	// and the cursor advances past it.
	consumed
	// delegated means the context pushed a nested context for the line;
	// the same line is re-offered to the new top of the stack.
	delegated
)

// A Context is a stateful line consumer bound to one syntactic construct.
// Contexts live on the parser's stack: one frame per currently-open
// construct, innermost on top.
type Context interface {
	// Handle offers the current line to the context.
	// The parser advances the cursor if and only if the result is consumed.
	Handle(p *Parser, line string) (handleResult, error)

	// Accept receives the finalized block of a nested context that has
	// just exited.
	Accept(b *Block)

	// OnExit is called exactly once when the context is popped,
	// before Create. It flushes any in-progress buffered state.
	OnExit()

	// Create finalizes and returns the single block summarizing
	// everything the context accumulated.
	// It is called exactly once per context lifetime.
	Create() *Block
}

// A ContextType describes one registered construct:
// a pure match predicate and a constructor for live contexts.
// Match is evaluated against lines that have already been stripped of
// any indentation owned by enclosing contexts.
type ContextType struct {
	Name  string
	Match func(line string) bool
	New   func(indent int) Context
}

// DefaultContextTypes returns the built-in construct list in priority
// order. Headline and HLine come before the list, quote, and code types
// so a line like "# heading" is never claimed by a lower-priority
// construct. Table and math are reserved extension points whose
// predicates never fire.
func DefaultContextTypes() []ContextType {
	return []ContextType{
		{Name: "headline", Match: matchHeadline, New: newHeadlineContext},
		{Name: "hline", Match: matchHLine, New: newHLineContext},
		{Name: "code", Match: matchCode, New: newCodeContext},
		{Name: "ulist", Match: matchUList, New: newUListContext},
		{Name: "olist", Match: matchOList, New: newOListContext},
		{Name: "quote", Match: matchQuote, New: newQuoteContext},
		{Name: "table", Match: matchNever, New: newInertContext},
		{Name: "math", Match: matchNever, New: newInertContext},
	}
}

// stripIndent removes the leading indentation columns a context owns.
// ok is false when the line does not carry the indentation.
// Blank lines pass with an empty remainder.
func stripIndent(line string, indent int) (rest string, ok bool) {
	if indent == 0 {
		return line, true
	}
	if len(line) < indent {
		if isBlank(line) {
			return "", true
		}
		return "", false
	}
	if !isBlank(line[:indent]) {
		return "", false
	}
	return line[indent:], true
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if b := line[i]; b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}
