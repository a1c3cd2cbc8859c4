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
	"html"
	"io"
	"strconv"

	"golang.org/x/net/html/atom"
)

// An HTMLRenderer converts parsed blocks into an HTML fragment.
// The zero value renders with [DefaultFilters], no heading anchors,
// and no code highlighting.
type HTMLRenderer struct {
	// Filters is the ordered inline filter chain applied to leaf text.
	// Nil means DefaultFilters. Code block text is never filtered.
	Filters []FilterRule

	// HeadingAnchors decorates headings with <a name="..."> targets
	// whose numbers match the anchors in the contents tree
	// built by [BuildContents].
	HeadingAnchors bool

	// HighlightCode, if non-nil, renders the contents of a fenced code
	// block as an HTML fragment. The language is the fence's tag.
	// Reporting ok false falls back to escaped verbatim text.
	HighlightCode func(language, code string) (markup string, ok bool)
}

// RenderHTML writes the given block sequence to w as HTML
// using the default options for [HTMLRenderer].
// It will return the first error encountered, if any.
func RenderHTML(w io.Writer, blocks []*Block) error {
	return new(HTMLRenderer).Render(w, blocks)
}

// Render writes the given block sequence to w as HTML.
// Rendering is a pure function of the blocks and the renderer's
// options: rendering the same sequence twice yields identical output.
func (r *HTMLRenderer) Render(w io.Writer, blocks []*Block) error {
	var buf []byte
	for i, b := range blocks {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, "\n\n"...)
		}
		buf = r.AppendBlock(buf, b)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render lightmark to html: %w", err)
		}
	}
	return nil
}

// AppendBlock appends the rendered HTML of a block to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendBlock(dst []byte, block *Block) []byte {
	state := &renderState{HTMLRenderer: r, dst: dst}
	state.block(block)
	return state.dst
}

// AppendContents renders a heading forest as nested lists whose links
// target the anchors emitted for headings when HeadingAnchors is set.
func (r *HTMLRenderer) AppendContents(dst []byte, headings []*Heading) []byte {
	if len(headings) == 0 {
		return dst
	}
	dst = append(dst, "<ul>"...)
	for _, h := range headings {
		dst = append(dst, `<li><a href="#`...)
		dst = strconv.AppendInt(dst, int64(h.Anchor), 10)
		dst = append(dst, `">`...)
		dst = escapeHTML(dst, h.Text)
		dst = append(dst, "</a>"...)
		dst = r.AppendContents(dst, h.Children)
		dst = append(dst, "</li>"...)
	}
	return append(dst, "</ul>"...)
}

type renderState struct {
	*HTMLRenderer
	dst []byte
}

func (r *renderState) openTag(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(name atom.Atom) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) block(b *Block) {
	switch b.Kind() {
	case ParagraphKind:
		r.openTag(atom.P)
		r.text(b.text, b.applyFilter)
		r.closeTag(atom.P)
	case HeadlineKind:
		tag := headingTag(b.level)
		r.openTag(tag)
		if r.HeadingAnchors && b.anchor > 0 {
			r.dst = append(r.dst, `<a name="`...)
			r.dst = strconv.AppendInt(r.dst, int64(b.anchor), 10)
			r.dst = append(r.dst, `"></a>`...)
		}
		r.text(b.text, b.applyFilter)
		r.closeTag(tag)
	case HLineKind:
		r.openTag(atom.Hr)
	case CodeKind:
		r.openTag(atom.Pre)
		r.dst = append(r.dst, "<code"...)
		if b.language != "" {
			r.dst = append(r.dst, ` class="language-`...)
			r.dst = append(r.dst, html.EscapeString(b.language)...)
			r.dst = append(r.dst, '"')
		}
		r.dst = append(r.dst, '>')
		r.code(b)
		r.closeTag(atom.Code)
		r.closeTag(atom.Pre)
	case QuoteKind:
		r.openTag(atom.Blockquote)
		for _, e := range b.elements {
			if e.IsText() {
				r.openTag(atom.P)
				r.text(e.Text(), true)
				r.closeTag(atom.P)
			} else {
				r.block(e.Block())
			}
		}
		r.closeTag(atom.Blockquote)
	case UListKind:
		r.openTag(atom.Ul)
		r.elements(b)
		r.closeTag(atom.Ul)
	case OListKind:
		r.openTag(atom.Ol)
		r.elements(b)
		r.closeTag(atom.Ol)
	case ListItemKind:
		r.openTag(atom.Li)
		r.elements(b)
		r.closeTag(atom.Li)
	default:
		// Unknown kinds (and Null) degrade to empty output.
	}
}

func (r *renderState) elements(b *Block) {
	for _, e := range b.elements {
		if e.IsText() {
			r.text(e.Text(), b.applyFilter)
		} else {
			r.block(e.Block())
		}
	}
}

// text escapes leaf text and, when eligible, runs the filter chain
// over the escaped form so filter replacements survive escaping.
func (r *renderState) text(s string, filter bool) {
	esc := string(escapeHTML(nil, s))
	if filter {
		rules := r.Filters
		if rules == nil {
			rules = DefaultFilters()
		}
		esc = applyFilters(rules, esc)
	}
	r.dst = append(r.dst, esc...)
}

// code renders fenced code verbatim, optionally through the
// highlighting hook. The filter chain never runs on code text.
func (r *renderState) code(b *Block) {
	if r.HighlightCode != nil {
		if markup, ok := r.HighlightCode(b.language, b.text); ok {
			r.dst = append(r.dst, markup...)
			return
		}
	}
	r.dst = escapeHTML(r.dst, b.text)
}

func headingTag(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

// escapeHTML appends the HTML-escaped version of a string to a byte slice.
func escapeHTML(dst []byte, src string) []byte {
	verbatimStart := 0
	for i := 0; i < len(src); i++ {
		var esc string
		switch src[i] {
		case '&':
			esc = "&amp;"
		case '\'':
			// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		dst = append(dst, src[verbatimStart:i]...)
		dst = append(dst, esc...)
		verbatimStart = i + 1
	}
	if verbatimStart < len(src) {
		dst = append(dst, src[verbatimStart:]...)
	}
	return dst
}
