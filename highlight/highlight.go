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

// Package highlight colors fenced code block contents with chroma,
// producing HTML fragments for the renderer's HighlightCode hook.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// A Highlighter colors code using a fixed chroma style.
// The emitted fragment uses inline styles and no surrounding
// pre/code wrapper, so it slots into the renderer's own tags.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New returns a highlighter using the named chroma style.
// Unknown style names fall back to the chroma default.
func New(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Code renders source as highlighted HTML.
// ok is false when the language tag is empty or not recognized,
// letting the caller fall back to plain escaped text.
// The signature matches the HighlightCode field of
// [zombiezen.com/go/lightmark.HTMLRenderer].
func (h *Highlighter) Code(language, source string) (markup string, ok bool) {
	if language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}
	sb := new(strings.Builder)
	if err := h.formatter.Format(sb, h.style, it); err != nil {
		return "", false
	}
	return sb.String(), true
}
