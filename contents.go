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
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// A Heading is one node of the table-of-contents forest.
// It carries copies of the headline's text and level;
// heading nodes never alias the parsed blocks.
type Heading struct {
	Anchor   int
	Text     string
	Level    int
	Slug     string
	Children []*Heading
}

// BuildContents reconstructs the headline hierarchy from a flat block
// sequence in a single forward pass. A headline deeper than the last
// one becomes its child; one at the same level becomes a sibling; a
// shallower one closes every open heading at or below its level first.
//
// Anchors stamped by the parser are preserved so links match the
// renderer's heading targets; headlines assembled without anchors are
// numbered in document order starting at 1.
func BuildContents(blocks []*Block) []*Heading {
	var roots []*Heading
	var open []*Heading // ancestors of the last heading, outermost first
	n := 0
	for _, b := range blocks {
		if b.Kind() != HeadlineKind {
			continue
		}
		n++
		anchor := b.Anchor()
		if anchor == 0 {
			anchor = n
		}
		h := &Heading{
			Anchor: anchor,
			Text:   b.Text(),
			Level:  b.Level(),
			Slug:   Slugify(b.Text()),
		}
		for len(open) > 0 && open[len(open)-1].Level >= h.Level {
			open = open[:len(open)-1]
		}
		if len(open) == 0 {
			roots = append(roots, h)
		} else {
			parent := open[len(open)-1]
			parent.Children = append(parent.Children, h)
		}
		open = append(open, h)
	}
	return roots
}

// slugStripper decomposes text and removes combining marks,
// so accented characters slug to their ASCII base letters.
var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a stable lowercase ASCII identifier from heading
// text, for callers that want readable fragment names alongside the
// integer anchors.
func Slugify(text string) string {
	if stripped, _, err := transform.String(slugStripper, text); err == nil {
		text = stripped
	}
	sb := new(strings.Builder)
	sb.Grow(len(text))
	pendingDash := false
	for _, c := range strings.ToLower(text) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteRune(c)
		default:
			pendingDash = true
		}
	}
	return sb.String()
}
