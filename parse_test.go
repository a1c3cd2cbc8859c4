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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var blockCmpOptions = cmp.Options{
	cmp.AllowUnexported(Block{}, Element{}),
	cmpopts.EquateEmpty(),
}

func paragraph(text string) *Block {
	return &Block{kind: ParagraphKind, text: text, applyFilter: true}
}

func listItem(children ...*Block) *Block {
	item := &Block{kind: ListItemKind, applyFilter: true}
	for _, c := range children {
		item.elements = append(item.elements, BlockElement(c))
	}
	return item
}

func list(kind BlockKind, items ...*Block) *Block {
	l := &Block{kind: kind, applyFilter: true}
	for _, item := range items {
		l.elements = append(l.elements, BlockElement(item))
	}
	return l
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []*Block
	}{
		{
			name:  "Empty",
			input: "",
			want:  nil,
		},
		{
			name:  "Paragraph",
			input: "just some prose\n",
			want:  []*Block{paragraph("just some prose")},
		},
		{
			name:  "Headline",
			input: "## A title\n",
			want: []*Block{
				{kind: HeadlineKind, text: "A title", level: 2, anchor: 1, applyFilter: true},
			},
		},
		{
			name:  "HeadlineThenParagraph",
			input: "# Title\n\nHello **world**.\n",
			want: []*Block{
				{kind: HeadlineKind, text: "Title", level: 1, anchor: 1, applyFilter: true},
				paragraph("Hello **world**."),
			},
		},
		{
			name:  "HLineDashes",
			input: "---\n",
			want:  []*Block{{kind: HLineKind, applyFilter: true}},
		},
		{
			name:  "HLineEquals",
			input: "=====\n",
			want:  []*Block{{kind: HLineKind, applyFilter: true}},
		},
		{
			name:  "HLineTooShort",
			input: "--\n",
			want:  []*Block{paragraph("--")},
		},
		{
			name:  "HLineMixedIsProse",
			input: "-=-\n",
			want:  []*Block{paragraph("-=-")},
		},
		{
			name:  "CodeFence",
			input: "```py\nx = 1\n\ny = 2\n```\n",
			want: []*Block{
				{kind: CodeKind, text: "x = 1\n\ny = 2", language: "py"},
			},
		},
		{
			name:  "CodeFenceSwallowsMarkup",
			input: "```\n# not a heading\n- not a list\n```\n",
			want: []*Block{
				{kind: CodeKind, text: "# not a heading\n- not a list"},
			},
		},
		{
			name:  "UnterminatedCodeFence",
			input: "```go\nfmt.Println(1)\n",
			want: []*Block{
				{kind: CodeKind, text: "fmt.Println(1)", language: "go"},
			},
		},
		{
			name:  "UList",
			input: "- a\n- b\n",
			want: []*Block{
				list(UListKind, listItem(paragraph("a")), listItem(paragraph("b"))),
			},
		},
		{
			name:  "UListContinuation",
			input: "- a\n  more a\n- b\n",
			want: []*Block{
				list(UListKind,
					listItem(paragraph("a"), paragraph("more a")),
					listItem(paragraph("b"))),
			},
		},
		{
			name:  "NestedUList",
			input: "- a\n  - b\n- c\n",
			want: []*Block{
				list(UListKind,
					listItem(paragraph("a"), list(UListKind, listItem(paragraph("b")))),
					listItem(paragraph("c"))),
			},
		},
		{
			name:  "CodeInsideListItem",
			input: "- a\n  ```sh\n  ls\n  ```\n- b\n",
			want: []*Block{
				list(UListKind,
					listItem(paragraph("a"), &Block{kind: CodeKind, text: "ls", language: "sh"}),
					listItem(paragraph("b"))),
			},
		},
		{
			name:  "QuoteInsideListItem",
			input: "- a\n  > q\n",
			want: []*Block{
				list(UListKind,
					listItem(paragraph("a"), &Block{
						kind:        QuoteKind,
						elements:    []Element{TextElement("q")},
						applyFilter: true,
					})),
			},
		},
		{
			name:  "BlankLineSplitsLists",
			input: "- a\n\n- b\n",
			want: []*Block{
				list(UListKind, listItem(paragraph("a"))),
				list(UListKind, listItem(paragraph("b"))),
			},
		},
		{
			name:  "OList",
			input: "1. a\n2. b\n3. c\n",
			want: []*Block{
				list(OListKind,
					listItem(paragraph("a")),
					listItem(paragraph("b")),
					listItem(paragraph("c"))),
			},
		},
		{
			name:  "OListOrdinalGap",
			input: "1. a\n3. b\n",
			want: []*Block{
				list(OListKind, listItem(paragraph("a"))),
				paragraph("3. b"),
			},
		},
		{
			name:  "OListOrdinalRepeat",
			input: "1. a\n1. b\n",
			want: []*Block{
				list(OListKind, listItem(paragraph("a"))),
				list(OListKind, listItem(paragraph("b"))),
			},
		},
		{
			name:  "OListMustStartAtOne",
			input: "2. a\n",
			want:  []*Block{paragraph("2. a")},
		},
		{
			name:  "NestedOListInsideOList",
			input: "1. a\n   1. b\n2. c\n",
			want: []*Block{
				list(OListKind,
					listItem(paragraph("a"), list(OListKind, listItem(paragraph("b")))),
					listItem(paragraph("c"))),
			},
		},
		{
			name:  "Quote",
			input: "> a\n> b\nafter\n",
			want: []*Block{
				{
					kind:        QuoteKind,
					elements:    []Element{TextElement("a"), TextElement("b")},
					applyFilter: true,
				},
				paragraph("after"),
			},
		},
		{
			name:  "UnterminatedQuote",
			input: "> only\n",
			want: []*Block{
				{
					kind:        QuoteKind,
					elements:    []Element{TextElement("only")},
					applyFilter: true,
				},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.input)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if diff := cmp.Diff(test.want, got, blockCmpOptions); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestHeadlineLengthBoundary(t *testing.T) {
	line70 := "#" + strings.Repeat("x", 69)
	line71 := "#" + strings.Repeat("x", 70)

	got, err := Parse(line70 + "\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if len(got) != 1 || got[0].Kind() != HeadlineKind {
		t.Errorf("70-character line parsed as %v; want Headline", got)
	}

	got, err = Parse(line71 + "\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if len(got) != 1 || got[0].Kind() != ParagraphKind {
		t.Errorf("71-character line parsed as %v; want Paragraph", got)
	}
}

func TestHeadlineAnchors(t *testing.T) {
	blocks, err := Parse("# a\n## b\n# c\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d; want 3", len(blocks))
	}
	for i, b := range blocks {
		if got, want := b.Anchor(), i+1; got != want {
			t.Errorf("blocks[%d].Anchor() = %d; want %d", i, got, want)
		}
	}
}

func TestIndentErrorInsideListFence(t *testing.T) {
	_, err := Parse("- a\n  ```\n x\n")
	var indentErr *IndentError
	if !errors.As(err, &indentErr) {
		t.Fatalf("Parse error = %v; want *IndentError", err)
	}
	if indentErr.Line != 3 {
		t.Errorf("IndentError.Line = %d; want 3", indentErr.Line)
	}
	if indentErr.Columns != 2 {
		t.Errorf("IndentError.Columns = %d; want 2", indentErr.Columns)
	}
}

func TestPathologicalNestingTerminates(t *testing.T) {
	sb := new(strings.Builder)
	for depth := 0; depth < 200; depth++ {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- x\n")
	}
	blocks, err := Parse(sb.String())
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if len(blocks) != 1 || blocks[0].Kind() != UListKind {
		t.Errorf("got %d top-level blocks; want 1 UList", len(blocks))
	}
}

func TestParserReuse(t *testing.T) {
	p := NewParser(nil)
	first, err := p.Parse("# a\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	second, err := p.Parse("# b\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("len(first) = %d, len(second) = %d; want 1, 1", len(first), len(second))
	}
	if got := second[0].Anchor(); got != 1 {
		t.Errorf("second parse anchor = %d; want 1 (state must reset per call)", got)
	}
}
