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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuildContents(t *testing.T) {
	// Headline levels 1,2,2,1,3: two top-level nodes, the first with
	// two level-2 children, the second with one level-3 child.
	blocks, err := Parse("# a\n## b\n## c\n# d\n### e\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	got := BuildContents(blocks)
	want := []*Heading{
		{
			Anchor: 1, Text: "a", Level: 1, Slug: "a",
			Children: []*Heading{
				{Anchor: 2, Text: "b", Level: 2, Slug: "b"},
				{Anchor: 3, Text: "c", Level: 2, Slug: "c"},
			},
		},
		{
			Anchor: 4, Text: "d", Level: 1, Slug: "d",
			Children: []*Heading{
				{Anchor: 5, Text: "e", Level: 3, Slug: "e"},
			},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("BuildContents (-want +got):\n%s", diff)
	}
}

func TestBuildContentsSkipsNonHeadlines(t *testing.T) {
	blocks, err := Parse("prose\n\n# a\n\n- item\n\n## b\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	got := BuildContents(blocks)
	if len(got) != 1 {
		t.Fatalf("len(roots) = %d; want 1", len(got))
	}
	if got[0].Text != "a" || len(got[0].Children) != 1 || got[0].Children[0].Text != "b" {
		t.Errorf("unexpected forest: %+v", got)
	}
}

func TestBuildContentsWithoutAnchors(t *testing.T) {
	// Hand-assembled blocks have no parser-stamped anchors;
	// the builder numbers them in document order.
	blocks := []*Block{
		{kind: HeadlineKind, text: "x", level: 1},
		{kind: HeadlineKind, text: "y", level: 1},
	}
	got := BuildContents(blocks)
	if len(got) != 2 || got[0].Anchor != 1 || got[1].Anchor != 2 {
		t.Errorf("anchors = %+v; want 1, 2", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Overview", "overview"},
		{"Hello, World!", "hello-world"},
		{"Café au lait", "cafe-au-lait"},
		{"naïve Bär", "naive-bar"},
		{"Step 2: Profit", "step-2-profit"},
		{"  --  ", ""},
	}
	for _, test := range tests {
		if got := Slugify(test.text); got != test.want {
			t.Errorf("Slugify(%q) = %q; want %q", test.text, got, test.want)
		}
	}
}
