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
	"regexp"
	"strings"
)

// maxHeadlineLength caps how long a headline line may be.
// Longer hash-prefixed lines are prose, not headings.
const maxHeadlineLength = 70

func matchHeadline(line string) bool {
	return strings.HasPrefix(line, "#") && len(line) <= maxHeadlineLength
}

// headlineContext parses a single "# heading" line.
// The length of the leading hash run is the heading level.
type headlineContext struct {
	indent int
	block  *Block
}

func newHeadlineContext(indent int) Context {
	return &headlineContext{indent: indent}
}

func (c *headlineContext) Handle(p *Parser, line string) (handleResult, error) {
	if c.block != nil {
		return exited, nil
	}
	rest, ok := stripIndent(line, c.indent)
	if !ok || !matchHeadline(rest) {
		return exited, nil
	}
	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	c.block = &Block{
		kind:        HeadlineKind,
		text:        strings.TrimSpace(rest[level:]),
		level:       level,
		applyFilter: true,
	}
	return consumed, nil
}

func (c *headlineContext) Accept(*Block) {}

func (c *headlineContext) OnExit() {}

func (c *headlineContext) Create() *Block { return c.block }

var hlineRE = regexp.MustCompile(`^(-{3,}|={3,})$`)

func matchHLine(line string) bool {
	return hlineRE.MatchString(line)
}

// hlineContext parses a single horizontal-rule line.
type hlineContext struct {
	indent int
	done   bool
}

func newHLineContext(indent int) Context {
	return &hlineContext{indent: indent}
}

func (c *hlineContext) Handle(p *Parser, line string) (handleResult, error) {
	if c.done {
		return exited, nil
	}
	rest, ok := stripIndent(line, c.indent)
	if !ok || !matchHLine(rest) {
		return exited, nil
	}
	c.done = true
	return consumed, nil
}

func (c *hlineContext) Accept(*Block) {}

func (c *hlineContext) OnExit() {}

func (c *hlineContext) Create() *Block {
	return &Block{kind: HLineKind, applyFilter: true}
}
