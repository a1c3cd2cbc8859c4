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

import "regexp"

// A FilterRule is one inline substitution rule. Every match of Pattern
// in the text is replaced before the next rule in the chain runs, so
// the order of rules in a chain is significant.
//
// Rules run on text that has already been HTML-escaped; Replacement may
// therefore contain markup.
type FilterRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultFilters returns the standard inline filter chain.
// The double-asterisk rule runs before the single-asterisk rule:
// emphasis markers are pair-matched first so bold text can contain
// italics without spurious nesting.
func DefaultFilters() []FilterRule {
	return []FilterRule{
		{regexp.MustCompile(`\*\*(.+?)\*\*`), `<span class="em">$1</span>`},
		{regexp.MustCompile(`\*(.+?)\*`), `<span class="ita">$1</span>`},
		{regexp.MustCompile(`~~(.+?)~~`), `<span class="strike">$1</span>`},
		{regexp.MustCompile("`(.+?)`"), `<code>$1</code>`},
		{regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`), `<a href="$2">$1</a>`},
	}
}

// applyFilters runs the chain over the text:
// each rule is applied globally before the next rule runs.
func applyFilters(rules []FilterRule, text string) string {
	for _, rule := range rules {
		text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
	}
	return text
}
