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

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"zombiezen.com/go/lightmark"
)

func newTOCCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toc [file]",
		Short: "Print the heading outline of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			source, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			blocks, err := lightmark.Parse(source)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", displayName(path), err)
			}
			printOutline(cmd.OutOrStdout(), lightmark.BuildContents(blocks), 0)
			return nil
		},
	}
}

func printOutline(w io.Writer, headings []*lightmark.Heading, depth int) {
	for _, h := range headings {
		fmt.Fprintf(w, "%s%d. %s\n", strings.Repeat("  ", depth), h.Anchor, h.Text)
		printOutline(w, h.Children, depth+1)
	}
}
