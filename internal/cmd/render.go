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
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/lightmark"
	"zombiezen.com/go/lightmark/highlight"
)

func newRenderCommand(configFile *string) *cobra.Command {
	var (
		output  string
		withTOC bool
		anchors bool
		style   string
	)
	c := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to an HTML fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("toc") && cfg.Contents {
				withTOC = true
			}
			if !cmd.Flags().Changed("anchors") && cfg.Anchors {
				anchors = true
			}
			if !cmd.Flags().Changed("style") && cfg.HighlightStyle != "" {
				style = cfg.HighlightStyle
			}

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

			r := &lightmark.HTMLRenderer{
				HeadingAnchors: anchors || withTOC,
			}
			if style != "" {
				r.HighlightCode = highlight.New(style).Code
			}

			buf := new(bytes.Buffer)
			if withTOC {
				if toc := r.AppendContents(nil, lightmark.BuildContents(blocks)); len(toc) > 0 {
					buf.WriteString("<nav>")
					buf.Write(toc)
					buf.WriteString("</nav>\n\n")
				}
			}
			if err := r.Render(buf, blocks); err != nil {
				return err
			}
			buf.WriteByte('\n')

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")
	c.Flags().BoolVar(&withTOC, "toc", false, "prepend a table of contents")
	c.Flags().BoolVar(&anchors, "anchors", false, "decorate headings with anchor targets")
	c.Flags().StringVar(&style, "style", "", "chroma style for code highlighting (empty disables)")
	return c
}
