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

// Package cmd implements the lightmark command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"zombiezen.com/go/lightmark/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:          "lightmark",
		Short:        "Convert lightmark documents to HTML",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")
	root.AddCommand(
		newRenderCommand(&configFile),
		newTOCCommand(),
	)
	return root
}

// Execute runs the CLI and returns its error, which the main package
// turns into the exit status.
func Execute() error {
	return newRootCommand().Execute()
}

func loadConfig(configFile string) (*config.Config, error) {
	if strings.TrimSpace(configFile) != "" {
		return config.Load(configFile)
	}
	return config.Read()
}

// readSource reads the document from a file, or from stdin when the
// path is empty or "-". Line endings are normalized to LF here;
// the parser consumes newline-delimited text only.
func readSource(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n"), nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
