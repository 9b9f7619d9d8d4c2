// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinawalsh/geodeduce/pkg/provgraph"
)

func newGraphCmd(log *zap.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "graph <scenario.yaml> <fact-id>",
		Short: "render a fact's full derivation tree as a Graphviz DOT file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadAndRun(log, args[0])
			if err != nil {
				return err
			}
			g, err := provgraph.Build(db, args[1])
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), g.String())
				return nil
			}
			return os.WriteFile(out, []byte(g.String()), 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the DOT graph to this file instead of stdout")
	return cmd
}
