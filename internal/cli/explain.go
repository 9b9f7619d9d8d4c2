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
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

func newExplainCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <scenario.yaml> <fact-id>",
		Short: "print a fact's derivations, one level into each parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadAndRun(log, args[0])
			if err != nil {
				return err
			}
			f, ok := db.Fact(args[1])
			if !ok {
				return fmt.Errorf("no such fact %q", args[1])
			}
			printExplanation(cmd.OutOrStdout(), db, f)
			return nil
		},
	}
}

// printExplanation prints one line per Derivation of f ("rule: parent,
// parent, ..."), then, indented, the first derivation of each parent fact —
// a shallow proof sketch rather than a full recursive tree walk, matching
// the CLI's thin-glue mandate.
func printExplanation(w io.Writer, db *geo.Database, f geo.Fact) {
	fmt.Fprintf(w, "%s\n", f.ID())
	for _, d := range f.Derivations {
		if len(d.Parents) == 0 {
			fmt.Fprintf(w, "  %s\n", d.Rule)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", d.Rule, strings.Join(d.Parents, ", "))
		for _, pid := range d.Parents {
			parent, ok := db.Fact(pid)
			if !ok || len(parent.Derivations) == 0 {
				continue
			}
			pd := parent.Derivations[0]
			if len(pd.Parents) == 0 {
				fmt.Fprintf(w, "    %s <- %s\n", pid, pd.Rule)
			} else {
				fmt.Fprintf(w, "    %s <- %s: %s\n", pid, pd.Rule, strings.Join(pd.Parents, ", "))
			}
		}
	}
}
