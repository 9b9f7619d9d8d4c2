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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

// factSections lists every predicate except point and aconst, in the fixed order printed
// by "geodeduce run".
var factSections = []struct {
	name string
	get  func(*geo.Database) []geo.Fact
}{
	{"col", (*geo.Database).GetCol},
	{"para", (*geo.Database).GetPara},
	{"perp", (*geo.Database).GetPerp},
	{"cong", (*geo.Database).GetCong},
	{"eqangle", (*geo.Database).GetEqangle},
	{"cyclic", (*geo.Database).GetCyclic},
	{"sameclock", (*geo.Database).GetSameclock},
	{"midp", (*geo.Database).GetMidp},
	{"contri1", (*geo.Database).GetContri1},
	{"contri2", (*geo.Database).GetContri2},
	{"simtri1", (*geo.Database).GetSimtri1},
	{"simtri2", (*geo.Database).GetSimtri2},
	{"eqratio", (*geo.Database).GetEqratio},
}

func newRunCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "load a scenario, saturate it, and print the closure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadAndRun(log, args[0])
			if err != nil {
				return err
			}
			printClosure(cmd.OutOrStdout(), db)
			return nil
		},
	}
}

func printClosure(w io.Writer, db *geo.Database) {
	for _, s := range factSections {
		facts := s.get(db)
		if len(facts) == 0 {
			continue
		}
		fmt.Fprintf(w, "# %s\n", s.name)
		for _, f := range facts {
			fmt.Fprintln(w, f.ID())
		}
	}

	aconst := db.GetAconst()
	if len(aconst) > 0 {
		fmt.Fprintln(w, "# aconst")
		for _, f := range aconst {
			fmt.Fprintf(w, "aconst(%s,%s,%s,%d,%d)\n", f.A, f.B, f.C, f.M, f.N)
		}
	}
}
