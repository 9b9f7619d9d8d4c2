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

// Package cli implements geodeduce's command-line surface: thin glue that
// loads a scenario, drives pkg/geo's Database through it, and prints or
// renders the result. It never reaches into the fixpoint loop or the rule
// bodies directly.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
	"github.com/kevinawalsh/geodeduce/internal/scenario"
)

// NewRootCommand builds the geodeduce root command with its run, explain,
// and graph subcommands, all logging through logger.Named("cli").
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	log := logger.Named("cli")

	root := &cobra.Command{
		Use:           "geodeduce",
		Short:         "forward-chaining deductive database for synthetic Euclidean geometry",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRunCmd(log))
	root.AddCommand(newExplainCmd(log))
	root.AddCommand(newGraphCmd(log))
	return root
}

// loadAndRun loads the scenario at path, applies it to a fresh Database, and
// saturates it. Every subcommand starts this way.
func loadAndRun(log *zap.Logger, path string) (*geo.Database, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}

	db := geo.NewDatabase(geo.WithLogger(log))
	if err := scenario.Apply(db, s); err != nil {
		return nil, err
	}

	log.Info("scenario loaded", zap.String("path", path), zap.Int("points", len(s.Points)), zap.Int("axioms", len(s.Axioms)))
	db.Run()
	return db, nil
}
