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

// Command geodeduce is the CLI entry point: run, explain, and graph
// subcommands over the pkg/geo deductive database.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kevinawalsh/geodeduce/internal/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "geodeduce: logger setup failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
