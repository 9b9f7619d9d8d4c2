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
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCommand(zap.NewNop())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestRunPrintsClosure(t *testing.T) {
	out := run(t, "run", filepath.Join("testdata", "triangle.yaml"))
	assert.Contains(t, out, "# cong")
	assert.Contains(t, out, "cong(A,B,C,A)")
}

func TestExplainPrintsDerivation(t *testing.T) {
	out := run(t, "explain", filepath.Join("testdata", "triangle.yaml"), "cong(A,B,C,A)")
	assert.Contains(t, out, "cong_trans")
	assert.Contains(t, out, "cong(A,B,B,C)")
}

func TestGraphPrintsDot(t *testing.T) {
	out := run(t, "graph", filepath.Join("testdata", "triangle.yaml"), "cong(A,B,C,A)")
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "cong_trans")
}

func TestRunUnknownScenario(t *testing.T) {
	var buf bytes.Buffer
	root := NewRootCommand(zap.NewNop())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"run", filepath.Join("testdata", "missing.yaml")})
	assert.Error(t, root.Execute())
}
