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

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

func TestLoadAndApply(t *testing.T) {
	s, err := Load("testdata/triangle.yaml")
	require.NoError(t, err)
	require.Len(t, s.Points, 3)
	require.Len(t, s.Axioms, 2)

	db := geo.NewDatabase()
	require.NoError(t, Apply(db, s))
	db.Run()

	cong := db.GetCong()
	var found bool
	for _, f := range cong {
		if f.ID() == "cong(A,B,C,A)" {
			found = true
		}
	}
	assert.True(t, found, "cong_trans should close over the loaded axioms")
}

func TestLoadAggregatesErrors(t *testing.T) {
	_, err := Load("testdata/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redefined with different coordinates")
	assert.Contains(t, err.Error(), "wants 4 args, got 3")
	assert.Contains(t, err.Error(), `unknown predicate "nope"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
