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

package provgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

func TestBuildRendersParentEdges(t *testing.T) {
	db := geo.NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 10, 0)
	db.AddPoint("C", 5, 5)
	db.AddCong("A", "B", "B", "C")
	db.AddCong("B", "C", "C", "A")
	db.Run()

	g, err := Build(db, "cong(A,B,C,A)")
	require.NoError(t, err)

	out := g.String()
	assert.Contains(t, out, "cong(A,B,C,A)")
	assert.Contains(t, out, "cong(A,B,B,C)")
	assert.Contains(t, out, "cong(B,C,C,A)")
	assert.Contains(t, out, "cong_trans")
}

func TestBuildUnknownFact(t *testing.T) {
	db := geo.NewDatabase()
	_, err := Build(db, "cong(X,Y,X,Y)")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no such fact"))
}
