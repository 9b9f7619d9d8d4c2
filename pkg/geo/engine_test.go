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

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rulesFor looks a fact up by its tuple args within a Get<Pred>-shaped
// slice, returning the Derivation rule tags attached to it.
func rulesFor(facts []Fact, args ...string) ([]string, bool) {
	id := factID(facts[0].Pred, args)
	for _, f := range facts {
		if f.ID() == id {
			tags := make([]string, len(f.Derivations))
			for i, dv := range f.Derivations {
				tags[i] = dv.Rule
			}
			return tags, true
		}
	}
	return nil, false
}

func hasFact(facts []Fact, args ...string) bool {
	_, ok := rulesFor(facts, args...)
	return ok
}

func TestTrianglePathTransitivity(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 10, 0)
	db.AddPoint("C", 5, 5)
	db.AddPara("A", "B", "A", "B")
	db.AddCong("A", "B", "B", "C")
	db.AddCong("B", "C", "C", "A")
	db.Run()

	cong := db.GetCong()
	tags, ok := rulesFor(cong, "A", "B", "C", "A")
	require.True(t, ok, "cong(A,B,C,A) should be derived")
	assert.Contains(t, tags, "cong_trans")

	f, ok := db.Fact("cong(A,B,C,A)")
	require.True(t, ok)
	var found bool
	for _, dv := range f.Derivations {
		if dv.Rule == "cong_trans" {
			assert.Equal(t, []string{"cong(A,B,B,C)", "cong(B,C,C,A)"}, dv.Parents)
			found = true
		}
	}
	assert.True(t, found)

	assert.True(t, hasFact(cong, "C", "A", "A", "B"), "symmetry rewrite of the transitive result")
}

func TestCollinearitySymmetry(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 1, 1)
	db.AddPoint("C", 2, 2)
	db.AddCol("A", "B", "C")
	db.Run()

	col := db.GetCol()
	perms := [][3]string{
		{"A", "B", "C"}, {"A", "C", "B"},
		{"B", "A", "C"}, {"B", "C", "A"},
		{"C", "A", "B"}, {"C", "B", "A"},
	}
	for _, p := range perms {
		tags, ok := rulesFor(col, p[0], p[1], p[2])
		require.Truef(t, ok, "col%v should be present", p)
		if p == [3]string{"A", "B", "C"} {
			assert.Contains(t, tags, "axiom")
		} else {
			assert.Contains(t, tags, "sym")
		}
	}

	assert.True(t, hasFact(db.GetPara(), "A", "B", "A", "C"))
	tags, _ := rulesFor(db.GetPara(), "A", "B", "A", "C")
	assert.Contains(t, tags, "col_para")
}

func TestSSSCongruenceAndParts(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 3, 0)
	db.AddPoint("C", 0, 4)
	db.AddPoint("D", 10, 0)
	db.AddPoint("E", 13, 0)
	db.AddPoint("F", 10, 4)
	db.AddCong("A", "B", "D", "E")
	db.AddCong("B", "C", "E", "F")
	db.AddCong("A", "C", "D", "F")
	db.Run()

	contri1 := db.GetContri1()
	tags, ok := rulesFor(contri1, "A", "B", "C", "D", "E", "F")
	require.True(t, ok)
	assert.Contains(t, tags, "sss_cong")

	eqangle := db.GetEqangle()
	assert.True(t, hasFact(eqangle, "A", "B", "C", "D", "E", "F"))
	assert.True(t, hasFact(eqangle, "B", "C", "A", "E", "F", "D"))
	assert.True(t, hasFact(eqangle, "C", "A", "B", "F", "D", "E"))
}

func TestThales(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("B", -1, 0)
	db.AddPoint("R", 0, 1)
	db.AddPoint("Y", 0, -1)
	db.AddPoint("D", 1, 0)
	db.AddPoint("O", 0, 0)
	db.AddCyclic("B", "R", "Y", "D")
	db.AddCong("B", "O", "R", "O")
	db.AddCong("R", "O", "D", "O")
	db.AddCol("B", "O", "D")
	db.Run()

	perp := db.GetPerp()
	tags, ok := rulesFor(perp, "B", "R", "R", "D")
	require.True(t, ok)
	assert.Contains(t, tags, "thales_thm")

	assert.True(t, hasFact(perp, "R", "D", "B", "R"))
	assert.True(t, hasFact(perp, "D", "R", "R", "B"))
	assert.True(t, hasFact(perp, "R", "D", "R", "B"))
}

func TestParallelTransitivityAndPerpPropagation(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 1, 0)
	db.AddPoint("C", 0, 1)
	db.AddPoint("D", 1, 1)
	db.AddPoint("E", 5, 5)
	db.AddPoint("F", 6, 5)
	db.AddPoint("G", 0, 0)
	db.AddPoint("H", 0, 1)
	db.AddPara("A", "B", "C", "D")
	db.AddPara("A", "B", "E", "F")
	db.AddPerp("A", "B", "G", "H")
	db.Run()

	assert.True(t, hasFact(db.GetPara(), "C", "D", "E", "F"))
	assert.True(t, hasFact(db.GetPerp(), "C", "D", "G", "H"))
	assert.True(t, hasFact(db.GetPerp(), "E", "F", "G", "H"))
}

func TestNoSpuriousSimilarityUnderOppositeOrientation(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 3, 0)
	db.AddPoint("C", 0, 4)
	db.AddPoint("D", 10, 0)
	db.AddPoint("E", 13, 0)
	db.AddPoint("F", 10, -4)
	db.AddCong("A", "B", "D", "E")
	db.AddCong("B", "C", "E", "F")
	db.AddCong("A", "C", "D", "F")
	db.Run()

	assert.False(t, hasFact(db.GetContri1(), "A", "B", "C", "D", "E", "F"))
	assert.True(t, hasFact(db.GetContri2(), "A", "B", "C", "D", "E", "F"))
}

func TestContri2PartsReflectedAngles(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 4, 0)
	db.AddPoint("C", 1, 3)
	db.AddPoint("D", 0, 0)
	db.AddPoint("E", 4, 0)
	db.AddPoint("F", 1, -3)
	db.AddCong("A", "B", "D", "E")
	db.AddCong("B", "C", "E", "F")
	db.AddCong("A", "C", "D", "F")
	db.Run()

	require.True(t, hasFact(db.GetContri2(), "A", "B", "C", "D", "E", "F"))

	eqangle := db.GetEqangle()
	assert.True(t, hasFact(eqangle, "A", "B", "C", "F", "E", "D"),
		"vertex B's angle should match the reflected triangle's angle at E, read as (F,E,D)")
	assert.True(t, hasFact(eqangle, "B", "C", "A", "D", "F", "E"),
		"vertex C's angle should match the reflected triangle's angle at F, read as (D,F,E)")
	assert.True(t, hasFact(eqangle, "C", "A", "B", "E", "D", "F"),
		"vertex A's angle should match the reflected triangle's angle at D, read as (E,D,F)")

	assert.False(t, hasFact(eqangle, "A", "B", "C", "D", "F", "E"),
		"the old swapped-pair transform's angle claim does not hold for a scalene reflected triangle")
}

func TestIdempotentRerun(t *testing.T) {
	db := NewDatabase()
	db.AddPoint("A", 0, 0)
	db.AddPoint("B", 1, 1)
	db.AddPoint("C", 2, 2)
	db.AddCol("A", "B", "C")
	db.Run()
	before := len(db.GetCol())
	db.Run()
	after := len(db.GetCol())
	assert.Equal(t, before, after)
}

func TestMonotonicity(t *testing.T) {
	small := NewDatabase()
	small.AddPoint("A", 0, 0)
	small.AddPoint("B", 1, 1)
	small.AddPoint("C", 2, 2)
	small.AddCol("A", "B", "C")
	small.Run()

	big := NewDatabase()
	big.AddPoint("A", 0, 0)
	big.AddPoint("B", 1, 1)
	big.AddPoint("C", 2, 2)
	big.AddPoint("D", 3, 0)
	big.AddCol("A", "B", "C")
	big.AddCong("A", "D", "D", "A")
	big.Run()

	for _, f := range small.GetCol() {
		assert.True(t, hasFact(big.GetCol(), f.Args...))
	}
}
