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
	"sort"
	"strconv"
)

func itoa(n int) string { return strconv.Itoa(n) }

// factsOf reads back every tuple of pred, sorted by canonical fact-id
// string, each with its Derivations in (rule-name, first-parent) order.
func (d *Database) factsOf(pred string) []Fact {
	r := d.store.relationFor(pred)
	total := r.snapshotTotal()
	out := make([]Fact, 0, len(total))
	for _, rw := range total {
		out = append(out, Fact{Pred: pred, Args: rw.args, Derivations: rw.prov.Derivations()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (d *Database) GetPoints() []Point {
	out := make([]Point, 0, len(d.store.pointOrder))
	for _, name := range d.store.pointOrder {
		out = append(out, d.store.pointCoord[name])
	}
	return out
}

func (d *Database) GetCol() []Fact       { return d.factsOf(predCol) }
func (d *Database) GetPara() []Fact      { return d.factsOf(predPara) }
func (d *Database) GetPerp() []Fact      { return d.factsOf(predPerp) }
func (d *Database) GetCong() []Fact      { return d.factsOf(predCong) }
func (d *Database) GetEqangle() []Fact   { return d.factsOf(predEqangle) }
func (d *Database) GetCyclic() []Fact    { return d.factsOf(predCyclic) }
func (d *Database) GetSameclock() []Fact { return d.factsOf(predSameclock) }
func (d *Database) GetMidp() []Fact      { return d.factsOf(predMidp) }
func (d *Database) GetContri1() []Fact   { return d.factsOf(predContri1) }
func (d *Database) GetContri2() []Fact   { return d.factsOf(predContri2) }
func (d *Database) GetSimtri1() []Fact   { return d.factsOf(predSimtri1) }
func (d *Database) GetSimtri2() []Fact   { return d.factsOf(predSimtri2) }
func (d *Database) GetEqratio() []Fact   { return d.factsOf(predEqratio) }

// GetAconst reads back every aconst tuple, sorted by canonical fact-id.
func (d *Database) GetAconst() []AconstFact {
	rows := d.store.snapshotAconst()
	out := make([]AconstFact, 0, len(rows))
	for _, rw := range rows {
		out = append(out, AconstFact{
			A: rw.a, B: rw.b, C: rw.c, M: rw.m, N: rw.n,
			Derivations: rw.prov.Derivations(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// id returns this aconst tuple's canonical fact-id string.
func (f AconstFact) id() string {
	return factID(predAconst, []string{f.A, f.B, f.C, itoa(f.M), itoa(f.N)})
}

// Fact looks up a single fact by its canonical id across every non-aconst
// predicate. It is the primitive internal/cli's explain/graph subcommands
// use to resolve a user-supplied fact-id argument.
func (d *Database) Fact(id string) (Fact, bool) {
	for pred := range predArity {
		for _, f := range d.factsOf(pred) {
			if f.ID() == id {
				return f, true
			}
		}
	}
	return Fact{}, false
}
