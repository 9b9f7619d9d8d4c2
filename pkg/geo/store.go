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

import "strconv"

// row is one tuple of a relation together with its accumulated provenance.
type row struct {
	args []string
	prov *Provenance
}

// relation is the storage for a single predicate: every tuple ever derived
// (total), plus the subset considered "new since the last round" that rule
// bodies join against when seeded at this predicate's position (delta). Both
// are kept with an explicit insertion order alongside the map so that
// evaluation is deterministic across runs, unlike raw map iteration.
type relation struct {
	arity int

	total      map[string]*row
	totalOrder []string

	delta      map[string]*row
	deltaOrder []string
}

func newRelation(arity int) *relation {
	return &relation{
		arity:      arity,
		total:      make(map[string]*row),
		delta:      make(map[string]*row),
	}
}

// insert merges a derivation into the tuple named by args, creating the
// tuple if it is new. It reports whether the fact's Provenance actually grew
// (a brand new tuple always counts as grown).
func (r *relation) insert(args []string, d Derivation) bool {
	k := tupleKey(args)
	rw, ok := r.total[k]
	if !ok {
		rw = &row{args: args, prov: newProvenance()}
		r.total[k] = rw
		r.totalOrder = append(r.totalOrder, k)
		rw.prov.join(d)
		return true
	}
	return rw.prov.join(d)
}

// setDelta replaces this relation's delta operand with exactly the given
// rows, in order. Rows not present in rows are not reachable via delta this
// round, though they remain fully visible via total.
func (r *relation) setDelta(rows []row) {
	r.delta = make(map[string]*row, len(rows))
	r.deltaOrder = r.deltaOrder[:0]
	for i := range rows {
		rw := rows[i]
		k := tupleKey(rw.args)
		if _, ok := r.delta[k]; ok {
			continue
		}
		r.delta[k] = &rw
		r.deltaOrder = append(r.deltaOrder, k)
	}
}

// deltaRows returns this relation's current delta operand, in order.
func (r *relation) deltaRows() []row {
	out := make([]row, 0, len(r.deltaOrder))
	for _, k := range r.deltaOrder {
		out = append(out, *r.delta[k])
	}
	return out
}

// snapshotTotal returns every row currently in the relation, used to seed
// round one's delta (every axiom is "new" the first time rules run) and by
// Get<Pred> to read back the whole closure.
func (r *relation) snapshotTotal() []row {
	out := make([]row, 0, len(r.totalOrder))
	for _, k := range r.totalOrder {
		out = append(out, *r.total[k])
	}
	return out
}

// Store holds every relation in the database: the fourteen relations named
// in predArity (the point universe and thirteen predicates), plus aconst's
// relation (kept separately because its tuples mix point names and integers).
type Store struct {
	pointCoord map[string]Point
	pointOrder []string

	rel map[string]*relation

	// aconst has no symmetry rule and is never a premise or head of any rule
	// in the base (see model.go), so unlike every other relation it needs no
	// delta operand — only the total set, read back by snapshotAconst.
	aconstTotal      map[string]*aconstRow
	aconstTotalOrder []string
}

type aconstRow struct {
	a, b, c string
	m, n    int
	prov    *Provenance
}

func newStore() *Store {
	s := &Store{
		pointCoord:  make(map[string]Point),
		rel:         make(map[string]*relation),
		aconstTotal: make(map[string]*aconstRow),
	}
	for pred, arity := range predArity {
		s.rel[pred] = newRelation(arity)
	}
	return s
}

// relationFor returns the named predicate's relation. It panics on an
// unknown predicate name, since every caller in this package passes a
// constant declared in model.go.
func (s *Store) relationFor(pred string) *relation {
	r, ok := s.rel[pred]
	if !ok {
		panic("geo: unknown predicate " + pred)
	}
	return r
}

// AddPoint registers a named point at the given integer coordinates.
// Re-adding a name that already exists is a silent no-op: the spec gives
// points no provenance to merge, so there is nothing to do beyond keep the
// first registration.
func (s *Store) AddPoint(name string, x, y int64) {
	if _, ok := s.pointCoord[name]; ok {
		return
	}
	s.pointCoord[name] = Point{Name: name, X: x, Y: y}
	s.pointOrder = append(s.pointOrder, name)
	s.relationFor(predPoint).insert([]string{name}, axiomDerivation())
}

// Point looks up a previously added point by name.
func (s *Store) Point(name string) (Point, bool) {
	p, ok := s.pointCoord[name]
	return p, ok
}

// addAxiom inserts an axiomatically-asserted tuple for a non-aconst
// predicate. Used by the typed Add<Pred> wrappers on Database.
func (s *Store) addAxiom(pred string, args []string) {
	s.relationFor(pred).insert(args, axiomDerivation())
}

// AddAconst inserts an axiomatically-asserted aconst(a,b,c,m,n) tuple: the
// directed angle at point b between rays b->a and b->c equals m/n of a
// straight angle.
func (s *Store) AddAconst(a, b, c string, m, n int) {
	k := a + "\x00" + b + "\x00" + c + "\x00" + strconv.Itoa(m) + "\x00" + strconv.Itoa(n)
	rw, ok := s.aconstTotal[k]
	if !ok {
		rw = &aconstRow{a: a, b: b, c: c, m: m, n: n, prov: newProvenance()}
		s.aconstTotal[k] = rw
		s.aconstTotalOrder = append(s.aconstTotalOrder, k)
	}
	rw.prov.join(axiomDerivation())
}

// snapshotAconst returns every aconst tuple currently stored.
func (s *Store) snapshotAconst() []*aconstRow {
	out := make([]*aconstRow, 0, len(s.aconstTotalOrder))
	for _, k := range s.aconstTotalOrder {
		out = append(out, s.aconstTotal[k])
	}
	return out
}
