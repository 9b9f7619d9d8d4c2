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

// frontier accumulates the tuples newly derived during one round (or one
// inner symmetry-closure pass), grouped by predicate, in the order they were
// first reported. It exists purely as engine-local bookkeeping between a
// firing pass and the next round's (or pass's) delta seed; it never holds a
// Provenance, since the authoritative copy already lives in the relevant
// relation's total set by the time anything is added here.
type frontier struct {
	byPred      map[string]map[string][]string
	predOrder   []string
	keyOrder    map[string][]string
}

func newFrontier() *frontier {
	return &frontier{
		byPred:    make(map[string]map[string][]string),
		keyOrder:  make(map[string][]string),
	}
}

func (f *frontier) add(pred string, args []string) {
	m, ok := f.byPred[pred]
	if !ok {
		m = make(map[string][]string)
		f.byPred[pred] = m
		f.predOrder = append(f.predOrder, pred)
	}
	k := tupleKey(args)
	if _, ok := m[k]; ok {
		return
	}
	m[k] = args
	f.keyOrder[pred] = append(f.keyOrder[pred], k)
}

// empty reports whether nothing has been added to this frontier.
func (f *frontier) empty() bool {
	return len(f.predOrder) == 0
}

// rowsFor returns the rows recorded for pred, in first-seen order.
func (f *frontier) rowsFor(pred string) []row {
	m := f.byPred[pred]
	order := f.keyOrder[pred]
	out := make([]row, 0, len(order))
	for _, k := range order {
		out = append(out, row{args: m[k]})
	}
	return out
}

// lookup adapts a frontier to the deltaSource shape the join engine expects.
func (f *frontier) lookup() deltaSource {
	return func(pred string) []row { return f.rowsFor(pred) }
}
