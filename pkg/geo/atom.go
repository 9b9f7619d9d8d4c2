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

// Atom is one premise (or the head) of a Rule: a predicate name together
// with the pattern variable bound to each of its argument positions. Two
// occurrences of the same variable name within one Rule must unify to the
// same point name for the rule to fire.
//
// Contextual marks atoms — only ever `point` atoms in this rule base — whose
// instantiated fact id is not recorded as a premise in the resulting
// Derivation's Parents. Point membership is part of the ambient universe,
// not a fact a theorem is "about", matching how the original ascent program
// this rule base is ported from omits point(...) premises from its
// Derivation parent lists.
type Atom struct {
	Pred       string
	Vars       []string
	Contextual bool
}

// pointAtom builds the one-variable `point` premise used by the rfl rules to
// pull a point name into scope without contributing a parent fact id.
func pointAtom(v string) Atom {
	return Atom{Pred: predPoint, Vars: []string{v}, Contextual: true}
}

// Rule is one entry of the rule base: a conjunction of premise Atoms, an
// optional Guard over the resulting variable bindings, and a head Atom shape
// describing which predicate and which bound variables make up the
// conclusion.
type Rule struct {
	Name     string
	Body     []Atom
	HeadPred string
	HeadVars []string
	Guard    func(e env, s *Store) bool
}

// env is a variable binding produced while joining a rule's body.
type env map[string]string

func (e env) clone() env {
	out := make(env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// unify extends e with the bindings atom forces on args, failing if args
// conflicts with a variable already bound to a different point name.
func unify(e env, atom Atom, args []string) (env, bool) {
	out := e.clone()
	for i, v := range atom.Vars {
		val := args[i]
		if bound, ok := out[v]; ok {
			if bound != val {
				return nil, false
			}
			continue
		}
		out[v] = val
	}
	return out, true
}

// deltaSource supplies, for a given predicate, the rows that should be
// treated as "new" for the purposes of seeding one join pass. The engine
// passes different sources for its main per-round pass vs. its inner
// symmetry-closure passes (see engine.go).
type deltaSource func(pred string) []row

// joinRule enumerates every satisfying variable binding of r.Body, seeding
// the join at body position seedIdx with seed(atom.Pred) and resolving every
// other position against the relation's full total. This is the classic
// semi-naive join: a rule only needs to be re-evaluated against bindings
// that involve at least one newly derived premise, and trying each body
// position as the seed in turn (across repeated calls from the engine) is
// what guarantees every such combination is eventually considered without
// re-scanning combinations of exclusively old facts.
func joinRule(body []Atom, seedIdx int, s *Store, seed deltaSource) []env {
	var results []env
	var rec func(i int, e env)
	rec = func(i int, e env) {
		if i == len(body) {
			results = append(results, e)
			return
		}
		atom := body[i]
		var rows []row
		if i == seedIdx {
			rows = seed(atom.Pred)
		} else {
			rows = s.relationFor(atom.Pred).snapshotTotal()
		}
		for _, rw := range rows {
			next, ok := unify(e, atom, rw.args)
			if !ok {
				continue
			}
			rec(i+1, next)
		}
	}
	rec(0, env{})
	return results
}

// instantiate resolves atom's variables through e into a concrete argument
// list.
func instantiate(atom Atom, e env) []string {
	args := make([]string, len(atom.Vars))
	for i, v := range atom.Vars {
		args[i] = e[v]
	}
	return args
}

// produced is one newly-derived (or newly-reinforced) tuple, reported by
// fireRule so the engine can fold it into the next round's (or the current
// round's inner symmetry pass's) delta.
type produced struct {
	pred string
	args []string
}

// fireRule evaluates r against every body position as seed in turn, applies
// r.Guard to each satisfying binding, and inserts the resulting head fact
// into the store. It returns every head tuple whose Provenance actually grew
// as a result.
func fireRule(r Rule, s *Store, seed deltaSource) []produced {
	var out []produced
	for seedIdx := range r.Body {
		for _, e := range joinRule(r.Body, seedIdx, s, seed) {
			if r.Guard != nil && !r.Guard(e, s) {
				continue
			}
			var parents []string
			for _, atom := range r.Body {
				if atom.Contextual {
					continue
				}
				parents = append(parents, factID(atom.Pred, instantiate(atom, e)))
			}
			headArgs := instantiate(Atom{Pred: r.HeadPred, Vars: r.HeadVars}, e)
			d := newDerivation(r.Name, parents)
			if s.relationFor(r.HeadPred).insert(headArgs, d) {
				out = append(out, produced{pred: r.HeadPred, args: headArgs})
			}
		}
	}
	return out
}
