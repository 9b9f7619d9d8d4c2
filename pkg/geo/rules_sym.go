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

// symRule builds one unconditional single-premise symmetry projection:
// pred(headVars...) <- pred(bodyVars...). Iterating these to a local
// fixpoint each round (see engine.go) produces the full S3/S4 permutation
// closure the table below only lists generators for.
func symRule(pred string, headVars, bodyVars []string) Rule {
	return Rule{
		Name:     "sym",
		Body:     []Atom{{Pred: pred, Vars: bodyVars}},
		HeadPred: pred,
		HeadVars: headVars,
	}
}

// symRules is the generator set for every predicate's symmetry closure.
var symRules = []Rule{
	// col(a,b,c) -> col(c,b,a), col(a,c,b); iterated this reaches all of S3.
	symRule(predCol, []string{"c", "b", "a"}, []string{"a", "b", "c"}),
	symRule(predCol, []string{"a", "c", "b"}, []string{"a", "b", "c"}),

	// para(a,b,c,d) -> para(c,d,a,b), para(b,a,c,d), para(a,b,d,c).
	symRule(predPara, []string{"c", "d", "a", "b"}, []string{"a", "b", "c", "d"}),
	symRule(predPara, []string{"b", "a", "c", "d"}, []string{"a", "b", "c", "d"}),
	symRule(predPara, []string{"a", "b", "d", "c"}, []string{"a", "b", "c", "d"}),

	// perp: same three rewrites as para.
	symRule(predPerp, []string{"c", "d", "a", "b"}, []string{"a", "b", "c", "d"}),
	symRule(predPerp, []string{"b", "a", "c", "d"}, []string{"a", "b", "c", "d"}),
	symRule(predPerp, []string{"a", "b", "d", "c"}, []string{"a", "b", "c", "d"}),

	// cong: same three rewrites as para.
	symRule(predCong, []string{"c", "d", "a", "b"}, []string{"a", "b", "c", "d"}),
	symRule(predCong, []string{"b", "a", "c", "d"}, []string{"a", "b", "c", "d"}),
	symRule(predCong, []string{"a", "b", "d", "c"}, []string{"a", "b", "c", "d"}),

	// eqangle(a,b,c,d,e,f) -> eqangle(d,e,f,a,b,c), eqangle(c,b,a,f,e,d).
	symRule(predEqangle, []string{"d", "e", "f", "a", "b", "c"}, []string{"a", "b", "c", "d", "e", "f"}),
	symRule(predEqangle, []string{"c", "b", "a", "f", "e", "d"}, []string{"a", "b", "c", "d", "e", "f"}),

	// cyclic(a,b,c,d) -> cyclic(b,c,d,a), cyclic(a,c,b,d); iterated reaches S4.
	symRule(predCyclic, []string{"b", "c", "d", "a"}, []string{"a", "b", "c", "d"}),
	symRule(predCyclic, []string{"a", "c", "b", "d"}, []string{"a", "b", "c", "d"}),

	// sameclock(a,b,c,d,e,f) -> sameclock(d,e,f,a,b,c), (a,b,c,f,d,e), (c,b,a,f,e,d).
	symRule(predSameclock, []string{"d", "e", "f", "a", "b", "c"}, []string{"a", "b", "c", "d", "e", "f"}),
	symRule(predSameclock, []string{"a", "b", "c", "f", "d", "e"}, []string{"a", "b", "c", "d", "e", "f"}),
	symRule(predSameclock, []string{"c", "b", "a", "f", "e", "d"}, []string{"a", "b", "c", "d", "e", "f"}),

	// eqratio(a..h) -> swap LHS/RHS, cross-exchange inner pair, swap halves.
	symRule(predEqratio,
		[]string{"e", "f", "g", "h", "a", "b", "c", "d"},
		[]string{"a", "b", "c", "d", "e", "f", "g", "h"}),
	symRule(predEqratio,
		[]string{"c", "d", "a", "b", "g", "h", "e", "f"},
		[]string{"a", "b", "c", "d", "e", "f", "g", "h"}),
	symRule(predEqratio,
		[]string{"a", "b", "e", "f", "c", "d", "g", "h"},
		[]string{"a", "b", "c", "d", "e", "f", "g", "h"}),
}
