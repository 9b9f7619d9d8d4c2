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

// theoremRules is the fixed rule base of classical theorems. Guards that the
// original ascent program expressed as an equality between two freshly
// named variables (e.g. "if o == o_prime") are expressed here instead by
// reusing one variable name at both argument positions — the two forms are
// semantically identical, and sharing a name lets the join engine enforce
// the equality for free instead of through an explicit Guard check.
var theoremRules = []Rule{
	// Col => Para: a line is parallel to itself.
	{
		Name:     "col_para",
		Body:     []Atom{{Pred: predCol, Vars: []string{"a", "b", "c"}}},
		HeadPred: predPara,
		HeadVars: []string{"a", "b", "a", "c"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b", "c") },
	},

	// Cyclic => EqAngle: inscribed angles on equal arcs.
	{
		Name:     "cyclic_eqangle",
		Body:     []Atom{{Pred: predCyclic, Vars: []string{"a", "b", "c", "d"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "d", "b", "a", "c", "b"},
	},
	{
		Name:     "cyclic_eqangle",
		Body:     []Atom{{Pred: predCyclic, Vars: []string{"a", "b", "c", "d"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"d", "a", "c", "d", "b", "c"},
	},

	// Midpoint projections.
	{
		Name:     "midp_proj",
		Body:     []Atom{{Pred: predMidp, Vars: []string{"m", "a", "b"}}},
		HeadPred: predCong,
		HeadVars: []string{"a", "m", "m", "b"},
	},
	{
		Name:     "midp_proj",
		Body:     []Atom{{Pred: predMidp, Vars: []string{"m", "a", "b"}}},
		HeadPred: predCol,
		HeadVars: []string{"a", "m", "b"},
	},

	// Cong transitivity.
	{
		Name: "cong_trans",
		Body: []Atom{
			{Pred: predCong, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predCong, Vars: []string{"c", "d", "e", "f"}},
		},
		HeadPred: predCong,
		HeadVars: []string{"a", "b", "e", "f"},
	},

	// Para transitivity.
	{
		Name: "para_trans",
		Body: []Atom{
			{Pred: predPara, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predPara, Vars: []string{"a", "b", "e", "f"}},
		},
		HeadPred: predPara,
		HeadVars: []string{"c", "d", "e", "f"},
	},

	// Para => angle.
	{
		Name:     "para_angle",
		Body:     []Atom{{Pred: predPara, Vars: []string{"a", "b", "c", "d"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "a", "b", "a", "c", "d"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b", "c", "d") },
	},

	// Alternate interior angles.
	{
		Name: "alt_int",
		Body: []Atom{
			{Pred: predPara, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predCol, Vars: []string{"a", "e", "c"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"b", "a", "e", "d", "c", "e"},
	},
	{
		Name: "alt_int",
		Body: []Atom{
			{Pred: predPara, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predCol, Vars: []string{"a", "e", "c"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"e", "a", "b", "e", "c", "d"},
	},

	// Parallelogram => cong.
	{
		Name: "pgram_cong",
		Body: []Atom{
			{Pred: predPara, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predPara, Vars: []string{"b", "c", "d", "a"}},
		},
		HeadPred: predCong,
		HeadVars: []string{"a", "b", "c", "d"},
	},

	// Col => angle, four heads sharing vertex e.
	{
		Name: "col_eqangle",
		Body: []Atom{
			{Pred: predCol, Vars: []string{"e", "a", "b"}},
			{Pred: predCol, Vars: []string{"e", "c", "d"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "e", "c", "b", "e", "d"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "e", "a", "b", "c", "d") },
	},
	{
		Name: "col_eqangle",
		Body: []Atom{
			{Pred: predCol, Vars: []string{"e", "a", "b"}},
			{Pred: predCol, Vars: []string{"e", "c", "d"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "e", "a", "d", "e", "b"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "e", "a", "b", "c", "d") },
	},
	{
		Name: "col_eqangle",
		Body: []Atom{
			{Pred: predCol, Vars: []string{"e", "a", "b"}},
			{Pred: predCol, Vars: []string{"e", "c", "d"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "e", "d", "b", "e", "c"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "e", "a", "b", "c", "d") },
	},
	{
		Name: "col_eqangle",
		Body: []Atom{
			{Pred: predCol, Vars: []string{"e", "a", "b"}},
			{Pred: predCol, Vars: []string{"e", "c", "d"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"d", "e", "a", "c", "e", "b"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "e", "a", "b", "c", "d") },
	},

	// Perp + perp => para.
	{
		Name: "pp_par",
		Body: []Atom{
			{Pred: predPerp, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predPerp, Vars: []string{"e", "f", "c", "d"}},
		},
		HeadPred: predPara,
		HeadVars: []string{"a", "b", "e", "f"},
	},

	// Para + perp => perp.
	{
		Name: "pp_perp",
		Body: []Atom{
			{Pred: predPara, Vars: []string{"a", "b", "c", "d"}},
			{Pred: predPerp, Vars: []string{"a", "b", "e", "f"}},
		},
		HeadPred: predPerp,
		HeadVars: []string{"c", "d", "e", "f"},
	},

	// Vertical angles.
	{
		Name: "vert",
		Body: []Atom{
			{Pred: predCol, Vars: []string{"a", "b", "c"}},
			{Pred: predCol, Vars: []string{"d", "b", "e"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "d", "c", "b", "e"},
		Guard: func(e env, s *Store) bool {
			return distinct(e, "a", "b", "c") && distinct(e, "b", "d", "e")
		},
	},

	// Right angle equal (shared-endpoint form: b == b', e == e').
	{
		Name: "right_angle_eq",
		Body: []Atom{
			{Pred: predPerp, Vars: []string{"a", "b", "b", "c"}},
			{Pred: predPerp, Vars: []string{"a", "e", "e", "b"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "b", "a", "b", "e", "a"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b", "c", "e") },
	},

	// AA similarity.
	{
		Name: "aa_sim",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "e", "d", "f"}},
			{Pred: predEqangle, Vars: []string{"b", "c", "a", "e", "f", "d"}},
		},
		HeadPred: predSimtri1,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "d", "e", "f")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},
	{
		Name: "aa_sim",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "f", "d", "e"}},
			{Pred: predEqangle, Vars: []string{"b", "c", "a", "d", "f", "e"}},
		},
		HeadPred: predSimtri2,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "f", "e", "d")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},

	// ASA congruence.
	{
		Name: "asa_cong",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "e", "d", "f"}},
			{Pred: predEqangle, Vars: []string{"c", "b", "a", "f", "e", "d"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
		},
		HeadPred: predContri1,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "d", "e", "f")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},
	{
		Name: "asa_cong",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "f", "d", "e"}},
			{Pred: predEqangle, Vars: []string{"c", "b", "a", "d", "e", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
		},
		HeadPred: predContri2,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "f", "e", "d")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},

	// SAS congruence.
	{
		Name: "sas_cong",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "e", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "c", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
		},
		HeadPred: predContri1,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "d", "e", "f")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},
	{
		Name: "sas_cong",
		Body: []Atom{
			{Pred: predEqangle, Vars: []string{"b", "a", "c", "f", "d", "e"}},
			{Pred: predCong, Vars: []string{"a", "c", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
		},
		HeadPred: predContri2,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "f", "e", "d")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},

	// SSS congruence.
	{
		Name: "sss_cong",
		Body: []Atom{
			{Pred: predCong, Vars: []string{"a", "c", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
			{Pred: predCong, Vars: []string{"c", "b", "f", "e"}},
		},
		HeadPred: predContri1,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "d", "e", "f")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},
	{
		Name: "sss_cong",
		Body: []Atom{
			{Pred: predCong, Vars: []string{"a", "c", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
			{Pred: predCong, Vars: []string{"c", "b", "f", "e"}},
		},
		HeadPred: predContri2,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "f", "e", "d")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},

	// Right-SSA congruence (a == a', d == d').
	{
		Name: "ssa_right_cong",
		Body: []Atom{
			{Pred: predPerp, Vars: []string{"a", "b", "a", "c"}},
			{Pred: predPerp, Vars: []string{"d", "e", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
			{Pred: predCong, Vars: []string{"b", "c", "e", "f"}},
		},
		HeadPred: predContri1,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "d", "e", "f")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},
	{
		Name: "ssa_right_cong",
		Body: []Atom{
			{Pred: predPerp, Vars: []string{"a", "b", "a", "c"}},
			{Pred: predPerp, Vars: []string{"d", "e", "d", "f"}},
			{Pred: predCong, Vars: []string{"a", "b", "d", "e"}},
			{Pred: predCong, Vars: []string{"b", "c", "e", "f"}},
		},
		HeadPred: predContri2,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
		Guard: func(e env, s *Store) bool {
			tri1, ok1 := points(s, e, "a", "b", "c")
			tri2, ok2 := points(s, e, "f", "e", "d")
			return ok1 && ok2 && sameOrientation(tri1, tri2)
		},
	},

	// Inscribed angle theorem (o == o', b == b', c == c').
	{
		Name: "inscribed_angle_thm",
		Body: []Atom{
			{Pred: predCong, Vars: []string{"o", "a", "o", "b"}},
			{Pred: predCong, Vars: []string{"o", "c", "o", "b"}},
			{Pred: predCong, Vars: []string{"o", "c", "o", "a"}},
			{Pred: predPerp, Vars: []string{"o", "b", "b", "d"}},
			{Pred: predEqangle, Vars: []string{"a", "o", "c", "c", "o", "b"}},
		},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "c", "b", "d"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b", "c", "d") },
	},

	// Thales's theorem (o == o').
	{
		Name: "thales_thm",
		Body: []Atom{
			{Pred: predCyclic, Vars: []string{"b", "r", "y", "d"}},
			{Pred: predCong, Vars: []string{"b", "o", "r", "o"}},
			{Pred: predCong, Vars: []string{"r", "o", "d", "o"}},
			{Pred: predCol, Vars: []string{"b", "o", "d"}},
		},
		HeadPred: predPerp,
		HeadVars: []string{"b", "r", "r", "d"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "b", "r", "y", "d") },
	},

	// Contri1 => parts (direct correspondence A-D, B-E, C-F).
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"a", "b", "d", "e"},
	},
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"b", "c", "e", "f"},
	},
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"c", "a", "f", "d"},
	},
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
	},
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"b", "c", "a", "e", "f", "d"},
	},
	{
		Name:     "contri1_parts",
		Body:     []Atom{{Pred: predContri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "a", "b", "f", "d", "e"},
	},

	// Contri2 => parts: sides correspond exactly as contri1 (length does not
	// see chirality); angles use the reflected ray order, mirroring the
	// transform the original program applies between its aa_sim/asa_cong/
	// sas_cong _1 and _2 rule pairs. The reflection fixes each angle's vertex
	// and reverses the other two points of the second triangle's triple (not
	// a swap of an arbitrary pair), e.g. (d,e,f) -> (f,e,d).
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"a", "b", "d", "e"},
	},
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"b", "c", "e", "f"},
	},
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predCong,
		HeadVars: []string{"c", "a", "f", "d"},
	},
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "f", "e", "d"},
	},
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"b", "c", "a", "d", "f", "e"},
	},
	{
		Name:     "contri2_parts",
		Body:     []Atom{{Pred: predContri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "a", "b", "e", "d", "f"},
	},

	// Simtri1 => parts.
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "d", "e", "f"},
	},
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"b", "c", "a", "e", "f", "d"},
	},
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "a", "b", "f", "d", "e"},
	},
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"a", "b", "d", "e", "b", "c", "e", "f"},
	},
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"b", "c", "e", "f", "c", "a", "f", "d"},
	},
	{
		Name:     "simtri1_parts",
		Body:     []Atom{{Pred: predSimtri1, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"c", "a", "f", "d", "a", "b", "d", "e"},
	},

	// Simtri2 => parts (reflected angle ray order, sides as simtri1). As in
	// contri2_parts, the reflection fixes each angle's vertex and reverses
	// the other two points of the second triangle's triple.
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "f", "e", "d"},
	},
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"b", "c", "a", "d", "f", "e"},
	},
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqangle,
		HeadVars: []string{"c", "a", "b", "e", "d", "f"},
	},
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"a", "b", "d", "e", "b", "c", "e", "f"},
	},
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"b", "c", "e", "f", "c", "a", "f", "d"},
	},
	{
		Name:     "simtri2_parts",
		Body:     []Atom{{Pred: predSimtri2, Vars: []string{"a", "b", "c", "d", "e", "f"}}},
		HeadPred: predEqratio,
		HeadVars: []string{"c", "a", "f", "d", "a", "b", "d", "e"},
	},
}
