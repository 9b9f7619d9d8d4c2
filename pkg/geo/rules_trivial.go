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

// trivialRules are the tag-"rfl" rules: statements true of any point(s) by
// reflexivity, not by any theorem. Their bodies are nothing but point atoms
// plus a distinctness guard, so they introduce no parents.
var trivialRules = []Rule{
	{
		Name:     "rfl",
		Body:     []Atom{pointAtom("a"), pointAtom("b")},
		HeadPred: predCong,
		HeadVars: []string{"a", "b", "a", "b"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b") },
	},
	{
		Name:     "rfl",
		Body:     []Atom{pointAtom("a"), pointAtom("b")},
		HeadPred: predPara,
		HeadVars: []string{"a", "b", "a", "b"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b") },
	},
	{
		Name:     "rfl",
		Body:     []Atom{pointAtom("a"), pointAtom("b"), pointAtom("c")},
		HeadPred: predEqangle,
		HeadVars: []string{"a", "b", "c", "a", "b", "c"},
		Guard:    func(e env, s *Store) bool { return distinct(e, "a", "b", "c") },
	},
}
