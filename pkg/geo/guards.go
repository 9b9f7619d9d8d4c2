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

// distinct reports whether every named variable in e is bound to a pairwise
// different point name. Used for the distinctness guards that accompany
// almost every theorem rule in the base.
func distinct(e env, vars ...string) bool {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			if e[vars[i]] == e[vars[j]] {
				return false
			}
		}
	}
	return true
}

// points resolves a list of variables in e to their Point coordinates, for
// use by orientation guards. ok is false if any name is not a registered
// point, which should not happen given invariant 4 but is checked rather
// than trusted.
func points(s *Store, e env, vars ...string) ([]Point, bool) {
	out := make([]Point, len(vars))
	for i, v := range vars {
		p, ok := s.Point(e[v])
		if !ok {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}
