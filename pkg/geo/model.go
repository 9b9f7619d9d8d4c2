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

// Predicate names, used both as relation keys inside Store and as the Rule
// atom tags in the rule base. Keeping them as named constants instead of
// scattering string literals keeps the store, the rules files and predArity
// below in agreement on every predicate's name.
const (
	predPoint     = "point"
	predCol       = "col"
	predPara      = "para"
	predPerp      = "perp"
	predCong      = "cong"
	predEqangle   = "eqangle"
	predCyclic    = "cyclic"
	predSameclock = "sameclock"
	predMidp      = "midp"
	predContri1   = "contri1"
	predContri2   = "contri2"
	predSimtri1   = "simtri1"
	predSimtri2   = "simtri2"
	predEqratio   = "eqratio"
	predAconst    = "aconst"
)

// predArity gives the number of point-name arguments each predicate's
// relation carries. aconst is handled separately (model.go/store.go) since
// two of its five fields are integers rather than point names.
var predArity = map[string]int{
	predPoint:     1,
	predCol:       3,
	predPara:      4,
	predPerp:      4,
	predCong:      4,
	predEqangle:   6,
	predCyclic:    4,
	predSameclock: 6,
	predMidp:      3,
	predContri1:   6,
	predContri2:   6,
	predSimtri1:   6,
	predSimtri2:   6,
	predEqratio:   8,
}

// Fact is a read-only view of one tuple in the closure, returned by the
// Get<Pred> family on Database.
type Fact struct {
	Pred        string
	Args        []string
	Derivations []Derivation
}

// ID returns this fact's canonical identifier, as used in Derivation.Parents.
func (f Fact) ID() string {
	return factID(f.Pred, f.Args)
}

// AconstFact is the read-only view returned by GetAconst: aconst carries two
// integer arguments (a rational angle m/n of pi) in addition to three point
// names, so it does not fit the plain Fact shape above.
type AconstFact struct {
	A, B, C string
	M, N    int
	Derivations []Derivation
}
