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

package scenario

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// wireAxiom is the mapstructure decode target for one raw axiom entry. Pred
// and Args are required on every predicate; M and N apply only to aconst and
// default to zero otherwise.
type wireAxiom struct {
	Pred string   `mapstructure:"pred"`
	Args []string `mapstructure:"args"`
	M    int      `mapstructure:"m"`
	N    int      `mapstructure:"n"`
}

// decodeAxiom turns one raw {pred, args, ...} map from the YAML axioms list
// into a validated AxiomSpec: pred must be a known predicate name, and args
// must have exactly that predicate's arity.
func decodeAxiom(raw map[string]interface{}) (AxiomSpec, error) {
	var w wireAxiom
	if err := mapstructure.Decode(raw, &w); err != nil {
		return AxiomSpec{}, fmt.Errorf("decode: %w", err)
	}

	arity, ok := predArity[w.Pred]
	if !ok {
		return AxiomSpec{}, fmt.Errorf("unknown predicate %q", w.Pred)
	}
	if len(w.Args) != arity {
		return AxiomSpec{}, fmt.Errorf("predicate %q wants %d args, got %d", w.Pred, arity, len(w.Args))
	}

	return AxiomSpec{Pred: w.Pred, Args: w.Args, M: w.M, N: w.N}, nil
}
