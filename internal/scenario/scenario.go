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

// Package scenario loads a YAML description of a point set and an axiom set
// and replays it onto a geo.Database. It is glue: it never touches the
// store or rule base directly, only the Add* surface geo.Database already
// exposes.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

// PointSpec is one entry of a scenario's points list.
type PointSpec struct {
	Name string `yaml:"name" mapstructure:"name"`
	X    int64  `yaml:"x" mapstructure:"x"`
	Y    int64  `yaml:"y" mapstructure:"y"`
}

// AxiomSpec is one entry of a scenario's axioms list, decoded from the
// loosely-typed {pred, args, [m, n]} shape every predicate's YAML entry
// shares. Every predicate but aconst leaves M and N zero; arity is
// validated against predArity at decode time, not by Go's type system,
// since all fourteen predicates share this one wire shape.
type AxiomSpec struct {
	Pred string
	Args []string
	M    int
	N    int
}

// Scenario is the decoded form of a scenario file, ready to Apply to a
// geo.Database.
type Scenario struct {
	Points []PointSpec
	Axioms []AxiomSpec
}

// yamlScenario is the raw shape yaml.v3 unmarshals into. Axioms are kept as
// map[string]any here since each predicate's entry has a different arity
// (and aconst additionally carries m/n), so a single struct type cannot
// describe them; decodeAxiom below turns each map into a validated
// AxiomSpec via mapstructure.
type yamlScenario struct {
	Points []PointSpec              `yaml:"points"`
	Axioms []map[string]interface{} `yaml:"axioms"`
}

// predArity mirrors geo's own predicate arity table. It is kept as a
// separate, small copy here rather than exported from pkg/geo, since the
// core engine's Non-goals exclude exposing internal storage shape and this
// is the only other package that needs to validate an axiom's argument
// count before it ever reaches a Database.
var predArity = map[string]int{
	"col":       3,
	"para":      4,
	"perp":      4,
	"cong":      4,
	"eqangle":   6,
	"cyclic":    4,
	"sameclock": 6,
	"midp":      3,
	"contri1":   6,
	"contri2":   6,
	"simtri1":   6,
	"simtri2":   6,
	"eqratio":   8,
	"aconst":    3,
}

// Load reads and validates a scenario file at path.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var y yamlScenario
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	var errs *multierror.Error

	seen := make(map[string]PointSpec)
	for _, p := range y.Points {
		if prior, ok := seen[p.Name]; ok && (prior.X != p.X || prior.Y != p.Y) {
			errs = multierror.Append(errs, fmt.Errorf("point %q redefined with different coordinates", p.Name))
			continue
		}
		seen[p.Name] = p
	}

	axioms := make([]AxiomSpec, 0, len(y.Axioms))
	for i, raw := range y.Axioms {
		spec, err := decodeAxiom(raw)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("axiom %d: %w", i, err))
			continue
		}
		axioms = append(axioms, spec)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Scenario{Points: y.Points, Axioms: axioms}, nil
}

// Apply replays a loaded scenario's points and axioms onto db via its
// ordinary Add* calls. It does not call db.Run(); callers decide when to
// saturate.
func Apply(db *geo.Database, s *Scenario) error {
	for _, p := range s.Points {
		db.AddPoint(p.Name, p.X, p.Y)
	}

	var errs *multierror.Error
	for _, a := range s.Axioms {
		if err := applyAxiom(db, a); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func applyAxiom(db *geo.Database, a AxiomSpec) error {
	args := a.Args
	switch a.Pred {
	case "col":
		db.AddCol(args[0], args[1], args[2])
	case "para":
		db.AddPara(args[0], args[1], args[2], args[3])
	case "perp":
		db.AddPerp(args[0], args[1], args[2], args[3])
	case "cong":
		db.AddCong(args[0], args[1], args[2], args[3])
	case "eqangle":
		db.AddEqangle(args[0], args[1], args[2], args[3], args[4], args[5])
	case "cyclic":
		db.AddCyclic(args[0], args[1], args[2], args[3])
	case "sameclock":
		db.AddSameclock(args[0], args[1], args[2], args[3], args[4], args[5])
	case "midp":
		db.AddMidp(args[0], args[1], args[2])
	case "contri1":
		db.AddContri1(args[0], args[1], args[2], args[3], args[4], args[5])
	case "contri2":
		db.AddContri2(args[0], args[1], args[2], args[3], args[4], args[5])
	case "simtri1":
		db.AddSimtri1(args[0], args[1], args[2], args[3], args[4], args[5])
	case "simtri2":
		db.AddSimtri2(args[0], args[1], args[2], args[3], args[4], args[5])
	case "eqratio":
		db.AddEqratio(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
	case "aconst":
		db.AddAconst(args[0], args[1], args[2], a.M, a.N)
	default:
		return fmt.Errorf("unknown predicate %q", a.Pred)
	}
	return nil
}
