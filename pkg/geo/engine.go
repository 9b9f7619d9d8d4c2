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

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunIDSource mints the identifier attached to one Run() call's log lines.
// A Database built by NewDatabase uses uuid.New; tests that want predictable log
// output can substitute a deterministic source via WithRunIDSource.
type RunIDSource func() uuid.UUID

// Option configures a Database at construction time.
type Option func(*Database)

// WithLogger attaches a *zap.Logger for round-by-round saturation
// diagnostics. The default is zap.NewNop(), so a Database never logs unless
// asked to.
func WithLogger(l *zap.Logger) Option {
	return func(d *Database) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRunIDSource overrides how Run() mints its correlation id.
func WithRunIDSource(f RunIDSource) Option {
	return func(d *Database) {
		if f != nil {
			d.runIDSource = f
		}
	}
}

// Database is the opaque handle described by the external interface: a
// point and fact universe that accumulates axioms via the Add* methods,
// computes their closure via Run, and hands back read-only
// relations via the Get* methods. A zero-option NewDatabase() is a pure
// function of the Add* calls that follow it.
type Database struct {
	store       *Store
	logger      *zap.Logger
	runIDSource RunIDSource
	ran         bool
}

// NewDatabase constructs an empty database.
func NewDatabase(opts ...Option) *Database {
	d := &Database{
		store:       newStore(),
		logger:      zap.NewNop(),
		runIDSource: uuid.New,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddPoint registers a named point. Re-adding an existing name is a no-op.
func (d *Database) AddPoint(name string, x, y int64) { d.store.AddPoint(name, x, y) }

func (d *Database) AddCol(a, b, c string)          { d.store.addAxiom(predCol, []string{a, b, c}) }
func (d *Database) AddPara(a, b, c, e string)      { d.store.addAxiom(predPara, []string{a, b, c, e}) }
func (d *Database) AddPerp(a, b, c, e string)      { d.store.addAxiom(predPerp, []string{a, b, c, e}) }
func (d *Database) AddCong(a, b, c, e string)      { d.store.addAxiom(predCong, []string{a, b, c, e}) }
func (d *Database) AddMidp(m, a, b string)         { d.store.addAxiom(predMidp, []string{m, a, b}) }
func (d *Database) AddCyclic(a, b, c, e string)     { d.store.addAxiom(predCyclic, []string{a, b, c, e}) }

func (d *Database) AddEqangle(a, b, c, e, f, g string) {
	d.store.addAxiom(predEqangle, []string{a, b, c, e, f, g})
}

func (d *Database) AddSameclock(a, b, c, e, f, g string) {
	d.store.addAxiom(predSameclock, []string{a, b, c, e, f, g})
}

func (d *Database) AddContri1(a, b, c, e, f, g string) {
	d.store.addAxiom(predContri1, []string{a, b, c, e, f, g})
}

func (d *Database) AddContri2(a, b, c, e, f, g string) {
	d.store.addAxiom(predContri2, []string{a, b, c, e, f, g})
}

func (d *Database) AddSimtri1(a, b, c, e, f, g string) {
	d.store.addAxiom(predSimtri1, []string{a, b, c, e, f, g})
}

func (d *Database) AddSimtri2(a, b, c, e, f, g string) {
	d.store.addAxiom(predSimtri2, []string{a, b, c, e, f, g})
}

func (d *Database) AddEqratio(a, b, c, e, f, g, h, i string) {
	d.store.addAxiom(predEqratio, []string{a, b, c, e, f, g, h, i})
}

// AddAconst registers an angle-constant axiom: angle ABC equals (m/n)*pi.
func (d *Database) AddAconst(a, b, c string, m, n int) { d.store.AddAconst(a, b, c, m, n) }

// nonSymRules returns the rules used for the per-round firing pass, excluding the symmetry
// generators (fired separately, to a local fixpoint, in Phase B of each
// round — see Run).
func nonSymRules() []Rule {
	out := make([]Rule, 0, len(trivialRules)+len(theoremRules))
	out = append(out, trivialRules...)
	out = append(out, theoremRules...)
	return out
}

// Run saturates the rule base to a fixpoint. It may be called more than
// once; a second call over the same axioms is a no-op beyond re-logging,
// since the store is already closed and every rule firing inserts a
// duplicate (ignored) tuple.
func (d *Database) Run() {
	s := d.store
	runID := d.runIDSource()
	start := time.Now()
	log := d.logger.With(zap.String("run_id", runID.String()))
	log.Info("run starting",
		zap.Int("points", len(s.pointOrder)),
	)

	nonSym := nonSymRules()

	// Round one's delta is every axiomatic (or, on a repeat Run, already
	// closed) tuple currently in each relation.
	for _, r := range s.rel {
		r.setDelta(r.snapshotTotal())
	}

	round := 0
	for {
		round++
		added := 0

		fr := newFrontier()
		lookup := func(pred string) []row { return s.relationFor(pred).deltaRows() }
		for _, r := range nonSym {
			for _, p := range fireRule(r, s, lookup) {
				fr.add(p.pred, p.args)
				added++
			}
		}
		for _, r := range symRules {
			for _, p := range fireRule(r, s, lookup) {
				fr.add(p.pred, p.args)
				added++
			}
		}

		// Phase B: chase the symmetry rules to a local fixpoint so that a
		// symmetric rewrite of a fact derived this round is itself visible
		// to further symmetry rewrites without waiting for another full
		// round, matching the evaluator's "symmetry rules fired to a local
		// fixpoint within each round" requirement.
		wave := fr
		for !wave.empty() {
			next := newFrontier()
			waveLookup := wave.lookup()
			progressed := false
			for _, r := range symRules {
				for _, p := range fireRule(r, s, waveLookup) {
					next.add(p.pred, p.args)
					fr.add(p.pred, p.args)
					progressed = true
					added++
				}
			}
			if !progressed {
				break
			}
			wave = next
		}

		log.Debug("round complete", zap.Int("round", round), zap.Int("facts_added", added))
		if added == 0 {
			break
		}

		for pred, r := range s.rel {
			r.setDelta(fr.rowsFor(pred))
		}
	}

	d.ran = true
	log.Info("run complete",
		zap.Int("rounds", round),
		zap.Duration("elapsed", time.Since(start)),
	)
}
