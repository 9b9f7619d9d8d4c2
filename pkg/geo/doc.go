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

// Package geo implements a forward-chaining deductive database for synthetic
// Euclidean geometry. Callers add named points and axiomatic facts about
// collinearity, parallelism, congruence, and the like, then call Run to
// saturate a fixed rule base of classical theorems (AA similarity, SAS/ASA/
// SSS/Right-SSA congruence, Thales, inscribed angle, transitivity and
// transversal rules, and the symmetries of every predicate). The result is a
// frozen snapshot of every fact in the closure, each tagged with the set of
// distinct rule derivations that justify it.
package geo
