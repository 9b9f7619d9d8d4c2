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

// Package provgraph renders a fact's derivation tree, read back from an
// already-closed geo.Database, as a Graphviz graph. It never touches the
// fixpoint evaluator or the rule base; it only walks Derivation.Parents
// through the database's public Get*/Fact accessors.
package provgraph

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/kevinawalsh/geodeduce/pkg/geo"
)

// factLookup is the subset of *geo.Database this package depends on, so
// tests can supply a small fixture instead of a real closed database.
type factLookup interface {
	Fact(id string) (geo.Fact, bool)
}

// Build walks the derivation tree rooted at rootID and returns a directed
// Graphviz graph: one node per fact reached (labelled with its fact-id
// string), one edge per (parent, rule, child) triple contributed by a
// Derivation, labelled with the rule tag. Axiom and rfl facts, having no
// parents, are rendered as filled leaf nodes. The walk is cycle-safe via a
// visited set; derivations do form cycles (a sym rewrite and its source each
// list the other as a parent).
func Build(db factLookup, rootID string) (*dot.Graph, error) {
	root, ok := db.Fact(rootID)
	if !ok {
		return nil, fmt.Errorf("provgraph: no such fact %q", rootID)
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "BT")

	nodes := make(map[string]dot.Node)
	nodeFor := func(id string, leaf bool) dot.Node {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := g.Node(id).Label(id)
		if leaf {
			n.Attr("style", "filled").Attr("shape", "box")
		}
		nodes[id] = n
		return n
	}

	visited := make(map[string]bool)
	var walk func(id string, f geo.Fact)
	walk = func(id string, f geo.Fact) {
		if visited[id] {
			return
		}
		visited[id] = true

		isLeaf := isLeafFact(f)
		child := nodeFor(id, isLeaf)

		for _, d := range f.Derivations {
			for _, parentID := range d.Parents {
				parent, ok := db.Fact(parentID)
				if !ok {
					continue
				}
				walk(parentID, parent)
				edge := g.Edge(nodeFor(parentID, isLeafFact(parent)), child)
				edge.Label(d.Rule)
			}
		}
	}
	walk(rootID, root)

	return g, nil
}

// isLeafFact reports whether f has at least one derivation with no parents
// (an axiom or a trivial rfl statement), making it a natural leaf in the
// rendered tree even if it also has other, non-leaf derivations.
func isLeafFact(f geo.Fact) bool {
	for _, d := range f.Derivations {
		if len(d.Parents) == 0 {
			return true
		}
	}
	return false
}
