// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"fmt"

	lvgraph "github.com/katalvlaran/lvlath/graph/core"
)

// ToGraph renders a snapshot of the DFA as a directed graph: one vertex per
// interned DFAState, one edge per symbol transition and one per context-edge
// (§6: "A diagnostic serializer may render DFAs as directed graphs; no
// compatibility promise beyond human-readability"). This is a point-in-time
// snapshot — a DFA under concurrent construction may grow further edges after
// ToGraph returns.
func (d *DFA) ToGraph() *lvgraph.Graph {
	g := lvgraph.NewGraph(true, true)
	states := d.States()
	for _, s := range states {
		g.AddVertex(&lvgraph.Vertex{
			ID: vertexID(s),
			Metadata: map[string]interface{}{
				"accept": s.IsAcceptState(),
				"size":   s.Configs.Size(),
			},
		})
	}
	for _, s := range states {
		edges, contextEdges := s.snapshotEdges()
		for sym, target := range edges.ToMap() {
			g.AddEdge(vertexID(s), vertexID(target), int64(sym))
		}
		for inv, target := range contextEdges.ToMap() {
			g.AddEdge(vertexID(s), vertexID(target), int64(inv))
		}
	}
	return g
}

func vertexID(s *DFAState) string {
	return fmt.Sprintf("s%d", s.StateNumber)
}
