// SPDX-License-Identifier: MIT

package topology

import (
	"maps"
	"slices"
	"strings"
)

// Bridges returns the branches whose loss would split an island in two,
// sorted by ID. In a radial feeder every branch is a bridge; in a meshed
// network none is. Parallel branches and self-loops are never bridges.
//
// Implementation:
//   - Stage 1: DFS from every unvisited bus in sorted order, assigning
//     discovery times.
//   - Stage 2: low[u] is the earliest discovery time reachable from u's
//     subtree using at most one back edge. The tree edge u→v is a bridge
//     when low[v] > disc[u]. The edge used to enter a bus is skipped by ID,
//     not by parent bus, so a parallel branch still counts as a back edge.
//
// Complexity: O(V log V + E).
func (g *Graph) Bridges() []Edge {
	b := &bridgeWalker{
		g:    g,
		disc: make(map[string]int, len(g.vertices)),
		low:  make(map[string]int, len(g.vertices)),
	}
	for _, id := range g.Buses() {
		if _, seen := b.disc[id]; !seen {
			b.visit(id, "")
		}
	}
	slices.SortFunc(b.out, func(x, y Edge) int { return strings.Compare(x.ID, y.ID) })

	return b.out
}

type bridgeWalker struct {
	g    *Graph
	time int
	disc map[string]int
	low  map[string]int
	out  []Edge
}

// visit explores u, entered through edge via ("" for a DFS root).
func (b *bridgeWalker) visit(u, via string) {
	b.disc[u] = b.time
	b.low[u] = b.time
	b.time++

	for _, v := range slices.Sorted(maps.Keys(b.g.adjacency[u])) {
		if v == u {
			continue
		}
		for _, eid := range slices.Sorted(maps.Keys(b.g.adjacency[u][v])) {
			if eid == via {
				continue
			}
			if _, seen := b.disc[v]; seen {
				b.low[u] = min(b.low[u], b.disc[v])
				continue
			}
			b.visit(v, eid)
			b.low[u] = min(b.low[u], b.low[v])
			if b.low[v] > b.disc[u] {
				b.out = append(b.out, *b.g.edges[eid])
			}
		}
	}
}
