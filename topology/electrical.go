// SPDX-License-Identifier: MIT

package topology

import (
	"container/heap"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ElectricalPath returns the route from one bus to another that minimizes the
// summed branch impedance magnitude |R + jX|, together with that sum.
//
// Between parallel branches the lowest impedance one is used. Ties between
// routes resolve to the one reached first when neighbors are relaxed in
// sorted order, so results are reproducible.
//
// Implementation:
//   - Stage 1: dist[v] = +Inf, dist[from] = 0, push from onto a min-heap.
//   - Stage 2: Pop the closest unvisited bus, finalize it, relax its neighbors.
//     Stale heap entries are skipped (lazy decrease-key).
//   - Stage 3: Walk prev back from to.
//
// Errors: ErrBusNotFound, or ErrNoPath when to is unreachable.
// Complexity: O((V + E) log V).
func (g *Graph) ElectricalPath(from, to string) ([]string, float64, error) {
	if !g.HasBus(from) {
		return nil, 0, fmt.Errorf("ElectricalPath(%s): %w", from, ErrBusNotFound)
	}
	if !g.HasBus(to) {
		return nil, 0, fmt.Errorf("ElectricalPath(%s): %w", to, ErrBusNotFound)
	}

	// Stage 1: initialize.
	dist := make(map[string]float64, len(g.vertices))
	for id := range g.vertices {
		dist[id] = math.Inf(1)
	}
	dist[from] = 0
	prev := make(map[string]string)
	visited := make(map[string]bool, len(g.vertices))
	pq := &busPQ{}
	heap.Push(pq, &busItem{id: from})

	// Stage 2: settle buses in distance order.
	for pq.Len() > 0 {
		u := heap.Pop(pq).(*busItem).id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == to {
			break
		}
		for _, v := range slices.Sorted(maps.Keys(g.adjacency[u])) {
			if visited[v] {
				continue
			}
			nd := dist[u] + g.minImpedance(u, v)
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, &busItem{id: v, dist: nd})
			}
		}
	}

	// Stage 3: reconstruct.
	if math.IsInf(dist[to], 1) {
		return nil, 0, fmt.Errorf("ElectricalPath(%s, %s): %w", from, to, ErrNoPath)
	}
	var path []string
	for cur := to; cur != from; cur = prev[cur] {
		path = append(path, cur)
	}
	path = append(path, from)
	slices.Reverse(path)

	return path, dist[to], nil
}

// minImpedance is the smallest |Z| among the parallel branches between u and v.
func (g *Graph) minImpedance(u, v string) float64 {
	best := math.Inf(1)
	for id := range g.adjacency[u][v] {
		best = min(best, g.edges[id].Impedance())
	}

	return best
}

// busItem is a heap entry: a bus and its tentative distance.
type busItem struct {
	id   string
	dist float64
}

// busPQ is a min-heap of *busItem ordered by dist.
type busPQ []*busItem

func (pq busPQ) Len() int            { return len(pq) }
func (pq busPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq busPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *busPQ) Push(x interface{}) { *pq = append(*pq, x.(*busItem)) }

func (pq *busPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
