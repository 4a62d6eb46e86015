// SPDX-License-Identifier: MIT

package network

// View is a point-in-time copy of a Circuit. Every slice is sorted by name
// and all of them were taken under one read lock, so a View never pairs a
// collection with a later state of another.
//
// Buses are shared (a Bus is immutable); equipment values are copies.
type View struct {
	Name       string
	Buses      []*Bus
	Branches   []Branch
	Generators []Generator
	Loads      []Load
}

// View returns a consistent copy of every collection.
// Complexity: O(N log N) over all entities.
func (c *Circuit) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := View{
		Name:       c.name,
		Buses:      make([]*Bus, 0, len(c.buses)),
		Branches:   c.branchesLocked(),
		Generators: make([]Generator, 0, len(c.generators)),
		Loads:      make([]Load, 0, len(c.loads)),
	}
	for _, name := range c.keysLocked(KindBus) {
		v.Buses = append(v.Buses, c.buses[name])
	}
	for _, name := range c.keysLocked(KindGenerator) {
		v.Generators = append(v.Generators, *c.generators[name])
	}
	for _, name := range c.keysLocked(KindLoad) {
		v.Loads = append(v.Loads, *c.loads[name])
	}

	return v
}
