// SPDX-License-Identifier: MIT

// Package network is the topology data model of an electrical power network.
//
// A Circuit owns five independent, name-keyed collections:
//
//	buses               – network nodes, each carrying a registry index
//	transformers        – two-bus series impedance r + jx
//	transmission lines  – two-bus series impedance r + jx plus shunt g + jb
//	generators          – one-bus voltage and active-power setpoints
//	loads               – one-bus active and reactive demand
//
// Circuit is the only creation path for these entities. Each Add* method
// rejects a name already present in its own collection with a
// *DuplicateEntityError and leaves the collection untouched. The same name may
// be reused across collections.
//
// Equipment refers to buses by name through a BusRef. The reference is weak:
// Circuit never checks that the bus exists, and dangling references, self
// loops and non-physical parameter values are accepted as-is. Consumers that
// need indices resolve references lazily through an IndexResolver (usually a
// *registry.Registry) and receive an *UnresolvedReferenceError for names the
// registry does not know.
//
// Bus indices come from a registry.Registry. Unless WithRegistry is given, a
// Circuit uses registry.Default(), which is shared by every Circuit in the
// process.
//
// Concurrency: a Circuit guards its collections with one sync.RWMutex.
// Equipment values handed out by getters are live pointers; their fields are
// deliberately mutable and are not protected by the Circuit lock.
package network
