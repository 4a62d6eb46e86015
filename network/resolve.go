// SPDX-License-Identifier: MIT

package network

import "errors"

// Endpoint is one resolved bus reference of one piece of equipment.
type Endpoint struct {
	Kind      Kind
	Equipment string
	Bus       BusRef
	Index     int
}

// Resolve turns every equipment bus reference into a registry index.
//
// Implementation:
//   - Stage 1: Snapshot the references of branches, generators and loads in
//     deterministic order (kind, then name, then Bus1 before Bus2).
//   - Stage 2: Look each one up in res; failures become
//     *UnresolvedReferenceError values carrying the equipment kind and name.
//
// Returns every endpoint that resolved, plus all failures joined with
// errors.Join (nil when everything resolved). Buses themselves are not
// endpoints: a bus is indexed at construction.
//
// This is the consumer-side check the Circuit deliberately does not perform.
// A reference can resolve to a bus declared in a different Circuit sharing
// the same registry, or to the later of two same-named buses.
func (c *Circuit) Resolve(res IndexResolver) ([]Endpoint, error) {
	refs := c.references()

	out := make([]Endpoint, 0, len(refs))
	var errs []error
	for _, ep := range refs {
		idx, ok := res.Lookup(ep.Bus.Name())
		if !ok {
			errs = append(errs, &UnresolvedReferenceError{Kind: ep.Kind, Equipment: ep.Equipment, Bus: ep.Bus})
			continue
		}
		ep.Index = idx
		out = append(out, ep)
	}

	return out, errors.Join(errs...)
}

// references lists unresolved endpoints (Index unset) under the read lock.
func (c *Circuit) references() []Endpoint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	refs := make([]Endpoint, 0, 2*(len(c.transformers)+len(c.transmissionLines))+len(c.generators)+len(c.loads))
	for _, name := range c.keysLocked(KindTransformer) {
		t := c.transformers[name]
		refs = append(refs,
			Endpoint{Kind: KindTransformer, Equipment: name, Bus: t.Bus1},
			Endpoint{Kind: KindTransformer, Equipment: name, Bus: t.Bus2})
	}
	for _, name := range c.keysLocked(KindTransmissionLine) {
		l := c.transmissionLines[name]
		refs = append(refs,
			Endpoint{Kind: KindTransmissionLine, Equipment: name, Bus: l.Bus1},
			Endpoint{Kind: KindTransmissionLine, Equipment: name, Bus: l.Bus2})
	}
	for _, name := range c.keysLocked(KindGenerator) {
		refs = append(refs, Endpoint{Kind: KindGenerator, Equipment: name, Bus: c.generators[name].Bus1})
	}
	for _, name := range c.keysLocked(KindLoad) {
		refs = append(refs, Endpoint{Kind: KindLoad, Equipment: name, Bus: c.loads[name].Bus1})
	}

	return refs
}
