// SPDX-License-Identifier: MIT

package network

// IndexResolver turns a bus name into its index. *registry.Registry
// satisfies it.
type IndexResolver interface {
	Lookup(name string) (int, bool)
}

// BusRef is a weak reference to a bus by name. It carries no ownership and
// is not checked against any Circuit; the index is resolved only on demand.
type BusRef string

// Name returns the referenced bus name.
func (r BusRef) Name() string { return string(r) }

func (r BusRef) String() string { return string(r) }

// Resolve looks the reference up in res.
// An unknown name yields an *UnresolvedReferenceError.
func (r BusRef) Resolve(res IndexResolver) (int, error) {
	if idx, ok := res.Lookup(string(r)); ok {
		return idx, nil
	}

	return 0, &UnresolvedReferenceError{Bus: r}
}
