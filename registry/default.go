// SPDX-License-Identifier: MIT

package registry

// defaultRegistry is the process-wide index space used when a caller does not
// supply its own Registry. It is created at package init and lives for the
// whole process.
var defaultRegistry = New()

// Default returns the process-wide Registry.
func Default() *Registry { return defaultRegistry }

// Register assigns the next index in the process-wide Registry.
func Register(name string) int { return defaultRegistry.Register(name) }

// Lookup resolves name in the process-wide Registry.
func Lookup(name string) (int, bool) { return defaultRegistry.Lookup(name) }

// Reset clears the process-wide Registry. Independent scenarios that share the
// default registry must call it between runs to get a clean index space.
func Reset() { defaultRegistry.Reset() }
