// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/gridtopo/internal/logging"
	"github.com/katalvlaran/gridtopo/registry"
)

// Recorder receives collection sizes after every successful Add* call.
// It is called with the circuit's write lock held and must not call back
// into the Circuit. observability.Collector implements it.
type Recorder interface {
	SetEntityCount(circuit, kind string, n int)
}

// Option configures a Circuit at construction.
type Option func(c *Circuit)

// WithRegistry makes the Circuit index its buses in reg instead of
// registry.Default(). Circuits sharing reg share one index space.
func WithRegistry(reg *registry.Registry) Option {
	if reg == nil {
		panic("network: WithRegistry(nil)")
	}
	return func(c *Circuit) { c.reg = reg }
}

// WithLogger routes circuit events to log.
func WithLogger(log logging.Logger) Option {
	if log == nil {
		panic("network: WithLogger(nil)")
	}
	return func(c *Circuit) { c.log = log }
}

// WithRecorder attaches a Recorder fed with collection sizes.
func WithRecorder(rec Recorder) Option {
	if rec == nil {
		panic("network: WithRecorder(nil)")
	}
	return func(c *Circuit) { c.recorder = rec }
}
