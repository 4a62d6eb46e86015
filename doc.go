// SPDX-License-Identifier: MIT

// Package gridtopo models the topology of an electrical power network:
// buses, the equipment connected between them, and the circuits that group
// them.
//
// Equipment refers to buses by name only. A bus is given a sequential index
// by a bus registry when it is constructed; references are turned into
// indices lazily, by whoever consumes the model.
//
// Subpackages:
//
//	registry/      bus name → index registry, explicit or process-wide Default
//	network/       Bus, Transformer, TransmissionLine, Generator, Load, Circuit
//	topology/      read-only bus/branch multigraph; islands, neighbors, paths
//	matrix/        Dense matrix and the bus-by-branch incidence matrix
//	builder/       deterministic fixture circuits (radial, ring, substation)
//	observability/ Prometheus collector for registry and circuit activity
//
// Quick start:
//
//	reg := registry.New()
//	c := network.NewCircuit("Two Bus", network.WithRegistry(reg))
//	_ = c.AddBus("Bus_1", 20)
//	_ = c.AddBus("Bus_2", 230)
//	_ = c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.10)
//	g, _ := topology.FromCircuit(c)
//	fmt.Println(g.Islands()) // [[Bus_1 Bus_2]]
//
// Out of scope: power-flow solving, per-unit conversion, admittance
// matrices, file formats.
package gridtopo
