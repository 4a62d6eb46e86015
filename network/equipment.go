// SPDX-License-Identifier: MIT

package network

import "fmt"

// Transformer connects two buses through a series impedance r + jx.
// Bus1 is conventionally the high-voltage side.
type Transformer struct {
	Name string
	Bus1 BusRef
	Bus2 BusRef
	R    float64 // resistance
	X    float64 // reactance
}

func (t *Transformer) String() string {
	return fmt.Sprintf("Transformer(name='%s', bus1='%s', bus2='%s', r=%s, x=%s)",
		t.Name, t.Bus1, t.Bus2, formatFloat(t.R), formatFloat(t.X))
}

// TransmissionLine connects two buses through a series impedance r + jx and
// a shunt admittance g + jb.
type TransmissionLine struct {
	Name string
	Bus1 BusRef
	Bus2 BusRef
	R    float64 // series resistance
	X    float64 // series reactance
	G    float64 // shunt conductance
	B    float64 // shunt susceptance
}

func (l *TransmissionLine) String() string {
	return fmt.Sprintf("TransmissionLine(name='%s', bus1='%s', bus2='%s', r=%s, x=%s, g=%s, b=%s)",
		l.Name, l.Bus1, l.Bus2, formatFloat(l.R), formatFloat(l.X), formatFloat(l.G), formatFloat(l.B))
}

// Generator holds a voltage magnitude setpoint (p.u.) and an active power
// setpoint (MW) at one bus.
type Generator struct {
	Name            string
	Bus1            BusRef
	VoltageSetpoint float64
	MWSetpoint      float64
}

func (g *Generator) String() string {
	return fmt.Sprintf("Generator(name='%s', bus='%s', v_setpoint=%s, mw=%s)",
		g.Name, g.Bus1, formatFloat(g.VoltageSetpoint), formatFloat(g.MWSetpoint))
}

// Load draws MW of active and MVAR of reactive power at one bus.
type Load struct {
	Name string
	Bus1 BusRef
	MW   float64
	MVAR float64
}

func (l *Load) String() string {
	return fmt.Sprintf("Load(name='%s', bus='%s', mw=%s, mvar=%s)",
		l.Name, l.Bus1, formatFloat(l.MW), formatFloat(l.MVAR))
}

// Branch is a by-value view over a transformer or transmission line, used by
// consumers that treat both as edges between two buses. G and B are zero for
// transformers.
type Branch struct {
	Kind Kind
	Name string
	Bus1 BusRef
	Bus2 BusRef
	R, X float64
	G, B float64
}

// ID returns "<Kind>/<Name>", unique across both branch collections.
func (b Branch) ID() string { return b.Kind.String() + "/" + b.Name }

// IsLoop reports whether both ends reference the same bus name.
func (b Branch) IsLoop() bool { return b.Bus1 == b.Bus2 }
