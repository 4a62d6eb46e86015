// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Incidence marks.
const (
	bus1Mark = +1.0
	bus2Mark = -1.0
)

// Incidence is the bus-by-branch incidence matrix of a circuit.
// Mat has one row per registry index and one column per entry of Branches.
type Incidence struct {
	Mat      *Dense
	Branches []network.Branch

	res     network.IndexResolver
	columns map[string]int // branch ID → column
}

// NewIncidence builds the incidence matrix of c against res.
//
// rows is the number of bus indices to cover, normally the registry's
// Next(). Bus references are resolved here, lazily; the Circuit itself never
// checks them.
//
// Implementation:
//   - Stage 1: Snapshot c.Branches() and allocate rows × len(branches).
//   - Stage 2: For each branch column resolve Bus1 and Bus2, then write +1
//     and -1. A self-loop column stays zero.
//
// Errors:
//   - ErrNilCircuit if c is nil.
//   - ErrInvalidDimensions if rows <= 0 or the circuit has no branches.
//   - *network.UnresolvedReferenceError for the first reference res cannot resolve.
//   - ErrOutOfRange if a resolved index is >= rows.
func NewIncidence(c *network.Circuit, res network.IndexResolver, rows int) (*Incidence, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	branches := c.Branches()
	mat, err := NewDense(rows, len(branches))
	if err != nil {
		return nil, fmt.Errorf("NewIncidence(%s): %w", c.Name(), err)
	}

	inc := &Incidence{
		Mat:      mat,
		Branches: branches,
		res:      res,
		columns:  make(map[string]int, len(branches)),
	}
	for j, br := range branches {
		inc.columns[br.ID()] = j

		i1, err := resolve(res, br, br.Bus1)
		if err != nil {
			return nil, fmt.Errorf("NewIncidence(%s): %w", c.Name(), err)
		}
		i2, err := resolve(res, br, br.Bus2)
		if err != nil {
			return nil, fmt.Errorf("NewIncidence(%s): %w", c.Name(), err)
		}
		if i1 == i2 {
			// Self-loop: nothing to write, but the index must still fit.
			if _, err = mat.At(i1, j); err != nil {
				return nil, fmt.Errorf("NewIncidence(%s): %s: %w", c.Name(), br.ID(), err)
			}
			continue
		}
		if err = mat.Set(i1, j, bus1Mark); err != nil {
			return nil, fmt.Errorf("NewIncidence(%s): %s: %w", c.Name(), br.ID(), err)
		}
		if err = mat.Set(i2, j, bus2Mark); err != nil {
			return nil, fmt.Errorf("NewIncidence(%s): %s: %w", c.Name(), br.ID(), err)
		}
	}

	return inc, nil
}

func resolve(res network.IndexResolver, br network.Branch, ref network.BusRef) (int, error) {
	idx, ok := res.Lookup(ref.Name())
	if !ok {
		return 0, &network.UnresolvedReferenceError{Kind: br.Kind, Equipment: br.Name, Bus: ref}
	}

	return idx, nil
}

// Column returns the column of branch id, e.g. "TransmissionLine/Line_1".
func (inc *Incidence) Column(id string) ([]float64, error) {
	j, ok := inc.columns[id]
	if !ok {
		return nil, fmt.Errorf("Incidence.Column(%s): %w", id, ErrUnknownBranch)
	}

	return inc.Mat.Col(j)
}

// RowOf returns the row of bus, resolved through the same resolver the
// matrix was built with.
func (inc *Incidence) RowOf(bus string) ([]float64, error) {
	i, err := network.BusRef(bus).Resolve(inc.res)
	if err != nil {
		return nil, fmt.Errorf("Incidence.RowOf: %w", err)
	}

	return inc.Mat.Row(i)
}

// Degree returns the number of non-loop branches incident to bus.
func (inc *Incidence) Degree(bus string) (int, error) {
	row, err := inc.RowOf(bus)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range row {
		if v != 0 {
			n++
		}
	}

	return n, nil
}
