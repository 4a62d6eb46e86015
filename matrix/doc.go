// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major Dense matrix and the bus-by-branch
// incidence matrix of a network.Circuit.
//
// Rows of an Incidence are bus indices as assigned by the bus registry, so a
// matrix built from several circuits sharing one registry lines up row for
// row. Columns follow network.Circuit.Branches order: transformers first,
// then transmission lines, each sorted by name.
//
// Sign convention: +1 in the Bus1 row, -1 in the Bus2 row. A self-loop
// branch leaves its column zero.
package matrix
