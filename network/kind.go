// SPDX-License-Identifier: MIT

package network

import "strconv"

// Kind names one of the five equipment collections of a Circuit.
type Kind uint8

// Collection kinds, in the order Circuit enumerates them.
const (
	KindBus Kind = iota
	KindTransformer
	KindTransmissionLine
	KindGenerator
	KindLoad
)

var kindNames = [...]string{
	KindBus:              "Bus",
	KindTransformer:      "Transformer",
	KindTransmissionLine: "TransmissionLine",
	KindGenerator:        "Generator",
	KindLoad:             "Load",
}

// Kinds returns every collection kind in enumeration order.
func Kinds() []Kind {
	return []Kind{KindBus, KindTransformer, KindTransmissionLine, KindGenerator, KindLoad}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsBranch reports whether equipment of this kind connects two buses.
func (k Kind) IsBranch() bool {
	return k == KindTransformer || k == KindTransmissionLine
}
