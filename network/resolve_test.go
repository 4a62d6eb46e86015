// SPDX-License-Identifier: MIT
package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/network"
	"github.com/katalvlaran/gridtopo/registry"
)

func TestResolve_AllResolved(t *testing.T) {
	c, reg := newCircuit(t, "resolved")
	require.NoError(t, c.AddBus("Bus_1", 20))
	require.NoError(t, c.AddBus("Bus_2", 230))
	require.NoError(t, c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.1))
	require.NoError(t, c.AddGenerator("G1", "Bus_1", 1.04, 100))
	require.NoError(t, c.AddLoad("L1", "Bus_2", 50, 30))

	eps, err := c.Resolve(reg)
	require.NoError(t, err)
	assert.Equal(t, []network.Endpoint{
		{Kind: network.KindTransformer, Equipment: "T1", Bus: "Bus_1", Index: 0},
		{Kind: network.KindTransformer, Equipment: "T1", Bus: "Bus_2", Index: 1},
		{Kind: network.KindGenerator, Equipment: "G1", Bus: "Bus_1", Index: 0},
		{Kind: network.KindLoad, Equipment: "L1", Bus: "Bus_2", Index: 1},
	}, eps)
}

func TestResolve_CollectsEveryFailure(t *testing.T) {
	c, reg := newCircuit(t, "dangling")
	require.NoError(t, c.AddBus("Bus_1", 20))
	require.NoError(t, c.AddTransmissionLine("Line_1", "Bus_1", "Bus_3", 0.02, 0.25, 0, 0.04))
	require.NoError(t, c.AddLoad("L1", "Bus_999", 50, 30))

	eps, err := c.Resolve(reg)
	require.Error(t, err)
	require.ErrorIs(t, err, network.ErrUnresolvedReference)
	require.Len(t, eps, 1)
	assert.Equal(t, "Line_1", eps[0].Equipment)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)

	var first, second *network.UnresolvedReferenceError
	require.True(t, errors.As(errs[0], &first))
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, network.UnresolvedReferenceError{Kind: network.KindTransmissionLine, Equipment: "Line_1", Bus: "Bus_3"}, *first)
	assert.Equal(t, network.UnresolvedReferenceError{Kind: network.KindLoad, Equipment: "L1", Bus: "Bus_999"}, *second)
	assert.Equal(t, `network: Load "L1" references unregistered bus "Bus_999"`, second.Error())
}

func TestResolve_FollowsRegistryShadowing(t *testing.T) {
	reg := registry.New()
	a := network.NewCircuit("A", network.WithRegistry(reg))
	b := network.NewCircuit("B", network.WithRegistry(reg))
	require.NoError(t, a.AddBus("Hub", 20))
	require.NoError(t, a.AddLoad("L1", "Hub", 1, 1))
	require.NoError(t, b.AddBus("Hub", 230))

	eps, err := a.Resolve(reg)
	require.NoError(t, err)
	require.Len(t, eps, 1)
	assert.Equal(t, 1, eps[0].Index, "the later Hub in circuit B wins the name")
}

func TestResolve_Empty(t *testing.T) {
	c, reg := newCircuit(t, "empty")
	eps, err := c.Resolve(reg)
	require.NoError(t, err)
	assert.Empty(t, eps)
}
