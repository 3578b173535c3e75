package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_AllNames_ReturnMatchingPolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		t.Run(name, func(t *testing.T) {
			p, err := NewPolicy(name, PolicyParams{Quantum: DefaultQuantum})
			require.NoError(t, err)
			assert.Equal(t, name, p.Name())
			assert.Equal(t, 0, p.Ready())
		})
	}
}

func TestNewPolicy_UnknownName_ListsValidNames(t *testing.T) {
	_, err := NewPolicy("lottery", PolicyParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lottery")
	assert.Contains(t, err.Error(), "priority-preemptive")
}

func TestNewPolicy_RoundRobinWithoutQuantum_InvalidParameter(t *testing.T) {
	_, err := NewPolicy(PolicyRoundRobin, PolicyParams{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewPolicy_MLFQQuantumsPassedThrough(t *testing.T) {
	p, err := NewPolicy(PolicyMLFQ, PolicyParams{Quantums: []int64{5, 10}})
	require.NoError(t, err)
	m, ok := p.(*MLFQPolicy)
	require.True(t, ok)
	assert.Equal(t, []int64{5, 10}, m.Quantums)
}

func TestPolicyNames_MatchesValidPolicies(t *testing.T) {
	names := PolicyNames()
	assert.Len(t, names, len(ValidPolicies))
	for _, n := range names {
		assert.True(t, IsValidPolicy(n), n)
	}
	assert.False(t, IsValidPolicy(""))

	// the returned slice is a copy
	names[0] = "mutated"
	assert.Equal(t, PolicyFCFS, PolicyNames()[0])
}

func TestRequiresPriority(t *testing.T) {
	assert.True(t, RequiresPriority(PolicyPriority))
	assert.True(t, RequiresPriority(PolicyPriorityPreemptive))
	assert.False(t, RequiresPriority(PolicySRTF))
}

func TestRunNamed_MatchesDirectEntryPoint(t *testing.T) {
	procs := testRandomProcesses(5, 20, 30, 10)
	direct, err := RoundRobin(procs, 3)
	require.NoError(t, err)
	named, err := RunNamed(PolicyRoundRobin, procs, PolicyParams{Quantum: 3})
	require.NoError(t, err)
	assert.Equal(t, direct, named)
}
