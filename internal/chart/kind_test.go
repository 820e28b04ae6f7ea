package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, in := range []string{"Line", "line", " LINE "} {
		k, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, Line, k)
	}

	k, err := ParseKind("Scatter")
	require.NoError(t, err)
	assert.Equal(t, Scatter, k)

	k, err = ParseKind("bar")
	require.NoError(t, err)
	assert.Equal(t, Bar, k)

	_, err = ParseKind("Pie")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"Line", "Scatter", "Bar"}, Labels())
	assert.Equal(t, "", Kind("").Label())
}
