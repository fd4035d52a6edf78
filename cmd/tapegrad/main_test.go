package main

import (
	"testing"

	"github.com/born-ml/tapegrad/backend/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("nearest")
	require.NoError(t, err)
	assert.Equal(t, cpu.NearestNeighbor{}, m)

	m, err = parseMethod("bilinear")
	require.NoError(t, err)
	assert.Equal(t, cpu.Bilinear{}, m)

	_, err = parseMethod("bicubic")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	require.NoError(t, demo([]string{"-dtype", "float64", "-method", "bilinear", "-size", "6"}))
	require.NoError(t, demo([]string{"-size", "9"}))
	assert.Error(t, demo([]string{"-dtype", "int8"}))
	assert.Error(t, demo([]string{"-method", "cubic"}))
}
