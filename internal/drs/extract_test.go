package drs

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAttr(t *testing.T) {
	re := regexp.MustCompile(`/day/|/mon/`)

	v, ok := ExtractAttr("/data/cmip5/day/atmos/tas.nc", re, "/")
	assert.True(t, ok)
	assert.Equal(t, "day", v)

	// Without strip chars the separators stay.
	v, ok = ExtractAttr("/data/cmip5/mon/atmos/tas.nc", re, "")
	assert.True(t, ok)
	assert.Equal(t, "/mon/", v)

	_, ok = ExtractAttr("/data/cmip5/yr/atmos/tas.nc", re, "/")
	assert.False(t, ok)
}
