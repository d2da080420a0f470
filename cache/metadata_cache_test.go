package metadata_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingofshadpow/SOS-Auto/models"
)

func TestCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)

	Set(models.FilterMetadata{Brands: []string{"Bosch", "Valeo"}})

	got, ok := Get()
	require.True(t, ok)
	assert.Equal(t, []string{"Bosch", "Valeo"}, got.Brands)
}

func TestInvalidateDropsEntry(t *testing.T) {
	Set(models.FilterMetadata{Brands: []string{"Mann"}})
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}
