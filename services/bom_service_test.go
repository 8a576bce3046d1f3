package services

import (
	"testing"

	"olympus-app/types"

	"github.com/stretchr/testify/assert"
)

func TestBuildAvailabilityAllInStock(t *testing.T) {
	weights := types.GramMap{"obsidian": 20, "gold": 0.5}
	onHand := map[string]float64{"obsidian": 500, "gold": 10}

	result := BuildAvailability(weights, 10, onHand)

	assert.True(t, result.AllAvailable)
	assert.Empty(t, result.UnavailableMaterials)
	assert.Len(t, result.Items, 2)

	for _, item := range result.Items {
		assert.True(t, item.IsAvailable, item.Material)
		switch item.Material {
		case "obsidian":
			assert.InDelta(t, 200, item.RequestedGrams, 0.001)
		case "gold":
			assert.InDelta(t, 5, item.RequestedGrams, 0.001)
		}
	}
}

func TestBuildAvailabilityShortMaterial(t *testing.T) {
	weights := types.GramMap{"obsidian": 20, "gold": 0.5}
	onHand := map[string]float64{"obsidian": 100, "gold": 10}

	result := BuildAvailability(weights, 10, onHand)

	assert.False(t, result.AllAvailable)
	assert.Equal(t, []string{"obsidian"}, result.UnavailableMaterials)
}

func TestBuildAvailabilityUnknownMaterialCountsAsZero(t *testing.T) {
	weights := types.GramMap{"ruby": 3}

	result := BuildAvailability(weights, 1, map[string]float64{})

	assert.False(t, result.AllAvailable)
	assert.Len(t, result.Items, 1)
	assert.Zero(t, result.Items[0].AvailableGrams)
}

func TestBuildAvailabilityBoundary(t *testing.T) {
	weights := types.GramMap{"marble": 25}
	onHand := map[string]float64{"marble": 100}

	// exactly enough grams is available
	result := BuildAvailability(weights, 4, onHand)
	assert.True(t, result.AllAvailable)

	result = BuildAvailability(weights, 5, onHand)
	assert.False(t, result.AllAvailable)
}

func TestBuildAvailabilityZeroWeightSkipped(t *testing.T) {
	weights := types.GramMap{"marble": 0}

	result := BuildAvailability(weights, 3, map[string]float64{})

	assert.True(t, result.AllAvailable)
	assert.Empty(t, result.Items)
}

func TestBuildAvailabilityClampsCount(t *testing.T) {
	weights := types.GramMap{"onyx": 10}
	onHand := map[string]float64{"onyx": 10}

	result := BuildAvailability(weights, 0, onHand)

	assert.True(t, result.AllAvailable)
	assert.InDelta(t, 10, result.Items[0].RequestedGrams, 0.001)
}
