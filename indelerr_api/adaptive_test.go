package indelerr_api

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptiveIndelErrorModelEndpoints(t *testing.T) {
	low := AdaptiveIndelErrorModelLogParams{LogErrorRate: math.Log(1e-4), LogNoisyLocusRate: math.Log(0.05)}
	high := AdaptiveIndelErrorModelLogParams{LogErrorRate: math.Log(3e-2), LogNoisyLocusRate: math.Log(0.3)}
	model := NewAdaptiveIndelErrorModel(1, 2, 16, low, high)

	assert.EqualValues(t, 1, model.RepeatPatternSize())
	assert.Equal(t, low.LogErrorRate, model.LogErrorRate(2))
	assert.Equal(t, high.LogErrorRate, model.LogErrorRate(16))
	assert.Equal(t, math.Exp(low.LogErrorRate), model.ErrorRate(2))
	assert.Equal(t, math.Exp(high.LogErrorRate), model.ErrorRate(16))
	assert.Equal(t, math.Exp(low.LogNoisyLocusRate), model.NoisyLocusRate(2))
	assert.Equal(t, math.Exp(high.LogNoisyLocusRate), model.NoisyLocusRate(16))

	// linear in log space
	assert.InDelta(t, (low.LogErrorRate+high.LogErrorRate)/2, model.LogErrorRate(9), 1e-12)
}

func TestAdaptiveIndelErrorModelIntermediate(t *testing.T) {
	low := AdaptiveIndelErrorModelLogParams{LogErrorRate: math.Log(5e-3), LogNoisyLocusRate: math.Log(0.02)}
	high := AdaptiveIndelErrorModelLogParams{LogErrorRate: math.Log(1e-3), LogNoisyLocusRate: math.Log(0.4)}
	model := NewAdaptiveIndelErrorModel(2, 2, 8, low, high)

	prevError := model.ErrorRate(2)
	prevNoise := model.NoisyLocusRate(2)
	for repeatCount := uint(3); repeatCount <= 8; repeatCount++ {
		errorRate := model.ErrorRate(repeatCount)
		noise := model.NoisyLocusRate(repeatCount)
		assert.True(t, errorRate <= 5e-3+1e-15 && errorRate >= 1e-3-1e-15, "repeat count %d", repeatCount)
		assert.True(t, noise >= 0.02-1e-15 && noise <= 0.4+1e-15, "repeat count %d", repeatCount)
		assert.Less(t, errorRate, prevError)
		assert.Greater(t, noise, prevNoise)
		prevError, prevNoise = errorRate, noise
	}
}

func TestAdaptiveIndelErrorModelClamps(t *testing.T) {
	low := AdaptiveIndelErrorModelLogParams{LogErrorRate: -8, LogNoisyLocusRate: -3}
	high := AdaptiveIndelErrorModelLogParams{LogErrorRate: -4, LogNoisyLocusRate: -1}
	model := NewAdaptiveIndelErrorModel(1, 2, 16, low, high)

	assert.Equal(t, -8.0, model.LogErrorRate(1))
	assert.Equal(t, -4.0, model.LogErrorRate(40))
	assert.Equal(t, -1.0, model.LogNoisyLocusRate(17))

	flat := NewAdaptiveIndelErrorModel(1, 2, 2, low, high)
	assert.False(t, math.IsNaN(flat.LogErrorRate(2)))
}
