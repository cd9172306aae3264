package indelerr_api

import (
	"math"
)

// AdaptiveIndelErrorModel spans the repeat counts of one repeat pattern size.
// Rates between the two fitted repeat counts are interpolated linearly in
// log space, and are held constant outside of them.
type AdaptiveIndelErrorModel struct {
	repeatPatternSize uint
	lowRepeatCount    uint
	highRepeatCount   uint
	lowParams         AdaptiveIndelErrorModelLogParams
	highParams        AdaptiveIndelErrorModelLogParams
}

func NewAdaptiveIndelErrorModel(
	repeatPatternSize uint,
	lowRepeatCount uint,
	highRepeatCount uint,
	lowParams AdaptiveIndelErrorModelLogParams,
	highParams AdaptiveIndelErrorModelLogParams,
) *AdaptiveIndelErrorModel {
	return &AdaptiveIndelErrorModel{
		repeatPatternSize: repeatPatternSize,
		lowRepeatCount:    lowRepeatCount,
		highRepeatCount:   highRepeatCount,
		lowParams:         lowParams,
		highParams:        highParams,
	}
}

func (m *AdaptiveIndelErrorModel) RepeatPatternSize() uint {
	return m.repeatPatternSize
}

func (m *AdaptiveIndelErrorModel) LowRepeatCount() uint {
	return m.lowRepeatCount
}

func (m *AdaptiveIndelErrorModel) HighRepeatCount() uint {
	return m.highRepeatCount
}

func (m *AdaptiveIndelErrorModel) LogErrorRate(repeatCount uint) float64 {
	return m.linearFit(repeatCount, m.lowParams.LogErrorRate, m.highParams.LogErrorRate)
}

func (m *AdaptiveIndelErrorModel) ErrorRate(repeatCount uint) float64 {
	return math.Exp(m.LogErrorRate(repeatCount))
}

func (m *AdaptiveIndelErrorModel) LogNoisyLocusRate(repeatCount uint) float64 {
	return m.linearFit(repeatCount, m.lowParams.LogNoisyLocusRate, m.highParams.LogNoisyLocusRate)
}

func (m *AdaptiveIndelErrorModel) NoisyLocusRate(repeatCount uint) float64 {
	return math.Exp(m.LogNoisyLocusRate(repeatCount))
}

func (m *AdaptiveIndelErrorModel) linearFit(repeatCount uint, low, high float64) float64 {
	if repeatCount <= m.lowRepeatCount {
		return low
	}
	if repeatCount >= m.highRepeatCount {
		return high
	}
	slope := (high - low) / float64(m.highRepeatCount-m.lowRepeatCount)
	return low + slope*float64(repeatCount-m.lowRepeatCount)
}
