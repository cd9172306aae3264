package indelerr_api

import (
	"math"
)

// The indices of the model parameters in a search vector
const (
	LnInsertErrorRate = iota
	LnDeleteErrorRate
	LnNoisyLocusRate
	LnTheta
	ParamSize
)

// Smoother maps an unbounded log value onto a bounded log rate. Values
// above the trigger are compressed with log1p, and values crossing the
// ceiling are reflected back below it.
type Smoother struct {
	LogTrigger float64
	LogCeiling float64
}

func NewSmoother(config SmootherConfig) Smoother {
	return Smoother{
		LogTrigger: math.Log(config.Trigger),
		LogCeiling: math.Log(config.Ceiling),
	}
}

func (s Smoother) Apply(a float64) float64 {
	if a > s.LogTrigger {
		a = math.Log1p(a-s.LogTrigger) + s.LogTrigger
	}
	if a > s.LogCeiling {
		return s.LogCeiling - math.Abs(a-s.LogCeiling)
	}
	return a
}

// ParameterTransform normalizes a raw search vector into usable log rates
type ParameterTransform struct {
	Rate      Smoother
	LocusRate Smoother
	Theta     Smoother
}

func NewParameterTransform(config *Config) ParameterTransform {
	return ParameterTransform{
		Rate:      NewSmoother(config.Rate),
		LocusRate: NewSmoother(config.LocusRate),
		Theta:     NewSmoother(config.Theta),
	}
}

// Apply the smoothers to the first ParamSize values of in. A vector without
// a theta coordinate leaves the theta slot of the result untouched.
func (p ParameterTransform) Apply(in []float64, out *[ParamSize]float64) {
	out[LnInsertErrorRate] = p.Rate.Apply(in[LnInsertErrorRate])
	out[LnDeleteErrorRate] = p.Rate.Apply(in[LnDeleteErrorRate])
	out[LnNoisyLocusRate] = p.LocusRate.Apply(in[LnNoisyLocusRate])
	if len(in) > LnTheta {
		out[LnTheta] = p.Theta.Apply(in[LnTheta])
	}
}
