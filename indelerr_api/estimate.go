package indelerr_api

import (
	"math"

	"github.com/nvnieuwk/indelerr/minimize"
)

// Estimator fits the indel error parameters of single contexts
type Estimator struct {
	config    *Config
	model     *LikelihoodModel
	transform ParameterTransform
	minimizer minimize.Minimizer
}

func NewEstimator(config *Config) (*Estimator, error) {
	minimizer, err := minimize.New(config.Minimizer.Method)
	if err != nil {
		return nil, err
	}
	return &Estimator{
		config:    config,
		model:     NewLikelihoodModel(config),
		transform: NewParameterTransform(config),
		minimizer: minimizer,
	}, nil
}

// EstimateModelParams fits the observations of context with theta held at
// its prior. A context without data yields a zero parameter record.
// The minimizer result is accepted as is, also when the iteration budget ran out.
func (e *Estimator) EstimateModelParams(counts *SequenceErrorCounts, context IndelErrorContext, logTheta float64) ContextEstimate {
	estimate := ContextEstimate{
		Context: context,
		Theta:   math.Exp(logTheta),
	}

	data, ok := counts.GetIndelCounts()[context]
	if !ok {
		return estimate
	}
	observations := data.ExportObservations()
	estimate.HasData = true
	for _, obs := range observations {
		estimate.UsedLoci += obs.ObservationCount
		estimate.RefReads += uint64(obs.RefObservations) * obs.ObservationCount
		estimate.AltReads += obs.AltObservations.Total() * obs.ObservationCount
	}

	objective := NewErrorObjective(e.model, e.transform, observations, logTheta, e.config.IsLockTheta())

	start := make([]float64, ParamSize)
	start[LnInsertErrorRate] = math.Log(e.config.InitErrorRate)
	start[LnDeleteErrorRate] = math.Log(e.config.InitErrorRate)
	start[LnNoisyLocusRate] = math.Log(e.config.InitNoisyLocusRate)
	start[LnTheta] = logTheta

	result := e.minimizer.Minimize(objective, start, e.config.Minimizer.Settings)

	params := objective.Normalize(result.X)
	estimate.Params = AdaptiveIndelErrorModelLogParams{
		LogErrorRate:      (params[LnInsertErrorRate] + params[LnDeleteErrorRate]) / 2,
		LogNoisyLocusRate: params[LnNoisyLocusRate],
	}
	if !e.config.IsLockTheta() {
		estimate.Theta = math.Exp(params[LnTheta])
	}
	estimate.Iter = result.Iter
	estimate.LogLhood = -result.F
	estimate.FinalDelta = result.FinalDelta
	estimate.Converged = result.Converged
	return estimate
}
