package indelerr_api

// ErrorObjective is the negated context log-likelihood as a function of the
// raw search vector. With a locked theta the search runs over the three rate
// coordinates and theta stays at its prior.
type ErrorObjective struct {
	model           *LikelihoodModel
	transform       ParameterTransform
	observations    []ExportedIndelObservation
	defaultLogTheta float64
	lockTheta       bool
}

func NewErrorObjective(
	model *LikelihoodModel,
	transform ParameterTransform,
	observations []ExportedIndelObservation,
	logTheta float64,
	lockTheta bool,
) *ErrorObjective {
	return &ErrorObjective{
		model:           model,
		transform:       transform,
		observations:    observations,
		defaultLogTheta: logTheta,
		lockTheta:       lockTheta,
	}
}

func (o *ErrorObjective) Dim() int {
	if o.lockTheta {
		return ParamSize - 1
	}
	return ParamSize
}

func (o *ErrorObjective) Val(in []float64) float64 {
	params := o.Normalize(in)
	return -o.model.ContextLogLhood(
		o.observations,
		params[LnInsertErrorRate],
		params[LnDeleteErrorRate],
		params[LnNoisyLocusRate],
		params[LnTheta],
	)
}

// Normalize maps a raw search vector onto the log rates it stands for
func (o *ErrorObjective) Normalize(in []float64) [ParamSize]float64 {
	var params [ParamSize]float64
	o.transform.Apply(in, &params)
	if o.lockTheta || len(in) <= LnTheta {
		params[LnTheta] = o.defaultLogTheta
	}
	return params
}
