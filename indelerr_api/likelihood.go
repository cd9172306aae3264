package indelerr_api

import (
	"math"
)

var (
	log0 = math.Inf(-1)
	log2 = math.Log(2)
)

// LogSum returns log(exp(a) + exp(b)) without leaving log space.
// Negative infinity acts as the identity.
func LogSum(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return a
	}
	return a + math.Log1p(math.Exp(b-a))
}

// weigh multiplies a log rate by a read count, treating zero reads of an
// impossible event as certain
func weigh(logRate float64, n uint64) float64 {
	if n == 0 {
		return 0
	}
	return logRate * float64(n)
}

// LikelihoodModel scores the observations of one context under a mixture of
// genotypes, itself mixed over clean and noisy loci
type LikelihoodModel struct {
	logHomAltRate float64
	logHomRefRate float64
	logHetRate    float64

	logCleanLocusIndelRate float64
	logCleanLocusRefRate   float64
}

func NewLikelihoodModel(config *Config) *LikelihoodModel {
	return &LikelihoodModel{
		logHomAltRate:          math.Log(config.HomAltRate),
		logHomRefRate:          math.Log(1 - config.HomAltRate),
		logHetRate:             math.Log(config.HetAltRate),
		logCleanLocusIndelRate: math.Log(config.CleanLocusIndelRate),
		logCleanLocusRefRate:   math.Log(1 - config.CleanLocusIndelRate),
	}
}

// The log prior of each genotype for a given theta
type genotypePriors struct {
	hom     float64
	het     float64
	altHet  float64
	noIndel float64
}

func newGenotypePriors(logTheta float64) genotypePriors {
	theta := math.Exp(logTheta)
	return genotypePriors{
		hom:     logTheta - log2,
		het:     logTheta,
		altHet:  logTheta * 2,
		noIndel: math.Log(1 - (theta*3/2 + theta*theta)),
	}
}

// The read level error rates of one locus state
type errorRates struct {
	logInsert  float64
	logDelete  float64
	logNoIndel float64
}

// ContextLogLhood returns the log-likelihood of all observations of a
// context, each row weighted by its observation count
func (m *LikelihoodModel) ContextLogLhood(
	observations []ExportedIndelObservation,
	logInsertErrorRate float64,
	logDeleteErrorRate float64,
	logNoisyLocusRate float64,
	logTheta float64,
) float64 {
	priors := newGenotypePriors(logTheta)

	noisy := errorRates{
		logInsert:  logInsertErrorRate,
		logDelete:  logDeleteErrorRate,
		logNoIndel: math.Log(1-math.Exp(logInsertErrorRate)) + math.Log(1-math.Exp(logDeleteErrorRate)),
	}
	clean := errorRates{
		logInsert:  m.logCleanLocusIndelRate,
		logDelete:  m.logCleanLocusIndelRate,
		logNoIndel: m.logCleanLocusRefRate,
	}

	logCleanLocusRate := math.Log(1 - math.Exp(logNoisyLocusRate))

	logLhood := 0.0
	for i := range observations {
		obs := &observations[i]
		noisyMix := m.obsLogLhood(priors, noisy, obs)
		cleanMix := m.obsLogLhood(priors, clean, obs)

		mix := LogSum(logCleanLocusRate+cleanMix, logNoisyLocusRate+noisyMix)
		logLhood += mix * float64(obs.ObservationCount)
	}
	return logLhood
}

// obsLogLhood marginalizes the genotype of a single observation row
func (m *LikelihoodModel) obsLogLhood(priors genotypePriors, rates errorRates, obs *ExportedIndelObservation) float64 {
	alt := &obs.AltObservations
	ref := uint64(obs.RefObservations)

	noIndel := weigh(rates.logInsert, alt.InsertionTotal()) +
		weigh(rates.logDelete, alt.DeletionTotal()) +
		weigh(rates.logNoIndel, ref)

	// the most frequent signal is taken as the only candidate variant allele
	maxIndex := alt.MaxSignal()
	maxCount := uint64(alt.Get(maxIndex))
	background := weigh(rates.logInsert, alt.InsertionTotal(maxIndex)) +
		weigh(rates.logDelete, alt.DeletionTotal(maxIndex))

	het := weigh(m.logHetRate, ref+maxCount) + background
	hom := weigh(m.logHomAltRate, maxCount) + weigh(m.logHomRefRate, ref) + background

	// the two most frequent signals are taken as the variant alleles
	maxIndex2 := alt.MaxSignal(maxIndex)
	maxCount2 := uint64(alt.Get(maxIndex2))
	altHet := weigh(m.logHetRate, maxCount+maxCount2) +
		weigh(m.logHomRefRate, ref) +
		weigh(rates.logInsert, alt.InsertionTotal(maxIndex, maxIndex2)) +
		weigh(rates.logDelete, alt.DeletionTotal(maxIndex, maxIndex2))

	return LogSum(
		LogSum(priors.hom+hom, priors.het+het),
		LogSum(priors.noIndel+noIndel, priors.altHet+altHet),
	)
}
