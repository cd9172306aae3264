package indelerr_api

import (
	"github.com/nvnieuwk/indelerr/minimize"
)

//
// Observation structs
//

// The type of indel signal observed in a read
// Insertion types always precede deletion types
type IndelSignalType int

const (
	Insert1 IndelSignalType = iota
	Insert2
	InsertGe3
	Delete1
	Delete2
	DeleteGe3
	IndelSignalTypeSize
)

// The observed read support for each indel signal type at one locus
type AltObservations [IndelSignalTypeSize]uint32

// One aggregated observation row, exported from the counts of a context
type ExportedIndelObservation struct {
	// The number of reads supporting the reference allele
	RefObservations uint32

	// The number of reads supporting each indel signal type
	AltObservations AltObservations

	// The number of loci that showed exactly this observation
	ObservationCount uint64
}

// A class of loci sharing the same repeat unit size and repeat count
type IndelErrorContext struct {
	// The size of the repeat unit, 1 for homopolymers
	RepeatPatternSize uint

	// The number of times the repeat unit is repeated
	RepeatCount uint
}

//
// Model structs
//

// The fitted parameters of one context in log space
type AdaptiveIndelErrorModelLogParams struct {
	// The mean of the log insertion and log deletion error rates
	LogErrorRate float64

	// The log of the fraction of loci in the noisy state
	LogNoisyLocusRate float64
}

// One exported row of the indel error model
type IndelMotifBinomialMixture struct {
	RepeatPatternSize uint    `json:"repeatPatternSize"`
	RepeatCount       uint    `json:"repeatCount"`
	IndelRate         float64 `json:"indelRate"`
	NoisyLocusRate    float64 `json:"noisyLocusRate"`
}

// Population heterozygosity priors per repeat pattern size
// Index 0 of each slice holds the theta of repeat count 1
type ThetaTable map[uint][]float64

// The outcome of the estimation of one context
type ContextEstimate struct {
	// The estimated context
	Context IndelErrorContext

	// The fitted parameters, zero when the context has no data
	Params AdaptiveIndelErrorModelLogParams

	// The theta prior the context was fitted with
	Theta float64

	// Whether the context had observations to fit
	HasData bool

	// The number of loci used in the fit
	UsedLoci uint64

	// The total number of reference and indel supporting reads
	RefReads uint64
	AltReads uint64

	// The minimizer iterations, log-likelihood at the optimum and last improvement
	Iter       int
	LogLhood   float64
	FinalDelta float64

	// Whether the minimizer met its tolerance within the iteration budget
	Converged bool
}

// One line of the diagnostic summary
type ContextSummary struct {
	Context         string  `csv:"context"`
	ExcludedLoci    uint64  `csv:"excludedLoci"`
	NonExcludedLoci uint64  `csv:"nonExcludedLoci"`
	UsedLoci        uint64  `csv:"usedLoci"`
	RefReads        uint64  `csv:"refReads"`
	AltReads        uint64  `csv:"altReads"`
	Iter            int     `csv:"iter"`
	LogLhood        float64 `csv:"lhood"`
	ErrorRate       float64 `csv:"errorRate"`
	Theta           float64 `csv:"theta"`
	NoisyLocusRate  float64 `csv:"noisyLocusRate"`
	FinalDelta      float64 `csv:"finalDelta"`
	Converged       bool    `csv:"converged"`
}

// One line of the counts digest
type CountsSummary struct {
	Context     string  `csv:"context"`
	Loci        uint64  `csv:"loci"`
	RefReads    uint64  `csv:"refReads"`
	AltReads    uint64  `csv:"altReads"`
	MeanDepth   float64 `csv:"meanDepth"`
	MedianDepth float64 `csv:"medianDepth"`
	Depth95     float64 `csv:"depthP95"`
	MeanAltFrac float64 `csv:"meanAltFraction"`
	SignalLoci  float64 `csv:"indelSignalLociFraction"`
}

//
// Config structs
//

// The struct representing the configuration file
// The config file is a YAML file, every field is optional
type Config struct {
	// Smoothing of the insertion and deletion error rates
	Rate SmootherConfig `yaml:"rate"`

	// Smoothing of the noisy locus rate
	LocusRate SmootherConfig `yaml:"locusRate"`

	// Smoothing of theta
	Theta SmootherConfig `yaml:"theta"`

	// The indel error rate of loci in the clean state
	CleanLocusIndelRate float64 `yaml:"cleanLocusIndelRate"`

	// The expected fraction of variant reads at homozygous and heterozygous loci
	HomAltRate float64 `yaml:"homAltRate"`
	HetAltRate float64 `yaml:"hetAltRate"`

	// The starting point of the parameter search
	InitErrorRate      float64 `yaml:"initErrorRate"`
	InitNoisyLocusRate float64 `yaml:"initNoisyLocusRate"`

	// Theta used for every repeat count when no theta file is given
	DefaultTheta float64 `yaml:"defaultTheta"`

	// Keep theta fixed at its prior during the search
	LockTheta *bool `yaml:"lockTheta"`

	// The lowest repeat count fitted for each motif
	LowRepeatCount uint `yaml:"lowRepeatCount"`

	// The repeat pattern sizes to model
	Motifs []MotifConfig `yaml:"motifs"`

	// The repeat pattern size of which the repeat count 1 context is the non-STR baseline
	NonStrRepeatPatternSize uint `yaml:"nonStrRepeatPatternSize"`

	// The minimizer to use and its settings
	Minimizer MinimizerConfig `yaml:"minimizer"`
}

// A smoothing function acting on a log rate
// Trigger and Ceiling are given as plain rates
type SmootherConfig struct {
	Trigger float64 `yaml:"trigger"`
	Ceiling float64 `yaml:"ceiling"`
}

// A repeat pattern size and the highest repeat count fitted for it
type MotifConfig struct {
	RepeatPatternSize uint `yaml:"repeatPatternSize"`
	MaxRepeatCount    uint `yaml:"maxRepeatCount"`
}

// The minimizer method and its settings
type MinimizerConfig struct {
	Method            string `yaml:"method"`
	minimize.Settings `yaml:",inline"`
}
