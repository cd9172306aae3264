package indelerr_api

import (
	"io"
	"log"
	"math"
	"os"
	"sync"
)

// The repeat count of the non-STR baseline context
const nonStrRepeatCount = 1

// The options of one model production run
type ProductionOptions struct {
	// The theta file, the configured default theta is used when empty
	ThetaFile string

	// The model output file, stdout when empty
	OutputFile string

	// The number of contexts fitted concurrently
	Threads int
}

type estimationTask struct {
	context  IndelErrorContext
	logTheta float64
}

// IndelModelProduction fits the indel error model of the sample in counts
// and exports it. The per context summary is written to stdout, or to
// stderr when the model itself goes to stdout.
func IndelModelProduction(counts *SequenceErrorCounts, config *Config, options ProductionOptions) error {
	logger := log.New(os.Stderr, "", 0)

	thetas := DefaultThetaTable(config)
	if options.ThetaFile != "" {
		var err error
		thetas, err = ImportTheta(options.ThetaFile)
		if err != nil {
			return err
		}
	}

	model, estimates, err := BuildIndelModel(counts, thetas, config, options.Threads, logger)
	if err != nil {
		return err
	}

	if options.OutputFile != "" {
		if err := model.ExportIndelErrorModelToJsonFile(options.OutputFile); err != nil {
			return err
		}
	} else if err := model.Export(os.Stdout); err != nil {
		return err
	}

	var summaryOutput io.Writer = os.Stdout
	if options.OutputFile == "" {
		summaryOutput = os.Stderr
	}
	return WriteContextSummary(estimates, summaryOutput)
}

// BuildIndelModel estimates every context needed by the configured motifs
// and assembles the exported rows. All repeat pattern sizes share the
// estimate of the non-STR context as their repeat count 1 row.
func BuildIndelModel(
	counts *SequenceErrorCounts,
	thetas ThetaTable,
	config *Config,
	threads int,
	logger *log.Logger,
) (*IndelModelJson, []ContextEstimate, error) {
	estimator, err := NewEstimator(config)
	if err != nil {
		return nil, nil, err
	}

	tasks := []estimationTask{}
	addTask := func(context IndelErrorContext) error {
		logTheta, err := thetas.LogTheta(context)
		if err != nil {
			return err
		}
		tasks = append(tasks, estimationTask{context: context, logTheta: logTheta})
		return nil
	}
	for _, motif := range config.Motifs {
		if err := addTask(NewIndelErrorContext(motif.RepeatPatternSize, config.LowRepeatCount)); err != nil {
			return nil, nil, err
		}
		if err := addTask(NewIndelErrorContext(motif.RepeatPatternSize, motif.MaxRepeatCount)); err != nil {
			return nil, nil, err
		}
	}
	if err := addTask(NewIndelErrorContext(config.NonStrRepeatPatternSize, nonStrRepeatCount)); err != nil {
		return nil, nil, err
	}

	estimates := estimateContexts(estimator, counts, tasks, threads, logger)

	model := NewIndelModelJson(counts.SampleName())

	// the non-STR rows of all motifs come first
	nonStr := estimates[len(estimates)-1].Params
	for _, motif := range config.Motifs {
		model.AddMotif(motif.RepeatPatternSize, nonStrRepeatCount,
			math.Exp(nonStr.LogErrorRate), math.Exp(nonStr.LogNoisyLocusRate))
	}

	for i, motif := range config.Motifs {
		errorModel := NewAdaptiveIndelErrorModel(
			motif.RepeatPatternSize,
			config.LowRepeatCount,
			motif.MaxRepeatCount,
			estimates[2*i].Params,
			estimates[2*i+1].Params,
		)

		firstRepeatCount := errorModel.LowRepeatCount()
		if firstRepeatCount <= nonStrRepeatCount {
			firstRepeatCount = nonStrRepeatCount + 1
		}
		for repeatCount := firstRepeatCount; repeatCount <= errorModel.HighRepeatCount(); repeatCount++ {
			model.AddMotif(errorModel.RepeatPatternSize(), repeatCount,
				errorModel.ErrorRate(repeatCount), errorModel.NoisyLocusRate(repeatCount))
		}
	}
	return model, estimates, nil
}

// estimateContexts runs the tasks on at most threads goroutines, the
// estimates keep the order of the tasks
func estimateContexts(
	estimator *Estimator,
	counts *SequenceErrorCounts,
	tasks []estimationTask,
	threads int,
	logger *log.Logger,
) []ContextEstimate {
	if threads < 1 {
		threads = 1
	}
	estimates := make([]ContextEstimate, len(tasks))
	slots := make(chan struct{}, threads)

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		slots <- struct{}{}
		logger.Printf("INFO: computing rates for context: %s", task.context)
		go func(i int, task estimationTask) {
			defer wg.Done()
			defer func() { <-slots }()
			estimates[i] = estimator.EstimateModelParams(counts, task.context, task.logTheta)
		}(i, task)
	}
	wg.Wait()

	for _, estimate := range estimates {
		if !estimate.HasData {
			logger.Printf("WARNING: no observations for context: %s", estimate.Context)
		}
	}
	return estimates
}

// Write one summary line per estimated context
func WriteContextSummary(estimates []ContextEstimate, w io.Writer) error {
	rows := make([]ContextSummary, 0, len(estimates))
	for _, estimate := range estimates {
		rows = append(rows, ContextSummary{
			Context:         estimate.Context.String(),
			ExcludedLoci:    0,
			NonExcludedLoci: estimate.UsedLoci,
			UsedLoci:        estimate.UsedLoci,
			RefReads:        estimate.RefReads,
			AltReads:        estimate.AltReads,
			Iter:            estimate.Iter,
			LogLhood:        estimate.LogLhood,
			ErrorRate:       math.Exp(estimate.Params.LogErrorRate),
			Theta:           estimate.Theta,
			NoisyLocusRate:  math.Exp(estimate.Params.LogNoisyLocusRate),
			FinalDelta:      estimate.FinalDelta,
			Converged:       estimate.Converged,
		})
	}
	return writeTable(&rows, w)
}
