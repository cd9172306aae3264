package indelerr_api

import (
	"io"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// The number of loci observed at one read depth
type depthCount struct {
	depth uint64
	loci  uint64
}

// SummarizeCounts describes the observations of every context in counts.
// Statistics are weighted by the observation count of each row, so the
// work depends on the number of distinct rows and not on the number of loci.
func SummarizeCounts(counts *SequenceErrorCounts) ([]CountsSummary, error) {
	summaries := []CountsSummary{}
	for _, context := range counts.Contexts() {
		summary := CountsSummary{Context: context.String()}

		depthLoci := map[uint64]uint64{}
		weightedDepths := stats.Float64Data{}
		weightedAltFractions := stats.Float64Data{}
		signalLoci := uint64(0)
		for _, obs := range counts.GetIndelCounts()[context].ExportObservations() {
			alt := obs.AltObservations.Total()
			depth := uint64(obs.RefObservations) + alt

			summary.Loci += obs.ObservationCount
			summary.RefReads += uint64(obs.RefObservations) * obs.ObservationCount
			summary.AltReads += alt * obs.ObservationCount
			if alt > 0 {
				signalLoci += obs.ObservationCount
			}

			altFraction := 0.0
			if depth > 0 {
				altFraction = float64(alt) / float64(depth)
			}
			depthLoci[depth] += obs.ObservationCount
			weightedDepths = append(weightedDepths, float64(depth)*float64(obs.ObservationCount))
			weightedAltFractions = append(weightedAltFractions, altFraction*float64(obs.ObservationCount))
		}
		if summary.Loci == 0 {
			summaries = append(summaries, summary)
			continue
		}

		depthSum, err := stats.Sum(weightedDepths)
		if err != nil {
			return nil, errors.Wrapf(err, "context %s", context)
		}
		altFractionSum, err := stats.Sum(weightedAltFractions)
		if err != nil {
			return nil, errors.Wrapf(err, "context %s", context)
		}
		summary.MeanDepth = depthSum / float64(summary.Loci)
		summary.MeanAltFrac = altFractionSum / float64(summary.Loci)

		depths := sortedDepths(depthLoci)
		summary.MedianDepth = weightedMedian(depths, summary.Loci)
		summary.Depth95 = weightedPercentile(depths, summary.Loci, 95)
		summary.SignalLoci = float64(signalLoci) / float64(summary.Loci)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func sortedDepths(depthLoci map[uint64]uint64) []depthCount {
	depths := make([]depthCount, 0, len(depthLoci))
	for depth, loci := range depthLoci {
		depths = append(depths, depthCount{depth: depth, loci: loci})
	}
	sort.Slice(depths, func(i, j int) bool {
		return depths[i].depth < depths[j].depth
	})
	return depths
}

// depthAtRank returns the depth of the locus at the 1-based rank in depth order
func depthAtRank(depths []depthCount, rank uint64) float64 {
	seen := uint64(0)
	for _, d := range depths {
		seen += d.loci
		if seen >= rank {
			return float64(d.depth)
		}
	}
	return float64(depths[len(depths)-1].depth)
}

func weightedMedian(depths []depthCount, total uint64) float64 {
	if total%2 == 1 {
		return depthAtRank(depths, total/2+1)
	}
	return (depthAtRank(depths, total/2) + depthAtRank(depths, total/2+1)) / 2
}

// weightedPercentile uses the nearest rank definition
func weightedPercentile(depths []depthCount, total uint64, percent float64) float64 {
	rank := uint64(math.Ceil(percent / 100 * float64(total)))
	if rank < 1 {
		rank = 1
	}
	return depthAtRank(depths, rank)
}

// Write the counts digest of every context as CSV
func WriteCountsSummary(counts *SequenceErrorCounts, w io.Writer) error {
	summaries, err := SummarizeCounts(counts)
	if err != nil {
		return err
	}
	return writeTable(&summaries, w)
}

// Summarize the counts file and write the digest to the output file or stdout
func CountsStats(inputFile, outputFile string) error {
	counts, err := ReadCounts(inputFile)
	if err != nil {
		return err
	}
	output, closeOutput, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	if err := WriteCountsSummary(counts, output); err != nil {
		closeOutput()
		return err
	}
	return closeOutput()
}
