package indelerr_api

import (
	"sort"
)

type observationKey struct {
	ref uint32
	alt AltObservations
}

// IndelErrorData aggregates the observations of one context. Identical
// observation tuples are stored once together with their multiplicity.
type IndelErrorData struct {
	observations map[observationKey]uint64
}

func NewIndelErrorData() *IndelErrorData {
	return &IndelErrorData{
		observations: map[observationKey]uint64{},
	}
}

// Add count loci showing ref reference reads and the given indel support
func (d *IndelErrorData) AddObservation(ref uint32, alt AltObservations, count uint64) {
	if count == 0 {
		return
	}
	d.observations[observationKey{ref: ref, alt: alt}] += count
}

// The number of distinct observation tuples
func (d *IndelErrorData) Size() int {
	return len(d.observations)
}

// ExportObservations returns one row per distinct observation tuple, ordered
// by reference support and then by indel support
func (d *IndelErrorData) ExportObservations() []ExportedIndelObservation {
	out := make([]ExportedIndelObservation, 0, len(d.observations))
	for key, count := range d.observations {
		out = append(out, ExportedIndelObservation{
			RefObservations:  key.ref,
			AltObservations:  key.alt,
			ObservationCount: count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RefObservations != out[j].RefObservations {
			return out[i].RefObservations < out[j].RefObservations
		}
		for t := Insert1; t < IndelSignalTypeSize; t++ {
			if out[i].AltObservations[t] != out[j].AltObservations[t] {
				return out[i].AltObservations[t] < out[j].AltObservations[t]
			}
		}
		return false
	})
	return out
}

// SequenceErrorCounts holds the aggregated indel observations of one sample
type SequenceErrorCounts struct {
	sampleName  string
	indelCounts map[IndelErrorContext]*IndelErrorData
}

func NewSequenceErrorCounts(sampleName string) *SequenceErrorCounts {
	return &SequenceErrorCounts{
		sampleName:  sampleName,
		indelCounts: map[IndelErrorContext]*IndelErrorData{},
	}
}

func (c *SequenceErrorCounts) SampleName() string {
	return c.sampleName
}

func (c *SequenceErrorCounts) SetSampleName(sampleName string) {
	c.sampleName = sampleName
}

// Add an observation row to the data of the given context
func (c *SequenceErrorCounts) AddIndelObservation(context IndelErrorContext, obs ExportedIndelObservation) {
	data, ok := c.indelCounts[context]
	if !ok {
		data = NewIndelErrorData()
		c.indelCounts[context] = data
	}
	data.AddObservation(obs.RefObservations, obs.AltObservations, obs.ObservationCount)
}

// The aggregated data of every context
func (c *SequenceErrorCounts) GetIndelCounts() map[IndelErrorContext]*IndelErrorData {
	return c.indelCounts
}

// The contexts holding data, in context order
func (c *SequenceErrorCounts) Contexts() []IndelErrorContext {
	contexts := make([]IndelErrorContext, 0, len(c.indelCounts))
	for context := range c.indelCounts {
		contexts = append(contexts, context)
	}
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Less(contexts[j])
	})
	return contexts
}
