package indelerr_api

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// IndelModelJson collects the exported rows of an indel error model
type IndelModelJson struct {
	sampleName string
	motifs     []IndelMotifBinomialMixture
}

type indelModelDocument struct {
	SampleName string                      `json:"sampleName"`
	Motifs     []IndelMotifBinomialMixture `json:"motifs"`
}

type thetaDocument struct {
	Thetas *[]thetaEntry `json:"thetas"`
}

type thetaEntry struct {
	RepeatPatternSize uint      `json:"repeatPatternSize"`
	Theta             []float64 `json:"theta"`
}

func NewIndelModelJson(sampleName string) *IndelModelJson {
	return &IndelModelJson{
		sampleName: sampleName,
		motifs:     []IndelMotifBinomialMixture{},
	}
}

func (m *IndelModelJson) SampleName() string {
	return m.sampleName
}

func (m *IndelModelJson) Motifs() []IndelMotifBinomialMixture {
	return m.motifs
}

func (m *IndelModelJson) AddMotif(repeatPatternSize, repeatCount uint, indelRate, noisyLocusRate float64) {
	m.motifs = append(m.motifs, IndelMotifBinomialMixture{
		RepeatPatternSize: repeatPatternSize,
		RepeatCount:       repeatCount,
		IndelRate:         indelRate,
		NoisyLocusRate:    noisyLocusRate,
	})
}

// Export writes the model as indented JSON followed by a blank line
func (m *IndelModelJson) Export(w io.Writer) error {
	content, err := json.MarshalIndent(indelModelDocument{
		SampleName: m.sampleName,
		Motifs:     m.motifs,
	}, "", "   ")
	if err != nil {
		return errors.Wrap(err, "failed to encode the indel model")
	}
	content = append(content, '\n', '\n')
	if _, err := w.Write(content); err != nil {
		return errors.Wrap(err, "failed to write the indel model")
	}
	return nil
}

func (m *IndelModelJson) ExportIndelErrorModelToJsonFile(file string) error {
	outputFile, err := os.Create(file)
	if err != nil {
		return errors.Wrap(err, "failed to create the output file")
	}
	if err := m.Export(outputFile); err != nil {
		outputFile.Close()
		return errors.Wrapf(err, "failed to write '%s'", file)
	}
	return outputFile.Close()
}

// Read an exported indel model back
func ImportIndelModel(file string) (*IndelModelJson, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the indel model file")
	}
	var document indelModelDocument
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, errors.Wrapf(err, "failed to parse the indel model file '%s'", file)
	}
	model := NewIndelModelJson(document.SampleName)
	model.motifs = append(model.motifs, document.Motifs...)
	return model, nil
}

// Read the theta priors of every repeat pattern size
func ImportTheta(file string) (ThetaTable, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the theta file")
	}
	var document thetaDocument
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, errors.Wrapf(err, "failed to parse the theta file '%s'", file)
	}
	if document.Thetas == nil {
		return nil, errors.Errorf("no theta values in theta file '%s'", file)
	}

	thetas := ThetaTable{}
	for _, entry := range *document.Thetas {
		thetas[entry.RepeatPatternSize] = append([]float64{}, entry.Theta...)
	}
	return thetas, nil
}

// A theta table holding theta for every repeat count up to the configured maxima
func DefaultThetaTable(config *Config) ThetaTable {
	thetas := ThetaTable{}
	fill := func(repeatPatternSize, maxRepeatCount uint) {
		if uint(len(thetas[repeatPatternSize])) >= maxRepeatCount {
			return
		}
		theta := make([]float64, maxRepeatCount)
		for i := range theta {
			theta[i] = config.DefaultTheta
		}
		thetas[repeatPatternSize] = theta
	}
	for _, motif := range config.Motifs {
		fill(motif.RepeatPatternSize, motif.MaxRepeatCount)
	}
	fill(config.NonStrRepeatPatternSize, 1)
	return thetas
}

// LogTheta returns the log of the theta prior of a context
func (t ThetaTable) LogTheta(context IndelErrorContext) (float64, error) {
	theta, ok := t[context.RepeatPatternSize]
	if !ok {
		return 0, errors.Errorf("no theta values for repeat pattern size %d", context.RepeatPatternSize)
	}
	if context.RepeatCount == 0 || context.RepeatCount > uint(len(theta)) {
		return 0, errors.Errorf("no theta value for repeat count %d of repeat pattern size %d, %d values available",
			context.RepeatCount, context.RepeatPatternSize, len(theta))
	}
	value := theta[context.RepeatCount-1]
	if !(value > 0 && value < 1) {
		return 0, errors.Errorf("theta %v of context %s must lie in (0,1)", value, context)
	}
	return math.Log(value), nil
}
