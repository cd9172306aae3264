package indelerr_api

import (
	"testing"

	"github.com/nvnieuwk/indelerr/minimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, SmootherConfig{Trigger: 1e-3, Ceiling: 0.5}, config.Rate)
	assert.Equal(t, SmootherConfig{Trigger: 0.8, Ceiling: 1.0}, config.LocusRate)
	assert.Equal(t, SmootherConfig{Trigger: 1e-3, Ceiling: 0.4}, config.Theta)
	assert.Equal(t, 1e-8, config.CleanLocusIndelRate)
	assert.Equal(t, 0.99, config.HomAltRate)
	assert.Equal(t, 0.5, config.HetAltRate)
	assert.True(t, config.IsLockTheta())
	assert.EqualValues(t, 2, config.LowRepeatCount)
	assert.Equal(t, []MotifConfig{{1, 16}, {2, 8}}, config.Motifs)
	assert.Equal(t, minimize.Settings{
		Step:           0.0005,
		StartTolerance: 1e-10,
		EndTolerance:   1e-10,
		LineTolerance:  1e-10,
		MaxIterations:  40,
		StepGrowth:     100,
	}, config.Minimizer.Settings)
	assert.Equal(t, minimize.MethodPowell, config.Minimizer.Method)
}

func TestReadConfigOverrides(t *testing.T) {
	path := writeFixture(t, "config.yaml", `
cleanLocusIndelRate: 1e-7
lockTheta: false
motifs:
  - repeatPatternSize: 1
    maxRepeatCount: 10
minimizer:
  method: Nelder-Mead
  maxIterations: 100
  step: 0.01
rate:
  ceiling: 0.3
`)
	config, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1e-7, config.CleanLocusIndelRate)
	assert.False(t, config.IsLockTheta())
	assert.Equal(t, []MotifConfig{{1, 10}}, config.Motifs)
	assert.Equal(t, "Nelder-Mead", config.Minimizer.Method)
	assert.Equal(t, 100, config.Minimizer.MaxIterations)
	assert.Equal(t, 0.01, config.Minimizer.Step)
	assert.Equal(t, 1e-10, config.Minimizer.LineTolerance)
	assert.Equal(t, SmootherConfig{Trigger: 1e-3, Ceiling: 0.3}, config.Rate)
	assert.Equal(t, 0.99, config.HomAltRate)
}

func TestReadConfigEmptyName(t *testing.T) {
	config, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestReadConfigInvalid(t *testing.T) {
	invalid := map[string]string{
		"syntax":    "motifs: [",
		"ceiling":   "theta:\n  ceiling: 1.5\n",
		"homAlt":    "homAltRate: 1\n",
		"method":    "minimizer:\n  method: simplex\n",
		"step":      "minimizer:\n  step: -1\n",
		"growth":    "minimizer:\n  stepGrowth: -5\n",
		"lowRepeat": "lowRepeatCount: 20\n",
		"motifSize": "motifs:\n  - repeatPatternSize: 0\n    maxRepeatCount: 8\n",
	}
	for name, content := range invalid {
		_, err := ReadConfig(writeFixture(t, name+".yaml", content))
		assert.Error(t, err, name)
	}

	_, err := ReadConfig("does/not/exist.yaml")
	assert.Error(t, err)
}
