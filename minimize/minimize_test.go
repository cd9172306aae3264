package minimize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowl is a shifted quadratic with its minimum at (1, -2). The third
// coordinate is inactive and must come back unchanged.
type bowl struct {
	calls int
}

func (b *bowl) Dim() int { return 2 }

func (b *bowl) Val(x []float64) float64 {
	b.calls++
	return sq(x[0]-1) + 10*sq(x[1]+2) + 3
}

// slope decreases without bound towards a floor, like a log rate pushed to zero
type slope struct{}

func (slope) Dim() int { return 1 }

func (slope) Val(x []float64) float64 {
	return math.Exp(x[0])
}

func defaultSettings() Settings {
	return Settings{
		Step:           0.0005,
		StartTolerance: 1e-10,
		EndTolerance:   1e-10,
		LineTolerance:  1e-10,
		MaxIterations:  40,
		StepGrowth:     100,
	}
}

func TestPowellQuadratic(t *testing.T) {
	settings := defaultSettings()
	settings.Step = 0.01
	f := &bowl{}
	res := Powell{}.Minimize(f, []float64{0, 0, 7}, settings)

	require.Len(t, res.X, 3)
	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, -2, res.X[1], 1e-4)
	assert.Equal(t, 7.0, res.X[2])
	assert.InDelta(t, 3, res.F, 1e-8)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iter, 40)
	assert.Greater(t, f.calls, 0)
}

func TestPowellRespectsIterationBudget(t *testing.T) {
	settings := defaultSettings()
	settings.MaxIterations = 1
	res := Powell{}.Minimize(&bowl{}, []float64{5, 5, 0}, settings)

	assert.LessOrEqual(t, res.Iter, 1)
	assert.Less(t, res.F, (&bowl{}).Val([]float64{5, 5, 0}))
}

func TestPowellUnboundedDescent(t *testing.T) {
	start := []float64{math.Log(1e-3)}
	res := Powell{}.Minimize(slope{}, start, defaultSettings())

	assert.False(t, math.IsNaN(res.X[0]))
	assert.Less(t, res.X[0], start[0])
	assert.LessOrEqual(t, res.F, 1e-3)
}

func TestPowellLineSearchStaysLocal(t *testing.T) {
	settings := defaultSettings()
	settings.MaxIterations = 1
	start := []float64{math.Log(1e-3)}
	res := Powell{}.Minimize(slope{}, start, settings)

	// one axis search and one search along the net displacement
	maxMove := 2 * settings.StepGrowth * settings.Step
	assert.Less(t, res.X[0], start[0])
	assert.GreaterOrEqual(t, res.X[0], start[0]-maxMove-1e-12)

	settings.StepGrowth = 0
	unbounded := Powell{}.Minimize(slope{}, start, settings)
	assert.Less(t, unbounded.X[0], res.X[0])
}

func TestPowellDoesNotMutateStart(t *testing.T) {
	start := []float64{0, 0, 1}
	Powell{}.Minimize(&bowl{}, start, defaultSettings())
	assert.Equal(t, []float64{0, 0, 1}, start)
}

func TestNelderMeadQuadratic(t *testing.T) {
	settings := defaultSettings()
	settings.Step = 0.1
	settings.MaxIterations = 500
	res := NelderMead{}.Minimize(&bowl{}, []float64{0, 0, 7}, settings)

	assert.InDelta(t, 1, res.X[0], 1e-2)
	assert.InDelta(t, -2, res.X[1], 1e-2)
	assert.Equal(t, 7.0, res.X[2])
	assert.Less(t, res.F, 3.01)
}

func TestNew(t *testing.T) {
	m, err := New("Powell")
	require.NoError(t, err)
	assert.IsType(t, Powell{}, m)

	m, err = New("NELDER-MEAD")
	require.NoError(t, err)
	assert.IsType(t, NelderMead{}, m)

	_, err = New("simplex")
	assert.Error(t, err)
	assert.False(t, IsMethod("simplex"))
	assert.True(t, IsMethod(" powell "))
}
