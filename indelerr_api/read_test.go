package indelerr_api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countsFixture = `#sample=NA12878
#repeatPatternSize	repeatCount	ref	ins1	ins2	ins3+	del1	del2	del3+	observationCount
1	16	30	0	0	0	0	0	0	600
1	16	30	0	0	0	0	0	0	400
1	16	12	0	0	0	9	0	0	1

2	8	20	1	0	0	0	0	0	3
`

func writeFixture(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func checkFixtureCounts(t *testing.T, counts *SequenceErrorCounts) {
	assert.Equal(t, "NA12878", counts.SampleName())
	assert.Equal(t, []IndelErrorContext{{1, 16}, {2, 8}}, counts.Contexts())

	homopolymer := counts.GetIndelCounts()[NewIndelErrorContext(1, 16)]
	require.NotNil(t, homopolymer)
	assert.Equal(t, 2, homopolymer.Size())
	assert.Equal(t, []ExportedIndelObservation{
		{RefObservations: 12, AltObservations: AltObservations{0, 0, 0, 9, 0, 0}, ObservationCount: 1},
		{RefObservations: 30, ObservationCount: 1000},
	}, homopolymer.ExportObservations())

	dinucleotide := counts.GetIndelCounts()[NewIndelErrorContext(2, 8)]
	require.NotNil(t, dinucleotide)
	assert.Equal(t, []ExportedIndelObservation{
		{RefObservations: 20, AltObservations: AltObservations{1, 0, 0, 0, 0, 0}, ObservationCount: 3},
	}, dinucleotide.ExportObservations())
}

func TestReadCountsPlain(t *testing.T) {
	counts, err := ReadCounts(writeFixture(t, "counts.tsv", countsFixture))
	require.NoError(t, err)
	checkFixtureCounts(t, counts)
}

func TestReadCountsBgzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := bgzf.NewWriter(file, 1)
	_, err = writer.Write([]byte(countsFixture))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	counts, err := ReadCounts(path)
	require.NoError(t, err)
	checkFixtureCounts(t, counts)
}

func TestReadCountsErrors(t *testing.T) {
	_, err := ReadCounts(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)

	malformed := map[string]string{
		"columns":  "1\t16\t30\t0\t0\n",
		"negative": "1\t16\t-3\t0\t0\t0\t0\t0\t0\t1\n",
		"text":     "1\t16\t30\t0\tx\t0\t0\t0\t0\t1\n",
		"zero":     "0\t16\t30\t0\t0\t0\t0\t0\t0\t1\n",
	}
	for name, content := range malformed {
		_, err := ReadCounts(writeFixture(t, name+".tsv", "#sample=S\n"+content))
		if assert.Error(t, err, name) {
			assert.True(t, strings.Contains(err.Error(), "line 2"), "%s: %v", name, err)
		}
	}
}

func TestAddObservationIgnoresEmptyRows(t *testing.T) {
	data := NewIndelErrorData()
	data.AddObservation(10, AltObservations{}, 0)
	assert.Equal(t, 0, data.Size())
	assert.Empty(t, data.ExportObservations())
}
