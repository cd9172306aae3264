package indelerr_api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalRanges(t *testing.T) {
	assert.Equal(t, []IndelSignalType{Insert1, Insert2, InsertGe3}, InsertionTypes())
	assert.Equal(t, []IndelSignalType{Delete1, Delete2, DeleteGe3}, DeletionTypes())

	for _, st := range InsertionTypes() {
		assert.True(t, st.IsInsertion())
		assert.False(t, st.IsDeletion())
	}
	for _, st := range DeletionTypes() {
		assert.True(t, st.IsDeletion())
		assert.False(t, st.IsInsertion())
	}
	assert.Equal(t, "DELETE_GE3", DeleteGe3.String())
	assert.Equal(t, "IndelSignalType(6)", IndelSignalTypeSize.String())
}

func TestAltObservationTotals(t *testing.T) {
	alt := AltObservations{1, 2, 3, 4, 5, 6}

	assert.EqualValues(t, 6, alt.InsertionTotal())
	assert.EqualValues(t, 15, alt.DeletionTotal())
	assert.EqualValues(t, 21, alt.Total())
	assert.EqualValues(t, 4, alt.InsertionTotal(Insert2))
	assert.EqualValues(t, 5, alt.DeletionTotal(Delete1, DeleteGe3))
	assert.EqualValues(t, 6, alt.InsertionTotal(Delete1))
}

func TestMaxSignal(t *testing.T) {
	alt := AltObservations{0, 7, 0, 7, 2, 0}
	assert.Equal(t, Insert2, alt.MaxSignal())
	assert.Equal(t, Delete1, alt.MaxSignal(Insert2))

	// without support the first types win
	empty := AltObservations{}
	assert.Equal(t, Insert1, empty.MaxSignal())
	assert.Equal(t, Insert2, empty.MaxSignal(Insert1))

	last := AltObservations{0, 0, 0, 0, 0, 9}
	assert.Equal(t, DeleteGe3, last.MaxSignal())
	assert.Equal(t, Insert1, last.MaxSignal(DeleteGe3))
}

func TestContextOrdering(t *testing.T) {
	a := NewIndelErrorContext(1, 16)
	b := NewIndelErrorContext(2, 2)
	c := NewIndelErrorContext(2, 8)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(a))
	assert.Equal(t, "1x16", a.String())

	m := map[IndelErrorContext]int{a: 1}
	assert.Equal(t, 1, m[NewIndelErrorContext(1, 16)])
}
