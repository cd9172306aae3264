package indelerr_api

import (
	"fmt"
)

var signalTypeLabels = [IndelSignalTypeSize]string{
	Insert1:   "INSERT_1",
	Insert2:   "INSERT_2",
	InsertGe3: "INSERT_GE3",
	Delete1:   "DELETE_1",
	Delete2:   "DELETE_2",
	DeleteGe3: "DELETE_GE3",
}

func (t IndelSignalType) String() string {
	if t < 0 || t >= IndelSignalTypeSize {
		return fmt.Sprintf("IndelSignalType(%d)", int(t))
	}
	return signalTypeLabels[t]
}

// IsInsertion reports whether t belongs to the insertion sub-range
func (t IndelSignalType) IsInsertion() bool {
	return t >= Insert1 && t < Delete1
}

// IsDeletion reports whether t belongs to the deletion sub-range
func (t IndelSignalType) IsDeletion() bool {
	return t >= Delete1 && t < IndelSignalTypeSize
}

var (
	insertionTypes = signalTypes(IndelSignalType.IsInsertion)
	deletionTypes  = signalTypes(IndelSignalType.IsDeletion)
)

// InsertionTypes returns the insertion signal types in order
func InsertionTypes() []IndelSignalType {
	return append([]IndelSignalType(nil), insertionTypes...)
}

// DeletionTypes returns the deletion signal types in order
func DeletionTypes() []IndelSignalType {
	return append([]IndelSignalType(nil), deletionTypes...)
}

func signalTypes(keep func(IndelSignalType) bool) []IndelSignalType {
	types := []IndelSignalType{}
	for t := Insert1; t < IndelSignalTypeSize; t++ {
		if keep(t) {
			types = append(types, t)
		}
	}
	return types
}

// Get the number of reads supporting signal type t
func (a *AltObservations) Get(t IndelSignalType) uint32 {
	return a[t]
}

// Sum the reads over the insertion sub-range, skipping the given types
func (a *AltObservations) InsertionTotal(skip ...IndelSignalType) uint64 {
	return a.total(insertionTypes, skip)
}

// Sum the reads over the deletion sub-range, skipping the given types
func (a *AltObservations) DeletionTotal(skip ...IndelSignalType) uint64 {
	return a.total(deletionTypes, skip)
}

// Sum the reads over all signal types
func (a *AltObservations) Total() uint64 {
	return a.InsertionTotal() + a.DeletionTotal()
}

func (a *AltObservations) total(types, skip []IndelSignalType) uint64 {
	var sum uint64
	for _, t := range types {
		if containsSignal(skip, t) {
			continue
		}
		sum += uint64(a[t])
	}
	return sum
}

func containsSignal(types []IndelSignalType, t IndelSignalType) bool {
	for _, s := range types {
		if s == t {
			return true
		}
	}
	return false
}

// MaxSignal returns the signal type with the most support, ties resolved
// towards the first type, ignoring the types in skip
func (a *AltObservations) MaxSignal(skip ...IndelSignalType) IndelSignalType {
	best := IndelSignalType(-1)
	for t := Insert1; t < IndelSignalTypeSize; t++ {
		if containsSignal(skip, t) {
			continue
		}
		if best < 0 || a[t] > a[best] {
			best = t
		}
	}
	return best
}
