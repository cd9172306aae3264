package indelerr_api

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/pkg/errors"
)

// The number of columns of a data line in a counts file:
// repeatPatternSize, repeatCount, ref, one column per signal type and the observation count
const countsColumns = 3 + int(IndelSignalTypeSize) + 1

const sampleHeaderPrefix = "#sample="

// Read the counts file and return it as a SequenceErrorCounts struct
// Files ending in .gz are read as bgzip compressed
func ReadCounts(file string) (*SequenceErrorCounts, error) {
	openFile, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the counts file")
	}
	defer openFile.Close()

	counts := NewSequenceErrorCounts("")
	if strings.HasSuffix(file, ".gz") {
		err = readBgzipCounts(openFile, counts)
	} else {
		err = readPlainCounts(openFile, counts)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read counts file '%s'", file)
	}
	return counts, nil
}

func readBgzipCounts(input io.Reader, counts *SequenceErrorCounts) error {
	bgReader, err := bgzf.NewReader(input, 1)
	if err != nil {
		return err
	}
	defer bgReader.Close()

	lineNumber := 0
	for {
		b, _, err := readBgzipLine(bgReader)
		if len(b) > 0 {
			lineNumber++
			if perr := parseCountsLine(string(bytes.TrimSpace(b)), counts); perr != nil {
				return errors.Wrapf(perr, "line %d", lineNumber)
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
	}
	return nil
}

// readBgzipLine reads a line from a bgzip file
func readBgzipLine(r *bgzf.Reader) ([]byte, bgzf.Chunk, error) {
	tx := r.Begin()
	var (
		data []byte
		b    byte
		err  error
	)
	for {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		data = append(data, b)
		if b == '\n' {
			break
		}
	}
	chunk := tx.End()
	return data, chunk, err
}

func readPlainCounts(input io.Reader, counts *SequenceErrorCounts) error {
	scanner := bufio.NewScanner(input)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parseCountsLine(strings.TrimSpace(scanner.Text()), counts); err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	return scanner.Err()
}

// Parse one line of a counts file and add it to counts
func parseCountsLine(line string, counts *SequenceErrorCounts) error {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "#") {
		if strings.HasPrefix(line, sampleHeaderPrefix) {
			counts.SetSampleName(strings.TrimSpace(strings.TrimPrefix(line, sampleHeaderPrefix)))
		}
		return nil
	}

	data := strings.Split(line, "\t")
	if len(data) != countsColumns {
		return errors.Errorf("expected %d columns, found %d", countsColumns, len(data))
	}

	repeatPatternSize, err := stringToUint(data[0], 32)
	if err != nil {
		return err
	}
	repeatCount, err := stringToUint(data[1], 32)
	if err != nil {
		return err
	}
	if repeatPatternSize == 0 || repeatCount == 0 {
		return errors.Errorf("repeat pattern size and repeat count must be positive")
	}

	obs := ExportedIndelObservation{}
	ref, err := stringToUint(data[2], 32)
	if err != nil {
		return err
	}
	obs.RefObservations = uint32(ref)
	for t := Insert1; t < IndelSignalTypeSize; t++ {
		value, err := stringToUint(data[3+int(t)], 32)
		if err != nil {
			return errors.Wrapf(err, "column %s", t)
		}
		obs.AltObservations[t] = uint32(value)
	}
	obs.ObservationCount, err = stringToUint(data[countsColumns-1], 64)
	if err != nil {
		return err
	}

	counts.AddIndelObservation(NewIndelErrorContext(uint(repeatPatternSize), uint(repeatCount)), obs)
	return nil
}
