package indelerr_api

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Open the output file, or stdout when no file is given
// The returned close function never closes stdout
func openOutput(file string) (io.Writer, func() error, error) {
	if file == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	outputFile, err := os.Create(file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create the output file")
	}
	return outputFile, outputFile.Close, nil
}

// Write rows as a CSV table with a header line
func writeTable(rows interface{}, w io.Writer) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.Wrap(err, "failed to write the summary table")
	}
	return nil
}
