package indelerr_api

import (
	"strconv"

	"github.com/pkg/errors"
)

func stringToUint(input string, bitSize int) (uint64, error) {
	result, err := strconv.ParseUint(input, 10, bitSize)
	if err != nil {
		return 0, errors.Errorf("cannot convert '%s' to an unsigned integer", input)
	}
	return result, nil
}
