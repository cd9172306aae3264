package indelerr_api

import (
	"fmt"
)

func NewIndelErrorContext(repeatPatternSize, repeatCount uint) IndelErrorContext {
	return IndelErrorContext{
		RepeatPatternSize: repeatPatternSize,
		RepeatCount:       repeatCount,
	}
}

func (c IndelErrorContext) String() string {
	return fmt.Sprintf("%dx%d", c.RepeatPatternSize, c.RepeatCount)
}

// Less orders contexts by repeat pattern size, then by repeat count
func (c IndelErrorContext) Less(other IndelErrorContext) bool {
	if c.RepeatPatternSize != other.RepeatPatternSize {
		return c.RepeatPatternSize < other.RepeatPatternSize
	}
	return c.RepeatCount < other.RepeatCount
}
