package utils

import (
	"math"
	"strconv"
)

// MeanUndecided is what listings with no votes display instead of a number.
const MeanUndecided = "N/A"

// FormatMean renders a (votes_sum, votes_count) accumulator for display.
// Zero votes is "undecided", never a division by zero. Rounding to one
// decimal happens here only, half away from zero; the accumulator itself
// is never stored rounded.
func FormatMean(sum, count int64) string {
	if count == 0 {
		return MeanUndecided
	}
	mean := float64(sum) / float64(count)
	return strconv.FormatFloat(math.Round(mean*10)/10, 'f', 1, 64)
}
