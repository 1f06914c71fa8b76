package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horecaseek-service/internal/pkg/utils"
)

func TestFormatMean(t *testing.T) {
	tests := []struct {
		name  string
		sum   int64
		count int64
		want  string
	}{
		{"zero votes is undecided", 0, 0, "N/A"},
		{"single vote", 5, 1, "5.0"},
		{"two votes averaging to half", 9, 2, "4.5"},
		{"rounds half away from zero", 7, 2, "3.5"},
		{"one third rounds down", 10, 3, "3.3"},
		{"two thirds rounds up", 11, 3, "3.7"},
		{"exact quarter rounds to one decimal", 13, 4, "3.3"},
		{"minimum possible mean", 3, 3, "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatMean(tt.sum, tt.count))
		})
	}
}

func TestFormatMean_MatchesSumOverCount(t *testing.T) {
	// Arbitrary vote history: mean must equal sum/count at display precision.
	votes := []int64{1, 5, 4, 3, 5, 2, 5}
	var sum int64
	for _, v := range votes {
		sum += v
	}
	assert.Equal(t, "3.6", utils.FormatMean(sum, int64(len(votes))))
}
