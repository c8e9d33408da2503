package wikitext

import (
	"fmt"
	"math"
)

// DefaultSplitFraction is the share of the total budget assigned to
// each of the valid and test splits, leaving 80% for train.
const DefaultSplitFraction = 0.1

// PlanSplits
// Converts a total token budget into per-split budgets. The valid and
// test splits each receive floor(total*fraction) tokens and train takes
// the remainder, so train + valid + test never exceeds the total.
func PlanSplits(totalTokens int, fraction float64) (
	train int, valid int, test int, err error) {
	if totalTokens < 0 {
		return 0, 0, 0, fmt.Errorf(
			"total token budget must be non-negative, got %d", totalTokens)
	}
	split := int(math.Floor(float64(totalTokens) * fraction))
	return totalTokens - 2*split, split, split, nil
}
