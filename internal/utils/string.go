package utils

import (
	"context"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString returns the candidate with the smallest Levenshtein distance to s,
// ok is false if no candidate is within maxDifferences or if ctx is done.
func FindClosestString(ctx context.Context, candidates []string, s string, maxDifferences int) (closest string, distance int, ok bool) {
	distance = -1
	runes := []rune(s)

	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			return "", -1, false
		default:
		}

		d := levenshtein.DistanceForStrings([]rune(candidate), runes, levenshtein.DefaultOptions)
		if d > maxDifferences {
			continue
		}
		if distance < 0 || d < distance {
			closest = candidate
			distance = d
		}
	}

	return closest, distance, distance >= 0
}
