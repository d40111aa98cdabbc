package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

func SliceContains[T constraints.Ordered](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}

	return false
}

func FilterMapSlice[T any, U any](s []T, mapper func(e T) (U, bool)) []U {
	var result []U

	for _, e := range s {
		res, keep := mapper(e)
		if keep {
			result = append(result, res)
		}
	}

	return result
}

func BytesAsString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
