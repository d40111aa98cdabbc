package utils

import "strings"

// SplitCommaList splits a comma-separated flag value, empty elements are dropped.
func SplitCommaList(s string) []string {
	return FilterMapSlice(strings.Split(s, ","), func(e string) (string, bool) {
		e = strings.TrimSpace(e)
		return e, e != ""
	})
}
