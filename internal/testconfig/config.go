package testconfig

import (
	"os"
	"testing"
)

var (
	//set TITLECASE_PARALLEL_TESTS=1 to run the tests of a package in parallel.
	PARALLELIZE_SAME_PKG_TESTS = os.Getenv("TITLECASE_PARALLEL_TESTS") == "1"
)

func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
