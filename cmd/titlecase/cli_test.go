package main

import (
	"flag"
	"io"
)

func newTestFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Bool("json", false, "")
	flags.String("config", "", "")
	return flags
}
