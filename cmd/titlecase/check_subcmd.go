package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/inoxlang/titlecase/internal/checker"
)

func CheckFiles(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	//read and check arguments

	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var opts commonOptions
	var jsonOutput, markdown, watch bool
	var concurrency int

	opts.register(flags)
	flags.BoolVar(&jsonOutput, "json", false, "output the findings as a JSON array")
	flags.BoolVar(&markdown, "markdown", false, "only check Markdown headings (always the case for .md files)")
	flags.BoolVar(&watch, "watch", false, "check the files again each time they change, until interrupted")
	flags.IntVar(&concurrency, "concurrency", 0, "maximum number of files checked at the same time, defaults to the number of CPUs")

	if showHelp(flags, mainSubCommandArgs, outW) {
		return
	}

	if err := flags.Parse(moveFlagsStart(flags, mainSubCommandArgs)); err != nil {
		return ERROR_STATUS_CODE
	}

	patterns := flags.Args()
	if len(patterns) == 0 {
		fmt.Fprintf(errW, "missing file pattern\n")
		showHelp(flags, []string{"-h"}, errW)
		return ERROR_STATUS_CODE
	}

	env, err := opts.load(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	checkOpts := checker.CheckOptions{
		Markdown:    markdown,
		Concurrency: concurrency,
		Logger:      &env.logger,
	}
	colorize := env.config.ShouldColorize(outW)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	check := func(paths []string) (exitCode int) {
		findings, err := checker.CheckFiles(ctx, env.titler, paths, checkOpts)
		if ctx.Err() != nil {
			//interrupted while watching
			return 0
		}
		if err != nil {
			fmt.Fprintln(errW, err)
			exitCode = ERROR_STATUS_CODE
		}

		if jsonOutput {
			err = checker.RenderJSON(outW, findings)
		} else {
			err = checker.Render(outW, findings, colorize)
		}
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}

		if len(findings) > 0 {
			exitCode = ERROR_STATUS_CODE
		}
		return
	}

	paths, err := checker.ExpandPatterns(patterns)
	if err != nil {
		fmt.Fprintln(errW, err)
		if len(paths) == 0 && !watch {
			return ERROR_STATUS_CODE
		}
	}

	exitCode = check(paths)
	if !watch {
		return exitCode
	}

	stopSignalHandling := CancelOnSigintSigterm(cancel)
	defer stopSignalHandling()

	err = checker.Watch(ctx, patterns, env.logger, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(outW, LINE_SEP)
		check(paths)
	})
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}
