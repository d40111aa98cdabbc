package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inoxlang/titlecase/internal/checker"
	"github.com/inoxlang/titlecase/internal/utils"
)

type conversionRecord struct {
	Path   string `json:"path,omitempty"`
	Line   int    `json:"line,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func ConvertText(mainSubCommand string, mainSubCommandArgs []string, in io.Reader, outW, errW io.Writer) (exitCode int) {
	//read and check arguments

	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var opts commonOptions
	var jsonOutput bool
	var filePatterns stringListFlag

	opts.register(flags)
	flags.BoolVar(&jsonOutput, "json", false, `output a JSON record {"input": ..., "output": ...} per line`)
	flags.Var(&filePatterns, "f", "convert the files matching the pattern (** is supported), can be repeated")

	if showHelp(flags, mainSubCommandArgs, outW) {
		return
	}

	if err := flags.Parse(moveFlagsStart(flags, mainSubCommandArgs)); err != nil {
		return ERROR_STATUS_CODE
	}

	env, err := opts.load(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	lineCount := 0
	defer func() {
		hits, misses := env.titler.Stats()
		env.logger.Debug().Int("lines", lineCount).Uint64("cache-hits", hits).Uint64("cache-misses", misses).Msg("conversion done")
	}()

	switch {
	case flags.NArg() > 0:
		if len(filePatterns) > 0 {
			fmt.Fprintln(errW, "text arguments and -f cannot be used together")
			return ERROR_STATUS_CODE
		}

		text := strings.Join(flags.Args(), " ")
		lineCount = 1

		if jsonOutput {
			b, err := utils.MarshalJsonNoHTMLEspace(conversionRecord{Input: text, Output: env.titler.Title(text)})
			if err != nil {
				fmt.Fprintln(errW, err)
				return ERROR_STATUS_CODE
			}
			fmt.Fprintf(outW, "%s\n", b)
		} else {
			fmt.Fprintln(outW, env.titler.Title(text))
		}
		return
	case len(filePatterns) > 0:
		paths, err := checker.ExpandPatterns(filePatterns)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}

		for _, path := range paths {
			n, err := convertFile(path, env.titler, jsonOutput, outW)
			lineCount += n
			if err != nil {
				fmt.Fprintln(errW, err)
				return ERROR_STATUS_CODE
			}
		}
		return
	default:
		if isTerminal(in) {
			fmt.Fprint(errW, "no text to convert\n\n"+TITLECASE_CMD_HELP)
			return ERROR_STATUS_CODE
		}

		lineCount, err = convertLines(in, "", env.titler, jsonOutput, outW)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		return
	}
}

func convertFile(path string, titler checker.Titler, jsonOutput bool, outW io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return convertLines(f, path, titler, jsonOutput, outW)
}

// convertLines writes the title-cased lines of r to outW as soon as they are read.
// Line breaks are preserved, in JSON mode each line results in a record.
func convertLines(r io.Reader, path string, titler checker.Titler, jsonOutput bool, outW io.Writer) (lineCount int, err error) {
	reader := bufio.NewReader(r)

	for {
		s, readErr := reader.ReadString('\n')

		if s != "" {
			lineCount++
			text, lineBreak := splitLineBreak(s)
			title := titler.Title(text)

			if jsonOutput {
				b, err := utils.MarshalJsonNoHTMLEspace(conversionRecord{Path: path, Line: lineCount, Input: text, Output: title})
				if err != nil {
					return lineCount, err
				}
				_, err = fmt.Fprintf(outW, "%s\n", b)
				if err != nil {
					return lineCount, err
				}
			} else if _, err := io.WriteString(outW, title+lineBreak); err != nil {
				return lineCount, err
			}
		}

		if readErr == io.EOF {
			return lineCount, nil
		}
		if readErr != nil {
			return lineCount, readErr
		}
	}
}

func splitLineBreak(s string) (text string, lineBreak string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	}
	return s, ""
}
