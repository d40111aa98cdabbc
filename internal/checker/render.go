package checker

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/inoxlang/titlecase/internal/utils"
)

// Render prints the findings followed by a summary line. If colorize is true the words
// that changed are highlighted. Escape sequences found in the checked files are not printed.
func Render(w io.Writer, findings []Finding, colorize bool) error {
	profile := termenv.Ascii
	if colorize {
		profile = termenv.ANSI
	}
	output := termenv.NewOutput(w, termenv.WithProfile(profile))

	files := map[string]struct{}{}

	for _, finding := range findings {
		files[finding.Path] = struct{}{}

		got := utils.StripANSISequences(finding.Got)
		want := utils.StripANSISequences(finding.Want)
		removed, added := highlightChangedWords(output, got, want)

		_, err := fmt.Fprintf(w, "%s:%d\n  - %s\n  + %s\n", finding.Path, finding.Line, removed, added)
		if err != nil {
			return err
		}
	}

	var err error
	if len(findings) == 0 {
		_, err = fmt.Fprintln(w, "no title to fix")
	} else {
		summary := fmt.Sprintf("%d %s to fix in %d %s", len(findings), plural(len(findings), "title"), len(files), plural(len(files), "file"))
		_, err = fmt.Fprintln(w, output.String(summary).Bold())
	}
	return err
}

// RenderJSON prints the findings as a JSON array.
func RenderJSON(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}

	b, err := utils.MarshalIndentJsonNoHTMLEspace(findings, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func highlightChangedWords(output *termenv.Output, got, want string) (string, string) {
	gotWords := strings.Fields(got)
	wantWords := strings.Fields(want)

	if len(gotWords) != len(wantWords) {
		return output.String(got).Foreground(termenv.ANSIRed).String(),
			output.String(want).Foreground(termenv.ANSIGreen).String()
	}

	for i, gotWord := range gotWords {
		if gotWord == wantWords[i] {
			continue
		}
		gotWords[i] = output.String(gotWord).Foreground(termenv.ANSIRed).String()
		wantWords[i] = output.String(wantWords[i]).Foreground(termenv.ANSIGreen).Bold().String()
	}

	return strings.Join(gotWords, " "), strings.Join(wantWords, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
