// Package checker reports lines and Markdown headings that are not in title case.
package checker

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/inoxlang/titlecase/internal/utils"
)

var (
	MARKDOWN_EXTENSIONS = []string{".md", ".markdown"}

	//ATX heading: up to 3 spaces, 1 to 6 '#', the title and optional closing '#'s.
	ATX_HEADING_REGEX = regexp.MustCompile(`^ {0,3}#{1,6}[ \t]+(.*?)(?:[ \t]+#+)?[ \t]*$`)

	CODE_FENCE_REGEX = regexp.MustCompile("^ {0,3}(```|~~~)")

	errNothingToWatch = errors.New("no directory to watch")
)

// A Titler returns the title-cased form of a line, both *titlecase.Caser and *cache.TitleCache
// are titlers.
type Titler interface {
	Title(line string) string
}

// A Finding is a line (or heading) whose title-cased form differs.
type Finding struct {
	Path string `json:"path"`
	Line int    `json:"line"` //1-based
	Got  string `json:"got"`
	Want string `json:"want"`
}

// Check returns the findings in content. If markdown is true only ATX headings outside of
// code blocks are checked, otherwise every non-blank line is. Check stops early if ctx is done.
func Check(ctx context.Context, titler Titler, path string, content string, markdown bool) []Finding {
	var findings []Finding
	var fence string //opening fence of the current code block

	for i, line := range strings.Split(content, "\n") {
		if ctx.Err() != nil {
			break
		}
		line = strings.TrimSuffix(line, "\r")

		candidate := line
		if markdown {
			if m := CODE_FENCE_REGEX.FindStringSubmatch(line); m != nil {
				switch {
				case fence == "":
					fence = m[1]
				case fence == m[1]:
					fence = ""
				}
				continue
			}
			if fence != "" {
				continue
			}

			m := ATX_HEADING_REGEX.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			candidate = m[1]
		}

		if strings.TrimSpace(candidate) == "" {
			continue
		}

		if want := titler.Title(candidate); want != candidate {
			findings = append(findings, Finding{
				Path: path,
				Line: i + 1,
				Got:  candidate,
				Want: want,
			})
		}
	}

	return findings
}

func IsMarkdownFile(path string) bool {
	return utils.SliceContains(MARKDOWN_EXTENSIONS, strings.ToLower(filepath.Ext(path)))
}
