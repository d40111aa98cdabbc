package titlecase

import (
	"strings"
	"unicode"
)

// line is a maximal run of text without line breaks, followed by the line break
// sequence that ended it ("" for the last line).
type line struct {
	text      string
	lineBreak string
}

// piece is either a whitespace run or a word token, reassembling the pieces of a line
// in order gives back the line.
type piece struct {
	text    string
	isSpace bool
}

// splitLines splits s on \n, \r\n and \r, keeping the break sequences.
func splitLines(s string) []line {
	var lines []line

	for {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, line{text: s})
			return lines
		}

		breakLen := 1
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			breakLen = 2
		}
		lines = append(lines, line{text: s[:i], lineBreak: s[i : i+breakLen]})
		s = s[i+breakLen:]
	}
}

// splitWords splits a line into word tokens and whitespace runs.
func splitWords(text string) []piece {
	var pieces []piece

	start := 0
	inSpace := false

	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			pieces = append(pieces, piece{text: text[start:i], isSpace: inSpace})
			start = i
			inSpace = space
		}
	}

	if start < len(text) {
		pieces = append(pieces, piece{text: text[start:], isSpace: inSpace})
	}
	return pieces
}

func joinPieces(pieces []piece) string {
	size := 0
	for _, p := range pieces {
		size += len(p.text)
	}

	var b strings.Builder
	b.Grow(size)
	for _, p := range pieces {
		b.WriteString(p.text)
	}
	return b.String()
}
