// Titlecase package capitalizes all words in the string to Title Caps attempting to
// be smart about small words like a/an/the.
//
// These small words will also be uncapitalized, so titlecase also
// works with uppercase strings. Acronyms, initials, brand names with inner capitals
// (iTunes), URLs, domains and email-like tokens are left untouched.
//
// The list of small words which are not capped comes from the New York
// Times Manual of Style, plus 'vs' and 'v'.
//
// Titlecase is a port of Python's titlecase module in Go.
//
// Thanks to Stuart Colville for the Python version: https://pypi.python.org/pypi/titlecase.
// And John Gruber for the original version in Perl: http://daringfireball.net/2008/05/title_case.
package titlecase

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/inoxlang/titlecase/internal/utils"
)

var defaultCaser = New(Config{})

// A Callback returns the rendering of a word, or "" to let the built-in rules decide.
// It receives the token as it appears in the input, punctuation included.
type Callback func(word string, ctx WordContext) string

// WordContext describes the position of a word in its line.
type WordContext struct {
	AllCaps       bool //the whole line is uppercase
	First         bool
	Last          bool
	AfterBoundary bool //the previous word ends a sub-phrase (colon, period, ...)
}

type Config struct {
	Callback Callback

	// SmallWords are added to the built-in small words.
	SmallWords []string

	// (optional) if set, every word rule decision is logged at the trace level.
	Logger *zerolog.Logger
}

// A Caser is immutable and can be shared between goroutines.
type Caser struct {
	callback   Callback
	smallWords map[string]struct{}
	logger     zerolog.Logger
}

func New(config Config) *Caser {
	caser := &Caser{
		callback:   config.Callback,
		smallWords: smallWordSet,
		logger:     zerolog.Nop(),
	}

	if len(config.SmallWords) > 0 {
		caser.smallWords = utils.CopyMap(smallWordSet)
		for w := range makeWordSet(config.SmallWords) {
			caser.smallWords[w] = struct{}{}
		}
	}

	if config.Logger != nil {
		caser.logger = config.Logger.With().Str("src", "titlecase").Logger()
	}
	return caser
}

// Title returns s in title case using the default small words and no callback.
func Title(s string) string {
	return defaultCaser.Title(s)
}

func TitleWithCallback(s string, callback Callback) string {
	return New(Config{Callback: callback}).Title(s)
}

// Title returns s in title case. Line breaks and whitespace are preserved.
func (c *Caser) Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, l := range splitLines(s) {
		b.WriteString(c.titleLine(l.text, IsAllCaps(l.text)))
		b.WriteString(l.lineBreak)
	}
	return b.String()
}

func (c *Caser) titleLine(text string, allCaps bool) string {
	pieces := splitWords(text)

	var wordIndexes []int
	for i, p := range pieces {
		if !p.isSpace {
			wordIndexes = append(wordIndexes, i)
		}
	}

	if len(wordIndexes) == 0 {
		return text
	}

	contexts := make([]WordContext, len(wordIndexes))
	overridden := make([]bool, len(wordIndexes))
	prevRaw := ""

	for n, i := range wordIndexes {
		ctx := WordContext{
			AllCaps: allCaps,
			First:   n == 0,
			Last:    n == len(wordIndexes)-1,
		}
		if n > 0 {
			ctx.AfterBoundary = c.endsSubphrase(prevRaw)
		}
		contexts[n] = ctx
		prevRaw = pieces[i].text

		rendered, rule := c.titleWord(pieces[i].text, ctx)
		pieces[i].text = rendered
		overridden[n] = rule == CALLBACK_RULE
	}

	c.correctBoundaries(pieces, wordIndexes, contexts, overridden)
	return joinPieces(pieces)
}

func (c *Caser) isSmallWord(word string) bool {
	_, ok := c.smallWords[strings.ToLower(word)]
	return ok
}
