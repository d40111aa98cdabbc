package titlecase

import (
	"strings"
	"unicode/utf8"
)

// correctBoundaries capitalizes small words that start or end the line or a sub-phrase.
// Only the first letter of the word is changed, words rendered by the callback are left as is.
func (c *Caser) correctBoundaries(pieces []piece, wordIndexes []int, contexts []WordContext, overridden []bool) {
	for n, i := range wordIndexes {
		ctx := contexts[n]
		if overridden[n] || !(ctx.First || ctx.Last || ctx.AfterBoundary) {
			continue
		}

		leading, core, trailing := splitPunct(pieces[i].text)
		if c.isSmallWord(core) {
			pieces[i].text = leading + upperFirst(core) + trailing
		}
	}
}

// endsSubphrase reports whether the word following prev starts a sub-phrase:
// "Word: a Trick" or "Perhaps? a Trick". Abbreviations that are small words (v., vs.)
// do not end a sub-phrase.
func (c *Caser) endsSubphrase(prev string) bool {
	last, _ := utf8.DecodeLastRuneInString(prev)
	if last == utf8.RuneError || !strings.ContainsRune(subphraseTerminators, last) {
		return false
	}
	_, core, _ := splitPunct(prev)
	return !c.isSmallWord(core)
}
