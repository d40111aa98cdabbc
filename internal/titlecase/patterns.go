package titlecase

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var (
	// smallWordList holds the words lowercased unless they start or end a title or a sub-phrase.
	// The list comes from the New York Times Manual of Style, plus 'vs' and 'v'.
	smallWordList = [...]string{
		"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in",
		"of", "on", "or", "the", "to", "v", "v.", "via", "vs", "vs.",
	}

	// ALL_CAPS_REGEX matches strings with at least one uppercase letter and no lowercase letter.
	ALL_CAPS_REGEX = regexp.MustCompile(`^[^\p{Ll}]*\p{Lu}[^\p{Ll}]*$`)

	// UPPERCASE_INITIALS_REGEX matches initials such as A.B or A.B. but not ABCD.
	UPPERCASE_INITIALS_REGEX = regexp.MustCompile(`^(?:[A-Z]\.|[A-Z]\.[A-Z])+$`)

	// ORDINAL_REGEX matches numbers followed by an ordinal suffix: 1st, 34TH.
	ORDINAL_REGEX = regexp.MustCompile(`^(\d+)((?i:st|nd|rd|th))$`)

	reUrlLike            = regexp.MustCompile(`(?i:\pL[.]\pL)|://|[\pL\pN]@\pL`)
	reApostropheSecond   = regexp.MustCompile(`^([dDlLoO])(['‘’])(\pL+(?:['‘’][sS])?)$`)
	reMacMc              = regexp.MustCompile(`^([Mm]c)(\pL.+)$`)
	subphraseTerminators = ":.;?!-—"

	smallWordSet = makeWordSet(smallWordList[:])
)

// SmallWords returns a copy of the built-in small words, extra words are added per caser with Config.SmallWords.
func SmallWords() []string {
	return slices.Clone(smallWordList[:])
}

// IsAllCaps reports whether s has uppercase letters and no lowercase letter.
func IsAllCaps(s string) bool {
	return ALL_CAPS_REGEX.MatchString(s)
}

// IsUpperCaseInitials reports whether word is made of uppercase initials (A.B, A.B.).
func IsUpperCaseInitials(word string) bool {
	return UPPERCASE_INITIALS_REGEX.MatchString(word)
}

// IsOrdinal reports whether word is a number followed by an ordinal suffix.
func IsOrdinal(word string) bool {
	return ORDINAL_REGEX.MatchString(word)
}

// IsSmallWord reports whether word (in any case) is a built-in small word.
func IsSmallWord(word string) bool {
	_, ok := smallWordSet[strings.ToLower(word)]
	return ok
}

func makeWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func isStrippable(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// splitPunct splits word into its leading punctuation, its core and its trailing punctuation.
func splitPunct(word string) (leading, core, trailing string) {
	core = strings.TrimLeftFunc(word, isStrippable)
	leading = word[:len(word)-len(core)]

	trimmed := strings.TrimRightFunc(core, isStrippable)
	trailing = core[len(trimmed):]
	core = trimmed
	return
}

func hasUpperAfterFirst(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
