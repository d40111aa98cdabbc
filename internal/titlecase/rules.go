package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CALLBACK_RULE    = "callback"
	URL_RULE         = "url"
	COMPOUND_RULE    = "compound"
	PUNCTUATION_RULE = "punctuation"
	NAME_PREFIX_RULE = "name-prefix"
	INITIALS_RULE    = "initials"
	ORDINAL_RULE     = "ordinal"
	SMALL_WORD_RULE  = "small-word"
	MIXED_CASE_RULE  = "mixed-case"
	DEFAULT_RULE     = "default"
)

// wordRules are evaluated in order, the first rule that applies renders the word.
// They are set in init() because the compound and name-prefix rules recurse into
// the whole transformation.
var wordRules []wordRule

func init() {
	wordRules = []wordRule{
		{CALLBACK_RULE, applyCallback},
		{URL_RULE, keepUrlLike},
		{COMPOUND_RULE, titleCompound},
		{PUNCTUATION_RULE, keepPunctuationOnly},
		{NAME_PREFIX_RULE, titleNamePrefix},
		{INITIALS_RULE, keepInitials},
		{ORDINAL_RULE, lowerOrdinalSuffix},
		{SMALL_WORD_RULE, lowerSmallWord},
		{MIXED_CASE_RULE, keepMixedCase},
		{DEFAULT_RULE, capitalizeFirst},
	}
}

type wordRule struct {
	name  string
	apply func(c *Caser, w *word) (string, bool)
}

type word struct {
	raw  string //token as it appears in the line
	text string //raw, lowercased if the line is in all caps

	//text split into leading punctuation, core and trailing punctuation
	leading, core, trailing string

	ctx WordContext
}

func newWord(raw string, ctx WordContext) word {
	w := word{raw: raw, text: raw, ctx: ctx}
	if ctx.AllCaps {
		w.text = strings.ToLower(raw)
	}
	w.leading, w.core, w.trailing = splitPunct(w.text)
	return w
}

// titleWord renders a single token and returns the name of the rule that applied.
func (c *Caser) titleWord(raw string, ctx WordContext) (string, string) {
	w := newWord(raw, ctx)

	for _, rule := range wordRules {
		result, ok := rule.apply(c, &w)
		if !ok {
			continue
		}
		c.logger.Trace().Str("word", raw).Str("rule", rule.name).Str("result", result).Msg("word rule applied")
		return result, rule.name
	}

	return w.text, ""
}

func applyCallback(c *Caser, w *word) (string, bool) {
	if c.callback == nil {
		return "", false
	}
	result := c.callback(w.raw, w.ctx)
	return result, result != ""
}

// keepUrlLike leaves domains (example.com), URLs and email addresses as they are.
func keepUrlLike(c *Caser, w *word) (string, bool) {
	if reUrlLike.MatchString(w.raw) {
		return w.raw, true
	}
	return "", false
}

// titleCompound titles each part of slash and hyphen compounds (word/word, sub-phrase)
// as if it were a title on its own.
func titleCompound(c *Caser, w *word) (string, bool) {
	for _, sep := range []string{"/", "-"} {
		if !strings.Contains(w.core, sep) {
			continue
		}
		parts := strings.Split(w.raw, sep)
		for i, part := range parts {
			parts[i] = c.titleLine(part, w.ctx.AllCaps)
		}
		return strings.Join(parts, sep), true
	}
	return "", false
}

func keepPunctuationOnly(c *Caser, w *word) (string, bool) {
	return w.text, w.core == ""
}

// titleNamePrefix handles l'Grange, O'Reilly, d'Artagnan and McClelland.
func titleNamePrefix(c *Caser, w *word) (string, bool) {
	if m := reApostropheSecond.FindStringSubmatch(w.core); m != nil {
		prefix := strings.ToLower(m[1])
		if prefix == "o" {
			prefix = "O"
		}
		return w.leading + prefix + m[2] + upperFirst(m[3]) + w.trailing, true
	}

	if m := reMacMc.FindStringSubmatch(w.core); m != nil {
		return w.leading + "Mc" + c.titleLine(m[2], w.ctx.AllCaps) + w.trailing, true
	}

	return "", false
}

func keepInitials(c *Caser, w *word) (string, bool) {
	_, rawCore, _ := splitPunct(w.raw)
	if IsUpperCaseInitials(rawCore) {
		return w.raw, true
	}
	return "", false
}

func lowerOrdinalSuffix(c *Caser, w *word) (string, bool) {
	m := ORDINAL_REGEX.FindStringSubmatch(w.core)
	if m == nil {
		return "", false
	}
	return w.leading + m[1] + strings.ToLower(m[2]) + w.trailing, true
}

func lowerSmallWord(c *Caser, w *word) (string, bool) {
	if !c.isSmallWord(w.core) {
		return "", false
	}
	return w.leading + strings.ToLower(w.core) + w.trailing, true
}

// keepMixedCase leaves words such as iTunes, AT&T or OmniFocus unchanged.
func keepMixedCase(c *Caser, w *word) (string, bool) {
	if w.ctx.AllCaps || !hasUpperAfterFirst(w.core) {
		return "", false
	}
	return w.text, true
}

func capitalizeFirst(c *Caser, w *word) (string, bool) {
	r, size := utf8.DecodeRuneInString(w.core)
	if !unicode.IsLetter(r) {
		//2lmc, 3D, ...
		return w.text, true
	}
	return w.leading + titleRune(r) + strings.ToLower(w.core[size:]) + w.trailing, true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return titleRune(r) + s[size:]
}

// titleRune returns the titlecase form of r, ligatures without a single-rune
// titlecase form (ﬁ, ﬂ) are expanded: ﬁ -> Fi.
func titleRune(r rune) string {
	title := unicode.ToTitle(r)
	if title != r || !unicode.IsLower(r) {
		return string(title)
	}
	//a cases.Caser is not safe for concurrent use.
	return cases.Title(language.Und, cases.NoLower).String(string(r))
}
