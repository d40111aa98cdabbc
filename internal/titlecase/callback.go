package titlecase

import "strings"

// AbbreviationCallback returns a callback that spells the given words exactly as passed,
// whatever their case in the input: with "TCP" the word "tcp," becomes "TCP,".
func AbbreviationCallback(words ...string) Callback {
	spellings := make(map[string]string, len(words))
	for _, w := range words {
		_, core, _ := splitPunct(strings.TrimSpace(w))
		if core != "" {
			spellings[strings.ToLower(core)] = core
		}
	}

	return func(word string, _ WordContext) string {
		leading, core, trailing := splitPunct(word)
		if spelling, ok := spellings[strings.ToLower(core)]; ok {
			return leading + spelling + trailing
		}
		return ""
	}
}
