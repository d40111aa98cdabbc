package titlecase

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inoxlang/titlecase/internal/testconfig"
)

var titleTestCases = []struct {
	input    string
	expected string
}{
	{"word/word", "Word/Word"},
	{"dance with me/let’s face the music and dance", "Dance With Me/Let’s Face the Music and Dance"},
	{"34th 3rd 2nd 1st", "34th 3rd 2nd 1st"},
	{"Q&A with steve jobs: 'that's what happens in technology'", "Q&A With Steve Jobs: 'That's What Happens in Technology'"},
	{"What is AT&T's problem?", "What Is AT&T's Problem?"},
	{"Apple deal with AT&T falls through", "Apple Deal With AT&T Falls Through"},
	{"this v that", "This v That"},
	{"this v. that", "This v. That"},
	{"this vs that", "This vs That"},
	{"this vs. that", "This vs. That"},
	{"The SEC's Apple probe: what you need to know", "The SEC's Apple Probe: What You Need to Know"},
	{"'by the Way, small word at the start but within quotes.'", "'By the Way, Small Word at the Start but Within Quotes.'"},
	{"Small word at end is nothing to be afraid of", "Small Word at End Is Nothing to Be Afraid Of"},
	{"Starting Sub-Phrase With a Small Word: a Trick, Perhaps?", "Starting Sub-Phrase With a Small Word: A Trick, Perhaps?"},
	{"Sub-Phrase With a Small Word in Quotes: 'a Trick, Perhaps?'", "Sub-Phrase With a Small Word in Quotes: 'A Trick, Perhaps?'"},
	{`sub-phrase with a small word in quotes: "a trick, perhaps?"`, `Sub-Phrase With a Small Word in Quotes: "A Trick, Perhaps?"`},
	{`"Nothing to Be Afraid of?"`, `"Nothing to Be Afraid Of?"`},
	{`"Nothing to be Afraid Of?"`, `"Nothing to Be Afraid Of?"`},
	{"a thing", "A Thing"},
	{"2lmc Spool: 'gruber on OmniFocus and vapo(u)rware'", "2lmc Spool: 'Gruber on OmniFocus and Vapo(u)rware'"},
	{"this is just an example.com", "This Is Just an example.com"},
	{"this is something listed on del.icio.us", "This Is Something Listed on del.icio.us"},
	{"iTunes should be unmolested", "iTunes Should Be Unmolested"},
	{"reading between the lines of steve jobs’s ‘thoughts on music’", "Reading Between the Lines of Steve Jobs’s ‘Thoughts on Music’"},
	{"seriously, ‘repair permissions’ is voodoo", "Seriously, ‘Repair Permissions’ Is Voodoo"},
	{
		"generalissimo francisco franco: still dead; kieren McCarthy: still a jackass",
		"Generalissimo Francisco Franco: Still Dead; Kieren McCarthy: Still a Jackass",
	},
	{"O'Reilly should be untouched", "O'Reilly Should Be Untouched"},
	{"my name is o'reilly", "My Name Is O'Reilly"},
	{"WASHINGTON, D.C. SHOULD BE FIXED BUT MIGHT BE A PROBLEM", "Washington, D.C. Should Be Fixed but Might Be a Problem"},
	{"THIS IS ALL CAPS AND SHOULD BE ADDRESSED", "This Is All Caps and Should Be Addressed"},
	{"Mr McTavish went to MacDonalds", "Mr McTavish Went to MacDonalds"},
	{"this shouldn't\nget mangled", "This Shouldn't\nGet Mangled"},
	{"this is http://foo.com", "This Is http://foo.com"},
	{"mac mc MAC MC machine", "Mac Mc MAC MC Machine"},
	{"FOO BAR 5TH ST", "Foo Bar 5th St"},
	{"foo bar 5th st", "Foo Bar 5th St"},
	{"l'grange l'grange l'Grange l'Grange", "l'Grange l'Grange l'Grange l'Grange"},
	{"L'grange L'grange L'Grange L'Grange", "l'Grange l'Grange l'Grange l'Grange"},
	{"l'GranGe", "l'GranGe"},
	{"o'grange O'grange o'Grange O'Grange", "O'Grange O'Grange O'Grange O'Grange"},
	{"O'GranGe", "O'GranGe"},
	{
		"o'melveny/o'doyle o'Melveny/o'doyle O'melveny/o'doyle o'melveny/o'Doyle o'melveny/O'doyle",
		"O'Melveny/O'Doyle O'Melveny/O'Doyle O'Melveny/O'Doyle O'Melveny/O'Doyle O'Melveny/O'Doyle",
	},
	{"oblon, spivak, mcclelland, maier & neustadt", "Oblon, Spivak, McClelland, Maier & Neustadt"},
	{"Mcoblon, spivak, mcclelland, mcmaier, & mcneustadt", "McOblon, Spivak, McClelland, McMaier, & McNeustadt"},
}

func TestTitle(t *testing.T) {
	testconfig.AllowParallelization(t)

	for _, testCase := range titleTestCases {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Title(testCase.input))
		})
	}

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", Title(""))
	})

	t.Run("ligature at the start of a word", func(t *testing.T) {
		assert.Equal(t, "Fish and Chips", Title("\ufb01sh and chips"))
		assert.Equal(t, "Fish and Chips", Title(Title("\ufb01sh and chips")))
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		var result string
		assert.NotPanics(t, func() {
			result = Title("\xff\xfe of")
		})
		assert.Equal(t, "\xff\xfe Of", result)
	})

	t.Run("no alphabetic content", func(t *testing.T) {
		assert.Equal(t, "42 -- ... !?", Title("42 -- ... !?"))
	})

	t.Run("unbalanced quotes", func(t *testing.T) {
		assert.Equal(t, `"(Unbalanced 'Quotes`, Title(`"(unbalanced 'quotes`))
	})

	t.Run("email addresses are not modified", func(t *testing.T) {
		assert.Equal(t, "Write to john@example.org Today", Title("write to john@example.org today"))
	})

	t.Run("small word after a colon", func(t *testing.T) {
		assert.Equal(t, "Lessons: The Hard Way", Title("lessons: the hard way"))
	})

	t.Run("small word after v. stays lowercase", func(t *testing.T) {
		assert.Equal(t, "Smith v. the State", Title("smith v. the state"))
	})

	t.Run("compound segments are titles on their own", func(t *testing.T) {
		assert.Equal(t, "Up-To-Date And/Or Better", Title("up-to-date and/or better"))
	})

	t.Run("acronym in hyphenated word", func(t *testing.T) {
		assert.Equal(t, "NASA-Funded Research", Title("NASA-funded research"))
	})

	t.Run("ordinal suffix is lowercased", func(t *testing.T) {
		assert.Equal(t, "The 34th Street", Title("the 34TH street"))
	})

	t.Run("small words", func(t *testing.T) {
		assert.Equal(t, "This Is a Test of the Small Word", Title("this is a test of the small word"))
	})

	t.Run("uppercase word that is not made of initials", func(t *testing.T) {
		assert.Equal(t, "Abcd", Title("ABCD"))
		assert.Equal(t, "A.B.", Title("A.B."))
	})

	t.Run("parenthesized word", func(t *testing.T) {
		assert.Equal(t, "Gruber (Again) on Style", Title("gruber (again) on style"))
	})
}

func TestTitlePreservesWhitespace(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("leading, inner and trailing whitespace", func(t *testing.T) {
		assert.Equal(t, "  The  Quick\tBrown Fox  ", Title("  the  quick\tbrown fox  "))
	})

	t.Run("line breaks are kept verbatim", func(t *testing.T) {
		assert.Equal(t, "First Line\r\nSecond Line\rThird\n\nFifth\n", Title("first line\r\nsecond line\rthird\n\nfifth\n"))
	})

	t.Run("all caps is detected per line", func(t *testing.T) {
		assert.Equal(t, "Shouting Here\nCalm iPhone Line", Title("SHOUTING HERE\ncalm iPhone line"))
	})

	t.Run("whitespace runs of every test case", func(t *testing.T) {
		for _, testCase := range titleTestCases {
			input := strings.ReplaceAll(testCase.input, " ", " \t ")
			output := Title(input)
			assert.Equal(t, strings.Count(input, " \t "), strings.Count(output, " \t "), input)
			assert.Equal(t, strings.Count(input, "\n"), strings.Count(output, "\n"), input)
		}
	})
}

func TestTitleIsIdempotent(t *testing.T) {
	testconfig.AllowParallelization(t)

	for _, testCase := range titleTestCases {
		once := Title(testCase.input)
		assert.Equal(t, once, Title(once), testCase.input)
	}
}

func TestTitleWithCallback(t *testing.T) {
	testconfig.AllowParallelization(t)

	abbreviation := func(word string, ctx WordContext) string {
		upper := strings.ToUpper(word)
		if upper == "TCP" || upper == "UDP" {
			return upper
		}
		return ""
	}

	s := "a simple tcp and udp wrapper"

	assert.Equal(t, "A Simple Tcp and Udp Wrapper", Title(s))
	assert.Equal(t, "A Simple TCP and UDP Wrapper", TitleWithCallback(s, abbreviation))
	assert.Equal(t, "A Simple TCP and UDP Wrapper", TitleWithCallback(strings.ToUpper(s), abbreviation))

	t.Run("callback result wins over the boundary rules", func(t *testing.T) {
		lower := func(word string, ctx WordContext) string {
			if word == "and" {
				return "and"
			}
			return ""
		}
		assert.Equal(t, "Black and", TitleWithCallback("black and", lower))
	})

	t.Run("callback receives the position of the word", func(t *testing.T) {
		var contexts []WordContext
		record := func(word string, ctx WordContext) string {
			contexts = append(contexts, ctx)
			return ""
		}
		TitleWithCallback("READ: THE END", record)

		require.Len(t, contexts, 3)
		assert.Equal(t, WordContext{AllCaps: true, First: true}, contexts[0])
		assert.Equal(t, WordContext{AllCaps: true, AfterBoundary: true}, contexts[1])
		assert.Equal(t, WordContext{AllCaps: true, Last: true}, contexts[2])
	})

	t.Run("compound segments are passed to the callback", func(t *testing.T) {
		assert.Equal(t, "TCP/UDP Sockets", TitleWithCallback("tcp/udp sockets", abbreviation))
	})

	t.Run("a panicking callback is not recovered", func(t *testing.T) {
		assert.Panics(t, func() {
			TitleWithCallback("boom", func(word string, ctx WordContext) string {
				panic("callback failure")
			})
		})
	})
}

func TestAbbreviationCallback(t *testing.T) {
	testconfig.AllowParallelization(t)

	caser := New(Config{Callback: AbbreviationCallback("TCP", "UDP", "iOS", "U.S.")})

	assert.Equal(t, "A Simple TCP and UDP Wrapper", caser.Title("a simple tcp and udp wrapper"))
	assert.Equal(t, "Sockets (TCP, UDP)", caser.Title("sockets (tcp, udp)"))
	assert.Equal(t, "iOS Apps in the U.S.", caser.Title("IOS APPS IN THE U.S."))
}

func TestCaserSmallWords(t *testing.T) {
	testconfig.AllowParallelization(t)

	caser := New(Config{SmallWords: []string{"With", " from "}})

	assert.Equal(t, "Dance with Me from Paris", caser.Title("dance with me from paris"))
	assert.Equal(t, "Dance With Me From Paris", Title("dance with me from paris"), "the default caser should not be modified")
	assert.Equal(t, "Made With", caser.Title("made with"))
}

func TestCaserTraceLogging(t *testing.T) {
	testconfig.AllowParallelization(t)

	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf).Level(zerolog.TraceLevel)

	caser := New(Config{Logger: &logger})
	assert.Equal(t, "Visit example.com Now", caser.Title("visit example.com now"))

	logs := buf.String()
	assert.Contains(t, logs, `"src":"titlecase"`)
	assert.Contains(t, logs, `"word":"example.com","rule":"url"`)
	assert.Contains(t, logs, `"word":"visit","rule":"default"`)
	assert.Equal(t, 3, strings.Count(logs, "\n"))
}

func TestTitleConcurrentUse(t *testing.T) {
	caser := New(Config{Callback: AbbreviationCallback("TCP")})

	done := make(chan string, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			done <- caser.Title("the tcp handshake: a primer")
		}()
	}

	for i := 0; i < cap(done); i++ {
		assert.Equal(t, "The TCP Handshake: A Primer", <-done)
	}
}
