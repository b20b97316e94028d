// Package language turns natural-language date expressions into a
// canonical English vocabulary that a generic date grammar can parse.
//
// Each Language is built from a declarative definition (see Info) and
// exposes three operations: Translate rewrites a whole date expression,
// TranslateSearch scans free text for date-bearing substrings, and
// IsApplicable cheaply tests whether text belongs to the language.
// Derived state (dictionaries, compiled patterns, splitter sets) is built
// lazily and cached per normalization mode, so a Language is safe for
// concurrent use from the first call on.
package language

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hazyhaar/dateglot/pkg/tzoffset"
)

// Language is one loaded language: its definition plus every piece of
// derived state, built on first use and indexed by normalization mode.
type Language struct {
	code string
	info *Info

	patterns *patternCache

	dictOnce [modeCount]sync.Once
	dicts    [modeCount]*Dictionary

	simpOnce [modeCount]sync.Once
	simps    [modeCount][]simplification
	simpErr  [modeCount]error

	wcOnce [modeCount]sync.Once
	wc     [modeCount]map[rune]bool

	splitterOnce [modeCount]sync.Once
	splitterSets [modeCount]*SplitterSets

	searchOnce  [modeCount]sync.Once
	searchCache [modeCount]*lru.Cache[string, string]
}

// New builds a Language from its code and definition. The definition is
// not checked here; run Validate first when loading files.
func New(code string, info *Info) *Language {
	return &Language{code: code, info: info, patterns: newPatternCache()}
}

// Code returns the language code the instance was registered under.
func (l *Language) Code() string { return l.code }

// Info returns the definition the language was built from. It is shared,
// not copied; callers must not mutate it.
func (l *Language) Info() *Info { return l.info }

// Dictionary returns the word dictionary for the given settings, building
// it on first use.
func (l *Language) Dictionary(settings Settings) *Dictionary {
	m := settings.mode()
	l.dictOnce[m].Do(func() {
		if settings.Normalize {
			l.dicts[m] = NewNormalizedDictionary(l.info)
		} else {
			l.dicts[m] = NewDictionary(l.info)
		}
	})
	return l.dicts[m]
}

// Translate rewrites a date expression into the canonical vocabulary:
// known words are replaced by their canonical tokens, skip and pertain
// words are dropped, and an "in" that does not introduce a relative
// expression is removed. With keepFormatting false, tokens are joined
// with single spaces; with keepFormatting true, punctuation and unknown
// fragments survive and the original spacing is preserved.
func (l *Language) Translate(text string, keepFormatting bool, settings Settings) (string, error) {
	simplified, err := l.simplify(text, settings)
	if err != nil {
		return "", err
	}
	words := l.split(simplified, keepFormatting, settings)

	dict := l.Dictionary(settings)
	for i, word := range words {
		if translation, ok := dict.Lookup(word); ok {
			words[i] = translation
		}
	}
	words = clearFutureWords(words)
	words = dropEmpty(words)

	separator := " "
	if keepFormatting {
		separator = ""
	}
	return l.Join(words, separator, settings), nil
}

// IsApplicable reports whether text looks parseable in this language:
// after simplification and tokenization, every token must be a digit run
// or a dictionary word. Purely numeric input is applicable to every
// language. With stripTimezone set, a trailing timezone designator is
// removed before the check.
func (l *Language) IsApplicable(text string, stripTimezone bool, settings Settings) (bool, error) {
	if stripTimezone {
		text, _, _ = tzoffset.Pop(text)
	}
	simplified, err := l.simplify(text, settings)
	if err != nil {
		return false, err
	}
	tokens := l.split(simplified, false, settings)

	onlyDigits := true
	for _, tok := range tokens {
		if !isDigits(tok) {
			onlyDigits = false
			break
		}
	}
	if onlyDigits {
		return true, nil
	}

	dict := l.Dictionary(settings)
	for _, tok := range tokens {
		if isDigits(tok) || dict.Contains(tok) {
			continue
		}
		return false, nil
	}
	return true, nil
}

// Join concatenates tokens with separator, except around capturing
// splitters: a capturing token glues to both neighbors, so a split colon
// reassembles into "10:30" rather than "10 : 30".
func (l *Language) Join(tokens []string, separator string, settings Settings) string {
	if len(tokens) == 0 {
		return ""
	}
	capturing := l.Splitters(settings).Capturing
	var b strings.Builder
	b.WriteString(tokens[0])
	for i := 1; i < len(tokens); i++ {
		if !capturing[tokens[i-1]] && !capturing[tokens[i]] {
			b.WriteString(separator)
		}
		b.WriteString(tokens[i])
	}
	return b.String()
}

// simplify lowercases text and applies the definition's rewrite rules in
// order. The result is lowercased again after every rule because a
// replacement may introduce uppercase letters.
func (l *Language) simplify(text string, settings Settings) (string, error) {
	rules, err := l.simplifications(settings)
	if err != nil {
		return "", err
	}
	text = strings.ToLower(text)
	for _, rule := range rules {
		text = strings.ToLower(rule.re.ReplaceAllString(text, rule.replacement))
	}
	return text, nil
}

// split cuts simplified text into tokens: first around digit runs, then
// each remaining fragment around dictionary words.
func (l *Language) split(text string, keepFormatting bool, settings Settings) []string {
	if text == "" {
		return nil
	}
	dict := l.Dictionary(settings)
	var tokens []string
	for _, fragment := range splitDigitRuns(text) {
		tokens = append(tokens, dict.Split(fragment, keepFormatting)...)
	}
	return tokens
}

var digitRuns = regexp.MustCompile(`\d+`)

// splitDigitRuns cuts s around runs of ASCII digits, keeping the runs as
// fragments of their own. Definitions map native digit scripts to ASCII
// through simplification rules before this point.
func splitDigitRuns(s string) []string {
	matches := digitRuns.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return []string{s}
	}
	var out []string
	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, s[last:m[0]])
		}
		out = append(out, s[m[0]:m[1]])
		last = m[1]
	}
	if last < len(s) {
		out = append(out, s[last:])
	}
	return out
}

// simplification is one compiled rewrite rule.
type simplification struct {
	re          *regexp.Regexp
	replacement string
}

func (l *Language) simplifications(settings Settings) ([]simplification, error) {
	m := settings.mode()
	l.simpOnce[m].Do(func() {
		l.simps[m], l.simpErr[m] = l.buildSimplifications(settings.Normalize)
	})
	return l.simps[m], l.simpErr[m]
}

// buildSimplifications compiles the definition's rewrite rules. For
// languages written with word spacing, each pattern is wrapped in
// boundary groups so it only matches whole words, and the replacement's
// group references are shifted past the new leading group.
func (l *Language) buildSimplifications(normalize bool) ([]simplification, error) {
	rules := make([]simplification, 0, len(l.info.Simplifications))
	for _, s := range l.info.Simplifications {
		pattern, replacement := s.Pattern, s.Replacement
		if normalize {
			pattern = NormalizeUnicode(pattern)
			replacement = NormalizeUnicode(replacement)
		}

		base, err := l.patterns.get("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.code, err)
		}

		if l.info.NoWordSpacing {
			rules = append(rules, simplification{re: base, replacement: braceGroupRefs(replacement, 0)})
			continue
		}

		wrappedPattern := `(?i)(\A|\d|_|` + nonWordClass + `)` + pattern + `(\d|_|` + nonWordClass + `|\z)`
		wrappedReplacement := "${1}" + braceGroupRefs(replacement, 1) + "${" + strconv.Itoa(base.NumSubexp()+2) + "}"
		re, err := l.patterns.get(wrappedPattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.code, err)
		}
		rules = append(rules, simplification{re: re, replacement: wrappedReplacement})
	}
	return rules, nil
}

// braceGroupRefs rewrites $n and ${n} references to the braced form,
// shifting each index. The braced form is required in expansions like
// "${1}h" where a bare $1 would swallow the following characters as part
// of the group name. "$$" escapes are left untouched.
func braceGroupRefs(replacement string, shift int) string {
	parts := strings.Split(replacement, "$$")
	for i, part := range parts {
		parts[i] = groupRefPattern.ReplaceAllStringFunc(part, func(ref string) string {
			n, err := strconv.Atoi(strings.Trim(ref[1:], "{}"))
			if err != nil {
				return ref
			}
			return "${" + strconv.Itoa(n+shift) + "}"
		})
	}
	return strings.Join(parts, "$$")
}

// SplitterSets are the token classification sets derived from one
// language's dictionary.
type SplitterSets struct {
	// WordChars holds the skip punctuation that also appears inside
	// dictionary words, and therefore splits words only when it shows up
	// outside a known word.
	WordChars map[string]bool
	// Capturing holds the tokens that are never discarded and never get a
	// separator inserted next to them.
	Capturing map[string]bool
}

// Splitters returns the splitter sets for the given settings, building
// them on first use.
func (l *Language) Splitters(settings Settings) *SplitterSets {
	m := settings.mode()
	l.splitterOnce[m].Do(func() {
		l.splitterSets[m] = l.buildSplitters(settings)
	})
	return l.splitterSets[m]
}

var pureNonWord = regexp.MustCompile(`^` + nonWordClass + `+$`)

func (l *Language) buildSplitters(settings Settings) *SplitterSets {
	sets := &SplitterSets{
		WordChars: make(map[string]bool),
		Capturing: make(map[string]bool),
	}
	for tok := range alwaysKeepTokens {
		sets.Capturing[tok] = true
	}

	candidates := make(map[string]bool, len(l.info.Skip)+len(sets.Capturing))
	for _, tok := range l.info.Skip {
		candidates[strings.ToLower(tok)] = true
	}
	for tok := range sets.Capturing {
		candidates[tok] = true
	}

	wordChars := l.wordChars(settings)
	for tok := range candidates {
		if !pureNonWord.MatchString(tok) {
			continue
		}
		r, size := utf8.DecodeRuneInString(tok)
		if size == len(tok) && wordChars[r] {
			sets.WordChars[tok] = true
		}
	}
	return sets
}

var noLetterWord = regexp.MustCompile(`^[^\p{L}]+$`)

// wordChars returns the characters occurring in dictionary words that
// contain at least one letter, lowercased, minus the space, plus the
// ASCII digits.
func (l *Language) wordChars(settings Settings) map[rune]bool {
	m := settings.mode()
	l.wcOnce[m].Do(func() {
		chars := make(map[rune]bool)
		for _, word := range l.Dictionary(settings).Words() {
			if noLetterWord.MatchString(word) {
				continue
			}
			for _, r := range word {
				chars[unicode.ToLower(r)] = true
			}
		}
		delete(chars, ' ')
		for r := '0'; r <= '9'; r++ {
			chars[r] = true
		}
		l.wc[m] = chars
	})
	return l.wc[m]
}

// freshnessUnits are the canonical unit tokens that mark a relative
// expression like "in 3 days".
var freshnessUnits = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
	"hour": true, "minute": true, "second": true,
}

// clearFutureWords drops the first "in" from a token list unless a time
// unit confirms it introduces a relative expression. A leftover "in" is a
// plain preposition and would mislead the grammar.
func clearFutureWords(words []string) []string {
	hasIn := false
	for _, w := range words {
		if freshnessUnits[w] {
			return words
		}
		if w == "in" {
			hasIn = true
		}
	}
	if !hasIn {
		return words
	}
	for i, w := range words {
		if w == "in" {
			return append(words[:i], words[i+1:]...)
		}
	}
	return words
}

func dropEmpty(tokens []string) []string {
	kept := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			kept = append(kept, t)
		}
	}
	return kept
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
