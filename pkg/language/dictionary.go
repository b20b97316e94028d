package language

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// nonWordClass is the Unicode equivalent of a non-word character: anything
// that is not a letter, digit or underscore.
const nonWordClass = `[^\p{L}\p{N}_]`

// alwaysKeepTokens survive tokenization even when formatting is being
// discarded, and glue to their neighbors when tokens are rejoined. The
// colon keeps clock times like "10:30" intact through a round trip.
var alwaysKeepTokens = map[string]bool{":": true}

// keepTokenPattern decides whether a token carries content: at least one
// letter or digit.
var keepTokenPattern = regexp.MustCompile(`[\p{L}\p{N}]`)

// Dictionary maps every configured word or phrase of one language to its
// canonical translation. An empty translation means the word is dropped
// (skip and pertain words). The zero value is not usable; build instances
// with NewDictionary or NewNormalizedDictionary.
type Dictionary struct {
	entries       map[string]string
	noWordSpacing bool

	splitOnce sync.Once
	splitRe   *regexp.Regexp
}

// cleanWord prepares a configured word for use as a dictionary key:
// parentheses are removed (some sources mark optional suffixes that way),
// surrounding whitespace is trimmed and the result is lowercased. An empty
// result means the word contributes no key, which is how a configured
// bare space stays out of the dictionary.
func cleanWord(w string) string {
	w = strings.NewReplacer("(", "", ")", "").Replace(w)
	return strings.ToLower(strings.TrimSpace(w))
}

// NewDictionary builds the direct-form dictionary for a definition.
// Skip and pertain words map to the empty translation; every name-list
// word maps to its canonical token.
func NewDictionary(info *Info) *Dictionary {
	d := &Dictionary{
		entries:       make(map[string]string, info.WordCount()),
		noWordSpacing: info.NoWordSpacing,
	}
	for _, w := range info.Skip {
		if key := cleanWord(w); key != "" {
			d.entries[key] = ""
		}
	}
	for _, w := range info.Pertain {
		if key := cleanWord(w); key != "" {
			d.entries[key] = ""
		}
	}
	for _, tbl := range info.nameTables() {
		for _, w := range tbl.Words {
			if key := cleanWord(w); key != "" {
				d.entries[key] = tbl.Token
			}
		}
	}
	return d
}

// NewNormalizedDictionary builds the Unicode-normalized variant: every key
// is re-keyed through NormalizeUnicode. When a normalized key collides
// with a key that already exists verbatim, the verbatim entry wins and the
// colliding key is dropped, except for skip and pertain words, whose
// normalized form is always installed as a deletion.
func NewNormalizedDictionary(info *Info) *Dictionary {
	d := NewDictionary(info)

	normalized := make(map[string]string, len(d.entries))
	var colliding []string
	for key, value := range d.entries {
		nk := NormalizeUnicode(key)
		if nk != key {
			if _, taken := d.entries[nk]; taken {
				colliding = append(colliding, key)
				continue
			}
		}
		normalized[nk] = value
	}

	deletions := make(map[string]bool, len(info.Skip)+len(info.Pertain))
	for _, w := range info.Skip {
		if key := cleanWord(w); key != "" {
			deletions[key] = true
		}
	}
	for _, w := range info.Pertain {
		if key := cleanWord(w); key != "" {
			deletions[key] = true
		}
	}
	for _, key := range colliding {
		if deletions[key] {
			normalized[NormalizeUnicode(key)] = ""
		}
	}

	d.entries = normalized
	return d
}

// Lookup returns the canonical translation for word. The empty string with
// ok=true means the word is known but translates to nothing.
func (d *Dictionary) Lookup(word string) (translation string, ok bool) {
	translation, ok = d.entries[strings.ToLower(word)]
	return translation, ok
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.entries[strings.ToLower(word)]
	return ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Words returns every dictionary key in unspecified order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	return words
}

// Split tokenizes fragment around the configured words, longest first.
// With keepFormatting false, tokens that carry no letter or digit and are
// not always-kept are discarded; with keepFormatting true every token is
// returned verbatim. Empty tokens are never returned.
func (d *Dictionary) Split(fragment string, keepFormatting bool) []string {
	if fragment == "" {
		return nil
	}
	re := d.splitPattern()
	var tokens []string
	for fragment != "" {
		var m []string
		if re != nil {
			m = re.FindStringSubmatch(fragment)
		}
		if m == nil {
			if d.shouldCapture(fragment, keepFormatting) {
				tokens = append(tokens, fragment)
			}
			break
		}
		unparsed, known := m[1], m[2]
		if unparsed != "" && d.shouldCapture(unparsed, keepFormatting) {
			tokens = append(tokens, unparsed)
		}
		if d.shouldCapture(known, keepFormatting) {
			tokens = append(tokens, known)
		}
		fragment = m[3]
	}
	return tokens
}

func (d *Dictionary) shouldCapture(token string, keepFormatting bool) bool {
	return keepFormatting || alwaysKeepTokens[token] || keepTokenPattern.MatchString(token)
}

// splitPattern lazily builds the longest-match split regex. For languages
// written with word spacing the matched word must sit on non-word
// boundaries; for languages without word spacing it may start anywhere.
// The alternation lists longer words first so that a word never shadows
// a longer word it is a prefix of.
func (d *Dictionary) splitPattern() *regexp.Regexp {
	d.splitOnce.Do(func() {
		if len(d.entries) == 0 {
			return
		}
		words := d.Words()
		sort.Slice(words, func(i, j int) bool {
			if len(words[i]) != len(words[j]) {
				return len(words[i]) > len(words[j])
			}
			return words[i] < words[j]
		})
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		group := strings.Join(quoted, "|")

		var pattern string
		if d.noWordSpacing {
			pattern = `(?i)^(.*?)(` + group + `)(.*)$`
		} else {
			pattern = `(?i)^(.*?(?:\A|\d|_|` + nonWordClass + `))(` + group + `)((?:\d|_|` + nonWordClass + `|\z).*)$`
		}
		d.splitRe = regexp.MustCompile(pattern)
	})
	return d.splitRe
}
