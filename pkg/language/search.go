package language

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// searchStripChars are trimmed from a candidate word before the
// dictionary probe, so quotes or brackets around a date do not hide it.
const searchStripChars = `()"{}[],.`

// dashTokens never carry date meaning on their own, even though several
// languages list dashes as skip words.
var dashTokens = map[string]bool{"-": true, "——": true, "—": true, "～": true}

// searchWordCacheSize bounds the per-language memo of simplified words.
// Free text repeats common words heavily, so a small LRU absorbs most of
// the rewrite work in the search path.
const searchWordCacheSize = 8192

// TranslateSearch scans free text for date-bearing substrings. The text
// is cut into sentences, each sentence into words, and maximal runs of
// dictionary or numeric words are collected into chunks. It returns the
// translated chunks and the original words they came from, index-aligned.
func (l *Language) TranslateSearch(text string, settings Settings) (translated, original []string, err error) {
	sentences, err := l.splitSentences(text)
	if err != nil {
		return nil, nil, err
	}
	dict := l.Dictionary(settings)

	var translatedChunks, originalChunks [][]string
	for _, sentence := range sentences {
		var translatedChunk, originalChunk []string
		flush := func() {
			if len(translatedChunk) > 0 {
				translatedChunks = append(translatedChunks, translatedChunk)
				originalChunks = append(originalChunks, originalChunk)
				translatedChunk, originalChunk = nil, nil
			}
		}
		for _, raw := range l.splitWords(sentence, settings) {
			word, err := l.simplifyCached(raw, settings)
			if err != nil {
				return nil, nil, err
			}
			translation, known := dict.Lookup(strings.Trim(word, searchStripChars))
			switch {
			case known && !dashTokens[word]:
				translatedChunk = append(translatedChunk, translation)
				originalChunk = append(originalChunk, raw)
			case l.numericLooking(word):
				translatedChunk = append(translatedChunk, word)
				originalChunk = append(originalChunk, raw)
			default:
				flush()
			}
		}
		flush()
	}

	translated = make([]string, len(translatedChunks))
	original = make([]string, len(translatedChunks))
	for i := range translatedChunks {
		chunk := clearFutureWords(translatedChunks[i])
		translated[i] = l.joinChunk(dropEmpty(chunk), settings)
		original[i] = l.joinChunk(dropEmpty(originalChunks[i]), settings)
	}
	return translated, original, nil
}

// splitWords cuts a sentence into candidate words. Languages without word
// spacing go through the full tokenizer with formatting preserved; the
// others split on whitespace.
func (l *Language) splitWords(sentence string, settings Settings) []string {
	if l.info.NoWordSpacing {
		return l.split(sentence, true, settings)
	}
	return strings.Fields(sentence)
}

// joinChunk renders one chunk back into a string: glued together for
// languages without word spacing, space-separated otherwise.
func (l *Language) joinChunk(chunk []string, settings Settings) string {
	if l.info.NoWordSpacing {
		return l.Join(chunk, "", settings)
	}
	return strings.Join(chunk, " ")
}

// numericLooking reports whether a token should extend a date chunk even
// though it is not in the dictionary. Languages without word spacing emit
// fragments like "2015-04-01" from the tokenizer, so date punctuation
// counts as numeric there.
func (l *Language) numericLooking(token string) bool {
	if l.info.NoWordSpacing {
		return strings.ContainsFunc(token, func(r rune) bool {
			return unicode.IsDigit(r) || r == '.' || r == ':' || r == '-' || r == '/'
		})
	}
	return strings.ContainsFunc(token, unicode.IsDigit)
}

// simplifyCached is the word-level simplify used by the search path,
// memoized per normalization mode.
func (l *Language) simplifyCached(word string, settings Settings) (string, error) {
	m := settings.mode()
	l.searchOnce[m].Do(func() {
		l.searchCache[m], _ = lru.New[string, string](searchWordCacheSize)
	})
	cache := l.searchCache[m]

	word = strings.ToLower(word)
	if cached, ok := cache.Get(word); ok {
		return cached, nil
	}
	simplified, err := l.simplify(word, settings)
	if err != nil {
		return "", err
	}
	cache.Add(word, simplified)
	return simplified, nil
}
