package language

import (
	"fmt"
	"regexp"
	"sync"
)

// Sentence splitter groups bundle languages whose scripts share sentence
// boundary punctuation. A language definition picks one by number; group 1
// is the default.
const (
	SplitterLatin    = 1 // most European languages, Tagalog, Hebrew, Georgian, Indonesian, Vietnamese
	SplitterSpanish  = 2 // inverted opening marks
	SplitterIndic    = 3 // Hindi, Bangla
	SplitterCJK      = 4 // Japanese, Chinese
	SplitterThai     = 5 // no sentence punctuation, line breaks only
	SplitterRTL      = 6 // Arabic, Farsi
)

var (
	sentenceSplittersMu sync.RWMutex
	sentenceSplitters   = map[int]string{
		SplitterLatin:   `[.!?;…\r\n]+\s*`,
		SplitterSpanish: `(?:[¡¿]+|[.!?;…\r\n]+(?:\s|$))+`,
		SplitterIndic:   `[।॥|!?;\r\n]+\s*`,
		SplitterCJK:     `[。…‥.!?？！;\r\n]+[\s\x{3000}]*`,
		SplitterThai:    `[\r\n]+`,
		SplitterRTL:     `[\r\n؟!.…]+\s*`,
	}
)

// RegisterSentenceSplitter installs or replaces the boundary pattern for a
// splitter group, so a new script family can be added without touching
// this package. The pattern must compile; it is matched against the text
// and every match is treated as a sentence boundary.
func RegisterSentenceSplitter(group int, pattern string) error {
	if group <= 0 {
		return fmt.Errorf("%w: sentence splitter group must be positive, got %d", ErrBadDefinition, group)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: sentence splitter group %d: %v", ErrBadDefinition, group, err)
	}
	sentenceSplittersMu.Lock()
	sentenceSplitters[group] = pattern
	sentenceSplittersMu.Unlock()
	return nil
}

// sentenceSplitterPattern returns the boundary pattern for a group.
func sentenceSplitterPattern(group int) (string, bool) {
	sentenceSplittersMu.RLock()
	defer sentenceSplittersMu.RUnlock()
	p, ok := sentenceSplitters[group]
	return p, ok
}

// splitSentences cuts text at the boundaries of the language's splitter
// group. Boundary runs are consumed; empty sentences are dropped.
func (l *Language) splitSentences(text string) ([]string, error) {
	group := l.info.SentenceSplitterGroup
	if group == 0 {
		group = SplitterLatin
	}
	pattern, ok := sentenceSplitterPattern(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown sentence splitter group %d", ErrBadDefinition, l.code, group)
	}
	re, err := l.patterns.get(pattern)
	if err != nil {
		return nil, err
	}

	parts := re.Split(text, -1)
	sentences := parts[:0]
	for _, p := range parts {
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences, nil
}
