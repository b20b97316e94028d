// CLAUDE:SUMMARY Thread-safe compile-once cache for the regular expressions derived from language definitions.
package language

import (
	"fmt"
	"regexp"
	"sync"
)

// patternCache memoizes compiled regular expressions keyed by their textual
// form. Entries are grow-only and compiled handles are immutable, so
// steady-state lookups take only a read lock.
type patternCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{compiled: make(map[string]*regexp.Regexp)}
}

// get returns the compiled form of expr, compiling it on first use.
// A compile failure is a configuration error: expr is derived from a
// language definition, never from request text.
func (c *patternCache) get(expr string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.compiled[expr]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrBadDefinition, expr, err)
	}

	c.mu.Lock()
	if prev, ok := c.compiled[expr]; ok {
		re = prev
	} else {
		c.compiled[expr] = re
	}
	c.mu.Unlock()
	return re, nil
}
