package language

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadDefinition marks configuration errors in a language definition:
// an unparseable simplification pattern, a missing splitter group, a name
// list with the wrong arity. It is never returned for request text.
var ErrBadDefinition = errors.New("invalid language definition")

var groupRefPattern = regexp.MustCompile(`\$(?:(\d+)|\{(\d+)\})`)

// Validate checks the structural invariants of a language definition.
// Registries run it once per file at load time so that definition errors
// surface before the first request, not in the middle of one.
func Validate(code string, info *Info) error {
	if code == "" {
		return fmt.Errorf("%w: empty language code", ErrBadDefinition)
	}
	if info == nil {
		return fmt.Errorf("%w: %s: no definition", ErrBadDefinition, code)
	}
	if info.Name == "" {
		return fmt.Errorf("%w: %s: missing name", ErrBadDefinition, code)
	}

	if g := info.SentenceSplitterGroup; g != 0 {
		if _, ok := sentenceSplitterPattern(g); !ok {
			return fmt.Errorf("%w: %s: unknown sentence splitter group %d", ErrBadDefinition, code, g)
		}
	}

	for _, w := range info.Skip {
		if w == "" {
			return fmt.Errorf("%w: %s: empty skip word", ErrBadDefinition, code)
		}
	}
	for _, w := range info.Pertain {
		if w == "" {
			return fmt.Errorf("%w: %s: empty pertain word", ErrBadDefinition, code)
		}
	}
	for _, tbl := range info.nameTables() {
		for _, w := range tbl.Words {
			if w == "" {
				return fmt.Errorf("%w: %s: empty word under %q", ErrBadDefinition, code, tbl.Token)
			}
		}
	}

	if err := validateArity(code, info); err != nil {
		return err
	}

	for _, s := range info.Simplifications {
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err != nil {
			return fmt.Errorf("%w: %s: simplification pattern %q: %v", ErrBadDefinition, code, s.Pattern, err)
		}
		if max := maxGroupRef(s.Replacement); max > re.NumSubexp() {
			return fmt.Errorf("%w: %s: simplification %q: replacement references group %d, pattern has %d",
				ErrBadDefinition, code, s.Pattern, max, re.NumSubexp())
		}
	}
	return nil
}

// validateArity enforces all-or-none on the weekday, month and
// hour/minute/second families. A grammar bridge needs complete families;
// a half-filled one is almost always a typo in the definition file.
func validateArity(code string, info *Info) error {
	check := func(family string, lists ...[]string) error {
		filled := 0
		for _, l := range lists {
			if len(l) > 0 {
				filled++
			}
		}
		if filled != 0 && filled != len(lists) {
			return fmt.Errorf("%w: %s: incomplete %s lists (%d of %d)", ErrBadDefinition, code, family, filled, len(lists))
		}
		return nil
	}
	if err := check("weekday", info.Monday, info.Tuesday, info.Wednesday, info.Thursday, info.Friday, info.Saturday, info.Sunday); err != nil {
		return err
	}
	if err := check("month", info.January, info.February, info.March, info.April, info.May, info.June,
		info.July, info.August, info.September, info.October, info.November, info.December); err != nil {
		return err
	}
	return check("time-of-day unit", info.Hour, info.Minute, info.Second)
}

// maxGroupRef returns the highest $n or ${n} reference in a replacement.
func maxGroupRef(replacement string) int {
	max := 0
	for _, m := range groupRefPattern.FindAllStringSubmatch(replacement, -1) {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if n, err := strconv.Atoi(digits); err == nil && n > max {
			max = n
		}
	}
	return max
}
