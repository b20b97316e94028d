// Package tzoffset recognizes and strips trailing timezone designators
// from date strings, so "12 Feb 2015 10:30 CET" can be checked against a
// language dictionary without the designator getting in the way.
package tzoffset

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Offset is a recognized timezone designator.
type Offset struct {
	Name   string
	Offset time.Duration
}

// Location renders the offset as a fixed zone usable with the time
// package.
func (o *Offset) Location() *time.Location {
	return time.FixedZone(o.Name, int(o.Offset/time.Second))
}

// abbreviations maps well-known timezone abbreviations to their UTC
// offset. Ambiguous abbreviations carry their most common reading (IST is
// India, CST is US Central).
var abbreviations = map[string]time.Duration{
	"ACDT": 10*time.Hour + 30*time.Minute,
	"ACST": 9*time.Hour + 30*time.Minute,
	"AEDT": 11 * time.Hour,
	"AEST": 10 * time.Hour,
	"AKDT": -8 * time.Hour,
	"AKST": -9 * time.Hour,
	"AST":  -4 * time.Hour,
	"AWST": 8 * time.Hour,
	"BST":  1 * time.Hour,
	"CDT":  -5 * time.Hour,
	"CEST": 2 * time.Hour,
	"CET":  1 * time.Hour,
	"CST":  -6 * time.Hour,
	"EAT":  3 * time.Hour,
	"EDT":  -4 * time.Hour,
	"EEST": 3 * time.Hour,
	"EET":  2 * time.Hour,
	"EST":  -5 * time.Hour,
	"GMT":  0,
	"HADT": -9 * time.Hour,
	"HAST": -10 * time.Hour,
	"HKT":  8 * time.Hour,
	"HST":  -10 * time.Hour,
	"ICT":  7 * time.Hour,
	"IST":  5*time.Hour + 30*time.Minute,
	"JST":  9 * time.Hour,
	"KST":  9 * time.Hour,
	"MDT":  -6 * time.Hour,
	"MSK":  3 * time.Hour,
	"MST":  -7 * time.Hour,
	"NZDT": 13 * time.Hour,
	"NZST": 12 * time.Hour,
	"PDT":  -7 * time.Hour,
	"PKT":  5 * time.Hour,
	"PST":  -8 * time.Hour,
	"SAST": 2 * time.Hour,
	"SGT":  8 * time.Hour,
	"UTC":  0,
	"WAT":  1 * time.Hour,
	"WEST": 1 * time.Hour,
	"WET":  0,
	"WIB":  7 * time.Hour,
	"Z":    0,
}

var (
	namedTail    *regexp.Regexp
	prefixedTail = regexp.MustCompile(`(?i)(?:^|[\s\d])((?:UTC|GMT)\s?([+-])(\d{1,2})(?::?(\d{2}))?)\s*$`)
	bareTail     = regexp.MustCompile(`(?:^|[\s\d])(([+-])(\d{2}):?(\d{2}))\s*$`)
)

func init() {
	names := make([]string, 0, len(abbreviations))
	for name := range abbreviations {
		names = append(names, name)
	}
	// Longest first, so CEST is not matched as a trailing EST.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	namedTail = regexp.MustCompile(`(?i)(?:^|[\s\d(])(` + strings.Join(names, "|") + `)\)?\s*$`)
}

// Pop removes a trailing timezone designator from s. It returns the
// remaining string, the recognized offset, and whether anything was
// removed. Unrecognized text is returned unchanged.
func Pop(s string) (string, *Offset, bool) {
	if m := namedTail.FindStringSubmatchIndex(s); m != nil {
		name := strings.ToUpper(s[m[2]:m[3]])
		if seconds, ok := abbreviations[name]; ok {
			return trimTail(s[:m[2]]), &Offset{Name: name, Offset: seconds}, true
		}
	}
	if m := prefixedTail.FindStringSubmatchIndex(s); m != nil {
		if off, ok := numericOffset(s, m); ok {
			return trimTail(s[:m[2]]), off, true
		}
	}
	if m := bareTail.FindStringSubmatchIndex(s); m != nil {
		if off, ok := numericOffset(s, m); ok {
			return trimTail(s[:m[2]]), off, true
		}
	}
	return s, nil, false
}

// numericOffset builds an Offset from the submatches of the numeric tail
// patterns: group 2 is the sign, 3 the hours, 4 the optional minutes.
func numericOffset(s string, m []int) (*Offset, bool) {
	sign := s[m[4]:m[5]]
	hours, _ := strconv.Atoi(s[m[6]:m[7]])
	minutes := 0
	if m[8] >= 0 {
		minutes, _ = strconv.Atoi(s[m[8]:m[9]])
	}
	if hours > 14 || minutes > 59 {
		return nil, false
	}
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if sign == "-" {
		d = -d
	}
	return &Offset{
		Name:   fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes),
		Offset: d,
	}, true
}

func trimTail(s string) string {
	return strings.TrimRight(s, " \t(")
}
