package language

import "fmt"

// ParserInfo is the projection of a language handed to a generic date
// grammar: ordered name tables plus the word lists a grammar may skip
// over. The slices are views into the definition; callers must not
// mutate them.
type ParserInfo struct {
	Name    string
	Jump    []string // words and punctuation the grammar skips
	Pertain []string // words tying a day to a month, like "of" in "1st of May"

	Weekdays [7][]string  // Monday..Sunday
	Months   [12][]string // January..December
	HMS      [3][]string  // hour, minute, second
}

// ParserInfo builds the grammar projection for the language. It fails
// when a name family is incomplete: a grammar indexes into these tables
// by position, so a partial table would mislabel everything after the
// gap.
func (l *Language) ParserInfo() (*ParserInfo, error) {
	in := l.info
	pi := &ParserInfo{
		Name:     in.Name,
		Jump:     in.Skip,
		Pertain:  in.Pertain,
		Weekdays: [7][]string{in.Monday, in.Tuesday, in.Wednesday, in.Thursday, in.Friday, in.Saturday, in.Sunday},
		Months: [12][]string{
			in.January, in.February, in.March, in.April, in.May, in.June,
			in.July, in.August, in.September, in.October, in.November, in.December,
		},
		HMS: [3][]string{in.Hour, in.Minute, in.Second},
	}
	for i, names := range pi.Weekdays {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s: parser info needs all 7 weekday lists (missing #%d)", ErrBadDefinition, l.code, i+1)
		}
	}
	for i, names := range pi.Months {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s: parser info needs all 12 month lists (missing #%d)", ErrBadDefinition, l.code, i+1)
		}
	}
	for i, names := range pi.HMS {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s: parser info needs hour, minute and second lists (missing #%d)", ErrBadDefinition, l.code, i+1)
		}
	}
	return pi, nil
}
