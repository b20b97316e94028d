package language

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// testInfo returns a compact English-like definition exercising skip and
// pertain words, abbreviations and a rewrite rule for ordinal suffixes.
func testInfo() *Info {
	return &Info{
		Name:      "english",
		Skip:      []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "at"},
		Pertain:   []string{"of"},
		Monday:    []string{"monday", "mon"},
		Friday:    []string{"friday", "fri"},
		January:   []string{"january", "jan"},
		May:       []string{"may"},
		September: []string{"september", "sept", "sept."},
		Year:      []string{"year", "years"},
		Month:     []string{"month", "months"},
		Week:      []string{"week", "weeks"},
		Day:       []string{"day", "days"},
		Hour:      []string{"hour", "hours"},
		Minute:    []string{"minute", "minutes", "min"},
		Second:    []string{"second", "seconds", "sec"},
		Ago:       []string{"ago"},
		In:        []string{"in"},
		AM:        []string{"am"},
		PM:        []string{"pm"},
		Simplifications: []Simplification{
			{Pattern: `(\d+)(st|nd|rd|th)`, Replacement: "$1"},
		},
	}
}

func TestTranslate(t *testing.T) {
	l := New("en", testInfo())

	tests := []struct {
		in   string
		keep bool
		want string
	}{
		{"12 of May 2015, 10:30", false, "12 may 2015 10:30"},
		{"5th of May", false, "5 may"},
		{"5 Sept. 2015", false, "5 september 2015"},
		{"Fri, 10:30 PM", false, "friday 10:30 pm"},
		{"10 minutes ago", false, "10 minute ago"},
		{"maybe", false, "maybe"},
		// Formatting-preserving mode keeps spacing; the skip comma is
		// still deleted by its dictionary mapping.
		{"12 May 2015, 10:30", true, "12 may 2015 10:30"},
	}
	for _, tt := range tests {
		got, err := l.Translate(tt.in, tt.keep, DefaultSettings())
		if err != nil {
			t.Fatalf("Translate(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Translate(%q, keep=%v) = %q, want %q", tt.in, tt.keep, got, tt.want)
		}
	}
}

func TestTranslateInDisambiguation(t *testing.T) {
	l := New("en", testInfo())

	tests := []struct {
		in   string
		want string
	}{
		// A time unit confirms a relative expression, "in" survives.
		{"in 5 days", "in 5 day"},
		{"in 2 weeks", "in 2 week"},
		// No time unit: "in" is a leftover preposition and is dropped.
		{"In May", "may"},
		{"12 in May 2015", "12 may 2015"},
	}
	for _, tt := range tests {
		got, err := l.Translate(tt.in, false, DefaultSettings())
		if err != nil {
			t.Fatalf("Translate(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateNormalized(t *testing.T) {
	info := &Info{
		Name:     "french",
		Skip:     []string{" ", ","},
		February: []string{"février", "févr"},
	}
	l := New("fr", info)
	settings := Settings{Normalize: true}

	in := NormalizeUnicode("3 Février 2015")
	got, err := l.Translate(in, false, settings)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if want := "3 february 2015"; got != want {
		t.Errorf("Translate(%q) = %q, want %q", in, got, want)
	}

	// Raw mode on the same instance keeps the accented key.
	got, err = l.Translate("3 février 2015", false, DefaultSettings())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if want := "3 february 2015"; got != want {
		t.Errorf("raw Translate = %q, want %q", got, want)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	l := New("en", testInfo())

	once, err := l.simplify("The 5th of September", DefaultSettings())
	if err != nil {
		t.Fatalf("simplify: %v", err)
	}
	twice, err := l.simplify(once, DefaultSettings())
	if err != nil {
		t.Fatalf("simplify: %v", err)
	}
	if once != twice {
		t.Errorf("simplify not idempotent: %q then %q", once, twice)
	}
	if want := "the 5 of september"; once != want {
		t.Errorf("simplify = %q, want %q", once, want)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	l := New("en", testInfo())

	for _, in := range []string{
		"12 may 2015, 10:30",
		"5 september 2015",
		"fri 10:30 pm",
	} {
		tokens := l.split(in, true, DefaultSettings())
		if got := l.Join(tokens, "", DefaultSettings()); got != in {
			t.Errorf("join(split(%q)) = %q, want the input back", in, got)
		}
	}
}

func TestJoin(t *testing.T) {
	l := New("en", testInfo())

	tests := []struct {
		tokens []string
		sep    string
		want   string
	}{
		{nil, " ", ""},
		{[]string{"10", ":", "30"}, " ", "10:30"},
		{[]string{"12", "may"}, " ", "12 may"},
		// A capturing token glues to both neighbors.
		{[]string{"hello", ":"}, " ", "hello:"},
	}
	for _, tt := range tests {
		if got := l.Join(tt.tokens, tt.sep, DefaultSettings()); got != tt.want {
			t.Errorf("Join(%v, %q) = %q, want %q", tt.tokens, tt.sep, got, tt.want)
		}
	}
}

func TestIsApplicable(t *testing.T) {
	l := New("en", testInfo())

	tests := []struct {
		in      string
		stripTZ bool
		want    bool
	}{
		{"12 May 2015", false, true},
		{"12/05/2015", false, true},
		{"1234", false, true},
		{"", false, true},
		{"12 Mayo 2015", false, false},
		{"lunch monday", false, false},
		{"12 May 2015 CET", false, false},
		{"12 May 2015 CET", true, true},
	}
	for _, tt := range tests {
		got, err := l.IsApplicable(tt.in, tt.stripTZ, DefaultSettings())
		if err != nil {
			t.Fatalf("IsApplicable(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("IsApplicable(%q, stripTZ=%v) = %v, want %v", tt.in, tt.stripTZ, got, tt.want)
		}
	}
}

func TestSplitters(t *testing.T) {
	l := New("en", testInfo())
	sets := l.Splitters(DefaultSettings())

	if !sets.Capturing[":"] {
		t.Error("capturing set must contain the colon")
	}
	// "." appears inside the dictionary word "sept.", so it only splits
	// outside word characters.
	if !sets.WordChars["."] {
		t.Error(`expected "." in the wordchars splitter set`)
	}
	if sets.WordChars[","] {
		t.Error(`"," appears in no dictionary word, must not be a wordchars splitter`)
	}
}

func TestConcurrentUse(t *testing.T) {
	l := New("en", testInfo())

	want, err := l.Translate("12 of May 2015, 10:30", false, DefaultSettings())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(normalize bool) {
			defer wg.Done()
			settings := Settings{Normalize: normalize}
			got, err := l.Translate("12 of May 2015, 10:30", false, settings)
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- fmt.Errorf("Translate = %q, want %q", got, want)
			}
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestTranslateBadPattern(t *testing.T) {
	info := &Info{
		Name:            "broken",
		Simplifications: []Simplification{{Pattern: "([a-z", Replacement: "x"}},
	}
	l := New("xx", info)

	_, err := l.Translate("anything", false, DefaultSettings())
	if err == nil {
		t.Fatal("expected a configuration error for a bad pattern")
	}
	if !errors.Is(err, ErrBadDefinition) {
		t.Errorf("error %v should wrap ErrBadDefinition", err)
	}
}
