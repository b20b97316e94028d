// CLAUDE:SUMMARY Language definition YAML schema: name lists, skip/pertain words, simplification rules, splitter group.
package language

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Info is the static definition of one language, as loaded from a
// languages/<code>.yaml file. Every name list is optional; a list left
// empty simply contributes nothing to the dictionary.
type Info struct {
	Name                  string           `yaml:"name" json:"name"`
	SentenceSplitterGroup int              `yaml:"sentence_splitter_group,omitempty" json:"sentence_splitter_group,omitempty"`
	NoWordSpacing         bool             `yaml:"no_word_spacing,omitempty" json:"no_word_spacing,omitempty"`
	Skip                  []string         `yaml:"skip,omitempty" json:"-"`
	Pertain               []string         `yaml:"pertain,omitempty" json:"-"`
	Simplifications       []Simplification `yaml:"simplifications,omitempty" json:"-"`

	Monday    []string `yaml:"monday,omitempty" json:"-"`
	Tuesday   []string `yaml:"tuesday,omitempty" json:"-"`
	Wednesday []string `yaml:"wednesday,omitempty" json:"-"`
	Thursday  []string `yaml:"thursday,omitempty" json:"-"`
	Friday    []string `yaml:"friday,omitempty" json:"-"`
	Saturday  []string `yaml:"saturday,omitempty" json:"-"`
	Sunday    []string `yaml:"sunday,omitempty" json:"-"`

	January   []string `yaml:"january,omitempty" json:"-"`
	February  []string `yaml:"february,omitempty" json:"-"`
	March     []string `yaml:"march,omitempty" json:"-"`
	April     []string `yaml:"april,omitempty" json:"-"`
	May       []string `yaml:"may,omitempty" json:"-"`
	June      []string `yaml:"june,omitempty" json:"-"`
	July      []string `yaml:"july,omitempty" json:"-"`
	August    []string `yaml:"august,omitempty" json:"-"`
	September []string `yaml:"september,omitempty" json:"-"`
	October   []string `yaml:"october,omitempty" json:"-"`
	November  []string `yaml:"november,omitempty" json:"-"`
	December  []string `yaml:"december,omitempty" json:"-"`

	Year   []string `yaml:"year,omitempty" json:"-"`
	Month  []string `yaml:"month,omitempty" json:"-"`
	Week   []string `yaml:"week,omitempty" json:"-"`
	Day    []string `yaml:"day,omitempty" json:"-"`
	Hour   []string `yaml:"hour,omitempty" json:"-"`
	Minute []string `yaml:"minute,omitempty" json:"-"`
	Second []string `yaml:"second,omitempty" json:"-"`

	Ago []string `yaml:"ago,omitempty" json:"-"`
	In  []string `yaml:"in,omitempty" json:"-"`
	AM  []string `yaml:"am,omitempty" json:"-"`
	PM  []string `yaml:"pm,omitempty" json:"-"`
}

// nameTable pairs a canonical token with its configured translations.
type nameTable struct {
	Token string
	Words []string
}

// nameTables returns the canonical-token tables in a fixed order. The
// order decides which canonical token wins when two lists share a word
// (last one in wins, matching dictionary build order).
func (in *Info) nameTables() []nameTable {
	return []nameTable{
		{"monday", in.Monday},
		{"tuesday", in.Tuesday},
		{"wednesday", in.Wednesday},
		{"thursday", in.Thursday},
		{"friday", in.Friday},
		{"saturday", in.Saturday},
		{"sunday", in.Sunday},
		{"january", in.January},
		{"february", in.February},
		{"march", in.March},
		{"april", in.April},
		{"may", in.May},
		{"june", in.June},
		{"july", in.July},
		{"august", in.August},
		{"september", in.September},
		{"october", in.October},
		{"november", in.November},
		{"december", in.December},
		{"year", in.Year},
		{"month", in.Month},
		{"week", in.Week},
		{"day", in.Day},
		{"hour", in.Hour},
		{"minute", in.Minute},
		{"second", in.Second},
		{"ago", in.Ago},
		{"in", in.In},
		{"am", in.AM},
		{"pm", in.PM},
	}
}

// WordCount returns the number of configured words across all lists.
func (in *Info) WordCount() int {
	n := len(in.Skip) + len(in.Pertain)
	for _, tbl := range in.nameTables() {
		n += len(tbl.Words)
	}
	return n
}

// Simplification is one ordered pattern -> replacement rewrite applied
// before tokenization. In YAML it is a single-entry mapping; the
// replacement may be a string or a bare integer (kept as decimal text).
type Simplification struct {
	Pattern     string
	Replacement string
}

// UnmarshalYAML accepts the single-entry mapping form used in language
// files, e.g. `- (\d+)h: $1:00`.
func (s *Simplification) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("simplification must be a single pattern: replacement pair")
	}
	s.Pattern = node.Content[0].Value
	val := node.Content[1]
	switch val.Tag {
	case "!!str":
		s.Replacement = val.Value
	case "!!int":
		n, err := strconv.ParseInt(val.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("simplification %q: %v", s.Pattern, err)
		}
		s.Replacement = strconv.FormatInt(n, 10)
	default:
		return fmt.Errorf("simplification %q: replacement must be a string or integer, got %s", s.Pattern, val.Tag)
	}
	return nil
}

// MarshalYAML emits the same single-entry mapping form.
func (s Simplification) MarshalYAML() (any, error) {
	return map[string]string{s.Pattern: s.Replacement}, nil
}

// LoadInfo reads and parses one language definition file.
func LoadInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language file %s: %w", path, err)
	}
	var in Info
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse language file %s: %w", path, err)
	}
	return &in, nil
}
