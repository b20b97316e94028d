package language

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry holds all loaded languages and serves lookups by code.
type Registry struct {
	mu       sync.RWMutex
	langs    map[string]*Language
	langsDir string
}

// NewRegistry creates an empty registry for the given directory.
func NewRegistry(langsDir string) *Registry {
	return &Registry{
		langs:    make(map[string]*Language),
		langsDir: langsDir,
	}
}

// Load scans the languages directory and loads every *.yaml definition.
// The file name minus extension is the language code. A definition that
// fails validation aborts the whole load, so a bad file cannot silently
// drop a language from a running service.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.langsDir)
	if err != nil {
		return fmt.Errorf("read languages dir %s: %w", r.langsDir, err)
	}

	newLangs := make(map[string]*Language)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".yaml")
		info, err := LoadInfo(filepath.Join(r.langsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("load language %s: %w", code, err)
		}
		if err := Validate(code, info); err != nil {
			return fmt.Errorf("load language %s: %w", code, err)
		}
		newLangs[code] = New(code, info)
	}

	r.mu.Lock()
	r.langs = newLangs
	r.mu.Unlock()
	return nil
}

// Reload reloads all languages from disk (hot reload). Derived caches
// belong to the Language instances, so a reload starts everything fresh.
func (r *Registry) Reload() error {
	return r.Load()
}

// Get returns the language registered under code.
func (r *Registry) Get(code string) (*Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.langs[code]
	return l, ok
}

// Codes returns all registered language codes, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.langs))
	for code := range r.langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of loaded languages.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.langs)
}

// Summary is the public metadata for one loaded language.
type Summary struct {
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	NoWordSpacing         bool   `json:"no_word_spacing,omitempty"`
	SentenceSplitterGroup int    `json:"sentence_splitter_group"`
	Words                 int    `json:"words"`
}

// List returns metadata for all loaded languages, sorted by code.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]Summary, 0, len(r.langs))
	for code, l := range r.langs {
		group := l.info.SentenceSplitterGroup
		if group == 0 {
			group = SplitterLatin
		}
		summaries = append(summaries, Summary{
			Code:                  code,
			Name:                  l.info.Name,
			NoWordSpacing:         l.info.NoWordSpacing,
			SentenceSplitterGroup: group,
			Words:                 l.info.WordCount(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Code < summaries[j].Code })
	return summaries
}

// Detect returns the codes of every language the text is applicable to,
// sorted. Languages are probed in code order; a definition error in one
// language aborts the scan.
func (r *Registry) Detect(text string, stripTimezone bool, settings Settings) ([]string, error) {
	r.mu.RLock()
	langs := make([]*Language, 0, len(r.langs))
	for _, l := range r.langs {
		langs = append(langs, l)
	}
	r.mu.RUnlock()
	sort.Slice(langs, func(i, j int) bool { return langs[i].code < langs[j].code })

	var codes []string
	for _, l := range langs {
		ok, err := l.IsApplicable(text, stripTimezone, settings)
		if err != nil {
			return nil, fmt.Errorf("detect %s: %w", l.code, err)
		}
		if ok {
			codes = append(codes, l.code)
		}
	}
	return codes, nil
}
