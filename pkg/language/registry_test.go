package language

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testYAMLEnglish = `name: english
skip: [" ", ","]
pertain: [of]
monday: [monday, mon]
tuesday: [tuesday, tue]
wednesday: [wednesday, wed]
thursday: [thursday, thu]
friday: [friday, fri]
saturday: [saturday, sat]
sunday: [sunday, sun]
january: [january, jan]
february: [february, feb]
march: [march, mar]
april: [april, apr]
may: [may]
june: [june, jun]
july: [july, jul]
august: [august, aug]
september: [september, sep]
october: [october, oct]
november: [november, nov]
december: [december, dec]
day: [day, days]
`

const testYAMLSpanish = `name: spanish
sentence_splitter_group: 2
skip: [" ", ","]
january: [enero]
february: [febrero]
march: [marzo]
april: [abril]
may: [mayo]
june: [junio]
july: [julio]
august: [agosto]
september: [septiembre]
october: [octubre]
november: [noviembre]
december: [diciembre]
day: [día, dias]
simplifications:
  - (\d+)º: $1
`

// writeLangDir writes language files into a temp dir and returns its path.
func writeLangDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRegistryLoad(t *testing.T) {
	dir := writeLangDir(t, map[string]string{
		"en.yaml":   testYAMLEnglish,
		"es.yaml":   testYAMLSpanish,
		"notes.txt": "ignored",
		"README.md": "ignored too",
	})

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Count() != 2 {
		t.Fatalf("Count = %d, want 2", reg.Count())
	}

	en, ok := reg.Get("en")
	if !ok {
		t.Fatal("en not registered")
	}
	got, err := en.Translate("12 of May, mon", false, DefaultSettings())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if want := "12 may monday"; got != want {
		t.Errorf("Translate = %q, want %q", got, want)
	}

	if _, ok := reg.Get("notes"); ok {
		t.Error("non-yaml files must not be loaded")
	}
}

func TestRegistryLoadBadFile(t *testing.T) {
	dir := writeLangDir(t, map[string]string{
		"en.yaml": testYAMLEnglish,
		"xx.yaml": "skip: [x]\n", // missing name
	})

	reg := NewRegistry(dir)
	err := reg.Load()
	if err == nil {
		t.Fatal("expected load to fail on an invalid definition")
	}
	if !errors.Is(err, ErrBadDefinition) {
		t.Errorf("error %v should wrap ErrBadDefinition", err)
	}
	// A failed load must not leave a partial set behind.
	if reg.Count() != 0 {
		t.Errorf("Count after failed load = %d, want 0", reg.Count())
	}
}

func TestRegistryReload(t *testing.T) {
	dir := writeLangDir(t, map[string]string{"en.yaml": testYAMLEnglish})

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "es.yaml"), []byte(testYAMLSpanish), 0o644); err != nil {
		t.Fatalf("write es.yaml: %v", err)
	}
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := reg.Codes(); len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Errorf("Codes after reload = %v, want [en es]", got)
	}
}

func TestRegistryList(t *testing.T) {
	dir := writeLangDir(t, map[string]string{
		"en.yaml": testYAMLEnglish,
		"es.yaml": testYAMLSpanish,
	})

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	summaries := reg.List()
	if len(summaries) != 2 {
		t.Fatalf("List len = %d, want 2", len(summaries))
	}
	if summaries[0].Code != "en" || summaries[0].Name != "english" {
		t.Errorf("first summary = %+v, want en/english", summaries[0])
	}
	if summaries[0].SentenceSplitterGroup != SplitterLatin {
		t.Errorf("en splitter group = %d, want the default %d", summaries[0].SentenceSplitterGroup, SplitterLatin)
	}
	if summaries[1].SentenceSplitterGroup != SplitterSpanish {
		t.Errorf("es splitter group = %d, want %d", summaries[1].SentenceSplitterGroup, SplitterSpanish)
	}
	if summaries[0].Words == 0 {
		t.Error("word count must reflect configured words")
	}
}

func TestRegistryDetect(t *testing.T) {
	dir := writeLangDir(t, map[string]string{
		"en.yaml": testYAMLEnglish,
		"es.yaml": testYAMLSpanish,
	})

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		text string
		want []string
	}{
		{"12/05/2015", []string{"en", "es"}}, // digits fit everywhere
		{"12 may", []string{"en"}},
		{"12 mayo", []string{"es"}},
		{"12 maggio", nil},
	}
	for _, tt := range tests {
		got, err := reg.Detect(tt.text, false, DefaultSettings())
		if err != nil {
			t.Fatalf("Detect(%q): %v", tt.text, err)
		}
		if len(got) != len(tt.want) {
			t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
				break
			}
		}
	}
}
