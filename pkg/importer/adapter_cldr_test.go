package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazyhaar/dateglot/pkg/language"
)

// cldrFixture is a trimmed ca-gregorian.json for French: one month and
// one weekday are enough to prove the plumbing; the Import test below
// uses a complete fixture.
const cldrFixtureFR = `{
  "main": {
    "fr": {
      "dates": {
        "calendars": {
          "gregorian": {
            "months": {
              "format": {
                "abbreviated": {"1": "janv.", "2": "févr.", "3": "mars", "4": "avr.", "5": "mai", "6": "juin", "7": "juil.", "8": "août", "9": "sept.", "10": "oct.", "11": "nov.", "12": "déc."},
                "wide": {"1": "janvier", "2": "février", "3": "mars", "4": "avril", "5": "mai", "6": "juin", "7": "juillet", "8": "août", "9": "septembre", "10": "octobre", "11": "novembre", "12": "décembre"}
              }
            },
            "days": {
              "format": {
                "abbreviated": {"sun": "dim.", "mon": "lun.", "tue": "mar.", "wed": "mer.", "thu": "jeu.", "fri": "ven.", "sat": "sam."},
                "wide": {"sun": "dimanche", "mon": "lundi", "tue": "mardi", "wed": "mercredi", "thu": "jeudi", "fri": "vendredi", "sat": "samedi"}
              }
            },
            "dayPeriods": {
              "format": {
                "abbreviated": {"am": "AM", "pm": "PM", "noon": "midi"},
                "wide": {"am": "AM", "pm": "PM", "noon": "midi"}
              }
            }
          }
        }
      }
    }
  }
}`

func TestParseCLDRGregorian(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr-gregorian.json")
	if err := os.WriteFile(path, []byte(cldrFixtureFR), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	names, err := parseCLDRGregorian(path, "fr")
	if err != nil {
		t.Fatalf("parseCLDRGregorian: %v", err)
	}

	// Wide first, then abbreviated, lowercased and deduplicated.
	if got := names.Months[0]; len(got) != 2 || got[0] != "janvier" || got[1] != "janv." {
		t.Errorf("January names = %v, want [janvier janv.]", got)
	}
	// "mars" is identical wide and abbreviated: one entry.
	if got := names.Months[2]; len(got) != 1 || got[0] != "mars" {
		t.Errorf("March names = %v, want [mars]", got)
	}
	// Weekday order is Monday-first.
	if got := names.Weekdays[0]; len(got) != 2 || got[0] != "lundi" {
		t.Errorf("Monday names = %v, want [lundi lun.]", got)
	}
	if got := names.Weekdays[6]; len(got) != 2 || got[0] != "dimanche" {
		t.Errorf("Sunday names = %v, want [dimanche dim.]", got)
	}
	// Only am/pm are taken from the day periods.
	if len(names.AM) != 1 || names.AM[0] != "am" {
		t.Errorf("AM names = %v, want [am]", names.AM)
	}
}

func TestParseCLDRGregorian_WrongLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr-gregorian.json")
	if err := os.WriteFile(path, []byte(cldrFixtureFR), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := parseCLDRGregorian(path, "de"); err == nil {
		t.Error("expected error for a locale absent from the file")
	}
}

func TestCLDRAdapter_Import(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cldrFixtureFR))
	}))
	defer ts.Close()

	a := &cldrAdapter{locale: "fr", code: "fr", desc: "test", seed: seedFrench}
	outDir := t.TempDir()

	if err := a.Import(context.Background(), ts.URL, outDir); err != nil {
		t.Fatalf("Import: %v", err)
	}

	info, err := language.LoadInfo(filepath.Join(outDir, "fr.yaml"))
	if err != nil {
		t.Fatalf("LoadInfo: %v", err)
	}
	if err := language.Validate("fr", info); err != nil {
		t.Fatalf("imported definition invalid: %v", err)
	}

	// The written definition drives the core end to end.
	l := language.New("fr", info)
	got, err := l.Translate("3 février 2015", false, language.DefaultSettings())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if want := "3 february 2015"; got != want {
		t.Errorf("Translate = %q, want %q", got, want)
	}

	// The download scratch dir must be cleaned up.
	if _, err := os.Stat(filepath.Join(outDir, "_download")); !os.IsNotExist(err) {
		t.Error("_download dir left behind")
	}
}

func TestLegacyCSVMerge(t *testing.T) {
	info := seedRussian()
	// Complete the families so the merged file validates.
	mergeCLDRNames(info, fullRussianNames())

	csv := "march;марта\nmarch;март\nhour;часиков\nbogus;nothing\n"
	added, err := mergeVariantCSV(info, []byte(csv))
	if err != nil {
		t.Fatalf("mergeVariantCSV: %v", err)
	}
	if added != 3 {
		t.Errorf("added = %d, want 3 (the bogus row is skipped)", added)
	}

	found := 0
	for _, w := range info.March {
		if w == "марта" || w == "март" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("March = %v, want both variants merged", info.March)
	}
}

func TestLegacyCSVAdapter_RequiresURL(t *testing.T) {
	a, err := Get("legacy-csv-ru")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.DefaultURL() != "" {
		t.Fatalf("DefaultURL = %q, want none (source must be configured explicitly)", a.DefaultURL())
	}
	err = a.Import(context.Background(), "", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "--url") {
		t.Errorf("Import without URL = %v, want an error pointing at --url", err)
	}
}

func TestLegacyCSVMerge_NothingMatches(t *testing.T) {
	info := seedRussian()
	if _, err := mergeVariantCSV(info, []byte("bogus;x\nunknown;y\n")); err == nil {
		t.Error("expected error when no row matches a canonical token")
	}
}

// fullRussianNames fills every month and weekday list with a single name,
// enough to satisfy the all-or-none validation in tests.
func fullRussianNames() *cldrNames {
	names := &cldrNames{}
	months := []string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	for i, m := range months {
		names.Months[i] = []string{m}
	}
	days := []string{"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье"}
	for i, d := range days {
		names.Weekdays[i] = []string{d}
	}
	return names
}
