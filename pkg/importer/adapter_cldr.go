// CLAUDE:SUMMARY Import adapter family building language YAML files from Unicode CLDR gregorian calendar data, one instance per locale.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hazyhaar/dateglot/pkg/language"
)

// cldrURL is the raw cldr-json location for a locale's gregorian calendar.
func cldrURL(locale string) string {
	return "https://raw.githubusercontent.com/unicode-org/cldr-json/main/cldr-json/cldr-dates-full/main/" + locale + "/ca-gregorian.json"
}

func init() {
	for _, a := range cldrAdapters {
		Register(a)
	}
}

// cldrAdapter imports month, weekday and day-period names for one locale
// from CLDR and merges them onto a hand-maintained seed carrying the
// vocabulary CLDR does not have: skip and pertain words, time units,
// relative-expression markers and rewrite rules.
type cldrAdapter struct {
	locale string
	code   string
	desc   string
	seed   func() *language.Info
}

func (a *cldrAdapter) ID() string          { return "cldr-" + a.code }
func (a *cldrAdapter) LangCode() string    { return a.code }
func (a *cldrAdapter) Description() string { return a.desc }
func (a *cldrAdapter) DefaultURL() string  { return cldrURL(a.locale) }
func (a *cldrAdapter) License() string     { return "Unicode-DFS-2016" }

func (a *cldrAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	if err := ensureDir(outputDir); err != nil {
		return err
	}
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	jsonPath := filepath.Join(dlDir, a.locale+"-gregorian.json")
	fmt.Printf("  telechargement %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, jsonPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	names, err := parseCLDRGregorian(jsonPath, a.locale)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	info := a.seed()
	mergeCLDRNames(info, names)

	fmt.Printf("  %d mots pour %s\n", info.WordCount(), a.code)
	return writeLanguageFile(outputDir, a.code, info)
}

// cldrNames holds the name lists extracted from one locale's calendar.
type cldrNames struct {
	Months   [12][]string // January..December
	Weekdays [7][]string  // Monday..Sunday
	AM, PM   []string
}

type cldrWidths struct {
	Abbreviated map[string]string `json:"abbreviated"`
	Wide        map[string]string `json:"wide"`
}

type cldrCalendar struct {
	Months struct {
		Format     cldrWidths `json:"format"`
		StandAlone cldrWidths `json:"stand-alone"`
	} `json:"months"`
	Days struct {
		Format     cldrWidths `json:"format"`
		StandAlone cldrWidths `json:"stand-alone"`
	} `json:"days"`
	DayPeriods struct {
		Format cldrWidths `json:"format"`
	} `json:"dayPeriods"`
}

// parseCLDRGregorian reads a cldr-json ca-gregorian.json file. Months are
// keyed "1".."12", days "mon".."sun", day periods by name; only "am" and
// "pm" are taken from the periods.
func parseCLDRGregorian(path, locale string) (*cldrNames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Main map[string]struct {
			Dates struct {
				Calendars struct {
					Gregorian cldrCalendar `json:"gregorian"`
				} `json:"calendars"`
			} `json:"dates"`
		} `json:"main"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode CLDR JSON: %w", err)
	}

	entry, ok := file.Main[locale]
	if !ok {
		return nil, fmt.Errorf("locale %q not present in CLDR file", locale)
	}
	cal := entry.Dates.Calendars.Gregorian

	names := &cldrNames{}
	for i := 0; i < 12; i++ {
		key := strconv.Itoa(i + 1)
		names.Months[i] = collectNames(
			cal.Months.Format.Wide[key], cal.Months.Format.Abbreviated[key],
			cal.Months.StandAlone.Wide[key], cal.Months.StandAlone.Abbreviated[key],
		)
	}
	dayKeys := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for i, key := range dayKeys {
		names.Weekdays[i] = collectNames(
			cal.Days.Format.Wide[key], cal.Days.Format.Abbreviated[key],
			cal.Days.StandAlone.Wide[key], cal.Days.StandAlone.Abbreviated[key],
		)
	}
	names.AM = collectNames(cal.DayPeriods.Format.Wide["am"], cal.DayPeriods.Format.Abbreviated["am"])
	names.PM = collectNames(cal.DayPeriods.Format.Wide["pm"], cal.DayPeriods.Format.Abbreviated["pm"])
	return names, nil
}

// collectNames lowercases and deduplicates names, dropping empty ones.
func collectNames(names ...string) []string {
	var out []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// mergeCLDRNames appends the CLDR names to the seed's lists, keeping any
// hand-maintained variants the seed already carries first.
func mergeCLDRNames(info *language.Info, names *cldrNames) {
	months := []*[]string{
		&info.January, &info.February, &info.March, &info.April, &info.May, &info.June,
		&info.July, &info.August, &info.September, &info.October, &info.November, &info.December,
	}
	for i, dst := range months {
		*dst = mergeNames(*dst, names.Months[i])
	}
	weekdays := []*[]string{
		&info.Monday, &info.Tuesday, &info.Wednesday, &info.Thursday,
		&info.Friday, &info.Saturday, &info.Sunday,
	}
	for i, dst := range weekdays {
		*dst = mergeNames(*dst, names.Weekdays[i])
	}
	info.AM = mergeNames(info.AM, names.AM)
	info.PM = mergeNames(info.PM, names.PM)
}

func mergeNames(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[strings.ToLower(n)] = true
	}
	for _, n := range incoming {
		if !seen[n] {
			seen[n] = true
			existing = append(existing, n)
		}
	}
	return existing
}
