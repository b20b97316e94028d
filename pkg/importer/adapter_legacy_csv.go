// CLAUDE:SUMMARY Import adapter merging legacy locale CSVs (semicolon-delimited, possibly non-UTF-8) into an existing language file.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazyhaar/dateglot/pkg/language"
)

func init() {
	// No stable public mirror for these exports; the URL must be supplied
	// per deployment (import --source legacy-csv-ru --url <...>).
	Register(&legacyCSVAdapter{
		id:      "legacy-csv-ru",
		code:    "ru",
		desc:    "Variantes russes heritees (CSV windows-1251, URL requise)",
		charset: "windows-1251",
	})
}

// legacyCSVAdapter merges word variants from an old, pre-CLDR locale
// export into an existing language file. The CSVs are semicolon-delimited
// with two columns, canonical token and variant, and several of them
// predate UTF-8, so the content goes through a charset decoder first.
// The target <code>.yaml must already exist (run the CLDR adapter first).
type legacyCSVAdapter struct {
	id, code, desc, url, charset string
}

func (a *legacyCSVAdapter) ID() string          { return a.id }
func (a *legacyCSVAdapter) LangCode() string    { return a.code }
func (a *legacyCSVAdapter) Description() string { return a.desc }
func (a *legacyCSVAdapter) DefaultURL() string  { return a.url }
func (a *legacyCSVAdapter) License() string     { return "Public Domain" }

func (a *legacyCSVAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	if sourceURL == "" {
		return fmt.Errorf("%s has no default source URL, pass --url or set it in sources.db", a.id)
	}
	langPath := filepath.Join(outputDir, a.code+".yaml")
	info, err := language.LoadInfo(langPath)
	if err != nil {
		return fmt.Errorf("legacy merge needs an existing %s.yaml (run cldr-%s first): %w", a.code, a.code, err)
	}

	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath := filepath.Join(dlDir, a.code+"-variants.csv")
	fmt.Printf("  telechargement %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, csvPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	data, err := decodeCharsetFile(csvPath, a.charset)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	added, err := mergeVariantCSV(info, data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Printf("  %d variantes ajoutees pour %s\n", added, a.code)
	return writeLanguageFile(outputDir, a.code, info)
}

// mergeVariantCSV reads canonical;variant rows and appends each variant
// to the matching name list. Rows with an unknown canonical token are
// counted as errors only if nothing at all matches, so a file with a few
// stray rows still imports.
func mergeVariantCSV(info *language.Info, data []byte) (int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	added, rows := 0, 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) < 2 {
			continue
		}
		rows++
		canonical := strings.ToLower(strings.TrimSpace(record[0]))
		variant := strings.ToLower(strings.TrimSpace(record[1]))
		if canonical == "" || variant == "" {
			continue
		}
		if list := nameList(info, canonical); list != nil {
			*list = mergeNames(*list, []string{variant})
			added++
		}
	}
	if rows > 0 && added == 0 {
		return 0, fmt.Errorf("no row matched a known canonical token")
	}
	return added, nil
}

// nameList maps a canonical token to the Info list it belongs to.
func nameList(info *language.Info, token string) *[]string {
	switch token {
	case "monday":
		return &info.Monday
	case "tuesday":
		return &info.Tuesday
	case "wednesday":
		return &info.Wednesday
	case "thursday":
		return &info.Thursday
	case "friday":
		return &info.Friday
	case "saturday":
		return &info.Saturday
	case "sunday":
		return &info.Sunday
	case "january":
		return &info.January
	case "february":
		return &info.February
	case "march":
		return &info.March
	case "april":
		return &info.April
	case "may":
		return &info.May
	case "june":
		return &info.June
	case "july":
		return &info.July
	case "august":
		return &info.August
	case "september":
		return &info.September
	case "october":
		return &info.October
	case "november":
		return &info.November
	case "december":
		return &info.December
	case "year":
		return &info.Year
	case "month":
		return &info.Month
	case "week":
		return &info.Week
	case "day":
		return &info.Day
	case "hour":
		return &info.Hour
	case "minute":
		return &info.Minute
	case "second":
		return &info.Second
	case "ago":
		return &info.Ago
	case "in":
		return &info.In
	case "am":
		return &info.AM
	case "pm":
		return &info.PM
	case "skip":
		return &info.Skip
	case "pertain":
		return &info.Pertain
	}
	return nil
}
