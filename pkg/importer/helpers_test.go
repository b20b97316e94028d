package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/hazyhaar/dateglot/pkg/language"
)

func TestDownloadFile(t *testing.T) {
	content := "hello world"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "test.txt")
	if err := downloadFile(context.Background(), ts.URL, dest); err != nil {
		t.Fatalf("downloadFile: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q, want %q", string(data), content)
	}
}

func TestDownloadFile_Retry(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "retry.txt")
	if err := downloadFile(context.Background(), ts.URL, dest); err != nil {
		t.Fatalf("downloadFile with retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDownloadFile_AllFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "fail.txt")
	err := downloadFile(context.Background(), ts.URL, dest)
	if err == nil {
		t.Error("expected error after all retries exhausted")
	}
}

func TestWriteLanguageFile(t *testing.T) {
	dir := t.TempDir()
	info := seedFrench()

	if err := writeLanguageFile(dir, "fr", info); err != nil {
		t.Fatalf("writeLanguageFile: %v", err)
	}

	// Verify the file was written and can be parsed back.
	loaded, err := language.LoadInfo(filepath.Join(dir, "fr.yaml"))
	if err != nil {
		t.Fatalf("LoadInfo: %v", err)
	}
	if loaded.Name != "french" {
		t.Errorf("Name = %q, want french", loaded.Name)
	}
	if len(loaded.Simplifications) != len(info.Simplifications) {
		t.Errorf("Simplifications = %d entries, want %d", len(loaded.Simplifications), len(info.Simplifications))
	}
	if err := language.Validate("fr", loaded); err != nil {
		t.Errorf("round-tripped definition fails validation: %v", err)
	}
}

func TestWriteLanguageFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	// Incomplete weekday family must be rejected before anything is written.
	info := &language.Info{Name: "broken", Monday: []string{"lundi"}}

	if err := writeLanguageFile(dir, "xx", info); err == nil {
		t.Fatal("expected validation error for incomplete weekday lists")
	}
	if _, err := os.Stat(filepath.Join(dir, "xx.yaml")); !os.IsNotExist(err) {
		t.Error("invalid definition must not leave a file behind")
	}
}

func TestDecodeCharsetFile(t *testing.T) {
	// "март" (March) in windows-1251.
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte("march;март\n"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "legacy.csv")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	decoded, err := decodeCharsetFile(path, "windows-1251")
	if err != nil {
		t.Fatalf("decodeCharsetFile: %v", err)
	}
	if string(decoded) != "march;март\n" {
		t.Errorf("decoded = %q, want the UTF-8 text back", decoded)
	}

	// UTF-8 passthrough.
	utfPath := filepath.Join(t.TempDir(), "plain.csv")
	if err := os.WriteFile(utfPath, []byte("may;mai\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	plain, err := decodeCharsetFile(utfPath, "")
	if err != nil {
		t.Fatalf("decodeCharsetFile utf-8: %v", err)
	}
	if string(plain) != "may;mai\n" {
		t.Errorf("passthrough = %q", plain)
	}
}

func TestDecodeCharsetFile_UnknownCharset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	if err := os.WriteFile(path, []byte("a;b\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := decodeCharsetFile(path, "no-such-charset"); err == nil {
		t.Error("expected error for unknown charset")
	}
}
