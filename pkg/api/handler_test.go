package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazyhaar/dateglot/pkg/language"
)

const handlerTestYAML = `name: english
skip: [" ", ","]
pertain: [of]
monday: [monday, mon]
tuesday: [tuesday]
wednesday: [wednesday]
thursday: [thursday]
friday: [friday]
saturday: [saturday]
sunday: [sunday]
january: [january]
february: [february]
march: [march]
april: [april]
may: [may]
june: [june]
july: [july]
august: [august]
september: [september]
october: [october]
november: [november]
december: [december]
day: [day, days]
`

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(handlerTestYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	reg := language.NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return NewRouter(reg)
}

func TestHandleTranslate(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/translate/en?q=12+of+May", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Lang       string `json:"lang"`
		Translated string `json:"translated"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Lang != "en" || resp.Translated != "12 may" {
		t.Errorf("response = %+v, want en / 12 may", resp)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestHandleTranslateMissingQuery(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/translate/en", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestErrorCarriesRequestID(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/translate/xx?q=hello", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want the caller's id echoed", got)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["request_id"] != "req-42" {
		t.Errorf("request_id = %q, want req-42", resp["request_id"])
	}
	if !strings.Contains(resp["error"], "unknown language") {
		t.Errorf("error = %q, want unknown language", resp["error"])
	}
}

func TestBatchRejectsGet(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/translate/batch", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandleTranslateBatch(t *testing.T) {
	router := testRouter(t)

	body := `{"lang":"en","texts":["5 may","12 of May"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/translate/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Results []string `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 2 || resp.Results[1] != "12 may" {
		t.Errorf("results = %v, want the second translated to 12 may", resp.Results)
	}
}

func TestHandleHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Status    string `json:"status"`
		Languages int    `json:"languages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Languages != 1 {
		t.Errorf("health = %+v, want ok / 1", resp)
	}
}
