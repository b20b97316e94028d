package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hazyhaar/dateglot/pkg/kit"
	"github.com/hazyhaar/dateglot/pkg/language"
)

// NewRouter returns an http.Handler with all dateglot API routes.
func NewRouter(reg *language.Registry) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		translate:      translateEndpoint(reg),
		translateBatch: translateBatchEndpoint(reg),
		search:         searchEndpoint(reg),
		applicable:     applicableEndpoint(reg),
		listLanguages:  listLanguagesEndpoint(reg),
		reg:            reg,
	}

	mux.HandleFunc("GET /v1/translate/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/translate/batch", h.handleTranslateBatch)
	mux.HandleFunc("GET /v1/translate/{lang}", h.handleTranslate)
	mux.HandleFunc("GET /v1/search/{lang}", h.handleSearch)
	mux.HandleFunc("GET /v1/applicable/{lang}", h.handleApplicable)
	mux.HandleFunc("GET /v1/languages", h.handleListLanguages)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(requestID(mux))
}

type handler struct {
	translate      kit.Endpoint
	translateBatch kit.Endpoint
	search         kit.Endpoint
	applicable     kit.Endpoint
	listLanguages  kit.Endpoint
	reg            *language.Registry
}

// --- translate single expression ---

func (h *handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	text := r.URL.Query().Get("q")
	if text == "" {
		writeError(w, r, http.StatusBadRequest, "missing q parameter")
		return
	}

	resp, err := h.translate(r.Context(), &translateRequest{
		Lang:           lang,
		Text:           text,
		KeepFormatting: boolParam(r, "keep_formatting"),
		Settings:       parseSettings(r),
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- translate batch ---

type httpBatchRequest struct {
	Lang      string   `json:"lang"`
	Texts     []string `json:"texts"`
	Normalize bool     `json:"normalize,omitempty"`
}

func (h *handler) handleTranslateBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.translateBatch(r.Context(), &batchRequest{
		Lang:     req.Lang,
		Texts:    req.Texts,
		Settings: language.Settings{Normalize: req.Normalize},
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- search free text ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	text := r.URL.Query().Get("q")
	if text == "" {
		writeError(w, r, http.StatusBadRequest, "missing q parameter")
		return
	}

	resp, err := h.search(r.Context(), &searchRequest{
		Lang:     lang,
		Text:     text,
		Settings: parseSettings(r),
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- applicability check ---

func (h *handler) handleApplicable(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	text := r.URL.Query().Get("q")
	if text == "" {
		writeError(w, r, http.StatusBadRequest, "missing q parameter")
		return
	}

	resp, err := h.applicable(r.Context(), &applicableRequest{
		Lang:          lang,
		Text:          text,
		StripTimezone: boolParam(r, "strip_tz"),
		Settings:      parseSettings(r),
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list languages ---

func (h *handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listLanguages(r.Context(), nil)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status    string `json:"status"`
	Languages int    `json:"languages"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Languages: h.reg.Count(),
	})
}

// --- helpers ---

func parseSettings(r *http.Request) language.Settings {
	return language.Settings{Normalize: boolParam(r, "normalize")}
}

func boolParam(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	body := map[string]string{"error": msg}
	if id := kit.GetRequestID(r.Context()); id != "" {
		body["request_id"] = id
	}
	writeJSON(w, code, body)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// requestID tags every request with an identifier, honoring one supplied
// by the caller, and echoes it so clients can correlate error reports.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(kit.WithRequestID(r.Context(), id)))
	})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
