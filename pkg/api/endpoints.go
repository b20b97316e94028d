package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/dateglot/pkg/kit"
	"github.com/hazyhaar/dateglot/pkg/language"
)

// Shared request/response types used by both HTTP and MCP transports.

type translateRequest struct {
	Lang           string
	Text           string
	KeepFormatting bool
	Settings       language.Settings
}

type translateResponse struct {
	Lang       string `json:"lang"`
	Translated string `json:"translated"`
}

type batchRequest struct {
	Lang     string
	Texts    []string
	Settings language.Settings
}

type batchResponse struct {
	Lang    string   `json:"lang"`
	Results []string `json:"results"`
}

type searchRequest struct {
	Lang     string
	Text     string
	Settings language.Settings
}

type searchChunk struct {
	Translated string `json:"translated"`
	Original   string `json:"original"`
}

type searchResponse struct {
	Lang   string        `json:"lang"`
	Chunks []searchChunk `json:"chunks"`
}

type applicableRequest struct {
	Lang          string
	Text          string
	StripTimezone bool
	Settings      language.Settings
}

type applicableResponse struct {
	Lang       string `json:"lang"`
	Applicable bool   `json:"applicable"`
}

type languagesResponse struct {
	Languages []language.Summary `json:"languages"`
}

// Endpoints returns the core kit.Endpoints backed by the registry.

func lookupLang(reg *language.Registry, code string) (*language.Language, error) {
	l, ok := reg.Get(code)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", code)
	}
	return l, nil
}

// prepare applies the input-side Unicode normalization the normalized
// dictionary mode expects.
func prepare(text string, settings language.Settings) string {
	if settings.Normalize {
		return language.NormalizeUnicode(text)
	}
	return text
}

func translateEndpoint(reg *language.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*translateRequest)
		l, err := lookupLang(reg, req.Lang)
		if err != nil {
			return nil, err
		}
		translated, err := l.Translate(prepare(req.Text, req.Settings), req.KeepFormatting, req.Settings)
		if err != nil {
			return nil, err
		}
		return translateResponse{Lang: req.Lang, Translated: translated}, nil
	}
}

func translateBatchEndpoint(reg *language.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*batchRequest)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > 100 {
			return nil, fmt.Errorf("too many texts (max 100, got %d)", len(req.Texts))
		}
		l, err := lookupLang(reg, req.Lang)
		if err != nil {
			return nil, err
		}
		results := make([]string, len(req.Texts))
		for i, text := range req.Texts {
			results[i], err = l.Translate(prepare(text, req.Settings), false, req.Settings)
			if err != nil {
				return nil, err
			}
		}
		return batchResponse{Lang: req.Lang, Results: results}, nil
	}
}

func searchEndpoint(reg *language.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*searchRequest)
		l, err := lookupLang(reg, req.Lang)
		if err != nil {
			return nil, err
		}
		translated, original, err := l.TranslateSearch(prepare(req.Text, req.Settings), req.Settings)
		if err != nil {
			return nil, err
		}
		chunks := make([]searchChunk, len(translated))
		for i := range translated {
			chunks[i] = searchChunk{Translated: translated[i], Original: original[i]}
		}
		return searchResponse{Lang: req.Lang, Chunks: chunks}, nil
	}
}

func applicableEndpoint(reg *language.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*applicableRequest)
		l, err := lookupLang(reg, req.Lang)
		if err != nil {
			return nil, err
		}
		ok, err := l.IsApplicable(prepare(req.Text, req.Settings), req.StripTimezone, req.Settings)
		if err != nil {
			return nil, err
		}
		return applicableResponse{Lang: req.Lang, Applicable: ok}, nil
	}
}

func listLanguagesEndpoint(reg *language.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return languagesResponse{Languages: reg.List()}, nil
	}
}
