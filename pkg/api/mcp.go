package api

import (
	"github.com/hazyhaar/dateglot/pkg/kit"
	"github.com/hazyhaar/dateglot/pkg/language"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the dateglot MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *language.Registry) {
	registerTranslateDate(srv, reg)
	registerSearchDates(srv, reg)
	registerCheckApplicable(srv, reg)
	registerListLanguages(srv, reg)
}

func registerTranslateDate(srv *server.MCPServer, reg *language.Registry) {
	tool := mcp.NewTool("translate_date",
		mcp.WithDescription("Translate a date expression from a given language into the canonical English date vocabulary."),
		mcp.WithString("lang", mcp.Required(), mcp.Description("Language code (e.g. fr, es, ja)")),
		mcp.WithString("text", mcp.Required(), mcp.Description("The date expression to translate")),
		mcp.WithBoolean("keep_formatting", mcp.Description("Preserve punctuation and spacing in the output")),
		mcp.WithBoolean("normalize", mcp.Description("Match against Unicode-normalized dictionary keys")),
	)

	kit.RegisterMCPTool(srv, tool, translateEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		lang, _ := args["lang"].(string)
		text, _ := args["text"].(string)
		keep, _ := args["keep_formatting"].(bool)
		normalize, _ := args["normalize"].(bool)
		return &kit.MCPDecodeResult{Request: &translateRequest{
			Lang:           lang,
			Text:           text,
			KeepFormatting: keep,
			Settings:       language.Settings{Normalize: normalize},
		}}, nil
	})
}

func registerSearchDates(srv *server.MCPServer, reg *language.Registry) {
	tool := mcp.NewTool("search_dates",
		mcp.WithDescription("Scan free text for date-bearing substrings and return each recognized span with its translation and the original surface text."),
		mcp.WithString("lang", mcp.Required(), mcp.Description("Language code (e.g. fr, es, ja)")),
		mcp.WithString("text", mcp.Required(), mcp.Description("The prose to scan")),
		mcp.WithBoolean("normalize", mcp.Description("Match against Unicode-normalized dictionary keys")),
	)

	kit.RegisterMCPTool(srv, tool, searchEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		lang, _ := args["lang"].(string)
		text, _ := args["text"].(string)
		normalize, _ := args["normalize"].(bool)
		return &kit.MCPDecodeResult{Request: &searchRequest{
			Lang:     lang,
			Text:     text,
			Settings: language.Settings{Normalize: normalize},
		}}, nil
	})
}

func registerCheckApplicable(srv *server.MCPServer, reg *language.Registry) {
	tool := mcp.NewTool("check_applicable",
		mcp.WithDescription("Check whether a date string could belong to a language: every token must be numeric or in the language's dictionary."),
		mcp.WithString("lang", mcp.Required(), mcp.Description("Language code (e.g. fr, es, ja)")),
		mcp.WithString("text", mcp.Required(), mcp.Description("The date string to check")),
		mcp.WithBoolean("strip_tz", mcp.Description("Strip a trailing timezone designator before checking")),
		mcp.WithBoolean("normalize", mcp.Description("Match against Unicode-normalized dictionary keys")),
	)

	kit.RegisterMCPTool(srv, tool, applicableEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		lang, _ := args["lang"].(string)
		text, _ := args["text"].(string)
		stripTZ, _ := args["strip_tz"].(bool)
		normalize, _ := args["normalize"].(bool)
		return &kit.MCPDecodeResult{Request: &applicableRequest{
			Lang:          lang,
			Text:          text,
			StripTimezone: stripTZ,
			Settings:      language.Settings{Normalize: normalize},
		}}, nil
	})
}

func registerListLanguages(srv *server.MCPServer, reg *language.Registry) {
	tool := mcp.NewTool("list_languages",
		mcp.WithDescription("List all loaded languages with metadata (name, word count, script properties)."),
	)

	kit.RegisterMCPTool(srv, tool, listLanguagesEndpoint(reg), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
