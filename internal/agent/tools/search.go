package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// SearchToolName is the name the generation capability uses to invoke search.
const SearchToolName = "tavily_search"

// SearchTool performs web searches through the Tavily API. It never returns
// a Go error from Search: every failure mode collapses into a single error
// record so the generation loop always has content to hand back.
type SearchTool struct {
	client     *http.Client
	apiKey     string
	baseURL    string
	maxResults int
	log        zerolog.Logger
}

// SearchInput defines the input for the search tool
type SearchInput struct {
	Query string `json:"query"`
}

// SearchResult is a single search record. Either URL/Content are set, or
// Error is set.
type SearchResult struct {
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// NewSearchTool creates a Tavily-backed search tool. An empty baseURL falls
// back to the public API endpoint.
func NewSearchTool(apiKey, baseURL string, log zerolog.Logger) *SearchTool {
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}
	return &SearchTool{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:     apiKey,
		baseURL:    baseURL,
		maxResults: 5,
		log:        log.With().Str("tool", "tavily_search").Logger(),
	}
}

// Name returns the tool name
func (t *SearchTool) Name() string {
	return SearchToolName
}

// Description returns the tool description
func (t *SearchTool) Description() string {
	return "Search the web for current information. Returns URLs and cleaned content snippets from search results."
}

// Schema returns the JSON schema
func (t *SearchTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "The search query"
			}
		},
		"required": ["query"]
	}`)
}

// Execute runs a search and marshals the records as the tool result
func (t *SearchTool) Execute(ctx context.Context, input json.RawMessage) (*ToolResult, error) {
	var in SearchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return &ToolResult{
			Content: fmt.Sprintf("invalid search input: %v", err),
			IsError: true,
		}, nil
	}

	records := t.Search(ctx, in.Query)

	content, err := json.Marshal(records)
	if err != nil {
		return &ToolResult{
			Content: fmt.Sprintf("failed to encode search results: %v", err),
			IsError: true,
		}, nil
	}

	isError := len(records) == 1 && records[0].Error != ""
	return &ToolResult{Content: string(content), IsError: isError}, nil
}

// Search queries Tavily and returns at most maxResults cleaned records.
// Failures of any kind produce a single error record instead of an error.
func (t *SearchTool) Search(ctx context.Context, query string) []SearchResult {
	if t.apiKey == "" {
		return t.failure("Search unavailable: Tavily API key is not configured.")
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     t.apiKey,
		Query:      query,
		MaxResults: t.maxResults,
	})
	if err != nil {
		return t.failure(fmt.Sprintf("An error occurred during search: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return t.failure(fmt.Sprintf("An error occurred during search: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Warn().Err(err).Str("query", query).Msg("search request failed")
		return t.failure(fmt.Sprintf("An error occurred during search: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return t.failure(fmt.Sprintf("An error occurred during search: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.Warn().Int("status", resp.StatusCode).Str("query", query).Msg("search returned non-2xx status")
		return t.failure(fmt.Sprintf("An error occurred during search: status %d", resp.StatusCode))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return t.failure(fmt.Sprintf("An error occurred during search: %v", err))
	}

	if len(parsed.Results) == 0 {
		return t.failure("The web search returned no results for that query. Please try rephrasing it.")
	}

	records := make([]SearchResult, 0, t.maxResults)
	for _, r := range parsed.Results {
		if len(records) == t.maxResults {
			break
		}
		records = append(records, SearchResult{
			URL:     r.URL,
			Content: CleanSnippet(VisibleText(r.Content)),
		})
	}
	return records
}

func (t *SearchTool) failure(msg string) []SearchResult {
	return []SearchResult{{Error: msg}}
}
