package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tripmesh/tripmesh/tools"
)

type Category = string

const (
	EmptyCategory       Category = ""
	GeneralCategory     Category = "general"
	NewsCategory        Category = "news"
	SocialMediaCategory Category = "social_media"
)

// Input Schema for input to a tool for searching for information, news, references, and other content using SearxNG.
// Returns a list of search results with a short description or content snippet and URLs for further exploration
type Input struct {
	// Queries list of search queries.
	Queries []string `json:"queries" jsonschema:"title=queries,description=List of search queries." validate:"required"`
	// Category of the search queries.
	Category Category `json:"category,omitempty" jsonschema:"title=category,enum=general,enum=news,enum=social_media,default=general,description=Category of the search queries."`
}

func NewInput(category Category, queries []string) *Input {
	return &Input{
		Queries:  queries,
		Category: category,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// SearchResultItem represents a single search result item
type SearchResultItem struct {
	// URL The URL of the search result
	URL string `json:"url" jsonschema:"title=url,description=The URL of the search result" validate:"required,url"`
	// Title The title of the search result
	Title string `json:"title" jsonschema:"title=title,description=The title of the search result" validate:"required"`
	// Content The content snippet of the search result
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The content snippet of the search result"`
	// Query The query used to obtain this search result
	Query string `json:"query" jsonschema:"title=query,description=The query used to obtain this search result" validate:"required"`
	// Category The category of the search result
	Category Category `json:"category,omitempty"`
	// Metadata extra source metadata when the engine supplies it
	Metadata string `json:"metadata,omitempty"`
	// PublishedDate publication date when the engine supplies it
	PublishedDate string `json:"publishedDate,omitempty"`
}

func (s SearchResultItem) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// SearchResponse represents the entire response from the search engine
type SearchResponse struct {
	Query           string             `json:"query"`
	NumberOfResults int                `json:"number_of_results"`
	Results         []SearchResultItem `json:"results"`
}

// Output represents the output of the SearxNG search tool.
type Output struct {
	// Results List of search result items
	Results []SearchResultItem `json:"results,omitempty" jsonschema:"title=results,description=List of search result items"`
	// Category The category of the search results
	Category Category `json:"category,omitempty" jsonschema:"title=category,enum=general,enum=news,enum=social_media,default=general,description=Category of the search results."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Title implements systemprompt.ContextProvider interface
func (s Output) Title() string {
	return "Search Results"
}

// Info implements systemprompt.ContextProvider interface
func (s Output) Info() string {
	var b strings.Builder
	for _, v := range s.Results {
		fmt.Fprintf(&b, "- [%s](%s)", v.Title, v.URL)
		if v.Content != "" {
			fmt.Fprintf(&b, ": %s", v.Content)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

type Config struct {
	tools.Config
	language   string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// Tool is a tool for performing searches on SearxNG based on the provided queries and category.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("SearxngSearchTool")
	}
	if ret.maxResults == 0 {
		ret.maxResults = 10
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run runs the search tool synchronously with the given parameters
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	out := &Output{
		Category: input.Category,
	}
	for _, query := range input.Queries {
		items, err := t.fetchSearchResults(ctx, query, input.Category)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.Title == "" || item.URL == "" || item.Content == "" {
				continue
			}
			out.Results = append(out.Results, item)
			if len(out.Results) >= t.maxResults {
				return out, nil
			}
		}
	}
	return out, nil
}

// fetchSearchResults queries the search engine and returns the parsed search response
func (t *Tool) fetchSearchResults(ctx context.Context, query string, category Category) ([]SearchResultItem, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("safesearch", "0")
	values.Set("format", "json")
	values.Set("engines", "bing,duckduckgo,google,startpage,yandex")
	if t.language != "" {
		values.Set("language", t.language)
	}
	if category != "" {
		values.Set("categories", category)
	}
	searchURL := fmt.Sprintf("%s/search?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying search engine: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from search engine: %d", httpResp.StatusCode)
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}
	for idx := range searchResponse.Results {
		searchResponse.Results[idx].Query = query
	}

	return searchResponse.Results, nil
}
