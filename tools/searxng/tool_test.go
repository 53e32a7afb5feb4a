package searxng

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func startSearxngServer(t *testing.T, results *Output) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(results)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearxngSearchWithCategory(t *testing.T) {
	mockQuery := "test query with category"
	mockItem := SearchResultItem{
		URL:      "https://example.com/test-category",
		Title:    "Test Result with Category",
		Content:  "This is a test result content with category.",
		Category: NewsCategory,
	}
	mockResult := Output{
		Results: []SearchResultItem{mockItem},
	}
	ctx := context.Background()
	srv := startSearxngServer(t, &mockResult)

	tool := New(WithBaseURL(srv.URL))
	input := NewInput(NewsCategory, []string{mockQuery})
	result, err := tool.Run(ctx, input)
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	item := result.Results[0]
	if item.Title != mockItem.Title {
		t.Errorf("Expect title %s, but got %s", mockItem.Title, item.Title)
	}
	if item.URL != mockItem.URL {
		t.Errorf("Expect url %s, but got %s", mockItem.URL, item.URL)
	}
	if item.Query != mockQuery {
		t.Errorf("Expect query %s, but got %s", mockQuery, item.Query)
	}
}

func TestSearxngSearchMissingFields(t *testing.T) {
	mockQuery := "query with missing fields"
	mockResult := Output{
		Results: []SearchResultItem{
			{Title: "Result Missing Content", URL: "https://example.com/1"},
			{Content: "Result Missing Title", URL: "https://example.com/2"},
			{Title: "Result Missing URL", Content: "Some content"},
			{Title: "Valid Result", Content: "Some content", URL: "https://example.com/5"},
		},
	}
	ctx := context.Background()
	srv := startSearxngServer(t, &mockResult)

	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{mockQuery}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	if title := result.Results[0].Title; title != "Valid Result" {
		t.Errorf("Expect title Valid Result, but got %s", title)
	}
}

func TestSearxngSearchWithMaxResults(t *testing.T) {
	mockQuery := "query with max results"
	mockResult := Output{
		Results: []SearchResultItem{
			{Title: "First", URL: "https://example.com/1", Content: "Content 1"},
			{Title: "Second", URL: "https://example.com/2", Content: "Content 2"},
			{Title: "Third", URL: "https://example.com/3", Content: "Content 3"},
		},
	}
	ctx := context.Background()
	srv := startSearxngServer(t, &mockResult)

	tool := New(WithBaseURL(srv.URL), WithMaxResults(2))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{mockQuery}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 2 {
		t.Errorf("Error number of results, expect 2, but got %d", len(result.Results))
	}
}

func TestSearxngOutputContextProvider(t *testing.T) {
	out := Output{
		Results: []SearchResultItem{
			{Title: "Lisbon travel guide", URL: "https://example.com/lisbon", Content: "What to see in Lisbon."},
		},
	}
	if out.Title() == "" {
		t.Error("expected non-empty context provider title")
	}
	info := out.Info()
	if info == "" {
		t.Fatal("expected non-empty context provider info")
	}
	if want := "[Lisbon travel guide](https://example.com/lisbon)"; !strings.Contains(info, want) {
		t.Errorf("Expect info to contain %q, but got %q", want, info)
	}
}
