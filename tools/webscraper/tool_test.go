package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Lisbon City Guide</title>
<meta name="description" content="Things to do in Lisbon">
<meta name="author" content="City Guides">
</head>
<body>
<nav>ignored navigation</nav>
<main>
<h1>Lisbon</h1>
<p>Tram 28 crosses the Alfama district.</p>
</main>
<footer>ignored footer</footer>
</body>
</html>`

func TestWebscraperRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(testPage))
	}))
	defer srv.Close()

	tool := New()
	out, err := tool.Run(context.Background(), NewInput(srv.URL, false))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.Content, "Tram 28") {
		t.Errorf("Expect main content in markdown, but got %q", out.Content)
	}
	if strings.Contains(out.Content, "ignored navigation") {
		t.Error("navigation should be stripped from content")
	}
	if out.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if out.Metadata.Title != "Lisbon City Guide" {
		t.Errorf("Expect title Lisbon City Guide, but got %s", out.Metadata.Title)
	}
	if out.Metadata.Description != "Things to do in Lisbon" {
		t.Errorf("Expect description, but got %s", out.Metadata.Description)
	}
}
