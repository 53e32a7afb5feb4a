// Package research gathers live web context for the search agents: a
// metasearch pass plus a scrape of the best hits, exposed as a system
// prompt context provider.
package research

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tripmesh/tripmesh/components/systemprompt"
	"github.com/tripmesh/tripmesh/tools/searxng"
	"github.com/tripmesh/tripmesh/tools/webscraper"
)

const (
	defaultMaxResults = 8
	defaultMaxScrapes = 2
	maxPageChars      = 4000
)

// Researcher runs queries through searxng and scrapes the top hits.
type Researcher struct {
	search     *searxng.Tool
	scraper    *webscraper.Webscraper
	maxScrapes int
}

// New builds a researcher against the given searxng base URL. Returns nil
// when no URL is configured so callers can skip research entirely.
func New(searxngURL string) *Researcher {
	if searxngURL == "" {
		return nil
	}
	return &Researcher{
		search:     searxng.New(searxng.WithBaseURL(searxngURL), searxng.WithMaxResults(defaultMaxResults)),
		scraper:    webscraper.New(),
		maxScrapes: defaultMaxScrapes,
	}
}

// Notes is the research output, usable as a system prompt context provider.
type Notes struct {
	results []searxng.SearchResultItem
	pages   []page
}

type page struct {
	url     string
	content string
}

var _ systemprompt.ContextProvider = (*Notes)(nil)

func (n *Notes) Title() string { return "Web Research" }

func (n *Notes) Info() string {
	var sb strings.Builder
	if len(n.results) > 0 {
		sb.WriteString("Search results:\n")
		for _, r := range n.results {
			fmt.Fprintf(&sb, "- [%s](%s)", r.Title, r.URL)
			if r.Content != "" {
				fmt.Fprintf(&sb, ": %s", r.Content)
			}
			sb.WriteString("\n")
		}
	}
	for _, p := range n.pages {
		fmt.Fprintf(&sb, "\nPage %s:\n%s\n", p.url, p.content)
	}
	return strings.TrimSpace(sb.String())
}

// Empty reports whether the research produced nothing usable.
func (n *Notes) Empty() bool {
	return n == nil || (len(n.results) == 0 && len(n.pages) == 0)
}

// Gather searches the queries and scrapes the first hits. Failures are
// logged and degrade to whatever was collected so far.
func (r *Researcher) Gather(ctx context.Context, queries ...string) *Notes {
	notes := new(Notes)
	if r == nil {
		return notes
	}
	out, err := r.search.Run(ctx, searxng.NewInput(searxng.GeneralCategory, queries))
	if err != nil {
		log.Printf("[research] search failed: %v", err)
		return notes
	}
	notes.results = out.Results

	for _, item := range out.Results {
		if len(notes.pages) >= r.maxScrapes {
			break
		}
		scraped, err := r.scraper.Run(ctx, webscraper.NewInput(item.URL, false))
		if err != nil {
			log.Printf("[research] scrape %s failed: %v", item.URL, err)
			continue
		}
		content := scraped.Content
		if len(content) > maxPageChars {
			content = content[:maxPageChars]
		}
		if content == "" {
			continue
		}
		notes.pages = append(notes.pages, page{url: item.URL, content: content})
	}
	return notes
}
