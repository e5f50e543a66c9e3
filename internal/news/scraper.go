// Package news scrapes headline anchors out of a news-search results page.
package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	defaultSearchURL = "https://search.naver.com/search.naver"
	userAgent        = "portfolio-backend/1.0"

	// titleClass marks headline anchors in the search results markup.
	titleClass = "news_tit"
)

// Headline is one scraped news item.
type Headline struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Scraper fetches and parses news search results.
type Scraper struct {
	httpc     *http.Client
	searchURL string
	maxItems  int
}

func NewScraper() *Scraper {
	return &Scraper{
		httpc:     &http.Client{Timeout: 10 * time.Second},
		searchURL: defaultSearchURL,
		maxItems:  10,
	}
}

// Headlines returns up to maxItems headlines for query.
func (s *Scraper) Headlines(ctx context.Context, query string) ([]Headline, error) {
	v := url.Values{}
	v.Set("where", "news")
	v.Set("query", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL+"?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: status %d", resp.StatusCode)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news: parse html: %w", err)
	}
	return extractHeadlines(doc, s.maxItems), nil
}

// extractHeadlines walks the DOM collecting title anchors in document order.
func extractHeadlines(doc *html.Node, max int) []Headline {
	var out []Headline
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(out) >= max {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, titleClass) {
			h := Headline{Title: anchorTitle(n), URL: attr(n, "href")}
			if h.Title != "" && h.URL != "" {
				out = append(out, h)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func anchorTitle(n *html.Node) string {
	if t := strings.TrimSpace(attr(n, "title")); t != "" {
		return t
	}
	return strings.TrimSpace(nodeText(n))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
