package dataflows

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// RSS structures for the Google News search feed
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Source      rssSource `xml:"source"`
}

type rssSource struct {
	URL  string `xml:"url,attr"`
	Text string `xml:",chardata"`
}

// GoogleNewsClient fetches headlines from the Google News RSS search feed,
// scoped to the Indian edition.
type GoogleNewsClient struct {
	client *resty.Client
	cache  *CacheManager
}

// NewGoogleNewsClient creates a new Google News client
func NewGoogleNewsClient(config *Config) *GoogleNewsClient {
	cacheDir := filepath.Join(config.DataCacheDir, "google_news")
	cache := NewCacheManager(cacheDir, 30*time.Minute, config.CacheEnabled)

	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", nseUserAgent)

	return &GoogleNewsClient{
		client: client,
		cache:  cache,
	}
}

// Search returns up to maxResults headlines for a query topic, deduplicated
// by title.
func (gnc *GoogleNewsClient) Search(ctx context.Context, query string, maxResults int) ([]NewsItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	cacheKey := fmt.Sprintf("%s_%d", query, maxResults)
	var cached []NewsItem
	if gnc.cache.Get("google_news", "search", cacheKey, &cached) {
		return cached, nil
	}

	searchURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=en-IN&gl=IN&ceid=IN:en",
		url.QueryEscape(query))

	var items []NewsItem
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := gnc.client.R().SetContext(ctx).Get(searchURL)
		if err != nil {
			return fmt.Errorf("failed to fetch news feed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("HTTP error %d when fetching news feed", resp.StatusCode())
		}

		var feed rssFeed
		if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
			return fmt.Errorf("failed to parse RSS XML: %w", err)
		}

		items = items[:0]
		seen := make(map[string]bool)
		for _, item := range feed.Channel.Items {
			title := strings.TrimSpace(item.Title)
			if title == "" || seen[title] {
				continue
			}
			seen[title] = true

			items = append(items, NewsItem{
				Title:      title,
				Summary:    CleanHTML(item.Description),
				Link:       item.Link,
				SourceName: sourceName(item.Source),
				PubDate:    item.PubDate,
				Query:      query,
			})
			if len(items) >= maxResults {
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	gnc.cache.Set("google_news", "search", cacheKey, items)
	return items, nil
}

func sourceName(src rssSource) string {
	if src.Text != "" {
		return src.Text
	}
	if u, err := url.Parse(src.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return "Google News"
}

// CleanHTML strips markup from an RSS description and returns plain text.
func CleanHTML(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return stripHTMLTags(htmlContent)
	}

	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return stripHTMLTags(htmlContent)
	}
	return text
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripHTMLTags is the regex fallback when the markup is too broken to parse.
func stripHTMLTags(content string) string {
	content = htmlTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&nbsp;", " ")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	content = strings.ReplaceAll(content, "&quot;", "\"")
	content = strings.ReplaceAll(content, "&#39;", "'")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))
}
