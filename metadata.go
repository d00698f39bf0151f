package guidecrawl

import "time"

// CrawlMetadata is a serializable projection of the page collection, written
// once per run for audit and debugging. It has no lifecycle beyond the run
// that produced it and is not consumed by any other component.
type CrawlMetadata struct {
	RunID       string     `json:"runId"`
	BaseURL     string     `json:"baseUrl"`
	TotalPages  int        `json:"totalPages"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Pages       []PageMeta `json:"pages"`
}

// PageMeta summarizes one accepted page.
type PageMeta struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Level       int    `json:"level"`
	ContentHash string `json:"contentHash,omitempty"`
}

// NewCrawlMetadata builds the metadata record for a completed (or aborted)
// crawl run. Page order follows the collection's acceptance order.
func NewCrawlMetadata(runID, baseURL string, pages []*Page) *CrawlMetadata {
	meta := &CrawlMetadata{
		RunID:       runID,
		BaseURL:     baseURL,
		TotalPages:  len(pages),
		GeneratedAt: time.Now().UTC(),
		Pages:       make([]PageMeta, 0, len(pages)),
	}
	for _, p := range pages {
		meta.Pages = append(meta.Pages, PageMeta{
			Index:       p.Index,
			Title:       p.Title,
			URL:         p.URL,
			Level:       p.Level,
			ContentHash: p.ContentHash,
		})
	}
	return meta
}
