package search

import (
	"net/url"

	"github.com/hamed0406/footprint/internal/domain"
)

const (
	googleSearch = "https://www.google.com/search?q="
	newsSearch   = "https://news.google.com/search?q="

	publicRecordsNote = "These are search query URLs. Click them to see public mentions and documents."
)

// SearchQueries returns the six manual follow-up searches for a full name.
// The name is escaped exactly once into each URL.
func SearchQueries(fullName string) []domain.SearchQuery {
	quoted := `"` + fullName + `"`
	return []domain.SearchQuery{
		{
			Type:        "General Search",
			Query:       quoted,
			URL:         googleSearch + url.QueryEscape(quoted),
			Description: "General web search for the name",
		},
		{
			Type:        "News Articles",
			Query:       quoted + " news",
			URL:         newsSearch + url.QueryEscape(quoted),
			Description: "Search for news mentions",
		},
		{
			Type:        "Academic Papers",
			Query:       quoted + " filetype:pdf",
			URL:         googleSearch + url.QueryEscape(quoted+" filetype:pdf"),
			Description: "Search for PDF documents and papers",
		},
		{
			Type:        "Professional",
			Query:       "site:linkedin.com " + quoted,
			URL:         googleSearch + url.QueryEscape("site:linkedin.com "+quoted),
			Description: "LinkedIn profiles",
		},
		{
			Type:        "Social Media",
			Query:       "site:twitter.com OR site:facebook.com " + quoted,
			URL:         googleSearch + url.QueryEscape("site:twitter.com OR site:facebook.com "+quoted),
			Description: "Social media profiles",
		},
		{
			Type:        "GitHub",
			Query:       "site:github.com " + quoted,
			URL:         googleSearch + url.QueryEscape("site:github.com "+quoted),
			Description: "GitHub repositories and contributions",
		},
	}
}

// PublicRecordURLs builds search URLs for public mentions of a full name.
func PublicRecordURLs(fullName string) domain.PublicRecords {
	quoted := `"` + fullName + `"`
	return domain.PublicRecords{
		GoogleSearch:   googleSearch + url.QueryEscape(quoted),
		NewsSearch:     newsSearch + url.QueryEscape(quoted),
		PDFDocuments:   googleSearch + url.QueryEscape(quoted+" filetype:pdf"),
		LinkedInSearch: googleSearch + url.QueryEscape("site:linkedin.com "+quoted),
		GitHubSearch:   googleSearch + url.QueryEscape("site:github.com "+quoted),
		Note:           publicRecordsNote,
	}
}
