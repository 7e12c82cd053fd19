package domain

// SearchType selects which orchestrator handles a request.
type SearchType string

const (
	SearchUsername SearchType = "username"
	SearchEmail    SearchType = "email"
	SearchName     SearchType = "name"
)

type SearchRequest struct {
	Type      SearchType `json:"type"`
	Query     string     `json:"query,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
}

// SearchResponse wraps one of UsernameResult, EmailResult or NameResult.
type SearchResponse struct {
	Query     string     `json:"query"`
	Type      SearchType `json:"type"`
	Results   any        `json:"results"`
	Timestamp string     `json:"timestamp"`
}

type UsernameResult struct {
	SocialMedia []ProbeOutcome `json:"social_media"`
	TotalFound  int            `json:"total_found"`
}

// DomainInfo is the registration record of an email domain. Missing scalar
// fields read "N/A". When the lookup failed only Error and Note are set.
type DomainInfo struct {
	DomainName     string   `json:"domain_name,omitempty"`
	Registrar      string   `json:"registrar,omitempty"`
	CreationDate   string   `json:"creation_date,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	NameServers    []string `json:"name_servers,omitempty"`
	Status         string   `json:"status,omitempty"`
	Emails         []string `json:"emails,omitempty"`
	Organization   string   `json:"organization,omitempty"`
	Error          string   `json:"error,omitempty"`
	Note           string   `json:"note,omitempty"`
}

// MailStatus reports whether the email domain can receive mail.
type MailStatus struct {
	Domain        string   `json:"domain"`
	Class         string   `json:"class"` // "ACCEPTS_MAIL" | "NO_MX_RECORD" | "NXDOMAIN" | "SERVFAIL_or_TIMEOUT"
	MXHosts       []string `json:"mx_hosts,omitempty"`
	ResolverError string   `json:"resolver_error,omitempty"`
}

type EmailResult struct {
	Email               string         `json:"email,omitempty"`
	Username            string         `json:"username,omitempty"`
	Domain              string         `json:"domain,omitempty"`
	Provider            string         `json:"provider,omitempty"`
	DomainInformation   *DomainInfo    `json:"domain_information,omitempty"`
	MailServers         *MailStatus    `json:"mail_servers,omitempty"`
	SocialMediaAccounts []ProbeOutcome `json:"social_media_accounts,omitempty"`
	TotalSocialAccounts int            `json:"total_social_accounts"`
	Note                string         `json:"note,omitempty"`
	Error               string         `json:"error,omitempty"`
}

// SearchQuery is a search-engine URL for manual follow-up.
type SearchQuery struct {
	Type        string `json:"type"`
	Query       string `json:"query"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type PublicRecords struct {
	GoogleSearch   string `json:"google_search"`
	NewsSearch     string `json:"news_search"`
	PDFDocuments   string `json:"pdf_documents"`
	LinkedInSearch string `json:"linkedin_search"`
	GitHubSearch   string `json:"github_search"`
	Note           string `json:"note"`
}

type NameResult struct {
	FirstName            string           `json:"first_name"`
	LastName             string           `json:"last_name"`
	FullName             string           `json:"full_name"`
	UsernameVariations   []string         `json:"username_variations"`
	SocialProfiles       []ProbeOutcome   `json:"social_profiles"`
	ProfessionalProfiles []ProbeOutcome   `json:"professional_profiles"`
	PublicRecords        PublicRecords    `json:"public_records"`
	GroupedProfiles      ConfidenceGroups `json:"grouped_profiles"`
	TotalProfilesFound   int              `json:"total_profiles_found"`
	SearchQueries        []SearchQuery    `json:"search_queries"`
}
