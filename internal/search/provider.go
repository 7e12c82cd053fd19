package search

import "strings"

// CustomDomain is the provider of any domain not in knownProviders.
const CustomDomain = "Custom Domain"

var knownProviders = map[string]string{
	"gmail.com":      "Google Gmail",
	"yahoo.com":      "Yahoo Mail",
	"outlook.com":    "Microsoft Outlook",
	"hotmail.com":    "Microsoft Hotmail",
	"icloud.com":     "Apple iCloud",
	"protonmail.com": "ProtonMail",
}

// Provider names the mail provider of an email domain.
func Provider(domain string) string {
	if p, ok := knownProviders[strings.ToLower(domain)]; ok {
		return p
	}
	return CustomDomain
}
