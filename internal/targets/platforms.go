package targets

import (
	"strings"

	"github.com/hamed0406/footprint/internal/domain"
)

// Platform is one row of a probe table. Template contains a single "{}"
// placeholder for the username.
type Platform struct {
	Name     string
	Template string
	Category domain.Category
}

// URL fills the template with username.
func (p Platform) URL(username string) string {
	return strings.Replace(p.Template, "{}", username, 1)
}

// Table is an ordered, read-only list of platforms.
type Table []Platform

// UsernamePlatforms is probed by username search.
var UsernamePlatforms = Table{
	{"github", "https://github.com/{}", domain.CategoryProfessional},
	{"twitter", "https://twitter.com/{}", domain.CategorySocial},
	{"instagram", "https://instagram.com/{}", domain.CategorySocial},
	{"reddit", "https://reddit.com/user/{}", domain.CategorySocial},
	{"linkedin", "https://linkedin.com/in/{}", domain.CategoryProfessional},
	{"medium", "https://medium.com/@{}", domain.CategorySocial},
	{"dev.to", "https://dev.to/{}", domain.CategorySocial},
	{"codepen", "https://codepen.io/{}", domain.CategorySocial},
	{"pinterest", "https://pinterest.com/{}", domain.CategorySocial},
	{"youtube", "https://youtube.com/@{}", domain.CategorySocial},
	{"tiktok", "https://tiktok.com/@{}", domain.CategorySocial},
	{"twitch", "https://twitch.tv/{}", domain.CategorySocial},
	{"dribbble", "https://dribbble.com/{}", domain.CategorySocial},
	{"behance", "https://behance.net/{}", domain.CategorySocial},
}

// EmailPlatforms is probed with the local part of an email address.
var EmailPlatforms = Table{
	{"github", "https://github.com/{}", domain.CategoryProfessional},
	{"reddit", "https://reddit.com/user/{}", domain.CategorySocial},
	{"medium", "https://medium.com/@{}", domain.CategorySocial},
}

// SocialPlatforms is probed for every name variant.
var SocialPlatforms = Table{
	{"facebook", "https://facebook.com/{}", domain.CategorySocial},
	{"twitter", "https://twitter.com/{}", domain.CategorySocial},
	{"instagram", "https://instagram.com/{}", domain.CategorySocial},
	{"reddit", "https://reddit.com/user/{}", domain.CategorySocial},
	{"tiktok", "https://tiktok.com/@{}", domain.CategorySocial},
	{"pinterest", "https://pinterest.com/{}", domain.CategorySocial},
}

// ProfessionalPlatforms is probed for every name variant.
var ProfessionalPlatforms = Table{
	{"linkedin", "https://linkedin.com/in/{}", domain.CategoryProfessional},
	{"github", "https://github.com/{}", domain.CategoryProfessional},
	{"stackoverflow", "https://stackoverflow.com/users/{}", domain.CategoryProfessional},
}
