// Package fetch - platform.go provides social platform detection and
// platform-specific selectors for public profile pages.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known social or code-hosting platform.
type Platform string

const (
	// PlatformLinkedIn is the professional network platform
	PlatformLinkedIn Platform = "linkedin"
	// PlatformGitHub is the code-hosting platform
	PlatformGitHub Platform = "github"
	// PlatformTwitter is the microblogging platform
	PlatformTwitter Platform = "twitter"
	// PlatformPortfolio is a personal site outside the known platforms
	PlatformPortfolio Platform = "portfolio"
)

// DetectPlatform identifies the platform a profile URL belongs to.
// Anything outside the known hosts is treated as a personal site.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformPortfolio
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}
	if strings.Contains(host, "github.com") {
		return PlatformGitHub
	}
	if strings.Contains(host, "twitter.com") || host == "x.com" || host == "www.x.com" {
		return PlatformTwitter
	}

	return PlatformPortfolio
}

// PlatformContentSelectors returns content selectors for a platform's public pages.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".top-card-layout",
			".profile-section",
			"main",
			"#main-content",
		}
	case PlatformGitHub:
		return []string{
			".user-profile-bio",
			".vcard-names",
			"main",
		}
	default:
		return DefaultTextSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Auth walls and sign-up prompts
		".authwall",
		".join-form",
		".signup-banner",
		"[data-testid='login-form']",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Social and share buttons
		".social-share",
		".share-buttons",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".contextual-sign-in-modal",
			".cta-modal",
			".nav__cta-container",
		)
	case PlatformGitHub:
		return append(common,
			".footer",
			".Header",
		)
	default:
		return common
	}
}
