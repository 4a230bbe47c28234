package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known resume or portfolio host.
type Platform string

const (
	// PlatformGitHub covers github.com profiles and github.io pages
	PlatformGitHub Platform = "github"
	// PlatformLinkedIn is a public LinkedIn profile
	PlatformLinkedIn Platform = "linkedin"
	// PlatformGoogleDocs is a published Google Doc
	PlatformGoogleDocs Platform = "google_docs"
	// PlatformNotion is a public Notion page
	PlatformNotion Platform = "notion"
	// PlatformUnknown is an unrecognized host
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the resume host from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case host == "github.com" || strings.HasSuffix(host, ".github.io"):
		return PlatformGitHub
	case strings.HasSuffix(host, "linkedin.com"):
		return PlatformLinkedIn
	case host == "docs.google.com":
		return PlatformGoogleDocs
	case strings.HasSuffix(host, "notion.site") || strings.HasSuffix(host, "notion.so"):
		return PlatformNotion
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a specific host.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGitHub:
		return []string{
			"article.markdown-body",
			".markdown-body",
			"main",
		}
	case PlatformLinkedIn:
		return []string{
			".core-section-container",
			"main",
			".top-card-layout",
		}
	case PlatformGoogleDocs:
		return []string{
			"#contents",
			".doc-content",
			"body",
		}
	case PlatformNotion:
		return []string{
			".notion-page-content",
			"main",
		}
	default:
		return ResumePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific host.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGitHub:
		return append(common, ".file-navigation", ".js-header-wrapper", ".footer")
	case PlatformLinkedIn:
		return append(common, ".join-form", ".authwall-join-form", ".sign-in-modal")
	case PlatformGoogleDocs:
		return append(common, "#header", "#footer")
	default:
		return common
	}
}
