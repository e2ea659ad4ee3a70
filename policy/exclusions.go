package policy

import (
	"regexp"

	"github.com/andybalholm/cascadia"
)

// exclusionSelectors is the static boilerplate exclusion table applied to
// every chosen content root, regardless of which tier produced it:
// structural landmarks, ARIA chrome roles, advertising and social-sharing
// attribute globs, and modal/overlay/cookie-consent class globs.
var exclusionSelectors = []string{
	"header", "footer", "nav", "aside",
	"[role='navigation']", "[role='banner']", "[role='contentinfo']", "[role='alert']",
	".ad", ".advertisement", "[class*='google_ads']", "[id*='div-gpt-ad']",
	".share-buttons", ".social-media", ".twitter-tweet", "div[class*='share']",
	".modal", ".popup", ".overlay", "[class*='cookie']", "[class*='consent']",
	".author-bio", ".timestamp", ".meta-data",
	".no-print", ".print-only",
}

var compiledExclusions []cascadia.Selector

func init() {
	compiledExclusions = make([]cascadia.Selector, 0, len(exclusionSelectors))
	for _, sel := range exclusionSelectors {
		compiledExclusions = append(compiledExclusions, cascadia.MustCompile(sel))
	}
}

// ExclusionSelectors returns the raw exclusion selector strings.
// The returned slice is shared; callers must not modify it.
func ExclusionSelectors() []string {
	return exclusionSelectors
}

// ExclusionMatchers returns the pre-compiled exclusion selectors.
// The returned slice is shared; callers must not modify it.
func ExclusionMatchers() []cascadia.Selector {
	return compiledExclusions
}

// hiddenStylePatterns match inline styles that hide an element outright.
// Hidden elements are boilerplate by definition: keyword stuffing,
// pre-rendered overlays, and template leftovers.
var hiddenStylePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)display\s*:\s*none`),
	regexp.MustCompile(`(?i)visibility\s*:\s*hidden`),
	regexp.MustCompile(`(?i)font-size\s*:\s*0(?:[^.1-9]|$)`),
	regexp.MustCompile(`(?i)opacity\s*:\s*0(?:[^.1-9]|$)`),
}

// IsHiddenStyle reports whether an inline style value hides the element.
func IsHiddenStyle(style string) bool {
	for _, pat := range hiddenStylePatterns {
		if pat.MatchString(style) {
			return true
		}
	}
	return false
}
