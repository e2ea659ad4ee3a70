package policy

import "regexp"

// Class/id score patterns, readability lineage. A node whose class or id
// matches the positive pattern is likely article prose; the negative
// pattern marks chrome, widgets, and related-content blocks.
var (
	positiveClassID = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|post|text|blog|story`)

	negativeClassID = regexp.MustCompile(`(?i)banner|breadcrumb|combx|comment|com-|contact|foot|footer|footnote|masthead|media|menu|meta|nav|outbrain|pager|popup|promo|related|scroll|share|shoutbox|sidebar|social|sponsor|shopping|tags|tool|widget`)
)

// ClassIDWeight is the score added for a positive class/id pattern match
// and subtracted for a negative one.
const ClassIDWeight = 25.0

// MatchesPositiveClassID reports whether a class/id value looks like
// article content.
func MatchesPositiveClassID(value string) bool {
	return value != "" && positiveClassID.MatchString(value)
}

// MatchesNegativeClassID reports whether a class/id value looks like
// boilerplate chrome.
func MatchesNegativeClassID(value string) bool {
	return value != "" && negativeClassID.MatchString(value)
}
