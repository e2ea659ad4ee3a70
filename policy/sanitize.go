package policy

// Sanitizer allow-lists. The tag list is explicit and enumerated; anything
// not on it is removed (content retained), and anything in the deny set is
// removed together with its content.

// allowedTags are the only tags that may appear in sanitized output.
var allowedTags = []string{
	"a", "abbr", "article", "b", "blockquote", "br", "caption", "cite",
	"code", "dd", "div", "dl", "dt", "em", "figcaption", "figure",
	"h1", "h2", "h3", "h4", "h5", "h6", "hr", "i", "img", "li", "mark",
	"ol", "p", "pre", "q", "s", "section", "small", "span", "strong",
	"sub", "sup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
	"u", "ul",
}

// denyWithContent are tags whose entire subtree is removed: script vectors,
// embedded objects, and interactive form controls.
var denyWithContent = []string{
	"script", "style", "noscript", "iframe", "frame", "frameset",
	"object", "embed", "applet",
	"form", "input", "button", "select", "textarea", "option", "label",
	"video", "audio", "canvas",
}

// linkAttrs, imageAttrs: per-tag attribute allow-lists.
var (
	linkAttrs  = []string{"href", "title", "name"}
	imageAttrs = []string{"src", "alt", "title"}
)

// allowedSchemes for hyperlink and image references. Relative references
// are allowed separately; any other scheme drops the attribute entirely.
var allowedSchemes = []string{"http", "https", "mailto"}

var (
	allowedTagSet = make(map[string]struct{}, len(allowedTags))
	denySet       = make(map[string]struct{}, len(denyWithContent))
	schemeSet     = make(map[string]struct{}, len(allowedSchemes))
)

func init() {
	for _, t := range allowedTags {
		allowedTagSet[t] = struct{}{}
	}
	for _, t := range denyWithContent {
		denySet[t] = struct{}{}
	}
	for _, s := range allowedSchemes {
		schemeSet[s] = struct{}{}
	}
}

// AllowedTags returns the sanitizer tag allow-list.
// The returned slice is shared; callers must not modify it.
func AllowedTags() []string { return allowedTags }

// DenyWithContent returns the tags removed together with their content.
// The returned slice is shared; callers must not modify it.
func DenyWithContent() []string { return denyWithContent }

// LinkAttrs returns the attribute allow-list for hyperlinks.
func LinkAttrs() []string { return linkAttrs }

// ImageAttrs returns the attribute allow-list for images.
func ImageAttrs() []string { return imageAttrs }

// AllowedSchemes returns the URL scheme allow-set.
func AllowedSchemes() []string { return allowedSchemes }

// IsAllowedTag reports whether a tag may appear in sanitized output.
func IsAllowedTag(tag string) bool {
	_, ok := allowedTagSet[tag]
	return ok
}

// IsDeniedTag reports whether a tag is removed together with its content.
func IsDeniedTag(tag string) bool {
	_, ok := denySet[tag]
	return ok
}

// IsAllowedScheme reports whether a URL scheme is on the allow-set.
// The empty scheme (relative reference) is allowed.
func IsAllowedScheme(scheme string) bool {
	if scheme == "" {
		return true
	}
	_, ok := schemeSet[scheme]
	return ok
}
