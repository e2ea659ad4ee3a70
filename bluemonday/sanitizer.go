// Package bluemonday implements the docser allow-list sanitizer on top of
// the bluemonday HTML sanitization library.
package bluemonday

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/policy"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements docser.Sanitizer at compile time.
var _ docser.Sanitizer = (*Sanitizer)(nil)

// Sanitizer filters fragments down to the policy allow-lists in two
// stages: a structural DOM pass (deny-set subtree removal, URL scheme
// validation, nofollow merge), then a bluemonday policy as the fail-safe
// final gate. Anything the gate still has to drop is an internal invariant
// breach: it is logged and never emitted.
type Sanitizer struct {
	cfg    docser.Config
	gate   *bluemonday.Policy
	logger *slog.Logger
}

// NewSanitizer creates a Sanitizer with default configuration.
// A nil logger discards violation logs.
func NewSanitizer(logger *slog.Logger) *Sanitizer {
	return NewSanitizerWithConfig(docser.DefaultConfig(), logger)
}

// NewSanitizerWithConfig creates a Sanitizer with custom configuration.
func NewSanitizerWithConfig(cfg docser.Config, logger *slog.Logger) *Sanitizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := bluemonday.NewPolicy()
	p.AllowElements(policy.AllowedTags()...)
	p.AllowAttrs(policy.LinkAttrs()...).OnElements("a")
	p.AllowAttrs("rel").OnElements("a")
	p.AllowAttrs(policy.ImageAttrs()...).OnElements("img")
	if cfg.KeepClassID {
		p.AllowAttrs("class", "id").Globally()
	}
	p.AllowURLSchemes(policy.AllowedSchemes()...)
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(true)

	return &Sanitizer{cfg: cfg, gate: p, logger: logger}
}

// Sanitize filters the fragment. The baseURL, when non-empty, resolves
// relative hyperlink and image references.
func (s *Sanitizer) Sanitize(fragment string, baseURL string) (*docser.SanitizedFragment, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, docser.Errorf(docser.EINVALID, "empty fragment input")
	}

	var base *url.URL
	if baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, docser.Errorf(docser.EINVALID, "invalid base URL: %v", err)
		}
		base = parsed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, docser.Errorf(docser.EINVALID, "malformed fragment: %v", err)
	}
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, docser.Errorf(docser.EINVALID, "malformed fragment: no content")
	}

	dropped := 0
	var warnings []string

	// Deny-set subtrees go first, content and all.
	for _, tag := range policy.DenyWithContent() {
		dropped += body.Find(tag).Remove().Length()
	}

	// Reference validation: a disallowed scheme drops the whole attribute,
	// never escapes it. Relative references resolve against the base URL.
	body.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if resolved, ok := validateRef(href, base); ok {
			sel.SetAttr("href", resolved)
		} else {
			sel.RemoveAttr("href")
			warnings = append(warnings, "dropped hyperlink target with disallowed scheme")
		}
	})
	body.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if resolved, ok := validateRef(src, base); ok {
			sel.SetAttr("src", resolved)
		} else {
			sel.RemoveAttr("src")
			warnings = append(warnings, "dropped image reference with disallowed scheme")
		}
	})

	// Every surviving hyperlink gets a nofollow relation, merged with any
	// pre-existing tokens.
	body.Find("a").Each(func(_ int, sel *goquery.Selection) {
		sel.SetAttr("rel", mergeRel(sel.AttrOr("rel", "")))
	})

	serialized, err := renderChildren(body.Nodes[0])
	if err != nil {
		return nil, docser.Errorf(docser.EINTERNAL, "failed to serialize fragment: %v", err)
	}

	out := s.gate.Sanitize(serialized)

	if repaired, violations := s.verify(out); len(violations) > 0 {
		// The gate let a disallowed construct through; the offending nodes
		// are dropped fail-safe, never emitted.
		for _, v := range violations {
			s.logger.Error("sanitization violation", "construct", v)
			warnings = append(warnings, "sanitization violation: "+v)
		}
		out = repaired
		dropped += len(violations)
	}

	return &docser.SanitizedFragment{
		HTML:         strings.TrimSpace(out),
		DroppedNodes: dropped,
		Warnings:     warnings,
	}, nil
}

// validateRef checks a hyperlink or image reference against the scheme
// allow-set, resolving relative references against base when provided.
// Returns the reference to emit and whether it is allowed.
func validateRef(ref string, base *url.URL) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if !policy.IsAllowedScheme(strings.ToLower(u.Scheme)) {
		return "", false
	}
	return u.String(), true
}

// mergeRel adds the nofollow token to a rel value, preserving existing
// tokens and their order.
func mergeRel(rel string) string {
	tokens := strings.Fields(rel)
	for _, t := range tokens {
		if strings.EqualFold(t, "nofollow") {
			return strings.Join(tokens, " ")
		}
	}
	return strings.Join(append(tokens, "nofollow"), " ")
}

// renderChildren serializes the child nodes of n, excluding n itself.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// verify re-parses the gate output and drops any construct that must
// never appear there: deny-set or non-allow-listed tags, event-handler
// attributes, disallowed reference schemes. Returns the repaired output
// and the list of violations; an empty list means out is returned as-is.
func (s *Sanitizer) verify(out string) (string, []string) {
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		return "", []string{"unparseable output"}
	}

	var violations []string
	var remove []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html", "head", "body":
				// Parse scaffolding, not output content.
			default:
				if !policy.IsAllowedTag(n.Data) {
					violations = append(violations, "tag "+n.Data)
					remove = append(remove, n)
					return
				}
			}
			kept := n.Attr[:0]
			for _, attr := range n.Attr {
				if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
					violations = append(violations, "event handler "+attr.Key)
					continue
				}
				if attr.Key == "href" || attr.Key == "src" {
					if u, err := url.Parse(attr.Val); err != nil || !policy.IsAllowedScheme(strings.ToLower(u.Scheme)) {
						violations = append(violations, "scheme in "+attr.Key)
						continue
					}
				}
				kept = append(kept, attr)
			}
			n.Attr = kept
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(violations) == 0 {
		return out, nil
	}

	for _, n := range remove {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	var body *html.Node
	var findBody func(*html.Node)
	findBody = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil && body == nil; c = c.NextSibling {
			findBody(c)
		}
	}
	findBody(doc)
	if body == nil {
		return "", violations
	}
	repaired, err := renderChildren(body)
	if err != nil {
		return "", append(violations, "unserializable output")
	}
	return repaired, violations
}
