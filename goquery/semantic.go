package goquery

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Semantic locator: the standards-based fallback attempted when framework
// fingerprinting is undetermined. Candidates are tried in decreasing order
// of explicitness; the first one with substantial text wins.

// locateSemantic returns the semantic content root, the marker that
// produced it, and whether anything was found.
func locateSemantic(doc *goquery.Document, minLength int) (*goquery.Selection, string, bool) {
	// JSON-LD articleBody. The field discards markup, so it is used to
	// locate and validate the carrying DOM element, never as the output.
	if sel := locateByStructuredData(doc, minLength); sel != nil {
		return sel, "json-ld", true
	}

	if sel := firstSubstantial(doc.Find("[itemprop='articleBody']"), minLength); sel != nil {
		return sel, "itemprop", true
	}

	if sel := firstSubstantial(doc.Find("[role='main']"), minLength); sel != nil {
		return sel, "role-main", true
	}

	// A lone main or article tag is unambiguous; multiple are not.
	if main := doc.Find("main"); main.Length() == 1 {
		if sel := firstSubstantial(main, minLength); sel != nil {
			return sel, "main", true
		}
	}
	if article := doc.Find("article"); article.Length() == 1 {
		if sel := firstSubstantial(article, minLength); sel != nil {
			return sel, "article", true
		}
	}

	return nil, "", false
}

// firstSubstantial returns the first selection node whose text length, in
// runes, clears the minimum, or nil.
func firstSubstantial(sel *goquery.Selection, minLength int) *goquery.Selection {
	var found *goquery.Selection
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if utf8.RuneCountInString(normalizeSpace(s.Text())) >= minLength {
			found = s
			return false
		}
		return true
	})
	return found
}

// locateByStructuredData extracts articleBody fields from JSON-LD blocks
// and cross-checks them against the DOM: the winning element is the
// smallest one whose text carries the declared body.
func locateByStructuredData(doc *goquery.Document, minLength int) *goquery.Selection {
	var bodies []string
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}
		collectArticleBodies(payload, &bodies)
	})

	for _, body := range bodies {
		body = normalizeSpace(body)
		if utf8.RuneCountInString(body) < minLength {
			continue
		}
		if sel := matchBodyToDOM(doc, body); sel != nil {
			return sel
		}
	}
	return nil
}

// structuredDataHeadline returns the first headline field found in JSON-LD
// blocks, or "".
func structuredDataHeadline(doc *goquery.Document) string {
	headline := ""
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		headline = collectHeadline(payload)
		return headline == ""
	})
	return headline
}

func collectHeadline(v interface{}) string {
	switch val := v.(type) {
	case map[string]interface{}:
		if h, ok := val["headline"].(string); ok && h != "" {
			return h
		}
		for _, child := range val {
			if h := collectHeadline(child); h != "" {
				return h
			}
		}
	case []interface{}:
		for _, child := range val {
			if h := collectHeadline(child); h != "" {
				return h
			}
		}
	}
	return ""
}

func collectArticleBodies(v interface{}, out *[]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		if body, ok := val["articleBody"].(string); ok && body != "" {
			*out = append(*out, body)
		}
		for _, child := range val {
			collectArticleBodies(child, out)
		}
	case []interface{}:
		for _, child := range val {
			collectArticleBodies(child, out)
		}
	}
}

// matchBodyToDOM finds the smallest container whose text contains the
// body's leading text and covers at least half its length. Containment of
// the prefix anchors the element; the coverage floor rejects elements that
// merely quote the opening line.
func matchBodyToDOM(doc *goquery.Document, body string) *goquery.Selection {
	prefix := body
	if utf8.RuneCountInString(prefix) > 80 {
		runes := []rune(prefix)
		prefix = string(runes[:80])
	}

	var best *goquery.Selection
	bestLen := -1
	doc.Find("article, main, section, div").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		if !strings.Contains(text, prefix) {
			return
		}
		if len(text)*2 < len(body) {
			return
		}
		if bestLen == -1 || len(text) < bestLen {
			best = s
			bestLen = len(text)
		}
	})
	return best
}

// normalizeSpace collapses all whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
