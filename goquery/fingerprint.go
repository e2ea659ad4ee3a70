// Package goquery implements the docser extraction pipeline on top of
// goquery/cascadia DOM queries: framework fingerprinting, semantic
// location, heuristic scoring, pruning, and the orchestrating extractor.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/policy"
)

// Ensure Fingerprinter implements docser.FrameworkFingerprinter at compile time.
var _ docser.FrameworkFingerprinter = (*Fingerprinter)(nil)

// Fingerprinter matches documents against the framework profile table.
// It is data-driven: detection logic lives here, detection knowledge lives
// in the policy tables.
type Fingerprinter struct {
	profiles []docser.FrameworkProfile
}

// NewFingerprinter creates a Fingerprinter backed by the policy table.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{profiles: policy.Frameworks()}
}

// Fingerprint parses the HTML and returns the first matching profile.
func (f *Fingerprinter) Fingerprint(html string) (*docser.FrameworkProfile, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return f.match(doc)
}

// match evaluates signatures in rounds by kind, so that a generator-metadata
// match on any profile outranks an id/attribute match on any other, which in
// turn outranks class-prefix heuristics. Within a round, profiles are tried
// in priority order. A signature match only counts when the profile's
// container is actually present.
func (f *Fingerprinter) match(doc *goquery.Document) (*docser.FrameworkProfile, bool) {
	generator := metaGenerator(doc)
	schemaTypes := structuredDataTypes(doc)

	rounds := []docser.SignatureKind{
		docser.SignatureGenerator,
		docser.SignatureSelector,
		docser.SignatureClass,
		docser.SignatureSchema,
	}

	for _, kind := range rounds {
		for i := range f.profiles {
			p := &f.profiles[i]
			if !f.signatureMatches(doc, p, kind, generator, schemaTypes) {
				continue
			}
			if doc.Find(p.Container).Length() == 0 {
				continue
			}
			return p, true
		}
	}
	return nil, false
}

func (f *Fingerprinter) signatureMatches(doc *goquery.Document, p *docser.FrameworkProfile, kind docser.SignatureKind, generator string, schemaTypes map[string]struct{}) bool {
	for _, sig := range p.Signatures {
		if sig.Kind != kind {
			continue
		}
		switch kind {
		case docser.SignatureGenerator:
			if generator != "" && strings.Contains(generator, sig.Pattern) {
				return true
			}
		case docser.SignatureSelector, docser.SignatureClass:
			if doc.Find(sig.Pattern).Length() > 0 {
				return true
			}
		case docser.SignatureSchema:
			if _, ok := schemaTypes[sig.Pattern]; ok {
				return true
			}
		}
	}
	return false
}

// metaGenerator returns the lowercased content of the meta generator tag.
func metaGenerator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return generator
}

// structuredDataTypes collects @type values from JSON-LD blocks.
func structuredDataTypes(doc *goquery.Document) map[string]struct{} {
	types := make(map[string]struct{})
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}
		collectTypes(payload, types)
	})
	return types
}

func collectTypes(v interface{}, types map[string]struct{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		if t, ok := val["@type"].(string); ok {
			types[t] = struct{}{}
		}
		for _, child := range val {
			collectTypes(child, types)
		}
	case []interface{}:
		for _, child := range val {
			collectTypes(child, types)
		}
	}
}
