package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/quanghuy1242/docser"
)

// Ensure Extractor implements docser.Extractor at compile time.
var _ docser.Extractor = (*Extractor)(nil)

// Extractor runs the tiered extraction pipeline: framework fingerprinting,
// semantic location, heuristic scoring, then pruning and sanitization of
// whichever root was found. Safe for concurrent use; all scoring state is
// per-call.
type Extractor struct {
	cfg           docser.Config
	fingerprinter *Fingerprinter
	sanitizer     docser.Sanitizer
}

// NewExtractor creates an Extractor with default thresholds.
func NewExtractor(sanitizer docser.Sanitizer) *Extractor {
	return NewExtractorWithConfig(docser.DefaultConfig(), sanitizer)
}

// NewExtractorWithConfig creates an Extractor with custom thresholds.
func NewExtractorWithConfig(cfg docser.Config, sanitizer docser.Sanitizer) *Extractor {
	return &Extractor{
		cfg:           cfg,
		fingerprinter: NewFingerprinter(),
		sanitizer:     sanitizer,
	}
}

// chosenRoot is the outcome of the discovery tiers.
type chosenRoot struct {
	sel        *goquery.Selection
	tier       docser.Tier
	framework  docser.Framework
	exclusions []string
	confidence float64
	warnings   []string
}

// Extract processes rendered HTML and returns the sanitized main content.
func (e *Extractor) Extract(rawHTML string, meta docser.Meta) (*docser.ExtractionResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docser.Errorf(docser.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docser.Errorf(docser.EINVALID, "malformed HTML input: %v", err)
	}
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, docser.Errorf(docser.EINVALID, "input is not an HTML document")
	}

	docLang, _ := doc.Find("html").Attr("lang")
	sample := normalizeSpace(body.Text())
	if len(sample) > 4000 {
		sample = sample[:4000]
	}
	stopwords, langCode := detectLanguage(meta.Language, docLang, sample)

	root, ok := e.tierFramework(doc)
	if !ok {
		root, ok = e.tierSemantic(doc, root.warnings)
	}
	if !ok {
		root, ok = e.tierHeuristic(body, stopwords, root.warnings)
	}
	if !ok {
		return nil, docser.Errorf(docser.ENOTFOUND, "no content found: all discovery tiers exhausted")
	}

	title := extractTitle(doc, root.sel)

	p := &pruner{cfg: e.cfg}
	removed := p.prune(root.sel, root.exclusions)

	fragment, err := goquery.OuterHtml(root.sel)
	if err != nil {
		return nil, docser.Errorf(docser.EINTERNAL, "failed to serialize content root: %v", err)
	}

	sanitized, err := e.sanitizer.Sanitize(fragment, meta.SourceURL)
	if err != nil {
		return nil, err
	}

	warnings := append(root.warnings, sanitized.Warnings...)

	return &docser.ExtractionResult{
		Fragment:        sanitized.HTML,
		Title:           title,
		Tier:            root.tier,
		Framework:       root.framework,
		Confidence:      root.confidence,
		Language:        langCode,
		RemovedSubtrees: removed + sanitized.DroppedNodes,
		Warnings:        warnings,
		ContentHash:     xxhash.Sum64String(sanitized.HTML),
	}, nil
}

// tierFramework attempts framework fingerprinting. On a signature match,
// the profile's content selectors are tried in order; a match with no
// usable content demotes to the next tier with a warning.
func (e *Extractor) tierFramework(doc *goquery.Document) (chosenRoot, bool) {
	profile, ok := e.fingerprinter.match(doc)
	if !ok {
		return chosenRoot{}, false
	}

	for _, cs := range profile.ContentSelectors {
		sel := doc.Find(cs)
		if sel.Length() == 0 {
			continue
		}
		root := sel.First()
		if sel.Length() > 1 {
			// Multiple content blocks (e.g. per-paragraph selectors):
			// the container is the single root that covers them all.
			root = doc.Find(profile.Container).First()
		}
		if utf8.RuneCountInString(normalizeSpace(root.Text())) < e.cfg.MinParagraphLength {
			continue
		}
		return chosenRoot{
			sel:        root,
			tier:       docser.TierFramework,
			framework:  profile.Framework,
			exclusions: profile.Exclusions,
			confidence: 0.9,
		}, true
	}

	return chosenRoot{
		warnings: []string{"framework " + string(profile.Framework) + " matched but its content selectors yielded no text"},
	}, false
}

// tierSemantic attempts the standards-based markers.
func (e *Extractor) tierSemantic(doc *goquery.Document, warnings []string) (chosenRoot, bool) {
	sel, _, ok := locateSemantic(doc, e.cfg.MinSemanticLength)
	if !ok {
		return chosenRoot{warnings: warnings}, false
	}
	return chosenRoot{
		sel:        sel.First(),
		tier:       docser.TierSemantic,
		confidence: 0.75,
		warnings:   warnings,
	}, true
}

// tierHeuristic runs the statistical scorer; its confidence reflects link
// and stopword density of the winning candidate.
func (e *Extractor) tierHeuristic(body *goquery.Selection, stopwords map[string]struct{}, warnings []string) (chosenRoot, bool) {
	s := &scorer{cfg: e.cfg, stopwords: stopwords}
	entry, ok := s.score(body.Nodes[0])
	if !ok {
		return chosenRoot{warnings: warnings}, false
	}

	confidence := 0.3 + 0.3*(1-entry.linkDensity) + 0.2*min(entry.stopwordDensity*4, 1)
	confidence = min(confidence, 0.7)

	return chosenRoot{
		sel:        body.FindNodes(entry.node),
		tier:       docser.TierHeuristic,
		confidence: confidence,
		warnings:   warnings,
	}, true
}

// extractTitle returns the page title: og:title, then the title tag, then
// the JSON-LD headline, then the first heading inside the content root.
func extractTitle(doc *goquery.Document, root *goquery.Selection) string {
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(structuredDataHeadline(doc)); t != "" {
		return t
	}
	return strings.TrimSpace(root.Find("h1").First().Text())
}
