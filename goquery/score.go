package goquery

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RadhiFadlillah/whatlanggo"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/policy"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heuristic scorer: the statistical fallback when neither framework
// fingerprinting nor semantic markers locate the content. Paragraph-level
// scores propagate additively up the ancestor chain at decaying weight;
// the container with the highest aggregate wins. Scores live in a side
// map, the input tree is never mutated.

// scoreEntry holds the transient per-node scoring state for one extraction.
type scoreEntry struct {
	node            *html.Node
	base            float64
	aggregate       float64
	linkDensity     float64
	stopwordDensity float64
	textLength      int
	order           int
}

// scorer computes candidate roots for a single extraction call.
type scorer struct {
	cfg       docser.Config
	stopwords map[string]struct{}
}

// score walks the body subtree, scores paragraph-like nodes, propagates to
// ancestors, and returns the best eligible candidate. Returns ok=false
// when no node achieves a positive aggregate score.
func (s *scorer) score(body *html.Node) (*scoreEntry, bool) {
	order := make(map[*html.Node]int)
	var paragraphs []*html.Node

	idx := 0
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if depth > s.cfg.MaxTraversalDepth {
			return
		}
		if n.Type == html.ElementNode {
			order[n] = idx
			idx++
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
			if isScoringTag(n.DataAtom) {
				paragraphs = append(paragraphs, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth+1)
		}
	}
	walk(body, 0)

	candidates := make(map[*html.Node]*scoreEntry)
	for _, p := range paragraphs {
		own := normalizeSpace(ownText(p))
		if utf8.RuneCountInString(own) < s.cfg.MinParagraphLength {
			continue
		}
		base := baseScore(own) + classIDScore(p)
		if base == 0 {
			continue
		}

		// The paragraph itself is a candidate: a single-paragraph document
		// has no richer container to choose.
		entry := candidates[p]
		if entry == nil {
			entry = &scoreEntry{node: p, order: order[p]}
			candidates[p] = entry
		}
		entry.base += base
		entry.aggregate += base

		weight := 1.0
		level := 1
		for anc := p.Parent; anc != nil && level <= s.cfg.PropagationDepth; anc = anc.Parent {
			if anc.Type != html.ElementNode {
				continue
			}
			if anc.DataAtom == atom.Body || anc.DataAtom == atom.Html {
				break
			}
			ae := candidates[anc]
			if ae == nil {
				// A container's own class/id counts once, on first touch.
				ae = &scoreEntry{node: anc, order: order[anc], aggregate: classIDScore(anc)}
				candidates[anc] = ae
			}
			ae.aggregate += base * weight
			weight *= s.cfg.PropagationDecay
			level++
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}

	entries := make([]*scoreEntry, 0, len(candidates))
	for _, e := range candidates {
		text := normalizeSpace(collectText(e.node))
		e.textLength = len(text)
		e.linkDensity = linkDensity(e.node)
		e.stopwordDensity = s.stopwordDensity(text)
		entries = append(entries, e)
	}

	// Link density never enters the ranking itself: it breaks ties and
	// gates the winner below.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].aggregate != entries[j].aggregate {
			return entries[i].aggregate > entries[j].aggregate
		}
		if entries[i].linkDensity != entries[j].linkDensity {
			return entries[i].linkDensity < entries[j].linkDensity
		}
		return entries[i].order < entries[j].order
	})

	for _, e := range entries {
		if e.aggregate <= 0 {
			break
		}
		if e.linkDensity <= s.cfg.LinkDensityMax {
			return e, true
		}
		// Navigation-dominated winner: prefer its best-scoring eligible
		// ancestor before falling through to the next candidate.
		if anc := s.bestAncestor(e, candidates); anc != nil {
			return anc, true
		}
	}
	return nil, false
}

// bestAncestor returns the highest-scoring ancestor of e with a positive
// score and acceptable link density, or nil.
func (s *scorer) bestAncestor(e *scoreEntry, candidates map[*html.Node]*scoreEntry) *scoreEntry {
	var best *scoreEntry
	for anc := e.node.Parent; anc != nil; anc = anc.Parent {
		if anc.Type != html.ElementNode || anc.DataAtom == atom.Body || anc.DataAtom == atom.Html {
			break
		}
		ae, ok := candidates[anc]
		if !ok || ae.aggregate <= 0 || ae.linkDensity > s.cfg.LinkDensityMax {
			continue
		}
		if best == nil || ae.aggregate > best.aggregate {
			best = ae
		}
	}
	return best
}

// stopwordDensity returns the ratio of stopword tokens to total tokens.
// UAX#29 segmentation keeps this meaningful for languages that do not
// delimit words with whitespace.
func (s *scorer) stopwordDensity(text string) float64 {
	total, stop := 0, 0
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if !isWordToken(tok) {
			continue
		}
		total++
		if _, ok := s.stopwords[strings.ToLower(tok)]; ok {
			stop++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(stop) / float64(total)
}

// baseScore implements: punctuation bonus + length bonus.
// One point per sentence-ish comma, capped length bonus per 100 characters.
// Lengths are counted in runes so multi-byte scripts are not over-credited.
func baseScore(text string) float64 {
	score := 1.0
	score += float64(strings.Count(text, ",") + strings.Count(text, "、") + strings.Count(text, "，"))
	bonus := utf8.RuneCountInString(text) / 100
	if bonus > 3 {
		bonus = 3
	}
	score += float64(bonus)
	return score
}

// classIDScore returns the class/id pattern weight for a node: positive
// patterns add, negative patterns subtract.
func classIDScore(n *html.Node) float64 {
	value := getAttr(n, "class") + " " + getAttr(n, "id")
	score := 0.0
	if policy.MatchesPositiveClassID(value) {
		score += policy.ClassIDWeight
	}
	if policy.MatchesNegativeClassID(value) {
		score -= policy.ClassIDWeight
	}
	return score
}

// linkDensity returns chars inside hyperlinks over total chars.
func linkDensity(n *html.Node) float64 {
	total := len(normalizeSpace(collectText(n)))
	if total == 0 {
		return 0
	}
	link := len(normalizeSpace(collectLinkText(n)))
	return float64(link) / float64(total)
}

// detectLanguage resolves the stopword language: caller metadata first,
// then the document's lang attribute, then statistical detection over the
// body text, then the default.
func detectLanguage(declared, docLang, sample string) (map[string]struct{}, string) {
	if declared != "" {
		if set, code := policy.Stopwords(declared); code != policy.DefaultLanguage || isDefaultish(declared) {
			return set, code
		}
	}
	if docLang != "" {
		if set, code := policy.Stopwords(docLang); code != policy.DefaultLanguage || isDefaultish(docLang) {
			return set, code
		}
	}
	if len(sample) >= 40 {
		info := whatlanggo.Detect(sample)
		if info.IsReliable() {
			return policy.Stopwords(whatlanggo.LangToString(info.Lang))
		}
	}
	return policy.Stopwords("")
}

// isDefaultish reports whether a declared code already names the default
// language, so a default-set resolution is a real match rather than a
// fallback that should yield to detection.
func isDefaultish(code string) bool {
	code = strings.ToLower(code)
	return code == policy.DefaultLanguage || strings.HasPrefix(code, policy.DefaultLanguage+"-")
}

// isWordToken reports whether a UAX#29 segment is a word rather than
// punctuation or whitespace.
func isWordToken(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// isScoringTag reports whether a tag is a block-level scoring candidate.
func isScoringTag(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article:
		return true
	}
	return false
}

// isBlockTag reports whether a tag starts a new block; ownText stops at
// block children so nested blocks score for themselves.
func isBlockTag(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Aside, atom.Header,
		atom.Footer, atom.Nav, atom.Main, atom.Ul, atom.Ol, atom.Dl, atom.Table,
		atom.Blockquote, atom.Pre, atom.Figure, atom.Form, atom.H1, atom.H2,
		atom.H3, atom.H4, atom.H5, atom.H6, atom.Hr:
		return true
	}
	return false
}

// ownText collects the node's text up to, but not into, block children.
func ownText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(c *html.Node) {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
			return
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
			if isBlockTag(c.DataAtom) {
				return
			}
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			f(gc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f(c)
	}
	return sb.String()
}

// collectText collects all text under a node, excluding script vectors.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
			return
		}
		if c.Type == html.ElementNode {
			switch c.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			f(gc)
		}
	}
	f(n)
	return sb.String()
}

// collectLinkText collects text inside hyperlink elements only.
func collectLinkText(n *html.Node) string {
	var sb strings.Builder
	var f func(c *html.Node, inLink bool)
	f = func(c *html.Node, inLink bool) {
		if c.Type == html.ElementNode && c.DataAtom == atom.A {
			inLink = true
		}
		if c.Type == html.TextNode && inLink {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
			return
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			f(gc, inLink)
		}
	}
	f(n, false)
	return sb.String()
}

// getAttr returns the value of an attribute on a node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
