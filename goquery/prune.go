package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/policy"
)

// Pruner removes boilerplate subtrees from a chosen content root. Every
// tier's output goes through it: framework-matched containers still carry
// inline widgets. Pruning is idempotent because removed nodes are excised
// from the document, not flagged.
type pruner struct {
	cfg docser.Config
}

// prune runs the static exclusion pass and the dynamic link-density pass
// on the root's subtree. Extra selectors come from a matched framework
// profile. Returns the number of removed subtrees.
func (p *pruner) prune(root *goquery.Selection, extraSelectors []string) int {
	removed := 0

	// Static pass: the exclusion table, framework extras, and elements
	// hidden by inline style.
	for _, m := range policy.ExclusionMatchers() {
		removed += root.FindMatcher(m).Remove().Length()
	}
	for _, sel := range extraSelectors {
		removed += root.Find(sel).Remove().Length()
	}
	removed += root.Find("[style]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		return policy.IsHiddenStyle(style)
	}).Remove().Length()

	// Dynamic pass: direct block children that are both link-dense and
	// short relative to their siblings are related-links widgets; long
	// link-rich blocks (reference lists, indexes) survive.
	children := root.Children()
	if children.Length() > 1 {
		lengths := make([]int, children.Length())
		total := 0
		children.Each(func(i int, s *goquery.Selection) {
			lengths[i] = len(normalizeSpace(s.Text()))
			total += lengths[i]
		})
		avg := float64(total) / float64(children.Length())

		children.Each(func(i int, s *goquery.Selection) {
			if len(s.Nodes) == 0 {
				return
			}
			if linkDensity(s.Nodes[0]) > p.cfg.LinkDensityMax && float64(lengths[i]) < avg {
				s.Remove()
				removed++
			}
		})
	}

	return removed
}
