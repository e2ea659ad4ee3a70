package goquery

import (
	"testing"

	"github.com/quanghuy1242/docser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruner_Prune(t *testing.T) {
	t.Parallel()

	t.Run("removes static exclusions", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div id="root">
<nav><a href="/">Home</a></nav>
<p>The paragraph that carries the actual content of the page.</p>
<div class="share-buttons"><a href="#">Tweet</a></div>
<aside>Promoted stories</aside>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		removed := p.prune(root, nil)

		assert.Equal(t, 3, removed)
		assert.Contains(t, root.Text(), "actual content")
		assert.NotContains(t, root.Text(), "Home")
		assert.NotContains(t, root.Text(), "Tweet")
		assert.NotContains(t, root.Text(), "Promoted")
	})

	t.Run("removes framework extras", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div id="root">
<p>Prose that the exclusion table has no reason to touch at all.</p>
<div class="pagination-nav"><a href="/next">Next</a></div>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		removed := p.prune(root, []string{".pagination-nav"})

		assert.Equal(t, 1, removed)
		assert.NotContains(t, root.Text(), "Next")
	})

	t.Run("removes elements hidden by inline style", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div id="root">
<p>Visible prose stays in the output exactly as written.</p>
<div style="display:none">seo keyword stuffing block</div>
<span style="visibility: hidden">hidden span</span>
<p style="margin-top: 0">Styled but visible prose also stays.</p>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		removed := p.prune(root, nil)

		assert.Equal(t, 2, removed)
		assert.NotContains(t, root.Text(), "keyword stuffing")
		assert.NotContains(t, root.Text(), "hidden span")
		assert.Contains(t, root.Text(), "Styled but visible")
	})

	t.Run("removes short link-dense children", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div id="root">
<p>The first of several long paragraphs, each of them carrying enough plain prose that the block as a whole dwarfs the widget below it.</p>
<p>The second paragraph continues in the same vein, adding detail after detail so that the average child length stays comfortably high.</p>
<div class="推荐"><a href="/a">One link</a> <a href="/b">Two link</a></div>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		removed := p.prune(root, nil)

		assert.Equal(t, 1, removed)
		assert.NotContains(t, root.Text(), "One link")
		assert.Contains(t, root.Text(), "second paragraph")
	})

	t.Run("keeps long link-rich blocks", func(t *testing.T) {
		t.Parallel()

		// A reference list longer than the sibling average is content, not a
		// related-links widget.
		doc := parseDoc(t, `<html><body><div id="root">
<p>Short intro line.</p>
<ul>
<li><a href="/rfc/1034">RFC 1034, Domain names, concepts and facilities, the foundational specification</a></li>
<li><a href="/rfc/1035">RFC 1035, Domain names, implementation and specification, the companion document</a></li>
<li><a href="/rfc/2181">RFC 2181, Clarifications to the DNS specification, resolving years of ambiguity</a></li>
</ul>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		removed := p.prune(root, nil)

		assert.Zero(t, removed)
		assert.Contains(t, root.Text(), "RFC 2181")
	})

	t.Run("idempotent on a pruned tree", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div id="root">
<nav><a href="/">Home</a></nav>
<p>A paragraph long enough to anchor the subtree through both passes.</p>
<div class="related"><a href="/a">x</a></div>
</div></body></html>`)
		root := doc.Find("#root")

		p := &pruner{cfg: docser.DefaultConfig()}
		first := p.prune(root, nil)
		require.Greater(t, first, 0)

		html1, err := root.Html()
		require.NoError(t, err)

		second := p.prune(root, nil)
		assert.Zero(t, second)

		html2, err := root.Html()
		require.NoError(t, err)
		assert.Equal(t, html1, html2)
	})
}
