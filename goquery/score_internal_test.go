package goquery

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseBody(t *testing.T, rawHTML string) *html.Node {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(rawHTML))
	require.NoError(t, err)
	body := doc.Find("body").First()
	require.NotEmpty(t, body.Nodes)
	return body.Nodes[0]
}

func newTestScorer() *scorer {
	set, _ := policy.Stopwords("en")
	return &scorer{cfg: docser.DefaultConfig(), stopwords: set}
}

func TestScorer_PrefersProseOverLinkLists(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body>
<div class="wrapper">
<div class="x1">
<p>The quick brown fox jumps over the lazy dog, again and again, until the veterinarian arrives with a clipboard and a theory about foxes.</p>
<p>It was not the first time this had happened, and it would not be the last, because the dog had long since stopped caring about foxes entirely.</p>
<p>Researchers who study these encounters say the fox is almost always the instigator, and that the dog simply has better things to do with an afternoon.</p>
</div>
<div class="x2">
<p><a href="/a">One</a> <a href="/b">Two</a> <a href="/c">Three</a></p>
</div>
</div>
</body></html>`)

	s := newTestScorer()
	entry, ok := s.score(body)

	require.True(t, ok)
	text := normalizeSpace(collectText(entry.node))
	assert.Contains(t, text, "quick brown fox")
	assert.NotContains(t, text, "Three", "link list must not be inside the chosen root")
	assert.Less(t, entry.linkDensity, 0.2)
}

func TestScorer_RanksByAggregateNotDensityScaledScore(t *testing.T) {
	t.Parallel()

	// The container with the larger prose volume wins even though it also
	// carries a moderate share of link text, as long as its link density
	// stays under the rejection gate. Density must not scale the ranking;
	// it only gates and tie-breaks.
	body := parseBody(t, `<html><body>
<div class="wrapper">
<div class="aa">
<p>The inquiry opened with a procedural dispute, dragged through two recesses, and closed with a promise that the written findings would follow within a month.</p>
<p>Witnesses described the same afternoon in incompatible ways, and the panel spent most of its time reconciling timelines rather than assigning blame.</p>
<p>By the final session the room had thinned to lawyers, stenographers, and one persistent local reporter who had attended every hearing since the first.</p>
<p><a href="/h/1">Full transcript of the first hearing including the procedural dispute and both recesses as recorded</a> <a href="/h/2">Full transcript of the second hearing with the reconciled witness timelines and all exhibits</a> <a href="/h/3">Full transcript of the closing session together with the panel's verbal summary of findings</a></p>
</div>
<div class="bb">
<p>A shorter companion piece, written after the hearings ended, summarizes the panel's mandate, its composition, and the narrow question it was asked.</p>
<p>It runs to a few paragraphs, carries no citations, and exists mostly so readers can skip the transcripts with a clear conscience.</p>
</div>
</div>
</body></html>`)

	s := newTestScorer()
	entry, ok := s.score(body)

	require.True(t, ok)
	assert.Equal(t, "aa", getAttr(entry.node, "class"))
	assert.Greater(t, entry.linkDensity, 0.2)
	assert.LessOrEqual(t, entry.linkDensity, docser.DefaultConfig().LinkDensityMax)
}

func TestScorer_TieBreaksByDocumentOrder(t *testing.T) {
	t.Parallel()

	// Two identical content blocks. Their shared wrapper accumulates the
	// same aggregate as either block (half of each), so the tie-break on
	// document order selects the wrapper, which appears first.
	para := `<p>A perfectly ordinary paragraph, with commas, some length, and no hyperlinks to speak of anywhere inside it at all.</p>`
	body := parseBody(t, `<html><body>
<div class="x0">
<div class="x1">`+para+`</div>
<div class="x2">`+para+`</div>
</div>
</body></html>`)

	s := newTestScorer()
	entry, ok := s.score(body)

	require.True(t, ok)
	assert.Equal(t, "x0", getAttr(entry.node, "class"))
}

func TestScorer_NoContent(t *testing.T) {
	t.Parallel()

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		s := newTestScorer()
		_, ok := s.score(parseBody(t, `<html><body></body></html>`))
		assert.False(t, ok)
	})

	t.Run("only short link fragments", func(t *testing.T) {
		t.Parallel()

		s := newTestScorer()
		_, ok := s.score(parseBody(t, `<html><body>
<div><p><a href="/a">Home</a></p><p><a href="/b">About</a></p></div>
</body></html>`))
		assert.False(t, ok)
	})

	t.Run("multi-byte text below the length floor", func(t *testing.T) {
		t.Parallel()

		// Nine glyphs; the byte count alone would clear the paragraph gate.
		s := newTestScorer()
		_, ok := s.score(parseBody(t, `<html><body>
<div><p>これは短い文です。</p></div>
</body></html>`))
		assert.False(t, ok)
	})
}

func TestScorer_NegativeClassPenalty(t *testing.T) {
	t.Parallel()

	// Same prose volume, but one container is branded as related content.
	para := `<p>Substantial enough text to score, with commas, clauses, and the general shape of prose a scorer should reward handsomely.</p>`
	body := parseBody(t, `<html><body>
<div class="wrapper">
<div class="x1">`+para+para+`</div>
<div class="related">`+para+`</div>
</div>
</body></html>`)

	s := newTestScorer()
	entry, ok := s.score(body)

	require.True(t, ok)
	assert.NotEqual(t, "related", getAttr(entry.node, "class"))
}

func TestLinkDensity(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><div id="d">half prose <a href="/x">half links</a></div></body></html>`)
	div := body.FirstChild

	density := linkDensity(div)
	assert.InDelta(t, 0.5, density, 0.1)
}

func TestStopwordDensity(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	prose := s.stopwordDensity("the cat sat on the mat and it was happy")
	chrome := s.stopwordDensity("Home Products Careers Contact Login Pricing")

	assert.Greater(t, prose, 0.3)
	assert.Less(t, chrome, 0.1)
	assert.Zero(t, s.stopwordDensity(""))
}

func TestBaseScore(t *testing.T) {
	t.Parallel()

	short := baseScore("no commas here")
	long := baseScore(strings.Repeat("word, ", 60))

	assert.Greater(t, long, short)

	// 250 glyphs, 750 bytes: the length bonus counts runes.
	cjk := baseScore(strings.Repeat("字", 250))
	assert.InDelta(t, 3.0, cjk, 0.001)
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	t.Run("declared language wins", func(t *testing.T) {
		t.Parallel()

		_, code := detectLanguage("de", "fr", "this text is clearly english but the caller knows better")
		assert.Equal(t, "de", code)
	})

	t.Run("document lang attribute is second", func(t *testing.T) {
		t.Parallel()

		_, code := detectLanguage("", "fr-FR", "")
		assert.Equal(t, "fr", code)
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()

		_, code := detectLanguage("", "", "")
		assert.Equal(t, policy.DefaultLanguage, code)
	})
}
