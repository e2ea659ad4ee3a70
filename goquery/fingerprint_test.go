package goquery_test

import (
	"testing"

	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fingerprinter implements docser.FrameworkFingerprinter at compile time.
var _ docser.FrameworkFingerprinter = (*goquery.Fingerprinter)(nil)

func TestFingerprinter_Fingerprint(t *testing.T) {
	t.Parallel()

	t.Run("detects Docusaurus from meta generator", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Docs</title>
<meta name="generator" content="Docusaurus v3.1.0">
</head>
<body>
<main><article class="markdown"><p>Content here.</p></article></main>
</body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		require.True(t, ok)
		assert.Equal(t, docser.FrameworkDocusaurus, profile.Framework)
	})

	t.Run("detects Docusaurus from skip-to-content id", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<a id="__docusaurus_skipToContent_fallback" href="#main">Skip</a>
<main><article class="markdown"><p>Content here.</p></article></main>
</body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		require.True(t, ok)
		assert.Equal(t, docser.FrameworkDocusaurus, profile.Framework)
	})

	t.Run("detects MkDocs Material from data attributes", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>MkDocs</title></head>
<body data-md-color-scheme="default">
<div class="md-main"><div class="md-content__inner"><p>Content here.</p></div></div>
</body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		require.True(t, ok)
		assert.Equal(t, docser.FrameworkMkDocs, profile.Framework)
	})

	t.Run("generator metadata outranks class heuristics", func(t *testing.T) {
		t.Parallel()

		// Docusaurus theme classes present, but the page declares MkDocs.
		html := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="mkdocs-1.6.0"></head>
<body>
<div class="theme-doc-sidebar-container"></div>
<div class="md-main"><div class="md-content__inner"><p>Content here.</p></div></div>
</body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		require.True(t, ok)
		assert.Equal(t, docser.FrameworkMkDocs, profile.Framework)
	})

	t.Run("distinguishes Sphinx themes by container", func(t *testing.T) {
		t.Parallel()

		rtd := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="Sphinx 7.2"></head>
<body>
<nav class="wy-nav-side"></nav>
<div class="wy-nav-content"><div itemprop="articleBody"><p>RTD content.</p></div></div>
</body>
</html>`

		alabaster := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="Sphinx 7.2"></head>
<body>
<div class="sphinxsidebar"></div>
<div class="body"><p>Alabaster content.</p></div>
</body>
</html>`

		f := goquery.NewFingerprinter()

		profile, ok := f.Fingerprint(rtd)
		require.True(t, ok)
		assert.Equal(t, docser.FrameworkSphinxRTD, profile.Framework)

		profile, ok = f.Fingerprint(alabaster)
		require.True(t, ok)
		assert.Equal(t, docser.FrameworkSphinxAlabaster, profile.Framework)
	})

	t.Run("detects news template profile", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"NewsArticle","headline":"A Story"}</script>
</head>
<body>
<div id="site-content"><section data-testid="story-content"><p>Story text.</p></section></div>
</body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		require.True(t, ok)
		assert.Equal(t, docser.FrameworkNYTimes, profile.Framework)
	})

	t.Run("signature without container does not match", func(t *testing.T) {
		t.Parallel()

		// Docusaurus marker but no main wrapper anywhere.
		html := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="Docusaurus"></head>
<body><div><p>Text.</p></div></body>
</html>`

		f := goquery.NewFingerprinter()
		_, ok := f.Fingerprint(html)

		assert.False(t, ok)
	})

	t.Run("returns undetermined for plain markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Plain</title></head>
<body><div><p>Just a page.</p></div></body>
</html>`

		f := goquery.NewFingerprinter()
		profile, ok := f.Fingerprint(html)

		assert.False(t, ok)
		assert.Nil(t, profile)
	})
}
