package policy

import "github.com/quanghuy1242/docser"

// frameworks is the framework profile table. Detection markers follow the
// published markup of each generator: meta generator tags where available,
// otherwise ids, data attributes, or theme class prefixes stable across
// versions. Documentation generators come first, news templates last.
var frameworks = []docser.FrameworkProfile{
	{
		Framework: docser.FrameworkDocusaurus,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "docusaurus"},
			{Kind: docser.SignatureSelector, Pattern: "#__docusaurus_skipToContent_fallback"},
			{Kind: docser.SignatureClass, Pattern: ".theme-doc-sidebar-container"},
		},
		Container:        "main",
		ContentSelectors: []string{"article.markdown", "main .markdown", "main article"},
		Exclusions: []string{
			".pagination-nav", ".theme-doc-toc-desktop", ".theme-doc-sidebar-container",
			".hash-link", ".theme-doc-breadcrumbs", ".theme-edit-this-page",
		},
		Priority: 10,
	},
	{
		Framework: docser.FrameworkMkDocs,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "mkdocs"},
			{Kind: docser.SignatureSelector, Pattern: "[data-md-color-scheme]"},
			{Kind: docser.SignatureSelector, Pattern: "[data-md-component]"},
			{Kind: docser.SignatureClass, Pattern: ".md-nav--primary"},
		},
		Container:        ".md-main",
		ContentSelectors: []string{".md-content__inner", ".md-content"},
		Exclusions: []string{
			".md-sidebar", ".md-footer", ".md-header", ".md-clipboard", ".md-source-file",
		},
		Priority: 10,
	},
	{
		// ReadTheDocs theme. Must outrank the Alabaster profile: both carry
		// a "sphinx" generator tag but only RTD pages have the wy- chrome.
		Framework: docser.FrameworkSphinxRTD,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "sphinx"},
			{Kind: docser.SignatureSelector, Pattern: ".wy-nav-side"},
			{Kind: docser.SignatureClass, Pattern: ".wy-menu-vertical"},
		},
		Container:        ".wy-nav-content",
		ContentSelectors: []string{"[itemprop='articleBody']", ".wy-nav-content .document"},
		Exclusions:       []string{".wy-nav-side", ".rst-footer-buttons", "a.headerlink"},
		Priority:         20,
	},
	{
		Framework: docser.FrameworkSphinxAlabaster,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "sphinx"},
			{Kind: docser.SignatureClass, Pattern: ".sphinxsidebar"},
			{Kind: docser.SignatureClass, Pattern: ".toctree-wrapper"},
		},
		Container:        "div.body",
		ContentSelectors: []string{"div.body"},
		Exclusions:       []string{".sphinxsidebar", "a.headerlink", ".related"},
		Priority:         30,
	},
	{
		Framework: docser.FrameworkVitePress,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "vitepress"},
			{Kind: docser.SignatureSelector, Pattern: "#VPContent"},
			{Kind: docser.SignatureClass, Pattern: ".VPDoc"},
		},
		Container:        "#VPContent",
		ContentSelectors: []string{".vp-doc", ".VPDoc main"},
		Exclusions:       []string{".VPDocAsideOutline", ".VPSidebar", ".VPNav", ".VPDocFooter"},
		Priority:         40,
	},
	{
		Framework: docser.FrameworkVuePress,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "vuepress"},
			{Kind: docser.SignatureClass, Pattern: ".theme-default-content"},
		},
		Container:        "main",
		ContentSelectors: []string{".theme-default-content", "main .content"},
		Exclusions:       []string{".sidebar", ".navbar", ".page-nav", ".page-edit"},
		Priority:         50,
	},
	{
		Framework: docser.FrameworkGitBookLegacy,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "gitbook"},
			{Kind: docser.SignatureClass, Pattern: ".book-summary"},
		},
		Container:        ".page-inner",
		ContentSelectors: []string{".page-inner section", ".page-inner"},
		Exclusions:       []string{".book-summary", ".book-header"},
		Priority:         60,
	},
	{
		// GitBook cloud. No generator tag; relies on testids and the
		// distinctive theme classes on the html element.
		Framework: docser.FrameworkGitBook,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureSelector, Pattern: "[data-testid='space.sidebar']"},
			{Kind: docser.SignatureSelector, Pattern: "[data-testid='page.desktopTableOfContents']"},
			{Kind: docser.SignatureClass, Pattern: "html[class*='theme-clean']"},
		},
		Container:        "main",
		ContentSelectors: []string{"main"},
		Exclusions:       []string{"nav", "div[class*='sidebar']"},
		Priority:         70,
	},
	{
		Framework: docser.FrameworkNextra,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureClass, Pattern: ".nextra-navbar"},
			{Kind: docser.SignatureClass, Pattern: ".nextra-sidebar-container"},
			{Kind: docser.SignatureClass, Pattern: ".nextra-toc"},
		},
		Container:        "main",
		ContentSelectors: []string{"main"},
		Exclusions:       []string{"nav", "footer", ".nextra-sidebar-container", ".nextra-toc"},
		Priority:         80,
	},
	{
		Framework: docser.FrameworkHugo,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureGenerator, Pattern: "hugo"},
		},
		Container:        "main",
		ContentSelectors: []string{".post-content", ".content", "main article"},
		Exclusions:       []string{"header", "footer", ".menu"},
		Priority:         90,
	},
	{
		Framework: docser.FrameworkNYTimes,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureSelector, Pattern: "#site-content"},
			{Kind: docser.SignatureSchema, Pattern: "NewsArticle"},
		},
		Container:        "#site-content",
		ContentSelectors: []string{"section[data-testid='story-content']", "section[name='articleBody']"},
		Exclusions: []string{
			"#site-content-skip", "[data-testid='related-links']", "[data-testid='newsletter-signup']",
		},
		Priority: 100,
	},
	{
		Framework: docser.FrameworkBBC,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureSelector, Pattern: "[data-component='text-block']"},
		},
		Container:        "[role='main']",
		ContentSelectors: []string{"article", "[role='main']"},
		Exclusions:       []string{"[role='complementary']"},
		Priority:         110,
	},
	{
		Framework: docser.FrameworkCNN,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureClass, Pattern: ".article__content"},
		},
		Container:        ".article__content",
		ContentSelectors: []string{".article__content"},
		Exclusions:       []string{".el-spoke-story", ".zn-body__read-more", ".ad-container"},
		Priority:         120,
	},
	{
		Framework: docser.FrameworkReuters,
		Signatures: []docser.Signature{
			{Kind: docser.SignatureSelector, Pattern: "[class*='article-body__content']"},
		},
		Container:        "main",
		ContentSelectors: []string{"[class*='article-body__content']"},
		Exclusions:       []string{"[data-testid='sidebar']", "nav", ".read-next-container"},
		Priority:         130,
	},
}

// Frameworks returns the framework profile table, sorted by priority.
// The returned slice is shared; callers must not modify it.
func Frameworks() []docser.FrameworkProfile {
	return frameworks
}
