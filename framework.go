package docser

// Framework identifies a publishing framework or site template.
type Framework string

// Known frameworks, documentation generators first, then news templates.
const (
	FrameworkUnknown         Framework = ""
	FrameworkDocusaurus      Framework = "docusaurus"
	FrameworkMkDocs          Framework = "mkdocs"
	FrameworkSphinxRTD       Framework = "sphinx-rtd"
	FrameworkSphinxAlabaster Framework = "sphinx-alabaster"
	FrameworkGitBook         Framework = "gitbook"
	FrameworkGitBookLegacy   Framework = "gitbook-legacy"
	FrameworkVitePress       Framework = "vitepress"
	FrameworkVuePress        Framework = "vuepress"
	FrameworkHugo            Framework = "hugo"
	FrameworkNextra          Framework = "nextra"
	FrameworkNYTimes         Framework = "nytimes"
	FrameworkBBC             Framework = "bbc"
	FrameworkCNN             Framework = "cnn"
	FrameworkReuters         Framework = "reuters"
)

// SignatureKind classifies a framework detection predicate. Kinds have an
// intrinsic reliability order: explicit generator metadata outranks
// id/attribute matches, which outrank class-prefix heuristics, which
// outrank structured-data type matches.
type SignatureKind int

// Signature kinds in decreasing reliability order.
const (
	SignatureGenerator SignatureKind = iota
	SignatureSelector
	SignatureClass
	SignatureSchema
)

// Signature is a single framework detection predicate.
type Signature struct {
	// Kind decides how Pattern is interpreted and how reliable a match is.
	Kind SignatureKind

	// Pattern is a lowercase substring of the meta generator content
	// (SignatureGenerator), a CSS selector (SignatureSelector and
	// SignatureClass), or a schema.org type name (SignatureSchema).
	Pattern string
}

// FrameworkProfile describes how to detect a framework and where it keeps
// its main content. Profiles are immutable once loaded; new frameworks are
// added by data registration, not logic changes.
type FrameworkProfile struct {
	// Framework is the profile's identifier.
	Framework Framework

	// Signatures are the detection predicates. Any single match, combined
	// with the container being present, identifies the framework.
	Signatures []Signature

	// Container is the selector for the framework's main content wrapper.
	// It must be present for the profile to match at all.
	Container string

	// ContentSelectors are tried in order against the document; the first
	// selector yielding substantial text provides the content root.
	ContentSelectors []string

	// Exclusions are framework-specific boilerplate selectors pruned from
	// the chosen root in addition to the global exclusion table.
	Exclusions []string

	// Priority orders profiles within a signature kind; lower sorts first.
	Priority int
}

// FrameworkFingerprinter matches a document against known framework
// signatures.
type FrameworkFingerprinter interface {
	// Fingerprint returns the first matching profile in priority order.
	// A nil profile with ok=false means the framework is undetermined;
	// this is an expected condition, not an error.
	Fingerprint(html string) (profile *FrameworkProfile, ok bool)
}
