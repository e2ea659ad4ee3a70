package docser

// Tier identifies which discovery tier produced an extraction.
type Tier string

// Discovery tiers, in the order the pipeline attempts them.
const (
	TierFramework Tier = "framework"
	TierSemantic  Tier = "semantic"
	TierHeuristic Tier = "heuristic"
)

// Meta carries optional caller-supplied page metadata.
type Meta struct {
	// SourceURL is used to resolve relative hyperlink and image references.
	// When empty, relative references are preserved as-is.
	SourceURL string

	// Language is the declared content language (BCP 47). When empty the
	// document's lang attribute is consulted, then automatic detection.
	Language string
}

// ExtractionResult holds the extracted main content of an HTML page.
type ExtractionResult struct {
	// Fragment is the sanitized main content as an HTML fragment.
	// Boilerplate (nav, footer, sidebar, ads) has been removed and only
	// allow-listed tags, attributes, and URL schemes survive.
	Fragment string

	// Title is the page title extracted from metadata.
	Title string

	// Tier records which discovery tier located the content root.
	Tier Tier

	// Framework is the matched publishing framework, when Tier is
	// TierFramework. Empty otherwise.
	Framework Framework

	// Confidence estimates extraction quality in [0, 1]. Low confidence is
	// a quality signal for the caller, never an error.
	Confidence float64

	// Language is the stopword language the scorer settled on (ISO code).
	Language string

	// RemovedSubtrees counts subtrees excised by the pruner and sanitizer.
	RemovedSubtrees int

	// Warnings lists non-fatal anomalies observed during extraction.
	Warnings []string

	// ContentHash is an xxhash digest of Fragment, usable for change
	// detection by the calling layer.
	ContentHash uint64
}

// Extractor extracts main content from rendered HTML pages.
//
// Implementations must be safe for concurrent use: each call owns its own
// transient state and the input is never retained. Timeouts are the
// caller's responsibility; extraction is synchronous and CPU-bound.
type Extractor interface {
	// Extract processes rendered HTML and returns the main content.
	// Returns EINVALID for empty or non-document input and ENOTFOUND when
	// every discovery tier is exhausted without locating content.
	Extract(html string, meta Meta) (*ExtractionResult, error)
}

// SanitizedFragment is the output of a Sanitizer pass.
type SanitizedFragment struct {
	// HTML is the serialized allow-list-filtered fragment.
	HTML string

	// DroppedNodes counts nodes removed together with their content.
	DroppedNodes int

	// Warnings lists sanitization anomalies (e.g. disallowed constructs
	// that reached the output stage and were dropped fail-safe).
	Warnings []string
}

// Sanitizer filters an HTML fragment down to allow-listed tags, attributes,
// and URL schemes, preserving hyperlinks with a nofollow relation.
type Sanitizer interface {
	// Sanitize filters the fragment. The baseURL, when non-empty, is used
	// to resolve relative hyperlink and image references.
	Sanitize(fragment string, baseURL string) (*SanitizedFragment, error)
}

// Config holds the tunable extraction thresholds.
//
// The defaults come from the boilerplate-removal literature; they are
// configuration, not invariants.
type Config struct {
	// MinParagraphLength is the minimum text length for a paragraph to
	// receive a length bonus during scoring.
	MinParagraphLength int

	// MinSemanticLength is the minimum text length for a semantic
	// candidate (articleBody, role=main, etc.) to be accepted.
	MinSemanticLength int

	// LinkDensityMax is the link density above which a node is treated as
	// navigation-dominated.
	LinkDensityMax float64

	// PropagationDecay is the per-level weight decay applied when a
	// paragraph score propagates to ancestors beyond the parent.
	PropagationDecay float64

	// PropagationDepth caps how many ancestor levels a paragraph score
	// propagates to.
	PropagationDepth int

	// MaxTraversalDepth bounds DOM recursion on pathological input.
	MaxTraversalDepth int

	// KeepClassID retains class and id attributes in sanitized output.
	KeepClassID bool
}

// DefaultConfig returns the default extraction thresholds.
func DefaultConfig() Config {
	return Config{
		MinParagraphLength: 25,
		MinSemanticLength:  140,
		LinkDensityMax:     0.5,
		PropagationDecay:   0.5,
		PropagationDepth:   5,
		MaxTraversalDepth:  256,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.MinParagraphLength < 0 {
		return Errorf(EINVALID, "min paragraph length must not be negative")
	}
	if c.MinSemanticLength < 0 {
		return Errorf(EINVALID, "min semantic length must not be negative")
	}
	if c.LinkDensityMax <= 0 || c.LinkDensityMax > 1 {
		return Errorf(EINVALID, "link density threshold must be in (0, 1]")
	}
	if c.PropagationDecay <= 0 || c.PropagationDecay > 1 {
		return Errorf(EINVALID, "propagation decay must be in (0, 1]")
	}
	if c.PropagationDepth < 1 {
		return Errorf(EINVALID, "propagation depth must be at least 1")
	}
	if c.MaxTraversalDepth < 1 {
		return Errorf(EINVALID, "max traversal depth must be at least 1")
	}
	return nil
}
