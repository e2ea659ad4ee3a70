// Package docser extracts the main informational content from rendered HTML
// documents, removing navigational, advertising, and compliance boilerplate.
// It produces a sanitized, link-preserving HTML fragment via a deterministic
// tiered pipeline: framework fingerprinting, semantic location, and heuristic
// scoring, followed by pruning and allow-list sanitization.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bluemonday/).
package docser
