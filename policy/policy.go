// Package policy holds the process-wide, read-only extraction policy data:
// framework profiles, boilerplate exclusion selectors, class/id score
// patterns, per-language stopword sets, and the sanitizer allow-lists.
//
// Everything here is loaded once at init and never mutated afterward, so it
// is safe to read from any number of concurrent extractions.
package policy
