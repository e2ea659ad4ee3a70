package mock

import "github.com/quanghuy1242/docser"

var _ docser.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docser.Extractor.
type Extractor struct {
	ExtractFn func(html string, meta docser.Meta) (*docser.ExtractionResult, error)
}

func (e *Extractor) Extract(html string, meta docser.Meta) (*docser.ExtractionResult, error) {
	return e.ExtractFn(html, meta)
}
