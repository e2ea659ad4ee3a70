package mock

import "github.com/quanghuy1242/docser"

var _ docser.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of docser.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(fragment string, baseURL string) (*docser.SanitizedFragment, error)
}

func (s *Sanitizer) Sanitize(fragment string, baseURL string) (*docser.SanitizedFragment, error) {
	return s.SanitizeFn(fragment, baseURL)
}
