package mock

import "github.com/quanghuy1242/docser"

var _ docser.Converter = (*Converter)(nil)

// Converter is a mock implementation of docser.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
