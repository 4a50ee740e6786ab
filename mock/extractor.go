package mock

import "github.com/fwojciec/omzthemes"

var _ omzthemes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of omzthemes.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*omzthemes.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*omzthemes.ExtractResult, error) {
	return e.ExtractFn(html)
}
