package mock

import "github.com/fwojciec/cratedoc"

var _ cratedoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cratedoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*cratedoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*cratedoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
