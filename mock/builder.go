package mock

import (
	"context"

	"github.com/fwojciec/cratedoc"
)

var _ cratedoc.Builder = (*Builder)(nil)

// Builder is a mock implementation of cratedoc.Builder.
type Builder struct {
	BuildFn func(ctx context.Context, crate string) (string, error)
	CloseFn func() error
}

func (b *Builder) Build(ctx context.Context, crate string) (string, error) {
	return b.BuildFn(ctx, crate)
}

func (b *Builder) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}
