package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.FetchStrategy = (*FetchStrategy)(nil)

// FetchStrategy is a mock implementation of newsclip.FetchStrategy.
type FetchStrategy struct {
	NameFn    func() newsclip.Method
	AttemptFn func(ctx context.Context, url string) (*newsclip.SourceDocument, error)
	CloseFn   func() error
}

func (s *FetchStrategy) Name() newsclip.Method {
	return s.NameFn()
}

func (s *FetchStrategy) Attempt(ctx context.Context, url string) (*newsclip.SourceDocument, error) {
	return s.AttemptFn(ctx, url)
}

func (s *FetchStrategy) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
