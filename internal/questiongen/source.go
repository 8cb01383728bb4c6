package questiongen

import "context"

// Source supplies questions for drill blocks.
type Source interface {
	// Next returns the next question for the request. A Result with a
	// nil Question means the source has no more content for the block.
	Next(ctx context.Context, req Request) (*Result, error)
}
