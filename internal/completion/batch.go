package completion

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildAll renders a batch of candidates on up to workers goroutines
// (GOMAXPROCS when workers <= 0). Records come back in input order. The only
// error is the context's, in which case no records are returned.
func BuildAll[S Source](ctx context.Context, b *Builder, srcs []S, workers int) ([]Record, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]Record, len(srcs))
	if len(srcs) == 0 {
		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range srcs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = b.Build(srcs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
