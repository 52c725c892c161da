package collision

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Emilinya/bounce/internal/core"
)

// Query is one independent check for CheckAll.
type Query struct {
	Op        Op
	Direction core.Vec2 // ignored for OpBoundary
	Self      core.Rect
	Other     core.Rect
}

// BoundaryQuery builds a boundary containment query.
func BoundaryQuery(box, boundary core.Rect) Query {
	return Query{Op: OpBoundary, Self: box, Other: boundary}
}

// RectQuery builds an inter-box query.
func RectQuery(dir core.Vec2, self, other core.Rect) Query {
	return Query{Op: OpRect, Direction: dir, Self: self, Other: other}
}

// CheckAll evaluates independent queries in parallel. The returned outcomes
// are index-aligned with queries. c may be nil, in which case anomalies are
// classified but not reported. If ctx is cancelled before every query has
// run, CheckAll returns ctx's error.
func CheckAll(ctx context.Context, c *Checker, queries []Query) ([]Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Outcome, len(queries))
	if len(queries) == 0 {
		return out, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(queries) {
		workers = len(queries)
	}
	chunk := (len(queries) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(queries); lo += chunk {
		hi := min(lo+chunk, len(queries))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = c.Evaluate(queries[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
