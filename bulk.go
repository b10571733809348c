package publicip

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ghztomash/public-ip-address/lookup"
)

// DefaultBulkWorkers caps how many targets are resolved at once by
// LookupBulk. Providers are still tried strictly in sequence for each
// individual target.
const DefaultBulkWorkers = 8

// BulkResult is an outcome of one target within a bulk lookup.
type BulkResult struct {
	Target   lookup.Target
	Response *lookup.Response
	Err      error
}

type bulkRequest struct {
	ctx    context.Context
	target lookup.Target
	index  int
}

// LookupBulk resolves many targets through a worker pool and returns
// their results in input order. Per-target failures land in the
// corresponding BulkResult, they do not abort the batch.
func (c *Client) LookupBulk(ctx context.Context, targets []lookup.Target) ([]BulkResult, error) {
	rv := make([]BulkResult, len(targets))

	if len(targets) == 0 {
		return rv, nil
	}

	workers := DefaultBulkWorkers
	if len(targets) < workers {
		workers = len(targets)
	}

	wg := &sync.WaitGroup{}

	pool, err := ants.NewPoolWithFunc(workers, func(args interface{}) {
		params := args.(*bulkRequest)
		defer wg.Done()

		response, err := c.Lookup(params.ctx, params.target)
		rv[params.index] = BulkResult{
			Target:   params.target,
			Response: response,
			Err:      err,
		}
	})
	if err != nil {
		return nil, err
	}

	defer pool.Release()

	for i, target := range targets {
		wg.Add(1)

		request := &bulkRequest{
			ctx:    ctx,
			target: target,
			index:  i,
		}

		if err := pool.Invoke(request); err != nil {
			wg.Done()

			rv[i] = BulkResult{
				Target: target,
				Err:    err,
			}
		}
	}

	wg.Wait()

	return rv, nil
}
