package ingester

import "context"

type followerHeightFetcher struct {
	local  LocalHeights
	source NodeSource
	limit  uint64
}

// Fetch returns the heights between the local maximum and the remote tip, capped at limit.
func (f *followerHeightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	remote, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, err
	}

	local, ok, err := f.local.MaxBlockHeight(ctx)
	if err != nil {
		return nil, err
	}

	next := uint64(0)
	if ok {
		if local >= remote {
			return nil, nil
		}
		next = local + 1
	}

	end := remote
	if f.limit > 0 && end-next+1 > f.limit {
		end = next + f.limit - 1
	}

	heights := make([]uint64, 0, end-next+1)
	for h := next; h <= end; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}
