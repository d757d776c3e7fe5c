package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const missingBlockHeightsQuery = `
WITH toUInt64(?) AS mx
SELECT number AS height
FROM numbers(mx + 1) AS m
LEFT ANTI JOIN (
	SELECT height
	FROM vfx_blocks
	WHERE network = ? AND height <= mx
) AS b ON b.height = m.number
WHERE m.number <= mx
ORDER BY height
LIMIT ?`

// MissingBlockHeights lists up to limit heights in [0, maxHeight] absent from the
// archive, lowest first.
func (r *Repository) MissingBlockHeights(ctx context.Context, maxHeight, limit uint64) ([]uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("missing_block_heights", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, missingBlockHeightsQuery, maxHeight, string(r.network), limit)
	if err != nil {
		return nil, fmt.Errorf("query missing block heights: %w", err)
	}
	defer rows.Close()

	var heights []uint64
	for rows.Next() {
		var height uint64
		if err = rows.Scan(&height); err != nil {
			return nil, fmt.Errorf("scan missing block height: %w", err)
		}
		heights = append(heights, height)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing block heights: %w", err)
	}

	return heights, nil
}
