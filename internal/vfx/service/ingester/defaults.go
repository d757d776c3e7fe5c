package ingester

import "time"

const (
	defaultFollowerWorkerCount = 1

	followerHeightLimit uint64 = 500
	backfillChunkSize   uint64 = 1000

	sleepDuration     = 5 * time.Second
	longSleepDuration = 30 * time.Second

	masterNodeCacheSize = 1000
	masterNodeCacheTTL  = time.Minute
)
