package node

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// API is the node surface used by the ingester and maintenance jobs.
	API interface {
		GetBlock(ctx context.Context, height uint64) (*Block, error)
		LatestHeight(ctx context.Context) (uint64, error)
		GetMasterNodes(ctx context.Context) ([]MasterNode, error)
		GetSmartContract(ctx context.Context, id string) (json.RawMessage, error)
	}

	// Metrics records metrics for node calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps an API with metrics instrumentation.
type ObservedClient struct {
	api     API
	metrics Metrics
}

// NewObservedClient constructs an instrumented client.
func NewObservedClient(api API, metrics Metrics) *ObservedClient {
	return &ObservedClient{api: api, metrics: metrics}
}

// GetBlock returns the block at height.
func (c *ObservedClient) GetBlock(ctx context.Context, height uint64) (b *Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block", err, started)
	}()
	return c.api.GetBlock(ctx, height)
}

// LatestHeight returns the remote chain height.
func (c *ObservedClient) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_height", err, started)
	}()
	return c.api.LatestHeight(ctx)
}

// GetMasterNodes lists the master nodes known to the node.
func (c *ObservedClient) GetMasterNodes(ctx context.Context) (nodes []MasterNode, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_master_nodes", err, started)
	}()
	return c.api.GetMasterNodes(ctx)
}

// GetSmartContract returns the raw contract document of id.
func (c *ObservedClient) GetSmartContract(ctx context.Context, id string) (doc json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_smart_contract", err, started)
	}()
	return c.api.GetSmartContract(ctx, id)
}
