package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultContractAttempts = 5
	defaultContractDelay    = 5 * time.Second
)

var (
	// ErrNotFound is returned when the node answers with an empty or null document.
	ErrNotFound = errors.New("node: not found")
	// ErrUnexpectedStatus is wrapped by every non-200 response.
	ErrUnexpectedStatus = errors.New("node: unexpected status")
)

// Config configures a Client.
type Config struct {
	BaseURL         string
	ContractBaseURL string
	Timeout         time.Duration
	// RequestsPerSecond caps outgoing requests. Zero disables pacing.
	RequestsPerSecond int
}

// Client is the JSON/HTTP client of the chain node.
type Client struct {
	base     *url.URL
	contract *url.URL
	http     *http.Client
	limiter  ratelimit.Limiter
	logger   *zap.Logger

	contractAttempts int
	contractDelay    time.Duration
	sleep            func(context.Context, time.Duration) error
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("node base url is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse node base url: %w", err)
	}

	contract := base
	if cfg.ContractBaseURL != "" {
		if contract, err = url.Parse(cfg.ContractBaseURL); err != nil {
			return nil, fmt.Errorf("parse contract base url: %w", err)
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		base:             base,
		contract:         contract,
		http:             &http.Client{Timeout: timeout},
		limiter:          limiter,
		logger:           logger.Named("node_client"),
		contractAttempts: defaultContractAttempts,
		contractDelay:    defaultContractDelay,
		sleep:            clock.SleepWithContext,
	}, nil
}

// GetBlock fetches the block at height. ErrNotFound means the node does not have it yet.
// A body that does not decode as a block counts as not found too; the node answers
// that way for heights it is still crafting.
func (c *Client) GetBlock(ctx context.Context, height uint64) (*Block, error) {
	body, err := c.get(ctx, c.base, "api/V1/SendBlock/"+strconv.FormatUint(height, 10))
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}

	var b Block
	if err := json.Unmarshal(body, &b); err != nil {
		c.logger.Warn("block body not decodable", zap.Uint64("height", height), zap.Error(err))
		return nil, fmt.Errorf("decode block %d: %w", height, ErrNotFound)
	}
	b.Height = height
	return &b, nil
}

// LatestHeight returns the chain height reported by the wallet info endpoint.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	body, err := c.get(ctx, c.base, "api/V1/GetWalletInfo")
	if err != nil {
		return 0, fmt.Errorf("get wallet info: %w", err)
	}

	var infos []walletInfo
	if err := json.Unmarshal(body, &infos); err != nil {
		return 0, fmt.Errorf("decode wallet info: %w", err)
	}
	if len(infos) == 0 {
		return 0, fmt.Errorf("get wallet info: %w", ErrNotFound)
	}
	return infos[0].BlockHeight, nil
}

// GetMasterNodes lists the master nodes the node has heard from.
func (c *Client) GetMasterNodes(ctx context.Context) ([]MasterNode, error) {
	body, err := c.get(ctx, c.base, "api/V1/GetMasternodesSent")
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get master nodes: %w", err)
	}

	var nodes []MasterNode
	if err := json.Unmarshal(body, &nodes); err != nil {
		return nil, fmt.Errorf("decode master nodes: %w", err)
	}
	return nodes, nil
}

// GetSmartContract returns the raw contract document of id. Transport and decoding
// failures are retried a bounded number of times; a null document is not.
func (c *Client) GetSmartContract(ctx context.Context, id string) (json.RawMessage, error) {
	path := "scapi/scv1/GetSmartContractData/" + id + "/"

	var lastErr error
	for attempt := 1; attempt <= c.contractAttempts; attempt++ {
		body, err := c.get(ctx, c.contract, path)
		if err == nil && !json.Valid(body) {
			err = errors.New("invalid json document")
		}
		switch {
		case err == nil:
			return json.RawMessage(body), nil
		case errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("get smart contract %s: %w", id, err)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		}

		lastErr = err
		c.logger.Warn("smart contract fetch failed",
			zap.String("contract", id), zap.Int("attempt", attempt), zap.Error(err))
		if attempt == c.contractAttempts {
			break
		}
		if err := c.sleep(ctx, c.contractDelay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("get smart contract %s after %d attempts: %w", id, c.contractAttempts, lastErr)
}

func (c *Client) get(ctx context.Context, base *url.URL, path string) ([]byte, error) {
	c.limiter.Take()

	u := base.JoinPath(path)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, ErrNotFound
	}
	return body, nil
}
