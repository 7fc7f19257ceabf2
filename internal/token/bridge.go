package token

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/types"
	"github.com/stakeworks/staking-ledger/pkg"
)

const (
	transferEndpoint = "/v1/transfers"
	referenceLength  = 16
)

// BridgeClient talks to the token transfer bridge over HTTP. A transfer
// either settles fully (2xx) or not at all; the bridge guarantees there is
// no partial movement behind a non-2xx response.
type BridgeClient struct {
	httpClient *http.Client
	cfg        *config.TokenConfig
	// custody is the bridge account holding staked principal and the
	// owner-funded reward pool.
	custody string
}

func NewBridgeClient(cfg *config.TokenConfig) *BridgeClient {
	return &BridgeClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		custody:    cfg.CustodyAccount,
	}
}

func (c *BridgeClient) Pull(ctx context.Context, from string, amount uint64) error {
	return c.transfer(ctx, from, c.custody, amount)
}

func (c *BridgeClient) Push(ctx context.Context, to string, amount uint64) error {
	return c.transfer(ctx, c.custody, to, amount)
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	// Reference is a client-generated idempotency key. Retries of the same
	// transfer reuse it, so a request that timed out after settling is not
	// applied twice.
	Reference string `json:"reference"`
}

type transferResponse struct {
	TransferID string `json:"transfer_id"`
	Message    string `json:"message"`
}

func (c *BridgeClient) transfer(ctx context.Context, from, to string, amount uint64) error {
	treq := &transferRequest{
		From:      from,
		To:        to,
		Amount:    amount,
		Reference: pkg.RandString(referenceLength),
	}
	call := func() (*transferResponse, error) {
		return c.sendTransfer(ctx, treq)
	}

	resp, err := transferWithRetry(ctx, call, c.cfg)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Debug().
		Str("from", from).
		Str("to", to).
		Uint64("amount", amount).
		Str("transfer_id", resp.TransferID).
		Msg("Transfer settled")

	return nil
}

func (c *BridgeClient) sendTransfer(ctx context.Context, treq *transferRequest) (*transferResponse, error) {
	body, err := json.Marshal(treq)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(c.cfg.Endpoint, "/") + transferEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transfer request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var tresp transferResponse
	if len(raw) > 0 {
		// a malformed body on a 2xx is still a settled transfer
		_ = json.Unmarshal(raw, &tresp)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &tresp, nil
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusConflict:
		return nil, types.NewInsufficientFundsError(
			fmt.Sprintf("bridge declined transfer: %s", tresp.Message),
		)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("bridge rate limit exceeded: %s", tresp.Message)
	default:
		return nil, types.NewInternalServiceError(
			fmt.Errorf("bridge returned status %d: %s", resp.StatusCode, tresp.Message),
		)
	}
}

func transferWithRetry(
	ctx context.Context,
	call retry.RetryableFuncWithData[*transferResponse],
	cfg *config.TokenConfig,
) (*transferResponse, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(uint(cfg.MaxRetryTimes)),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// a declined transfer is final; only rate limiting is worth retrying,
			// the bridge has not moved value in either case
			return err != nil && strings.Contains(err.Error(), "rate limit exceeded")
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", uint(cfg.MaxRetryTimes)).
				Err(err).
				Msg("bridge rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		return nil, err
	}
	return result, nil
}
