package token

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/types"
)

const testCustody = "ledger-custody"

func testBridgeConfig(endpoint string) *config.TokenConfig {
	return &config.TokenConfig{
		Endpoint:       endpoint,
		CustodyAccount: testCustody,
		Timeout:        5 * time.Second,
		MaxRetryTimes:  3,
		RetryInterval:  10 * time.Millisecond,
	}
}

func TestBridgeClient_PullAndPush(t *testing.T) {
	ctx := t.Context()

	var requests []transferRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, transferEndpoint, r.URL.Path)

		var treq transferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&treq))
		requests = append(requests, treq)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"transfer_id":"t-1"}`))
	}))
	defer server.Close()

	client := NewBridgeClient(testBridgeConfig(server.URL))

	require.NoError(t, client.Pull(ctx, "alice", 500))
	require.NoError(t, client.Push(ctx, "bob", 300))

	require.Len(t, requests, 2)
	assert.Equal(t, "alice", requests[0].From)
	assert.Equal(t, testCustody, requests[0].To)
	assert.Equal(t, uint64(500), requests[0].Amount)
	assert.Len(t, requests[0].Reference, referenceLength)

	assert.Equal(t, testCustody, requests[1].From)
	assert.Equal(t, "bob", requests[1].To)
	assert.Equal(t, uint64(300), requests[1].Amount)

	// each transfer carries its own idempotency reference
	assert.NotEqual(t, requests[0].Reference, requests[1].Reference)
}

func TestBridgeClient_DeclinedTransferIsFinal(t *testing.T) {
	ctx := t.Context()

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"insufficient balance"}`))
	}))
	defer server.Close()

	client := NewBridgeClient(testBridgeConfig(server.URL))

	err := client.Pull(ctx, "alice", 500)
	require.Error(t, err)
	assert.Equal(t, types.InsufficientFunds, types.CodeOf(err))
	// a decline is not retried, the bridge has given a final answer
	assert.Equal(t, 1, requestCount)
}

func TestBridgeClient_RetriesRateLimit(t *testing.T) {
	ctx := t.Context()

	var references []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var treq transferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&treq))
		references = append(references, treq.Reference)

		if len(references) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"slow down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"transfer_id":"t-2"}`))
	}))
	defer server.Close()

	client := NewBridgeClient(testBridgeConfig(server.URL))

	require.NoError(t, client.Push(ctx, "alice", 100))
	require.Len(t, references, 3)
	// retries reuse the idempotency reference of the original attempt
	assert.Equal(t, references[0], references[1])
	assert.Equal(t, references[0], references[2])
}

func TestBridgeClient_ExhaustsRetries(t *testing.T) {
	ctx := t.Context()

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testBridgeConfig(server.URL)
	cfg.MaxRetryTimes = 2
	client := NewBridgeClient(cfg)

	err := client.Push(ctx, "alice", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, 2, requestCount)
}

func TestBridgeClient_ServerErrorIsInternal(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	client := NewBridgeClient(testBridgeConfig(server.URL))

	err := client.Pull(ctx, "alice", 100)
	require.Error(t, err)
	assert.Equal(t, types.InternalServiceError, types.CodeOf(err))
}

func TestBridgeClient_MalformedBodyOnSuccess(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewBridgeClient(testBridgeConfig(server.URL))

	// a 2xx means the transfer settled regardless of the body
	require.NoError(t, client.Pull(ctx, "alice", 100))
}
