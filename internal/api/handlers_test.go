package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
	"github.com/stakeworks/staking-ledger/internal/services"
	"github.com/stakeworks/staking-ledger/internal/types"
	"github.com/stakeworks/staking-ledger/tests/mocks"
)

const (
	testOwner   = "owner-account"
	initialRate = uint64(100)
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type apiFixture struct {
	handler     http.Handler
	transferrer *mocks.Transferrer
	db          *mocks.DbInterface
	events      *mocks.EventPublisher
	clock       *fakeClock
}

func newApiFixture(t *testing.T) *apiFixture {
	metrics.Init(9998)

	transferrer := mocks.NewTransferrer(t)
	dbClient := mocks.NewDbInterface(t)
	events := mocks.NewEventPublisher(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}

	core := ledger.New(ledger.Params{
		Owner:          testOwner,
		InitialRateBps: initialRate,
	}, transferrer, clock)
	svc := services.NewService(nil, ledger.NewGuard(core), dbClient, events)

	server := New(&config.ApiConfig{
		Host:         "127.0.0.1",
		Port:         8090,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}, svc)

	return &apiFixture{
		handler:     server.srv.Handler,
		transferrer: transferrer,
		db:          dbClient,
		events:      events,
		clock:       clock,
	}
}

// allowMirrors stubs out the best-effort persistence and eventing calls a
// successful mutating operation triggers.
func (f *apiFixture) allowMirrors() {
	f.db.On("UpsertStakeRecord", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.db.On("UpsertLedgerState", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.db.On("InsertLedgerEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.events.On("PushLedgerEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealthcheck(t *testing.T) {
	f := newApiFixture(t)
	rec := f.do(t, http.MethodGet, "/healthcheck", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStakeEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newApiFixture(t)
		f.allowMirrors()
		f.transferrer.On("Pull", mock.Anything, "alice", uint64(10000)).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 10000}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp stakeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "alice", resp.Account)
		assert.Equal(t, uint64(10000), resp.Amount)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/stake", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, types.InvalidArgument.String(), decodeErrorResponse(t, rec).ErrorCode)
	})

	t.Run("empty account is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "", Amount: 100}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero amount is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 0}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, types.InvalidArgument.String(), decodeErrorResponse(t, rec).ErrorCode)
	})

	t.Run("paused ledger is a 503", func(t *testing.T) {
		f := newApiFixture(t)
		f.db.On("UpsertLedgerState", mock.Anything, mock.Anything).Return(nil).Once()
		rec := f.do(t, http.MethodPost, "/v1/admin/pause", nil,
			map[string]string{adminCallerHeader: testOwner})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 100}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, types.Unavailable.String(), decodeErrorResponse(t, rec).ErrorCode)
	})
}

func TestUnstakeEndpoint(t *testing.T) {
	t.Run("exceeding the stake is a 400", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/unstake", stakeRequest{Account: "alice", Amount: 1}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("round trip", func(t *testing.T) {
		f := newApiFixture(t)
		f.allowMirrors()
		f.transferrer.On("Pull", mock.Anything, "alice", uint64(100)).Return(nil).Once()
		f.transferrer.On("Push", mock.Anything, "alice", uint64(100)).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 100}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, "/v1/unstake", stakeRequest{Account: "alice", Amount: 100}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp stakeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Zero(t, resp.RewardPaid)
	})
}

func TestClaimEndpoint(t *testing.T) {
	f := newApiFixture(t)
	f.allowMirrors()
	f.transferrer.On("Pull", mock.Anything, "alice", uint64(10000)).Return(nil).Once()

	rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 10000}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.clock.now = f.clock.now.Add(time.Duration(ledger.SecondsPerYear) * time.Second)
	f.transferrer.On("Push", mock.Anything, "alice", uint64(100)).Return(nil).Once()

	rec = f.do(t, http.MethodPost, "/v1/claim", claimRequest{Account: "alice"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp stakeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, uint64(100), resp.RewardPaid)
}

func TestGetStakeEndpoint(t *testing.T) {
	f := newApiFixture(t)
	f.allowMirrors()
	f.transferrer.On("Pull", mock.Anything, "alice", uint64(10000)).Return(nil).Once()

	rec := f.do(t, http.MethodPost, "/v1/stake", stakeRequest{Account: "alice", Amount: 10000}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.clock.now = f.clock.now.Add(time.Duration(ledger.SecondsPerYear) * time.Second)

	rec = f.do(t, http.MethodGet, "/v1/stake/alice", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp stakeStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "alice", resp.Account)
	assert.Equal(t, uint64(10000), resp.StakedAmount)
	assert.Equal(t, uint64(100), resp.PendingReward)
	assert.Equal(t, initialRate, resp.RateAtStake)

	// unknown accounts read as a zero record, not an error
	rec = f.do(t, http.MethodGet, "/v1/stake/nobody", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Zero(t, resp.StakedAmount)
}

func TestRateAndPoolEndpoints(t *testing.T) {
	f := newApiFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/rate", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rate rateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rate))
	assert.Equal(t, initialRate, rate.InterestRateBps)
	assert.False(t, rate.Paused)

	rec = f.do(t, http.MethodGet, "/v1/pool", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pool poolResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pool))
	assert.Zero(t, pool.TotalStaked)
	assert.Zero(t, pool.Withdrawable)
}

func TestAdminEndpoints(t *testing.T) {
	ownerHeader := map[string]string{adminCallerHeader: testOwner}

	t.Run("set rate", func(t *testing.T) {
		f := newApiFixture(t)
		f.allowMirrors()

		rec := f.do(t, http.MethodPost, "/v1/admin/rate", setRateRequest{RateBps: 250}, ownerHeader)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp setRateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, initialRate, resp.OldRateBps)
		assert.Equal(t, uint64(250), resp.NewRateBps)
	})

	t.Run("missing admin header is a 403", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/admin/rate", setRateRequest{RateBps: 250}, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, types.Unauthorized.String(), decodeErrorResponse(t, rec).ErrorCode)
	})

	t.Run("non-owner caller is a 403", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/admin/fund", fundRequest{Amount: 100},
			map[string]string{adminCallerHeader: "mallory"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("fund then emergency withdraw", func(t *testing.T) {
		f := newApiFixture(t)
		f.allowMirrors()
		f.transferrer.On("Pull", mock.Anything, testOwner, uint64(5000)).Return(nil).Once()
		f.transferrer.On("Push", mock.Anything, testOwner, uint64(5000)).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/v1/admin/fund", fundRequest{Amount: 5000}, ownerHeader)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, "/v1/admin/emergency-withdraw", nil, ownerHeader)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]uint64
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, uint64(5000), resp["amount"])
	})

	t.Run("emergency withdraw on empty pool is a 409", func(t *testing.T) {
		f := newApiFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/admin/emergency-withdraw", nil, ownerHeader)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, types.InsufficientFunds.String(), decodeErrorResponse(t, rec).ErrorCode)
	})

	t.Run("pause then unpause", func(t *testing.T) {
		f := newApiFixture(t)
		f.db.On("UpsertLedgerState", mock.Anything, mock.Anything).Return(nil).Twice()

		rec := f.do(t, http.MethodPost, "/v1/admin/pause", nil, ownerHeader)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodGet, "/v1/rate", nil, nil)
		var rate rateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&rate))
		assert.True(t, rate.Paused)

		rec = f.do(t, http.MethodPost, "/v1/admin/unpause", nil, ownerHeader)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAccountEventsEndpoint(t *testing.T) {
	f := newApiFixture(t)
	f.db.On("GetLedgerEventsByAccount", mock.Anything, "alice", int64(100)).
		Return(nil, fmt.Errorf("mongo down")).Once()

	rec := f.do(t, http.MethodGet, "/v1/stake/alice/events", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, types.InternalServiceError.String(), decodeErrorResponse(t, rec).ErrorCode)
}
