package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stakeworks/staking-ledger/internal/types"
	"github.com/stakeworks/staking-ledger/pkg"
)

func validateAccount(account string) error {
	if err := pkg.ValidateAccount(account); err != nil {
		return types.NewInvalidArgumentError("%v", err)
	}
	return nil
}

type stakeRequest struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

type claimRequest struct {
	Account string `json:"account"`
}

type stakeResponse struct {
	Account    string `json:"account"`
	Amount     uint64 `json:"amount"`
	RewardPaid uint64 `json:"rewardPaid"`
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := validateAccount(req.Account); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.svc.Deposit(r.Context(), req.Account, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stakeResponse{
		Account:    result.Account,
		Amount:     result.Amount,
		RewardPaid: result.RewardPaid,
	})
}

func (s *Server) handleUnstake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := validateAccount(req.Account); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.svc.Withdraw(r.Context(), req.Account, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stakeResponse{
		Account:    result.Account,
		Amount:     result.Amount,
		RewardPaid: result.RewardPaid,
	})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := validateAccount(req.Account); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.svc.ClaimReward(r.Context(), req.Account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stakeResponse{
		Account:    result.Account,
		RewardPaid: result.RewardPaid,
	})
}

type stakeStatusResponse struct {
	Account        string `json:"account"`
	StakedAmount   uint64 `json:"stakedAmount"`
	PendingReward  uint64 `json:"pendingReward"`
	StartTime      int64  `json:"startTime"`
	LastRewardTime int64  `json:"lastRewardTime"`
	RateAtStake    uint64 `json:"rateAtStake"`
}

func (s *Server) handleGetStake(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	rec := s.svc.StakeRecord(account)

	writeJSON(w, http.StatusOK, stakeStatusResponse{
		Account:        account,
		StakedAmount:   rec.Amount,
		PendingReward:  s.svc.RewardsEarned(account),
		StartTime:      rec.StartTime,
		LastRewardTime: rec.LastRewardTime,
		RateAtStake:    rec.RateAtStake,
	})
}

func (s *Server) handleGetAccountEvents(w http.ResponseWriter, r *http.Request) {
	const eventsLimit = 100

	account := chi.URLParam(r, "account")
	events, err := s.svc.AccountEvents(r.Context(), account, eventsLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

type rateResponse struct {
	InterestRateBps uint64 `json:"interestRateBps"`
	Paused          bool   `json:"paused"`
}

func (s *Server) handleGetRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rateResponse{
		InterestRateBps: s.svc.InterestRate(),
		Paused:          s.svc.Paused(),
	})
}

type poolResponse struct {
	TotalStaked        uint64 `json:"totalStaked"`
	TotalOwnerDeposits uint64 `json:"totalOwnerDeposits"`
	TotalInterestPaid  uint64 `json:"totalInterestPaid"`
	Withdrawable       uint64 `json:"withdrawable"`
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	status := s.svc.PoolStatus()
	writeJSON(w, http.StatusOK, poolResponse{
		TotalStaked:        s.svc.TotalStaked(),
		TotalOwnerDeposits: status.TotalOwnerDeposits,
		TotalInterestPaid:  status.TotalInterestPaid,
		Withdrawable:       status.Withdrawable,
	})
}
