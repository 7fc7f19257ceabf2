package api

import (
	"net/http"
)

// adminCallerHeader names the account invoking an administrative operation.
// The guard decides whether that account is the owner; the API only relays
// the identity established by the fronting auth layer.
const adminCallerHeader = "X-Admin-Account"

func adminCaller(r *http.Request) string {
	return r.Header.Get(adminCallerHeader)
}

type setRateRequest struct {
	RateBps uint64 `json:"rateBps"`
}

type setRateResponse struct {
	OldRateBps uint64 `json:"oldRateBps"`
	NewRateBps uint64 `json:"newRateBps"`
}

func (s *Server) handleSetRate(w http.ResponseWriter, r *http.Request) {
	var req setRateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	change, err := s.svc.SetInterestRate(r.Context(), adminCaller(r), req.RateBps)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, setRateResponse{
		OldRateBps: change.OldRate,
		NewRateBps: change.NewRate,
	})
}

type fundRequest struct {
	Amount uint64 `json:"amount"`
}

func (s *Server) handleFund(w http.ResponseWriter, r *http.Request) {
	var req fundRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.svc.AddTokens(r.Context(), adminCaller(r), req.Amount); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint64{"amount": req.Amount})
}

func (s *Server) handleEmergencyWithdraw(w http.ResponseWriter, r *http.Request) {
	amount, err := s.svc.EmergencyWithdraw(r.Context(), adminCaller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Pause(r.Context(), adminCaller(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"paused": true})
}

func (s *Server) handleUnpause(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Unpause(r.Context(), adminCaller(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"paused": false})
}
