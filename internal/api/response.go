package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/types"
)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode API response")
	}
}

// writeError maps the ledger error taxonomy onto HTTP statuses:
// InvalidArgument 400, Unauthorized 403, InsufficientFunds 409,
// Unavailable 503, everything else 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := types.CodeOf(err)
	status := types.StatusOf(err)

	if code == types.InternalServiceError {
		log.Ctx(r.Context()).Error().Err(err).Msg("Internal error serving request")
	}

	writeJSON(w, status, errorResponse{
		ErrorCode: code.String(),
		Message:   err.Error(),
	})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return types.NewInvalidArgumentError("invalid request body: %v", err)
	}
	return nil
}
