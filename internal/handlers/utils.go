package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/career-navigator/apiserver/types"
)

type contextKey string

const contextAccountKey contextKey = "account"

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Boundary messages. Storage faults always present the same generic
// message, whatever the backend or root cause.
const (
	msgStorageFailed      = "database operation failed"
	msgInvalidCredentials = "invalid credentials"
	msgUnauthorized       = "unauthorized"
)

func accountFromContext(ctx context.Context) (types.Account, error) {
	acct, ok := ctx.Value(contextAccountKey).(types.Account)
	if !ok || acct.ID == "" {
		return types.Account{}, errors.New("missing account")
	}
	return acct, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
