package handler

import (
	"encoding/json"
	"net/http"

	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/logger"
	"github.com/threadhub-dev/threadhub/internal/service"
)

type Handler struct {
	thread service.ThreadService
	auth   service.AuthService
	cfg    *config.Config
}

func New(thread service.ThreadService, auth service.AuthService, cfg *config.Config) *Handler {
	return &Handler{thread, auth, cfg}
}

// Every response is either {"data": ...} or {"message": ...}.

type dataEnvelope struct {
	Data any `json:"data"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, dataEnvelope{Data: v})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageEnvelope{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, errors.Status(err), err.Error())
}
