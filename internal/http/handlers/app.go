package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fundly/internal/domain"
	"fundly/internal/infra"
	"fundly/internal/middleware"
)

// App carries the dependencies shared by every handler.
type App struct {
	SQL       infra.SQLExecutor
	Ledger    domain.DonationLedger
	Logger    zerolog.Logger
	JWTSecret string
	TokenTTL  time.Duration
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
