package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fundly/internal/domain"
	"fundly/internal/middleware"
)

type donationRequest struct {
	Amount int64 `json:"amount"`
}

type donationResponse struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Amount     int64  `json:"amount"`
	Raised     int64  `json:"raised"`
	Time       int64  `json:"time"`
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(campaignID); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		return
	}

	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	donor := domain.DonorRef(userID)
	country := middleware.CountryFromContext(r.Context())
	rec, raised, err := a.Ledger.Donate(r.Context(), campaignID, req.Amount, donor, country)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		default:
			a.Logger.Error().Err(err).Str("campaign_id", campaignID).Msg("donation failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to record donation")
		}
		return
	}

	a.json(w, http.StatusCreated, donationResponse{
		ID:         rec.ID,
		CampaignID: rec.CampaignID,
		Amount:     rec.Amount,
		Raised:     raised,
		Time:       rec.CreatedAt.UnixMilli(),
	})
}
