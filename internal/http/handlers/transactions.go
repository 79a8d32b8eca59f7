package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fundly/internal/domain"
	"fundly/internal/i18n"
	"fundly/internal/middleware"
	"fundly/internal/sqlinline"
)

type transactionDTO struct {
	ID            string `json:"id"`
	CampaignID    string `json:"campaign_id"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Donor         string `json:"donor"`
	Country       string `json:"country,omitempty"`
	Time          int64  `json:"time"`
	TimeDisplay   string `json:"time_display"`
}

// TransactionsList returns a campaign's donation log, newest first. The
// display fields are rendered for the request's negotiated locale; the raw
// amount and epoch-millisecond time are the data contract.
func (a *App) TransactionsList(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(campaignID); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		return
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListTransactions, campaignID)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load transactions")
		return
	}
	defer rows.Close()

	locale := middleware.LocaleFromContext(r.Context())
	items := []transactionDTO{}
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.CampaignID, &tx.Amount, &tx.Donor, &tx.Country, &tx.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan transaction failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load transactions")
			return
		}
		items = append(items, transactionDTO{
			ID:            tx.ID,
			CampaignID:    tx.CampaignID,
			Amount:        tx.Amount,
			AmountDisplay: i18n.FormatAmount(locale, tx.Amount),
			Donor:         tx.Donor,
			Country:       tx.Country,
			Time:          tx.CreatedAt.UnixMilli(),
			TimeDisplay:   i18n.FormatTime(locale, tx.CreatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load transactions")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
