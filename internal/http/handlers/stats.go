package handlers

import (
	"net/http"

	"fundly/internal/sqlinline"
)

// StatsSummary reports platform-wide totals. The donation figures derive
// from the transaction ledger and campaign rows written through the same
// committed transactions, so the two never disagree.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var totalCampaigns, totalRaised, totalDonations, totalUsers int64
	if err := row.Scan(&totalCampaigns, &totalRaised, &totalDonations, &totalUsers); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_campaigns": totalCampaigns,
		"total_raised":    totalRaised,
		"total_donations": totalDonations,
		"total_users":     totalUsers,
	})
}
