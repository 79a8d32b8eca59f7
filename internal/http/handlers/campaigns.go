package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fundly/internal/domain"
	"fundly/internal/infra"
	"fundly/internal/sqlinline"
)

type campaignRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Target      int64  `json:"target"`
}

type campaignDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Target      int64   `json:"target"`
	Raised      int64   `json:"raised"`
	Progress    float64 `json:"progress"`
	Creator     string  `json:"creator"`
	CreatedAt   int64   `json:"created_at"`
}

func campaignToDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:          c.ID,
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Target:      c.Target,
		Raised:      c.Raised,
		Progress:    c.Progress(),
		Creator:     c.Creator,
		CreatedAt:   c.CreatedAt.UnixMilli(),
	}
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Category == "" || req.Description == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title, category and description required")
		return
	}
	if req.Target <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "target must be positive")
		return
	}
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	c := domain.Campaign{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Target:      req.Target,
		Creator:     userID,
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertCampaign,
		c.Title, c.Category, c.Description, c.Target, c.Creator)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		a.Logger.Error().Err(err).Msg("insert campaign failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create campaign")
		return
	}
	a.json(w, http.StatusCreated, campaignToDTO(c))
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListCampaigns)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}
	defer rows.Close()

	items := []campaignDTO{}
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Category, &c.Description, &c.Target, &c.Raised, &c.Creator, &c.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan campaign failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
			return
		}
		items = append(items, campaignToDTO(c))
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		return
	}

	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectCampaignByID, id)
	var c domain.Campaign
	if err := row.Scan(&c.ID, &c.Title, &c.Category, &c.Description, &c.Target, &c.Raised, &c.Creator, &c.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			a.error(w, http.StatusNotFound, "not_found", "campaign not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load campaign failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, campaignToDTO(c))
}
