package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fundly/internal/domain"
	"fundly/internal/middleware"
	"fundly/internal/sqlinline"
)

type campaignTestSQL struct {
	queryRow func(query string, args ...any) pgx.Row
	rows     []domain.Campaign
}

func (s *campaignTestSQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (s *campaignTestSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if s.queryRow == nil {
		return SimpleRow{}
	}
	return s.queryRow(query, args...)
}

func (s *campaignTestSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if query != sqlinline.QListCampaigns {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	return &campaignRowsIterator{rows: s.rows}, nil
}

type campaignRowsIterator struct {
	TestRowsBase
	rows []domain.Campaign
	idx  int
}

func (it *campaignRowsIterator) Next() bool {
	if it.idx >= len(it.rows) {
		return false
	}
	it.idx++
	return true
}

func (it *campaignRowsIterator) Scan(dest ...any) error {
	if it.idx == 0 || it.idx > len(it.rows) {
		return pgx.ErrNoRows
	}
	c := it.rows[it.idx-1]
	*dest[0].(*string) = c.ID
	*dest[1].(*string) = c.Title
	*dest[2].(*string) = c.Category
	*dest[3].(*string) = c.Description
	*dest[4].(*int64) = c.Target
	*dest[5].(*int64) = c.Raised
	*dest[6].(*string) = c.Creator
	*dest[7].(*time.Time) = c.CreatedAt
	return nil
}

func (it *campaignRowsIterator) Err() error { return nil }

func (it *campaignRowsIterator) Close() {}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.ContextWithUserID(req.Context(), "8c2f1a9e-4b7d-4c4f-9d1a-2f3e4a5b6c7d"))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCampaignsCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing title", body: `{"category":"health","description":"d","target":1000}`},
		{name: "whitespace title", body: `{"title":"  ","category":"health","description":"d","target":1000}`},
		{name: "missing category", body: `{"title":"t","description":"d","target":1000}`},
		{name: "missing description", body: `{"title":"t","category":"health","target":1000}`},
		{name: "zero target", body: `{"title":"t","category":"health","description":"d","target":0}`},
		{name: "negative target", body: `{"title":"t","category":"health","description":"d","target":-5}`},
		{name: "non-numeric target", body: `{"title":"t","category":"health","description":"d","target":"lots"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			app := &App{SQL: &campaignTestSQL{queryRow: func(string, ...any) pgx.Row {
				called = true
				return SimpleRow{}
			}}}

			rr := httptest.NewRecorder()
			app.CampaignsCreate(rr, authedRequest(http.MethodPost, "/v1/campaigns", tc.body))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if called {
				t.Fatal("validation failure still reached the database")
			}
		})
	}
}

func TestCampaignsCreate(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	app := &App{SQL: &campaignTestSQL{queryRow: func(query string, args ...any) pgx.Row {
		if query != sqlinline.QInsertCampaign {
			t.Fatalf("unexpected query: %s", query)
		}
		if got := args[3].(int64); got != 1000 {
			t.Fatalf("target sent to db = %d, want 1000", got)
		}
		return NewSimpleRow(func(dest ...any) error {
			*dest[0].(*string) = "camp-1"
			*dest[1].(*time.Time) = createdAt
			return nil
		})
	}}}

	body := `{"title":"Clean water","category":"health","description":"wells","target":1000}`
	rr := httptest.NewRecorder()
	app.CampaignsCreate(rr, authedRequest(http.MethodPost, "/v1/campaigns", body))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	var resp campaignDTO
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "camp-1" || resp.Raised != 0 || resp.Target != 1000 || resp.Progress != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.CreatedAt != createdAt.UnixMilli() {
		t.Fatalf("created_at = %d, want %d", resp.CreatedAt, createdAt.UnixMilli())
	}
}

func TestCampaignsCreateRequiresUser(t *testing.T) {
	app := &App{SQL: &campaignTestSQL{}}
	body := `{"title":"t","category":"c","description":"d","target":1}`
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.CampaignsCreate(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestCampaignsList(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	app := &App{SQL: &campaignTestSQL{rows: []domain.Campaign{
		{ID: "camp-2", Title: "Newer", Category: "edu", Description: "d", Target: 3000, Raised: 1000, Creator: "u1", CreatedAt: now},
		{ID: "camp-1", Title: "Older", Category: "health", Description: "d", Target: 1000, Raised: 200, Creator: "u2", CreatedAt: now.Add(-time.Hour)},
	}}}

	rr := httptest.NewRecorder()
	app.CampaignsList(rr, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Items []campaignDTO `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(payload.Items))
	}
	if payload.Items[0].ID != "camp-2" {
		t.Fatalf("expected newest campaign first, got %q", payload.Items[0].ID)
	}
	if payload.Items[0].Progress != 33.3 {
		t.Fatalf("progress = %v, want 33.3", payload.Items[0].Progress)
	}
	if payload.Items[1].Progress != 20 {
		t.Fatalf("progress = %v, want 20", payload.Items[1].Progress)
	}
}

func TestCampaignsGet(t *testing.T) {
	id := "6f1f7d2a-8f3b-4d6e-9a0c-1b2c3d4e5f60"

	t.Run("found", func(t *testing.T) {
		app := &App{SQL: &campaignTestSQL{queryRow: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QSelectCampaignByID {
				t.Fatalf("unexpected query: %s", query)
			}
			return NewSimpleRow(func(dest ...any) error {
				*dest[0].(*string) = id
				*dest[1].(*string) = "Clean water"
				*dest[2].(*string) = "health"
				*dest[3].(*string) = "wells"
				*dest[4].(*int64) = 1000
				*dest[5].(*int64) = 500
				*dest[6].(*string) = "u1"
				*dest[7].(*time.Time) = time.Now()
				return nil
			})
		}}}

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/campaigns/"+id, nil), "id", id)
		rr := httptest.NewRecorder()
		app.CampaignsGet(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var resp campaignDTO
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Progress != 50 {
			t.Fatalf("progress = %v, want 50", resp.Progress)
		}
	})

	t.Run("absent", func(t *testing.T) {
		app := &App{SQL: &campaignTestSQL{queryRow: func(string, ...any) pgx.Row {
			return SimpleRow{}
		}}}
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/campaigns/"+id, nil), "id", id)
		rr := httptest.NewRecorder()
		app.CampaignsGet(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		app := &App{SQL: &campaignTestSQL{}}
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/campaigns/nope", nil), "id", "nope")
		rr := httptest.NewRecorder()
		app.CampaignsGet(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
	})
}
