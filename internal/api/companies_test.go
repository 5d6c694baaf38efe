package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/charu2409/Company-Feeds/internal/model"
	"github.com/charu2409/Company-Feeds/internal/service/directory"
	"github.com/charu2409/Company-Feeds/internal/service/news"
)

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds := directory.NewDataset([]model.CompanyRecord{
		{CompanyName: "Acme Corp", Ticker: "ACME", Sector: str("Technology"), Rank: intp(1), PresentInIndia: str("Yes"), PresentInTN: str("No")},
		{CompanyName: "Beta Energy", Ticker: "BETA", Sector: str("Energy"), Rank: intp(2)},
		{CompanyName: "Gamma Labs", Ticker: "GAMA", Sector: str("Technology"), Rank: intp(2)},
		{CompanyName: "Delta", Ticker: "DLTA"},
	})

	h := NewHandler(ds, news.NewService(5), nil, nil)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func getJSON(t *testing.T, r *gin.Engine, target string, out interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, w.Body.String())
	}
}

func tickers(items []model.CompanyRecord) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Ticker)
	}
	return out
}

func TestListCompanies_Filters(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		query url.Values
		want  []string
	}{
		{url.Values{}, []string{"ACME", "BETA", "GAMA", "DLTA"}},
		{url.Values{"sector": {"ALL"}, "rank": {"ALL"}}, []string{"ACME", "BETA", "GAMA", "DLTA"}},
		{url.Values{"sector": {"Technology"}}, []string{"ACME", "GAMA"}},
		{url.Values{"rank": {"2"}}, []string{"BETA", "GAMA"}},
		{url.Values{"rank": {"abc"}}, []string{"ACME", "BETA", "GAMA", "DLTA"}},
		{url.Values{"sector": {"Technology"}, "rank": {"2"}}, []string{"GAMA"}},
		{url.Values{"q": {"lab"}}, []string{"GAMA"}},
		{url.Values{"q": {"dl"}}, []string{"DLTA"}},
	}
	for _, tc := range cases {
		var items []model.CompanyRecord
		getJSON(t, r, "/api/companies?"+tc.query.Encode(), &items)
		if diff := cmp.Diff(tc.want, tickers(items)); diff != "" {
			t.Fatalf("query %q mismatch (-want +got):\n%s", tc.query.Encode(), diff)
		}
	}
}

func TestListCompanies_RecordShape(t *testing.T) {
	r := newTestRouter(t)

	var raw []map[string]interface{}
	getJSON(t, r, "/api/companies?q=delta", &raw)
	if len(raw) != 1 {
		t.Fatalf("items=%d, want 1", len(raw))
	}

	keys := make([]string, 0, len(raw[0]))
	for k := range raw[0] {
		keys = append(keys, k)
	}
	want := map[string]bool{
		"company_name": true, "ticker": true, "sector": true, "rank": true,
		"about": true, "present_in_india": true, "present_in_tn": true, "rank_color": true,
	}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for _, k := range keys {
		if !want[k] {
			t.Fatalf("unexpected key %q", k)
		}
	}
	if raw[0]["sector"] != nil || raw[0]["rank"] != nil {
		t.Fatalf("absent fields should be null: %v", raw[0])
	}
	if raw[0]["rank_color"] != "#ffffff" {
		t.Fatalf("rank_color=%v", raw[0]["rank_color"])
	}
}

func TestListCompanies_EmptyResultIsArray(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/companies?sector=Nothing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("body=%s, want []", body)
	}
}

func TestGetFacets(t *testing.T) {
	r := newTestRouter(t)

	var facets model.Facets
	getJSON(t, r, "/api/facets", &facets)
	want := model.Facets{Sectors: []string{"Energy", "Technology"}, Ranks: []int{1, 2}}
	if diff := cmp.Diff(want, facets); diff != "" {
		t.Fatalf("facets mismatch:\n%s", diff)
	}
}

func TestGetNews(t *testing.T) {
	r := newTestRouter(t)

	var items []model.NewsItem
	getJSON(t, r, "/api/news/ACME", &items)
	if len(items) != 1 || items[0].Title != "Latest strategic update for ACME" {
		t.Fatalf("unexpected news: %+v", items)
	}
}

func TestGetStatus(t *testing.T) {
	r := newTestRouter(t)

	var resp StatusResponse
	getJSON(t, r, "/api/status", &resp)
	if resp.Dataset.Kept != 4 || resp.Sectors != 2 || resp.Ranks != 2 {
		t.Fatalf("unexpected status: %+v", resp)
	}
	if resp.LastLoad != nil {
		t.Fatalf("lastLoad should be empty without a store")
	}
}
