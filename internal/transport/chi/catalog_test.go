package chi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	cataloguc "github.com/kailas-cloud/propdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	"github.com/kailas-cloud/propdex/internal/usecase/seed"
)

// memRepo serves the built-in catalog from memory. Like the store-backed
// repositories it builds the filter expression first, so invalid predicates fail the same way.
type memRepo struct {
	firms []domfirm.Firm
}

func newMemRepo(t *testing.T) *memRepo {
	t.Helper()
	firms := seed.Catalog()
	for i := range firms {
		firms[i].ID = fmt.Sprintf("firm-%d", i)
		if err := firms[i].Validate(); err != nil {
			t.Fatalf("catalog entry %d: %v", i, err)
		}
	}
	return &memRepo{firms: firms}
}

func (m *memRepo) Get(_ context.Context, id string) (domfirm.Firm, error) {
	for i := range m.firms {
		if m.firms[i].ID == id {
			return m.firms[i], nil
		}
	}
	return domfirm.Firm{}, domain.ErrFirmNotFound
}

func (m *memRepo) List(_ context.Context, q domfirm.Query, limit int) ([]domfirm.Firm, error) {
	if _, err := q.Expression(); err != nil {
		return nil, err
	}
	out := []domfirm.Firm{}
	for i := range m.firms {
		if len(out) == limit {
			break
		}
		if q.Matches(&m.firms[i]) {
			out = append(out, m.firms[i])
		}
	}
	return out, nil
}

func (m *memRepo) All(_ context.Context) ([]domfirm.Firm, error) {
	return slices.Clone(m.firms), nil
}

func (m *memRepo) Suggest(_ context.Context, query string, limit int) ([]string, error) {
	needle := strings.ToLower(query)
	names := []string{}
	for i := range m.firms {
		if len(names) == limit {
			break
		}
		if strings.Contains(strings.ToLower(m.firms[i].Name), needle) ||
			strings.Contains(strings.ToLower(m.firms[i].Description), needle) {
			names = append(names, m.firms[i].Name)
		}
	}
	return names, nil
}

func newCatalogRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := cataloguc.New(newMemRepo(t), cataloguc.DefaultLimits(), nil)
	health := &mockHealth{report: healthuc.Report{
		Status: healthuc.Healthy,
		Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
	}}
	return NewRouter(NewServer(svc, health, zap.NewNop()), []string{"*"}, zap.NewNop())
}

func firmNames(t *testing.T, body []byte) []string {
	t.Helper()
	var firms []Firm
	if err := json.Unmarshal(body, &firms); err != nil {
		t.Fatalf("decode firms %q: %v", body, err)
	}
	names := make([]string, len(firms))
	for i := range firms {
		names[i] = firms[i].Name
	}
	return names
}

func TestCatalog_ListFirms(t *testing.T) {
	h := newCatalogRouter(t)

	tests := []struct {
		target string
		want   []string
	}{
		{"/api/firms", []string{"FTMO", "TopStepTrader", "MyForexFunds", "The5ers", "Funded Trading Plus", "FundedNext"}},
		{"/api/firms?min_profit_split=85", []string{"MyForexFunds", "FundedNext"}},
		{"/api/firms?platform=cTrader", []string{"FTMO", "Funded Trading Plus", "FundedNext"}},
		{"/api/firms?platform=ctrader", []string{}},
		{"/api/firms?platform=", []string{}},
		{"/api/firms?payout_frequency=", []string{}},
		{"/api/firms?payout_frequency=weekly&min_rating=4.4", []string{"TopStepTrader", "FundedNext"}},
		{"/api/firms?news_trading=false", []string{"FTMO"}},
		{"/api/firms?expert_advisors=false", []string{"TopStepTrader"}},
		{"/api/firms?min_account_size=0", []string{"FTMO", "TopStepTrader", "MyForexFunds", "The5ers", "Funded Trading Plus", "FundedNext"}},
		{"/api/firms?min_account_size=10000&max_account_size=300000", []string{"TopStepTrader", "Funded Trading Plus"}},
		{"/api/firms?limit=2", []string{"FTMO", "TopStepTrader"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, tt.target, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
			}
			if got := firmNames(t, rr.Body.Bytes()); !slices.Equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalog_ListFirms_NonFiniteRating(t *testing.T) {
	h := newCatalogRouter(t)

	for _, target := range []string{
		"/api/firms?min_rating=NaN",
		"/api/firms?min_rating=Inf",
		"/api/firms?min_rating=-Inf",
	} {
		rr := do(t, h, http.MethodGet, target, "")
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
			continue
		}
		if resp := decodeError(t, rr); resp.Code != CodeInvalidQuery {
			t.Errorf("%s: expected code %q, got %q", target, CodeInvalidQuery, resp.Code)
		}
	}
}

func TestCatalog_SearchSuggestions(t *testing.T) {
	rr := do(t, newCatalogRouter(t), http.MethodGet, "/api/firms/search/suggestions?q=FTMO", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp SuggestionsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Query != "FTMO" || !slices.Equal(resp.Suggestions, []string{"FTMO"}) {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestCatalog_Statistics(t *testing.T) {
	rr := do(t, newCatalogRouter(t), http.MethodGet, "/api/statistics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var got StatisticsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := StatisticsResponse{
		TotalFirms:          6,
		AvgProfitSplit:      82.8,
		AvgRating:           4.4,
		MostPopularPlatform: "MetaTrader 4",
		LowestEvaluationFee: 49,
		HighestPayout:       10000,
	}
	if got != want {
		t.Errorf("statistics = %+v, want %+v", got, want)
	}
}
