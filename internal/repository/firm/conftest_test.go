package firm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kailas-cloud/propdex/internal/db"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetMultiFn func(ctx context.Context, items []db.JSONSetItem) error
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	createIndexFn  func(ctx context.Context, def *db.IndexDefinition) error
	dropIndexFn    func(ctx context.Context, name string) error
	indexExistsFn  func(ctx context.Context, name string) (bool, error)
	indexPendingFn func(ctx context.Context, name string) (bool, error)
	searchListFn   func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	searchCountFn  func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error {
	if m.jsonSetMultiFn != nil {
		return m.jsonSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) DropIndex(ctx context.Context, name string) error {
	if m.dropIndexFn != nil {
		return m.dropIndexFn(ctx, name)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) IndexPending(ctx context.Context, name string) (bool, error) {
	if m.indexPendingFn != nil {
		return m.indexPendingFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testFirm(t *testing.T, id, name, description string) domfirm.Firm {
	t.Helper()
	payout := 5000
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return domfirm.Firm{
		ID:               id,
		Name:             name,
		Description:      description,
		MinAccountSize:   10000,
		MaxAccountSize:   100000,
		AccountSizes:     []int{10000, 100000},
		ProfitSplit:      domfirm.ProfitSplit{85, 15},
		TradingPlatforms: []string{"MetaTrader 4"},
		EvaluationFee:    map[int]int{10000: 109, 100000: 849},
		PayoutFrequency:  domfirm.PayoutWeekly,
		NewsTrading:      true,
		MaximumPayout:    &payout,
		Rating:           4.2,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
}

// searchResultOf encodes firms the way FT.SEARCH RETURN 1 $ replies.
func searchResultOf(t *testing.T, firms ...domfirm.Firm) *db.SearchResult {
	t.Helper()
	res := &db.SearchResult{Total: len(firms)}
	for i := range firms {
		data, err := json.Marshal(toDoc(&firms[i], int64(i)))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		res.Entries = append(res.Entries, db.SearchEntry{
			Key:    firmKey(firms[i].ID),
			Fields: map[string]string{"$": string(data)},
		})
	}
	return res
}
