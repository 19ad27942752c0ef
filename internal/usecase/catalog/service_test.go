package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/firm"
)

// --- Mocks ---

type mockRepo struct {
	byID       map[string]firm.Firm
	getErrs    map[string]error
	getCalls   []string
	listResult []firm.Firm
	listErr    error
	listLimit  int
	allResult  []firm.Firm
	allErr     error
	suggest    []string
	suggestErr error
	suggestLim int
}

func (m *mockRepo) Get(_ context.Context, id string) (firm.Firm, error) {
	m.getCalls = append(m.getCalls, id)
	if err, ok := m.getErrs[id]; ok {
		return firm.Firm{}, err
	}
	f, ok := m.byID[id]
	if !ok {
		return firm.Firm{}, domain.ErrFirmNotFound
	}
	return f, nil
}

func (m *mockRepo) List(_ context.Context, _ firm.Query, limit int) ([]firm.Firm, error) {
	m.listLimit = limit
	return m.listResult, m.listErr
}

func (m *mockRepo) All(_ context.Context) ([]firm.Firm, error) {
	return m.allResult, m.allErr
}

func (m *mockRepo) Suggest(_ context.Context, _ string, limit int) ([]string, error) {
	m.suggestLim = limit
	return m.suggest, m.suggestErr
}

func makeFirm(id, name string) firm.Firm {
	return firm.Firm{
		ID:               id,
		Name:             name,
		ProfitSplit:      firm.ProfitSplit{80, 20},
		TradingPlatforms: []string{"MetaTrader 4"},
		EvaluationFee:    map[int]int{10000: 100},
		Rating:           4.5,
	}
}

func ptr[T any](v T) *T { return &v }

// --- Tests ---

func TestList_DefaultLimit(t *testing.T) {
	repo := &mockRepo{listResult: []firm.Firm{makeFirm("a", "Alpha")}}
	svc := New(repo, DefaultLimits(), nil)

	firms, err := svc.List(context.Background(), firm.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firms) != 1 {
		t.Errorf("expected 1 firm, got %d", len(firms))
	}
	if repo.listLimit != 50 {
		t.Errorf("expected limit 50, got %d", repo.listLimit)
	}
}

func TestList_ExplicitLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, DefaultLimits(), nil)

	if _, err := svc.List(context.Background(), firm.Query{Limit: ptr(100)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listLimit != 100 {
		t.Errorf("expected limit 100, got %d", repo.listLimit)
	}
}

func TestList_LimitRejected(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		repo := &mockRepo{}
		svc := New(repo, DefaultLimits(), nil)

		_, err := svc.List(context.Background(), firm.Query{Limit: ptr(limit)})
		if !errors.Is(err, domain.ErrInvalidQuery) {
			t.Errorf("limit %d: expected ErrInvalidQuery, got %v", limit, err)
		}
	}
}

func TestList_EmptyMatchValueYieldsNoFirms(t *testing.T) {
	tests := []struct {
		name string
		q    firm.Query
	}{
		{"platform", firm.Query{Platform: ptr("")}},
		{"payout frequency", firm.Query{PayoutFrequency: ptr("")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{listResult: []firm.Firm{makeFirm("a", "Alpha")}}
			svc := New(repo, DefaultLimits(), nil)

			firms, err := svc.List(context.Background(), tt.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if firms == nil || len(firms) != 0 {
				t.Errorf("firms = %#v, want empty non-nil", firms)
			}
			if repo.listLimit != 0 {
				t.Error("repository must not be queried")
			}
		})
	}
}

func TestList_EmptyMatchValueStillChecksLimit(t *testing.T) {
	svc := New(&mockRepo{}, DefaultLimits(), nil)
	_, err := svc.List(context.Background(), firm.Query{Platform: ptr(""), Limit: ptr(101)})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("err = %v, want ErrInvalidQuery", err)
	}
}

func TestList_RepoError(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("connection reset")}
	svc := New(repo, DefaultLimits(), nil)

	_, err := svc.List(context.Background(), firm.Query{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrInvalidQuery) || errors.Is(err, domain.ErrFirmNotFound) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestGet_Success(t *testing.T) {
	repo := &mockRepo{byID: map[string]firm.Firm{"a": makeFirm("a", "Alpha")}}
	svc := New(repo, DefaultLimits(), nil)

	f, err := svc.Get(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "Alpha" {
		t.Errorf("expected Alpha, got %q", f.Name)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&mockRepo{}, DefaultLimits(), nil)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrFirmNotFound) {
		t.Errorf("expected ErrFirmNotFound, got %v", err)
	}
}

func TestCompare_TooMany(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, DefaultLimits(), nil)

	_, err := svc.Compare(context.Background(), []string{"a", "b", "c", "d", "e"})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if len(repo.getCalls) != 0 {
		t.Errorf("expected no lookups, got %v", repo.getCalls)
	}
}

func TestCompare_SkipsMissing(t *testing.T) {
	repo := &mockRepo{byID: map[string]firm.Firm{
		"a": makeFirm("a", "Alpha"),
		"c": makeFirm("c", "Gamma"),
	}}
	svc := New(repo, DefaultLimits(), nil)

	cmp, err := svc.Compare(context.Background(), []string{"c", "missing", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp.Count != 2 {
		t.Fatalf("expected count 2, got %d", cmp.Count)
	}
	if cmp.Firms[0].ID != "c" || cmp.Firms[1].ID != "a" {
		t.Errorf("expected input order [c a], got [%s %s]", cmp.Firms[0].ID, cmp.Firms[1].ID)
	}
}

func TestCompare_FourAllowed(t *testing.T) {
	repo := &mockRepo{byID: map[string]firm.Firm{"a": makeFirm("a", "Alpha")}}
	svc := New(repo, DefaultLimits(), nil)

	cmp, err := svc.Compare(context.Background(), []string{"a", "a", "a", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp.Count != 4 {
		t.Errorf("expected duplicates kept, count 4, got %d", cmp.Count)
	}
}

func TestCompare_NoneFound(t *testing.T) {
	svc := New(&mockRepo{}, DefaultLimits(), nil)

	_, err := svc.Compare(context.Background(), []string{"x", "y"})
	if !errors.Is(err, domain.ErrFirmNotFound) {
		t.Errorf("expected ErrFirmNotFound, got %v", err)
	}
}

func TestCompare_Empty(t *testing.T) {
	svc := New(&mockRepo{}, DefaultLimits(), nil)

	_, err := svc.Compare(context.Background(), nil)
	if !errors.Is(err, domain.ErrFirmNotFound) {
		t.Errorf("expected ErrFirmNotFound, got %v", err)
	}
}

func TestCompare_StoreErrorAborts(t *testing.T) {
	repo := &mockRepo{
		byID:    map[string]firm.Firm{"a": makeFirm("a", "Alpha")},
		getErrs: map[string]error{"b": errors.New("timeout")},
	}
	svc := New(repo, DefaultLimits(), nil)

	_, err := svc.Compare(context.Background(), []string{"a", "b", "a"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrFirmNotFound) {
		t.Errorf("expected internal error, got %v", err)
	}
	if len(repo.getCalls) != 2 {
		t.Errorf("expected lookup to stop after failure, got %v", repo.getCalls)
	}
}

func TestSuggest_Success(t *testing.T) {
	repo := &mockRepo{suggest: []string{"FTMO"}}
	svc := New(repo, DefaultLimits(), nil)

	res, err := svc.Suggest(context.Background(), "ftm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Query != "ftm" {
		t.Errorf("expected query echoed, got %q", res.Query)
	}
	if len(res.Names) != 1 || res.Names[0] != "FTMO" {
		t.Errorf("unexpected names %v", res.Names)
	}
	if repo.suggestLim != 5 {
		t.Errorf("expected limit 5, got %d", repo.suggestLim)
	}
}

func TestSuggest_EmptyQuery(t *testing.T) {
	svc := New(&mockRepo{}, DefaultLimits(), nil)

	_, err := svc.Suggest(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestStatistics(t *testing.T) {
	a := makeFirm("a", "Alpha")
	b := makeFirm("b", "Beta")
	b.ProfitSplit = firm.ProfitSplit{90, 10}
	b.Rating = 4.0
	b.MaximumPayout = ptr(5000)
	repo := &mockRepo{allResult: []firm.Firm{a, b}}
	svc := New(repo, DefaultLimits(), nil)

	st, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalFirms != 2 {
		t.Errorf("expected 2 firms, got %d", st.TotalFirms)
	}
	if st.AvgProfitSplit != 85 {
		t.Errorf("expected avg split 85, got %v", st.AvgProfitSplit)
	}
	if st.HighestPayout != 5000 {
		t.Errorf("expected highest payout 5000, got %d", st.HighestPayout)
	}
}

func TestStatistics_RepoError(t *testing.T) {
	svc := New(&mockRepo{allErr: errors.New("boom")}, DefaultLimits(), nil)

	if _, err := svc.Statistics(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
