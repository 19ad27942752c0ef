package firm

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/kailas-cloud/propdex/internal/db"
	"github.com/kailas-cloud/propdex/internal/domain/filter"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/usecase/seed"
)

func ptr[T any](v T) *T { return &v }

// seededCatalog returns the built-in catalog with deterministic ids.
func seededCatalog(t *testing.T) []domfirm.Firm {
	t.Helper()
	firms := seed.Catalog()
	for i := range firms {
		firms[i].ID = fmt.Sprintf("firm-%d", i)
	}
	return firms
}

// newIndexedRepo stores firms as encoded documents and answers FT.SEARCH by
// resolving each condition through the attribute buildIndex declares for its key.
func newIndexedRepo(t *testing.T, firms []domfirm.Firm) *Repo {
	t.Helper()
	idx := buildIndex()

	raws := make([][]byte, len(firms))
	for i := range firms {
		raw, err := encodeDoc(toDoc(&firms[i], int64(i)))
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		raws[i] = raw
	}

	ms := &mockStore{}
	ms.searchCountFn = func(_ context.Context, _, _ string) (int, error) { return len(raws), nil }
	ms.searchListFn = func(_ context.Context, q *db.ListQuery) (*db.SearchResult, error) {
		if q.SortBy != seqField {
			t.Errorf("SortBy = %q, want %q", q.SortBy, seqField)
		}
		res := &db.SearchResult{}
		for i, raw := range raws {
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !indexedMatch(t, idx, doc, q.Filters) {
				continue
			}
			res.Total++
			if len(res.Entries) < q.Limit {
				res.Entries = append(res.Entries, db.SearchEntry{
					Key:    firmKey(firms[i].ID),
					Fields: map[string]string{"$": string(raw)},
				})
			}
		}
		return res, nil
	}
	return New(ms)
}

func indexedMatch(t *testing.T, idx *db.IndexDefinition, doc map[string]any, expr filter.Expression) bool {
	t.Helper()
	for _, c := range expr.Conditions() {
		i := slices.IndexFunc(idx.Fields, func(f db.IndexField) bool { return f.Alias == c.Key() })
		if i < 0 {
			t.Fatalf("no index attribute for filter key %q", c.Key())
		}
		if !attributeMatches(t, &idx.Fields[i], doc, c) {
			return false
		}
	}
	return true
}

func attributeMatches(t *testing.T, f *db.IndexField, doc map[string]any, c filter.Condition) bool {
	t.Helper()
	for _, v := range pathValues(doc, f.Name) {
		switch {
		case c.IsMatch() && f.Type == db.IndexFieldTag:
			s, ok := v.(string)
			if !ok {
				t.Fatalf("tag attribute %s holds %T", f.Name, v)
			}
			if s == c.Match() || (!f.TagCaseSensitive && strings.EqualFold(s, c.Match())) {
				return true
			}
		case c.IsRange() && f.Type == db.IndexFieldNumeric:
			n, ok := v.(float64)
			if !ok {
				t.Fatalf("numeric attribute %s holds %T", f.Name, v)
			}
			if (c.Min() == nil || n >= *c.Min()) && (c.Max() == nil || n <= *c.Max()) {
				return true
			}
		default:
			t.Fatalf("condition on %q does not fit attribute type of %s", c.Key(), f.Name)
		}
	}
	return false
}

// pathValues resolves the $.field and $.field[*] paths used by the firm index.
func pathValues(doc map[string]any, path string) []any {
	name := strings.TrimPrefix(path, "$.")
	if arr, ok := strings.CutSuffix(name, "[*]"); ok {
		items, _ := doc[arr].([]any)
		return items
	}
	v, ok := doc[name]
	if !ok {
		return nil
	}
	return []any{v}
}

func names(firms []domfirm.Firm) []string {
	out := make([]string, len(firms))
	for i := range firms {
		out[i] = firms[i].Name
	}
	return out
}

func TestCatalog_ListScenarios(t *testing.T) {
	repo := newIndexedRepo(t, seededCatalog(t))

	all, err := repo.List(context.Background(), domfirm.Query{}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"FTMO", "TopStepTrader", "MyForexFunds", "The5ers", "Funded Trading Plus", "FundedNext"}
	if got := names(all); !slices.Equal(got, want) {
		t.Errorf("unfiltered = %v, want %v", got, want)
	}

	split, err := repo.List(context.Background(), domfirm.Query{MinProfitSplit: ptr(85)}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(split); !slices.Equal(got, []string{"MyForexFunds", "FundedNext"}) {
		t.Errorf("min_profit_split=85 = %v, want [MyForexFunds FundedNext]", got)
	}

	suggestions, err := repo.Suggest(context.Background(), "FTMO", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(suggestions, []string{"FTMO"}) {
		t.Errorf("suggest FTMO = %v, want [FTMO]", suggestions)
	}
}

func TestCatalog_FiltersAgreeWithQueryMatches(t *testing.T) {
	firms := seededCatalog(t)
	repo := newIndexedRepo(t, firms)

	for i, q := range catalogQueries() {
		t.Run(fmt.Sprintf("query %d", i), func(t *testing.T) {
			got, err := repo.List(context.Background(), q, 50)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var want []string
			for j := range firms {
				if q.Matches(&firms[j]) {
					want = append(want, firms[j].Name)
				}
			}
			if gotNames := names(got); !slices.Equal(gotNames, want) {
				t.Errorf("List(%+v) = %v, want %v", q, gotNames, want)
			}
		})
	}
}

func catalogQueries() []domfirm.Query {
	return []domfirm.Query{
		{},
		{MinProfitSplit: ptr(85)},
		{MinProfitSplit: ptr(82), Platform: ptr("MetaTrader 5"), PayoutFrequency: ptr("weekly")},
		{Platform: ptr("cTrader")},
		{Platform: ptr("ctrader")},
		{Platform: ptr("NinjaTrader"), NewsTrading: ptr(true)},
		{PayoutFrequency: ptr("bi-weekly")},
		{PayoutFrequency: ptr("Weekly")},
		{NewsTrading: ptr(false)},
		{ExpertAdvisors: ptr(false)},
		{NewsTrading: ptr(true), ExpertAdvisors: ptr(true), MinRating: ptr(4.2)},
		{MinRating: ptr(4.45)},
		{MinAccountSize: ptr(0)},
		{MinAccountSize: ptr(10000), MaxAccountSize: ptr(300000)},
		{MaxAccountSize: ptr(200000)},
		{MinAccountSize: ptr(5000), MaxAccountSize: ptr(300000), MinProfitSplit: ptr(85), MinRating: ptr(4.0)},
	}
}
