package firmmongo

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/usecase/seed"
)

func ptr[T any](v T) *T { return &v }

// find applies a filter produced by buildFilter to stored records: top-level
// keys AND together, equality on an array matches membership, and dotted
// numeric segments index into arrays.
func find(t *testing.T, records []bson.D, filter bson.D) []string {
	t.Helper()
	var out []string
	for _, rec := range records {
		if matchesFilter(t, rec, filter) {
			out = append(out, lookup(rec, "name").(string))
		}
	}
	return out
}

func matchesFilter(t *testing.T, rec, filter bson.D) bool {
	t.Helper()
	for _, e := range filter {
		v := lookup(rec, e.Key)
		if ops, ok := e.Value.(bson.D); ok {
			n, isNum := number(v)
			if !isNum {
				t.Fatalf("range on %s holds %T", e.Key, v)
			}
			for _, op := range ops {
				bound, ok := op.Value.(float64)
				if !ok {
					t.Fatalf("bound for %s is %T", e.Key, op.Value)
				}
				switch op.Key {
				case "$gte":
					if n < bound {
						return false
					}
				case "$lte":
					if n > bound {
						return false
					}
				default:
					t.Fatalf("unexpected operator %s", op.Key)
				}
			}
			continue
		}
		if arr, ok := v.(bson.A); ok {
			if !slices.Contains(arr, e.Value) {
				return false
			}
			continue
		}
		if v != e.Value {
			return false
		}
	}
	return true
}

func lookup(doc bson.D, path string) any {
	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case bson.D:
			i := slices.IndexFunc(node, func(e bson.E) bool { return e.Key == part })
			if i < 0 {
				return nil
			}
			cur = node[i].Value
		case bson.A:
			idx, err := strconv.Atoi(part)
			if err != nil || idx >= len(node) {
				return nil
			}
			cur = node[idx]
		default:
			return nil
		}
	}
	return cur
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func seededRecords(t *testing.T) ([]domfirm.Firm, []bson.D) {
	t.Helper()
	firms := seed.Catalog()
	records := make([]bson.D, len(firms))
	for i := range firms {
		firms[i].ID = fmt.Sprintf("firm-%d", i)
		records[i] = toBSON(t, firms[i], int64(i))
	}
	return firms, records
}

func TestBuildFilter_MinProfitSplit(t *testing.T) {
	q := domfirm.Query{MinProfitSplit: ptr(85)}
	expr, err := q.Expression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := buildFilter(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := bson.D{{Key: "profit_split.0", Value: bson.D{{Key: "$gte", Value: 85.0}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter = %v, want %v", got, want)
	}

	_, records := seededRecords(t)
	if names := find(t, records, got); !slices.Equal(names, []string{"MyForexFunds", "FundedNext"}) {
		t.Errorf("matched %v, want [MyForexFunds FundedNext]", names)
	}
}

func TestBuildFilter_EmptyMatchesWholeCatalog(t *testing.T) {
	var q domfirm.Query
	expr, err := q.Expression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := buildFilter(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, records := seededRecords(t)
	want := []string{"FTMO", "TopStepTrader", "MyForexFunds", "The5ers", "Funded Trading Plus", "FundedNext"}
	if names := find(t, records, got); !slices.Equal(names, want) {
		t.Errorf("matched %v, want %v", names, want)
	}
}

func TestBuildFilter_AgreesWithQueryMatches(t *testing.T) {
	firms, records := seededRecords(t)

	queries := []domfirm.Query{
		{MinProfitSplit: ptr(82), Platform: ptr("MetaTrader 5"), PayoutFrequency: ptr("weekly")},
		{Platform: ptr("cTrader")},
		{Platform: ptr("ctrader")},
		{Platform: ptr("NinjaTrader"), NewsTrading: ptr(true)},
		{PayoutFrequency: ptr("bi-weekly")},
		{NewsTrading: ptr(false)},
		{ExpertAdvisors: ptr(false)},
		{NewsTrading: ptr(true), ExpertAdvisors: ptr(true), MinRating: ptr(4.2)},
		{MinRating: ptr(4.45)},
		{MinAccountSize: ptr(0)},
		{MinAccountSize: ptr(10000), MaxAccountSize: ptr(300000)},
		{MaxAccountSize: ptr(200000)},
		{MinAccountSize: ptr(5000), MaxAccountSize: ptr(300000), MinProfitSplit: ptr(85), MinRating: ptr(4.0)},
	}
	for i, q := range queries {
		t.Run(fmt.Sprintf("query %d", i), func(t *testing.T) {
			expr, err := q.Expression()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			f, err := buildFilter(expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var want []string
			for j := range firms {
				if q.Matches(&firms[j]) {
					want = append(want, firms[j].Name)
				}
			}
			if got := find(t, records, f); !slices.Equal(got, want) {
				t.Errorf("filter %v matched %v, want %v", f, got, want)
			}
		})
	}
}
