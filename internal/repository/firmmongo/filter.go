package firmmongo

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/propdex/internal/domain/filter"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// field maps a filter key to its document path and value kind.
type field struct {
	path    string
	boolean bool
}

var fields = map[string]field{
	domfirm.FieldMinAccountSize:  {path: "min_account_size"},
	domfirm.FieldMaxAccountSize:  {path: "max_account_size"},
	domfirm.FieldTraderShare:     {path: "profit_split.0"},
	domfirm.FieldRating:          {path: "rating"},
	domfirm.FieldPlatform:        {path: "trading_platforms"},
	domfirm.FieldPayoutFrequency: {path: "payout_frequency"},
	domfirm.FieldNewsTrading:     {path: "news_trading", boolean: true},
	domfirm.FieldExpertAdvisors:  {path: "expert_advisors", boolean: true},
}

// buildFilter translates an AND-ed expression into a find filter.
// Equality on an array path matches membership.
func buildFilter(expr filter.Expression) (bson.D, error) {
	out := bson.D{}
	for _, c := range expr.Conditions() {
		f, ok := fields[c.Key()]
		if !ok {
			return nil, fmt.Errorf("unknown filter key %q", c.Key())
		}
		switch {
		case c.IsMatch() && f.boolean:
			v, err := strconv.ParseBool(c.Match())
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", c.Key(), err)
			}
			out = append(out, bson.E{Key: f.path, Value: v})
		case c.IsMatch():
			out = append(out, bson.E{Key: f.path, Value: c.Match()})
		case c.IsRange():
			r := bson.D{}
			if c.Min() != nil {
				r = append(r, bson.E{Key: "$gte", Value: *c.Min()})
			}
			if c.Max() != nil {
				r = append(r, bson.E{Key: "$lte", Value: *c.Max()})
			}
			out = append(out, bson.E{Key: f.path, Value: r})
		}
	}
	return out, nil
}
