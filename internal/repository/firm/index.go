package firm

import (
	"github.com/kailas-cloud/propdex/internal/db"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// seqField is the SORTABLE attribute that preserves insertion order.
const seqField = "seq"

// buildIndex declares one FT attribute per filterable predicate plus the sequence.
// Boolean predicates are indexed through their "true"/"false" tag mirrors.
func buildIndex() *db.IndexDefinition {
	return db.NewIndex(indexName()).
		Prefix(keyPrefix()).
		Numeric("$.min_account_size", domfirm.FieldMinAccountSize).
		Numeric("$.max_account_size", domfirm.FieldMaxAccountSize).
		Numeric("$.__trader_share", domfirm.FieldTraderShare).
		Numeric("$.rating", domfirm.FieldRating).
		SortableNumeric("$.__seq", seqField).
		TagWithOpts("$.trading_platforms[*]", domfirm.FieldPlatform, "", true).
		TagWithOpts("$.payout_frequency", domfirm.FieldPayoutFrequency, "", true).
		Tag("$.__news_trading", domfirm.FieldNewsTrading).
		Tag("$.__expert_advisors", domfirm.FieldExpertAdvisors).
		MustBuild()
}
