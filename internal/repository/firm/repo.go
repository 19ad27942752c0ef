package firm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/propdex/internal/db"
	"github.com/kailas-cloud/propdex/internal/domain"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// store is the consumer interface for firms (ISP).
type store interface {
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	IndexPending(ctx context.Context, name string) (bool, error)
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// indexPollInterval paces FT.INFO while an index scans existing documents.
const indexPollInterval = 50 * time.Millisecond

// Repo stores firms as RedisJSON documents behind an FT index.
type Repo struct {
	store store
	poll  time.Duration
}

// New creates a firm repository.
func New(s store) *Repo {
	return &Repo{store: s, poll: indexPollInterval}
}

// EnsureIndex creates the FT index unless it already exists, then waits until
// it covers every stored document so counts and listings are complete.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, indexName())
	if err != nil {
		return fmt.Errorf("check firm index: %w", err)
	}
	if !exists {
		if err := r.store.CreateIndex(ctx, buildIndex()); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create firm index: %w", err)
		}
	}
	return r.waitIndexed(ctx)
}

// RebuildIndex drops the FT index and creates it from the current definition.
// Documents are kept; Redis re-indexes every key under the firm prefix.
func (r *Repo) RebuildIndex(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, indexName()); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop firm index: %w", err)
	}
	if err := r.store.CreateIndex(ctx, buildIndex()); err != nil {
		return fmt.Errorf("create firm index: %w", err)
	}
	return r.waitIndexed(ctx)
}

// waitIndexed blocks while the index is still scanning pre-existing keys.
func (r *Repo) waitIndexed(ctx context.Context) error {
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()

	for {
		pending, err := r.store.IndexPending(ctx, indexName())
		if err != nil {
			return fmt.Errorf("firm index status: %w", err)
		}
		if !pending {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for firm index: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Count returns the number of stored firms.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("count firms: %w", err)
	}
	return n, nil
}

// InsertMany writes firms in one pipelined round-trip, numbering them after the current count.
func (r *Repo) InsertMany(ctx context.Context, firms []domfirm.Firm) error {
	if len(firms) == 0 {
		return nil
	}
	start, err := r.Count(ctx)
	if err != nil {
		return err
	}

	items := make([]db.JSONSetItem, len(firms))
	for i := range firms {
		data, err := encodeDoc(toDoc(&firms[i], int64(start+i)))
		if err != nil {
			return err
		}
		items[i] = db.JSONSetItem{Key: firmKey(firms[i].ID), Path: "$", Data: data}
	}

	if err := r.store.JSONSetMulti(ctx, items); err != nil {
		return fmt.Errorf("insert firms: %w", err)
	}
	return nil
}

// Get returns a firm by id.
func (r *Repo) Get(ctx context.Context, id string) (domfirm.Firm, error) {
	key := firmKey(id)
	raw, err := r.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domfirm.Firm{}, domain.ErrFirmNotFound
		}
		return domfirm.Firm{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	d, err := decodeDoc(raw)
	if err != nil {
		return domfirm.Firm{}, err
	}
	return fromDoc(&d)
}

// List returns at most limit firms matching q, in insertion order.
func (r *Repo) List(ctx context.Context, q domfirm.Query, limit int) ([]domfirm.Firm, error) {
	expr, err := q.Expression()
	if err != nil {
		return nil, err
	}
	result, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    indexName(),
		Filters:      expr,
		SortBy:       seqField,
		Limit:        limit,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search firms: %w", err)
	}
	return entriesToFirms(result)
}

// All returns every firm in insertion order.
func (r *Repo) All(ctx context.Context) ([]domfirm.Firm, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []domfirm.Firm{}, nil
	}
	return r.List(ctx, domfirm.Query{}, n)
}

// Suggest returns names of up to limit firms whose name or description contains
// query, ignoring case. The query is matched literally.
func (r *Repo) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	firms, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	names := make([]string, 0, limit)
	for i := range firms {
		if len(names) == limit {
			break
		}
		if strings.Contains(strings.ToLower(firms[i].Name), needle) ||
			strings.Contains(strings.ToLower(firms[i].Description), needle) {
			names = append(names, firms[i].Name)
		}
	}
	return names, nil
}

func entriesToFirms(result *db.SearchResult) ([]domfirm.Firm, error) {
	if result == nil || len(result.Entries) == 0 {
		return []domfirm.Firm{}, nil
	}
	firms := make([]domfirm.Firm, 0, len(result.Entries))
	for _, entry := range result.Entries {
		raw, ok := entry.Fields["$"]
		if !ok {
			return nil, fmt.Errorf("search entry %s: missing document", entry.Key)
		}
		d, err := decodeDoc([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("search entry %s: %w", entry.Key, err)
		}
		f, err := fromDoc(&d)
		if err != nil {
			return nil, err
		}
		firms = append(firms, f)
	}
	return firms, nil
}

// Key patterns: propdex:firm:{id}, index propdex:firm:idx.

func keyPrefix() string {
	return domain.KeyPrefix + "firm:"
}

func firmKey(id string) string {
	return keyPrefix() + id
}

func indexName() string {
	return keyPrefix() + "idx"
}
