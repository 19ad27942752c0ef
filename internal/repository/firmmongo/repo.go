package firmmongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/propdex/internal/domain"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
)

// CollectionName is the collection firms are stored in.
const CollectionName = "prop_firms"

// Repo stores firms in a MongoDB collection.
type Repo struct {
	coll *mongo.Collection
}

// New creates a firm repository over coll.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// Ping checks connectivity of the underlying client.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.coll.Database().Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// EnsureIndex creates the unique id index and the insertion-order index.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "seq", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create firm indexes: %w", err)
	}
	return nil
}

// Count returns the number of stored firms.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count firms: %w", err)
	}
	return int(n), nil
}

// InsertMany writes firms numbering them after the current count.
func (r *Repo) InsertMany(ctx context.Context, firms []domfirm.Firm) error {
	if len(firms) == 0 {
		return nil
	}
	start, err := r.Count(ctx)
	if err != nil {
		return err
	}
	docs := make([]any, len(firms))
	for i := range firms {
		docs[i] = toRecord(&firms[i], int64(start+i))
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert firms: %w", err)
	}
	return nil
}

// Get returns a firm by id.
func (r *Repo) Get(ctx context.Context, id string) (domfirm.Firm, error) {
	var rec firmRecord
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domfirm.Firm{}, domain.ErrFirmNotFound
		}
		return domfirm.Firm{}, fmt.Errorf("find firm %s: %w", id, err)
	}
	return fromRecord(&rec)
}

// List returns at most limit firms matching q, in insertion order.
func (r *Repo) List(ctx context.Context, q domfirm.Query, limit int) ([]domfirm.Firm, error) {
	expr, err := q.Expression()
	if err != nil {
		return nil, err
	}
	f, err := buildFilter(expr)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, f, options.Find().SetLimit(int64(limit)))
}

// All returns every firm in insertion order.
func (r *Repo) All(ctx context.Context) ([]domfirm.Firm, error) {
	return r.find(ctx, bson.D{}, options.Find())
}

// Suggest returns names of up to limit firms whose name or description contains
// query, ignoring case. The query is matched literally.
func (r *Repo) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	f := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "name", Value: re}},
		bson.D{{Key: "description", Value: re}},
	}}}
	firms, err := r.find(ctx, f, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(firms))
	for i := range firms {
		names[i] = firms[i].Name
	}
	return names, nil
}

func (r *Repo) find(ctx context.Context, f bson.D, opts *options.FindOptions) ([]domfirm.Firm, error) {
	opts.SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := r.coll.Find(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("find firms: %w", err)
	}
	var recs []firmRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode firms: %w", err)
	}
	firms := make([]domfirm.Firm, 0, len(recs))
	for i := range recs {
		f, err := fromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		firms = append(firms, f)
	}
	return firms, nil
}
