package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

const entrySequence = "queue_entries"

// EntryRepository stores queue entries in MongoDB.
// Entry ids are small sequential integers allocated from the counters collection.
type EntryRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewEntryRepository creates a new entry repository.
func NewEntryRepository(db *MongoDB) *EntryRepository {
	return &EntryRepository{
		collection: db.Entries,
		counters:   db.Counters,
	}
}

// Create inserts a new entry, setting its ID.
func (r *EntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return fmt.Errorf("allocate entry id: %w", err)
	}
	entry.ID = id
	if entry.JoinedAt.IsZero() {
		entry.JoinedAt = time.Now().UTC()
	}

	_, err = r.collection.InsertOne(ctx, entry)
	return err
}

func (r *EntryRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": entrySequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// FindByID returns the entry with the given id or ErrNotFound.
func (r *EntryRepository) FindByID(ctx context.Context, id int64) (*model.Entry, error) {
	var entry model.Entry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries matching the filter ordered by joined_at, then id.
func (r *EntryRepository) List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, entryQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func entryQuery(filter model.EntryFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"phone_number": pattern},
		}
	}
	return query
}

// UpdateStatus sets the status of an entry and returns the updated document.
func (r *EntryRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error) {
	var entry model.Entry
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountWaitingBefore counts waiting entries that joined strictly before joinedAt.
func (r *EntryRepository) CountWaitingBefore(ctx context.Context, joinedAt time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"status":    model.StatusWaiting,
		"joined_at": bson.M{"$lt": joinedAt},
	})
}
