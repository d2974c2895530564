package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	notesCollection    = "notes"
	countersCollection = "counters"
)

type document struct {
	ID        uint64    `bson:"_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore is the MongoDB backed note store. Ids are numeric and come from a
// sequence kept in the counters collection.
type MongoStore struct {
	log      *zap.SugaredLogger
	db       *mongo.Database
	notes    *mongo.Collection
	counters *mongo.Collection
	cfg      Config
}

// NewMongoStore creates a MongoStore over the given database
func NewMongoStore(log *zap.SugaredLogger, db *mongo.Database, cfg Config) *MongoStore {
	return &MongoStore{
		log:      log,
		db:       db,
		notes:    db.Collection(notesCollection),
		counters: db.Collection(countersCollection),
		cfg:      cfg,
	}
}

// Ping checks the connection with the primary
func (s *MongoStore) Ping(ctx context.Context) error {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()
	if err := s.db.Client().Ping(mCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// FindAll returns every note ordered by id
func (s *MongoStore) FindAll(ctx context.Context) ([]Note, error) {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()

	cursor, err := s.notes.Find(mCtx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}
	var docs []document
	if err := cursor.All(mCtx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	notes := make([]Note, 0, len(docs))
	for _, d := range docs {
		notes = append(notes, Note{ID: d.ID, Title: d.Title, Content: d.Content})
	}
	return notes, nil
}

// FindByID returns the note with the given id, the bool is false when there is none
func (s *MongoStore) FindByID(ctx context.Context, id uint64) (Note, bool, error) {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()

	var d document
	err := s.notes.FindOne(mCtx, bson.M{"_id": id}).Decode(&d)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return Note{}, false, nil
	case err != nil:
		return Note{}, false, fmt.Errorf("failed to find note: %w", err)
	}
	return Note{ID: d.ID, Title: d.Title, Content: d.Content}, true, nil
}

// ExistsByID reports whether a note with the given id is stored
func (s *MongoStore) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()

	count, err := s.notes.CountDocuments(mCtx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count notes: %w", err)
	}
	return count > 0, nil
}

// Save inserts the note when it has no id, assigning the next sequence value, otherwise it
// overwrites the stored fields. It returns the persisted note.
func (s *MongoStore) Save(ctx context.Context, n Note) (Note, error) {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()

	now := time.Now().UTC()

	if n.ID != 0 {
		_, err := s.notes.UpdateOne(mCtx,
			bson.M{"_id": n.ID},
			bson.M{"$set": bson.M{"title": n.Title, "content": n.Content, "updated_at": now}})
		if err != nil {
			return Note{}, fmt.Errorf("failed to update note: %w", err)
		}
		return n, nil
	}

	id, err := s.nextID(mCtx)
	if err != nil {
		return Note{}, err
	}
	n.ID = id

	if _, err := s.notes.InsertOne(mCtx, document{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return n, nil
}

// DeleteByID removes the note, deleting a missing note is a no-op
func (s *MongoStore) DeleteByID(ctx context.Context, id uint64) error {
	mCtx, mCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer mCancel()

	if _, err := s.notes.DeleteOne(mCtx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *MongoStore) nextID(ctx context.Context) (uint64, error) {
	var counter struct {
		Seq uint64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": notesCollection},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to generate note id: %w", err)
	}
	return counter.Seq, nil
}
