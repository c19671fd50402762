package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/pattern"
)

const (
	canvasCollection  = "canvases"
	patternCollection = "patterns"
)

// MongoStore persists documents in MongoDB. Canvases and patterns live in
// separate collections keyed by their document IDs.
type MongoStore struct {
	client   *mongo.Client
	database string
}

// NewMongoStore connects to MongoDB at the given URI and verifies the
// connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to ping MongoDB")
	}
	return &MongoStore{client: client, database: database}, nil
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(s.database).Collection(name)
}

// SaveCanvas inserts or replaces a canvas by ID.
func (s *MongoStore) SaveCanvas(ctx context.Context, c *canvas.Canvas) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "canvas has no ID")
	}
	_, err := s.collection(canvasCollection).ReplaceOne(ctx,
		bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to save canvas %s", c.ID)
	}
	return nil
}

// GetCanvas loads a canvas by ID.
func (s *MongoStore) GetCanvas(ctx context.Context, id string) (*canvas.Canvas, error) {
	var c canvas.Canvas
	err := s.collection(canvasCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeCanvasNotFound, "canvas %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to load canvas %s", id)
	}
	return &c, nil
}

// ListCanvases returns summaries of all stored canvases sorted by name.
func (s *MongoStore) ListCanvases(ctx context.Context) ([]CanvasSummary, error) {
	cursor, err := s.collection(canvasCollection).Find(ctx, bson.M{},
		options.Find().
			SetProjection(bson.M{"_id": 1, "name": 1, "geometry": 1}).
			SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list canvases")
	}
	defer cursor.Close(ctx)

	var summaries []CanvasSummary
	for cursor.Next(ctx) {
		var c canvas.Canvas
		if err := cursor.Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode canvas summary")
		}
		summaries = append(summaries, CanvasSummary{
			ID:      c.ID,
			Name:    c.Name,
			Rows:    c.Geometry.Rows,
			Columns: c.Geometry.Columns,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list canvases")
	}
	return summaries, nil
}

// DeleteCanvas removes a canvas by ID.
func (s *MongoStore) DeleteCanvas(ctx context.Context, id string) error {
	res, err := s.collection(canvasCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete canvas %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeCanvasNotFound, "canvas %s not found", id)
	}
	return nil
}

// SavePattern inserts or replaces a pattern by ID.
func (s *MongoStore) SavePattern(ctx context.Context, p *pattern.Pattern) error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "pattern has no ID")
	}
	_, err := s.collection(patternCollection).ReplaceOne(ctx,
		bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to save pattern %s", p.ID)
	}
	return nil
}

// GetPattern loads a pattern by ID.
func (s *MongoStore) GetPattern(ctx context.Context, id string) (*pattern.Pattern, error) {
	var p pattern.Pattern
	err := s.collection(patternCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodePatternNotFound, "pattern %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to load pattern %s", id)
	}
	return &p, nil
}

// ListPatterns returns all stored patterns sorted by name.
func (s *MongoStore) ListPatterns(ctx context.Context) ([]*pattern.Pattern, error) {
	cursor, err := s.collection(patternCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list patterns")
	}
	defer cursor.Close(ctx)

	var patterns []*pattern.Pattern
	for cursor.Next(ctx) {
		var p pattern.Pattern
		if err := cursor.Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode pattern")
		}
		patterns = append(patterns, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list patterns")
	}
	return patterns, nil
}

// DeletePattern removes a pattern by ID.
func (s *MongoStore) DeletePattern(ctx context.Context, id string) error {
	res, err := s.collection(patternCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete pattern %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodePatternNotFound, "pattern %s not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
