package repository

import (
	"context"
	"time"

	"github.com/juristo/legaldocs/internal/legaldoc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed repository for document records.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// index for the per-user history listing
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, rec *legaldoc.Record) (string, error) {
	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	rec.CreatedAt = time.Now()
	if _, err := m.col.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (m *MongoRepo) ListByUser(ctx context.Context, userID string) ([]*legaldoc.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*legaldoc.Record{}
	for cur.Next(ctx) {
		var r legaldoc.Record
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := m.col.Database().Client().Ping(ctx, nil); err != nil {
		return ErrUnavailable
	}
	return nil
}
