package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog-svc/models"
)

type MongoItemStore struct {
	coll *mongo.Collection
}

func NewMongoItemStore(db *mongo.Database) *MongoItemStore {
	return &MongoItemStore{coll: db.Collection("items")}
}

func (s *MongoItemStore) List(ctx context.Context) ([]models.Item, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Item, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (s *MongoItemStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var it models.Item
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return &it, nil
}

func (s *MongoItemStore) Insert(ctx context.Context, it *models.Item) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, it)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert item: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoItemStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
