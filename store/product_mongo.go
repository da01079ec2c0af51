package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-svc/models"
)

type MongoProductStore struct {
	coll *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{coll: db.Collection("products")}
}

// productFilter translates the query constraints into a MongoDB filter.
func productFilter(q ProductQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.MinPrice != nil {
		filter["price"] = bson.M{"$gte": *q.MinPrice}
	}
	return filter
}

// productFindOptions builds the sort and projection options. A projection
// excludes _id unless the caller asked for it.
func productFindOptions(q ProductQuery) *options.FindOptions {
	opts := options.Find()
	if q.SortByPrice {
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	}
	if len(q.Fields) > 0 {
		projection := bson.M{}
		wantID := false
		for _, f := range q.Fields {
			projection[f] = 1
			if f == "_id" {
				wantID = true
			}
		}
		if !wantID {
			projection["_id"] = 0
		}
		opts.SetProjection(projection)
	}
	return opts
}

// List returns raw documents so field projections survive serialization
// without zero-valued struct fields leaking back in.
func (s *MongoProductStore) List(ctx context.Context, q ProductQuery) ([]bson.M, error) {
	cursor, err := s.coll.Find(ctx, productFilter(q), productFindOptions(q))
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]bson.M, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (s *MongoProductStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &p, nil
}

func (s *MongoProductStore) Insert(ctx context.Context, p *models.Product) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert product: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoProductStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
