// Package store wraps the two MongoDB collections behind narrow interfaces so
// handlers stay independent of the driver.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-svc/models"
)

// ErrNotFound is returned when an identifier matches no document.
var ErrNotFound = errors.New("document not found")

// ProductQuery describes the optional list constraints for products.
type ProductQuery struct {
	Category    string
	MinPrice    *float64
	SortByPrice bool
	// Fields, when non-empty, projects the result down to these bson field
	// names. The _id field is dropped unless listed explicitly.
	Fields []string
}

type ProductStore interface {
	List(ctx context.Context, q ProductQuery) ([]bson.M, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Insert(ctx context.Context, p *models.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	Insert(ctx context.Context, it *models.Item) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
