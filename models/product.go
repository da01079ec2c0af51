package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Category  string             `json:"category" bson:"category"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateProductRequest carries the raw create payload. Price is left untyped
// so string-encoded numbers can still be coerced before validation rejects
// anything non-numeric.
type CreateProductRequest struct {
	Name     *string `json:"name"`
	Price    any     `json:"price"`
	Category *string `json:"category"`
}

// UpdateProductRequest carries a partial update; absent fields stay nil.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    any     `json:"price"`
	Category *string `json:"category"`
}
