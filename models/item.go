package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateItemRequest is shared by PUT (both fields required) and PATCH (at
// least one field, each non-empty when supplied).
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
