package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"catalog-svc/models"
	"catalog-svc/store"
)

type ItemHandler struct {
	store  store.ItemStore
	logger *zap.Logger
}

func NewItemHandler(s store.ItemStore, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{store: s, logger: logger}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "ListItems")
	defer span.End()

	items, err := h.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to fetch items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	span.SetAttributes(attribute.Int("items.count", len(items)))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "GetItem")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	span.SetAttributes(attribute.String("item.id", id.Hex()))

	item, err := h.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to fetch item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "CreateItem")
	defer span.End()

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}
	if name == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and description are required"})
		return
	}

	now := time.Now().UTC()
	item := &models.Item{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := h.store.Insert(ctx, item)
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to create item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	span.SetAttributes(attribute.String("item.id", id.Hex()))
	h.logger.Info("Item created", zap.String("item_id", id.Hex()))
	c.JSON(http.StatusCreated, gin.H{"message": "Item created successfully", "id": id.Hex()})
}

// ReplaceItem handles PUT: both fields must be supplied and non-empty.
func (h *ItemHandler) ReplaceItem(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "ReplaceItem")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	span.SetAttributes(attribute.String("item.id", id.Hex()))

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}
	if name == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and description are required (PUT requires a full update)"})
		return
	}

	set := bson.M{
		"name":        name,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}

	err = h.store.Update(ctx, id, set)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to update item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("Item replaced", zap.String("item_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully (PUT)"})
}

// PatchItem handles PATCH: at least one field, each non-empty when supplied.
func (h *ItemHandler) PatchItem(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "PatchItem")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	span.SetAttributes(attribute.String("item.id", id.Hex()))

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		set["name"] = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description cannot be empty"})
			return
		}
		set["description"] = description
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of name or description is required"})
		return
	}
	set["updatedAt"] = time.Now().UTC()

	err = h.store.Update(ctx, id, set)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to patch item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("Item patched", zap.String("item_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully (PATCH)"})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "DeleteItem")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	span.SetAttributes(attribute.String("item.id", id.Hex()))

	err = h.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to delete item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("Item deleted", zap.String("item_id", id.Hex()))
	c.Status(http.StatusNoContent)
}
