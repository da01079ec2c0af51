package handlers

import (
	"errors"
	"net/http"
	"strconv"
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

type ProductHandler struct {
	store  store.ProductStore
	logger *zap.Logger
}

func NewProductHandler(s store.ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{store: s, logger: logger}
}

// coercePrice accepts JSON numbers and numeric strings; anything else fails.
func coercePrice(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func splitFields(raw string) []string {
	fields := make([]string, 0)
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "ListProducts")
	defer span.End()

	var q store.ProductQuery
	q.Category = c.Query("category")

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a number"})
			return
		}
		q.MinPrice = &v
	}

	// Only price-ascending is supported; unrecognized sort values are ignored.
	if c.Query("sort") == "price" {
		q.SortByPrice = true
	}

	if raw, ok := c.GetQuery("fields"); ok {
		fields := splitFields(raw)
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fields must name at least one field"})
			return
		}
		q.Fields = fields
	}

	products, err := h.store.List(ctx, q)
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	span.SetAttributes(attribute.Int("products.count", len(products)))
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "GetProduct")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	span.SetAttributes(attribute.String("product.id", id.Hex()))

	product, err := h.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to fetch product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "CreateProduct")
	defer span.End()

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	category := ""
	if req.Category != nil {
		category = strings.TrimSpace(*req.Category)
	}
	if name == "" || req.Price == nil || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and category are required"})
		return
	}

	price, ok := coercePrice(req.Price)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
		return
	}

	product := &models.Product{
		Name:      name,
		Price:     price,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.store.Insert(ctx, product)
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	span.SetAttributes(attribute.String("product.id", id.Hex()))
	h.logger.Info("Product created", zap.String("product_id", id.Hex()))
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "id": id.Hex()})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "UpdateProduct")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	span.SetAttributes(attribute.String("product.id", id.Hex()))

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			set["name"] = name
		}
	}
	if req.Category != nil {
		if category := strings.TrimSpace(*req.Category); category != "" {
			set["category"] = category
		}
	}
	if req.Price != nil {
		price, ok := coercePrice(req.Price)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
			return
		}
		set["price"] = price
	}

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	err = h.store.Update(ctx, id, set)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to update product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	ctx, span := otel.Tracer("catalog-svc").Start(c.Request.Context(), "DeleteProduct")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	span.SetAttributes(attribute.String("product.id", id.Hex()))

	err = h.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
