package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"catalog-svc/models"
	"catalog-svc/store"
)

func setupItemTest(t *testing.T, fake *fakeItemStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewItemHandler(fake, zaptest.NewLogger(t))

	router := gin.New()
	router.GET("/api/items", handler.ListItems)
	router.GET("/api/items/:id", handler.GetItem)
	router.POST("/api/items", handler.CreateItem)
	router.PUT("/api/items/:id", handler.ReplaceItem)
	router.PATCH("/api/items/:id", handler.PatchItem)
	router.DELETE("/api/items/:id", handler.DeleteItem)

	return router
}

func TestItemHandler_ListItems_Success(t *testing.T) {
	fake := &fakeItemStore{listResult: []models.Item{
		{ID: primitive.NewObjectID(), Name: "Notebook", Description: "ruled"},
		{ID: primitive.NewObjectID(), Name: "Pen", Description: "blue ink"},
	}}
	router := setupItemTest(t, fake)

	w := performRequest(router, "GET", "/api/items", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["items"], 2)
}

func TestItemHandler_GetItem_InvalidID(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)

	w := performRequest(router, "GET", "/api/items/zzz", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid item ID", decodeBody(t, w)["error"])
	assert.Zero(t, fake.calls)
}

func TestItemHandler_GetItem_NotFound(t *testing.T) {
	fake := &fakeItemStore{err: store.ErrNotFound}
	router := setupItemTest(t, fake)

	w := performRequest(router, "GET", "/api/items/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", decodeBody(t, w)["error"])
}

func TestItemHandler_CreateItem_Success(t *testing.T) {
	fake := &fakeItemStore{insertID: primitive.NewObjectID()}
	router := setupItemTest(t, fake)

	w := performRequest(router, "POST", "/api/items", map[string]any{
		"name":        "  Notebook  ",
		"description": " 200 pages, ruled ",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Item created successfully", body["message"])
	assert.Equal(t, fake.insertID.Hex(), body["id"])
	require.NotNil(t, fake.inserted)
	assert.Equal(t, "Notebook", fake.inserted.Name)
	assert.Equal(t, "200 pages, ruled", fake.inserted.Description)
	assert.True(t, fake.inserted.CreatedAt.Equal(fake.inserted.UpdatedAt),
		"creation and update timestamps must match on create")
}

func TestItemHandler_CreateItem_EmptyField(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)

	for name, body := range map[string]map[string]any{
		"missing description": {"name": "Notebook"},
		"blank name":          {"name": "   ", "description": "ruled"},
	} {
		w := performRequest(router, "POST", "/api/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Equal(t, "name and description are required", decodeBody(t, w)["error"], name)
	}
	assert.Zero(t, fake.calls)
}

func TestItemHandler_ReplaceItem_Success(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)
	id := primitive.NewObjectID()

	w := performRequest(router, "PUT", "/api/items/"+id.Hex(), map[string]any{
		"name":        "Notebook",
		"description": "spiral bound",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item updated successfully (PUT)", decodeBody(t, w)["message"])
	assert.Equal(t, id, fake.updatedID)
	assert.Equal(t, "Notebook", fake.updatedSet["name"])
	assert.Equal(t, "spiral bound", fake.updatedSet["description"])
	assert.Contains(t, fake.updatedSet, "updatedAt")
}

func TestItemHandler_ReplaceItem_MissingDescription(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)

	w := performRequest(router, "PUT", "/api/items/"+primitive.NewObjectID().Hex(), map[string]any{
		"name": "Notebook",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "PUT requires a full update")
	assert.Zero(t, fake.calls)
}

func TestItemHandler_PatchItem_NameOnly(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)
	id := primitive.NewObjectID()

	w := performRequest(router, "PATCH", "/api/items/"+id.Hex(), map[string]any{
		"name": "Planner",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item updated successfully (PATCH)", decodeBody(t, w)["message"])
	assert.Equal(t, "Planner", fake.updatedSet["name"])
	assert.NotContains(t, fake.updatedSet, "description")
	assert.Contains(t, fake.updatedSet, "updatedAt")
}

func TestItemHandler_PatchItem_EmptyName(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)

	w := performRequest(router, "PATCH", "/api/items/"+primitive.NewObjectID().Hex(), map[string]any{
		"name": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name cannot be empty", decodeBody(t, w)["error"])
	assert.Zero(t, fake.calls, "stored document must stay unchanged")
}

func TestItemHandler_PatchItem_NoFields(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)

	w := performRequest(router, "PATCH", "/api/items/"+primitive.NewObjectID().Hex(), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "at least one of name or description is required", decodeBody(t, w)["error"])
	assert.Zero(t, fake.calls)
}

func TestItemHandler_PatchItem_NotFound(t *testing.T) {
	fake := &fakeItemStore{err: store.ErrNotFound}
	router := setupItemTest(t, fake)

	w := performRequest(router, "PATCH", "/api/items/"+primitive.NewObjectID().Hex(), map[string]any{
		"name": "Planner",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemHandler_DeleteItem_NoContent(t *testing.T) {
	fake := &fakeItemStore{}
	router := setupItemTest(t, fake)
	id := primitive.NewObjectID()

	w := performRequest(router, "DELETE", "/api/items/"+id.Hex(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String(), "delete must return an empty body")
	assert.Equal(t, id, fake.deletedID)
}

func TestItemHandler_DeleteItem_NotFound(t *testing.T) {
	fake := &fakeItemStore{err: store.ErrNotFound}
	router := setupItemTest(t, fake)

	w := performRequest(router, "DELETE", "/api/items/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", decodeBody(t, w)["error"])
}
