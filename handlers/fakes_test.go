package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-svc/models"
	"catalog-svc/store"
)

// fakeProductStore records calls and returns canned results so handler tests
// never touch a real collection.
type fakeProductStore struct {
	listResult []bson.M
	lastQuery  *store.ProductQuery
	getResult  *models.Product
	inserted   *models.Product
	insertID   primitive.ObjectID
	updatedID  primitive.ObjectID
	updatedSet bson.M
	deletedID  primitive.ObjectID
	err        error
	calls      int
}

func (f *fakeProductStore) List(_ context.Context, q store.ProductQuery) ([]bson.M, error) {
	f.calls++
	f.lastQuery = &q
	if f.err != nil {
		return nil, f.err
	}
	return f.listResult, nil
}

func (f *fakeProductStore) Get(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.getResult, nil
}

func (f *fakeProductStore) Insert(_ context.Context, p *models.Product) (primitive.ObjectID, error) {
	f.calls++
	f.inserted = p
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return f.insertID, nil
}

func (f *fakeProductStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) error {
	f.calls++
	f.updatedID = id
	f.updatedSet = set
	return f.err
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	f.deletedID = id
	return f.err
}

type fakeItemStore struct {
	listResult []models.Item
	getResult  *models.Item
	inserted   *models.Item
	insertID   primitive.ObjectID
	updatedID  primitive.ObjectID
	updatedSet bson.M
	deletedID  primitive.ObjectID
	err        error
	calls      int
}

func (f *fakeItemStore) List(_ context.Context) ([]models.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listResult, nil
}

func (f *fakeItemStore) Get(_ context.Context, id primitive.ObjectID) (*models.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.getResult, nil
}

func (f *fakeItemStore) Insert(_ context.Context, it *models.Item) (primitive.ObjectID, error) {
	f.calls++
	f.inserted = it
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return f.insertID, nil
}

func (f *fakeItemStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) error {
	f.calls++
	f.updatedID = id
	f.updatedSet = set
	return f.err
}

func (f *fakeItemStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	f.deletedID = id
	return f.err
}
