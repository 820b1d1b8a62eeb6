package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"server/models"
)

type CategoryCollection struct {
	coll *mongo.Collection
}

// FindByName returns the category with the given name, or nil when absent.
func (c *CategoryCollection) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := c.coll.FindOne(ctx, bson.M{"name": name}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetByID returns the category at id, or nil when absent. A malformed id
// cannot match any document and is treated as absent.
func (c *CategoryCollection) GetByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var cat models.Category
	err = c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *CategoryCollection) Insert(ctx context.Context, cat *models.Category) (string, error) {
	cat.CreatedAt = time.Now().UTC()
	res, err := c.coll.InsertOne(ctx, cat)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	cat.ID = oid
	return oid.Hex(), nil
}

func (c *CategoryCollection) UpdateName(ctx context.Context, id, name string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = c.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"name": name}})
	return err
}

func (c *CategoryCollection) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// ListAll returns every category ordered by name.
func (c *CategoryCollection) ListAll(ctx context.Context) ([]models.Category, error) {
	cur, err := c.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	result := []models.Category{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
