package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"server/models"
)

type PhotoCollection struct {
	coll *mongo.Collection
}

func (p *PhotoCollection) Insert(ctx context.Context, photo *models.Photo) (string, error) {
	photo.CreatedAt = time.Now().UTC()
	res, err := p.coll.InsertOne(ctx, photo)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	photo.ID = oid
	return oid.Hex(), nil
}

// FindByCategory runs a fresh equality query each call.
func (p *PhotoCollection) FindByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	cur, err := p.coll.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	result := []models.Photo{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCategories rewrites the category field of the given photo ids as one
// batched write. Callers chunk the id set; re-applying the same value to a
// photo that already has it is a no-op.
func (p *PhotoCollection) UpdateCategories(ctx context.Context, ids []string, category string) error {
	if len(ids) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": oid}).
			SetUpdate(bson.M{"$set": bson.M{"category": category}}))
	}
	if len(writes) == 0 {
		return nil
	}
	_, err := p.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}

// Remove deletes the photo document. A missing id is not an error.
func (p *PhotoCollection) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = p.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// ListRecent returns the newest photos first, capped at limit.
func (p *PhotoCollection) ListRecent(ctx context.Context, limit int64) ([]models.Photo, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cur, err := p.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	result := []models.Photo{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
