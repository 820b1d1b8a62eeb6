package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"server/models"
)

const heroDocID = "hero"

type SiteConfigCollection struct {
	coll *mongo.Collection
}

// GetHero returns the hero document, or nil when it was never set.
func (s *SiteConfigCollection) GetHero(ctx context.Context) (*models.HeroConfig, error) {
	var hero models.HeroConfig
	err := s.coll.FindOne(ctx, bson.M{"_id": heroDocID}).Decode(&hero)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// SetHeroText updates title and subtitle, creating the document if needed.
func (s *SiteConfigCollection) SetHeroText(ctx context.Context, title, subtitle string) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": heroDocID},
		bson.M{"$set": bson.M{"title": title, "subtitle": subtitle}},
		options.Update().SetUpsert(true))
	return err
}

// SetHeroImage updates the stored hero image reference.
func (s *SiteConfigCollection) SetHeroImage(ctx context.Context, key, url string) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": heroDocID},
		bson.M{"$set": bson.M{"imageKey": key, "imageUrl": url}},
		options.Update().SetUpsert(true))
	return err
}
