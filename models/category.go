package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservedCategoryName is the virtual "All" category used by the site
// frontend. No stored category may take this name.
const ReservedCategoryName = "전체"

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
