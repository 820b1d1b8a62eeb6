package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo references its category by name, not by id. A category rename
// therefore has to rewrite the Category field of every photo that points at
// the old name (see gallery.Service).
type Photo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Category string             `bson:"category" json:"category"`
	// ImageKey is the object-store key of the stored binary. Empty on some
	// legacy records that predate blob storage.
	ImageKey         string    `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	ImageURL         string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	OriginalFileName string    `bson:"originalFileName,omitempty" json:"originalFileName,omitempty"`
	OriginalMimeType string    `bson:"originalMimeType,omitempty" json:"originalMimeType,omitempty"`
	FileSizeKB       int       `bson:"fileSizeKB,omitempty" json:"fileSizeKB,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}
