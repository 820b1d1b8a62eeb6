package models

// HeroConfig is the single hero-banner document in the siteConfig
// collection.
type HeroConfig struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	ImageKey string `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}
