package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedProperty bookmarks a listing for a user.
type SavedProperty struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
