package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Dave-funds/betahome/models"
)

// ErrNotFound is returned when an id has no matching document.
var ErrNotFound = errors.New("property not found")

// ListQuery narrows and orders a catalog listing. String filters are
// case-insensitive substring matches; Bedroom is an exact match when set.
// SortBy must name a whitelisted field; anything else (or empty) falls back
// to createdAt descending. ExcludeID drops a single document from the result.
type ListQuery struct {
	Location     string
	PropertyType string
	Bedroom      *int
	ExcludeID    primitive.ObjectID
	SortBy       string
	Limit        int64
}

// PropertyRepository is the persistence surface for the property catalog.
// Implementations must be safe for concurrent use.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) (*models.Property, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Find(ctx context.Context, q ListQuery) ([]models.Property, error)
	Replace(ctx context.Context, p *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
