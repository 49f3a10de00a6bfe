package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dave-funds/betahome/models"
)

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(collection *mongo.Collection) PropertyRepository {
	return &mongoPropertyRepository{collection: collection}
}

func (r *mongoPropertyRepository) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	p.ApplyDefaults()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *mongoPropertyRepository) Find(ctx context.Context, q ListQuery) ([]models.Property, error) {
	opts := options.Find().SetSort(sortSpec(q.SortBy))
	if q.Limit > 0 {
		opts = opts.SetLimit(q.Limit)
	}

	cursor, err := r.collection.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	return properties, cursor.Err()
}

func (r *mongoPropertyRepository) Replace(ctx context.Context, p *models.Property) (*models.Property, error) {
	p.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// allowedSortFields are the fields a client may sort the listing by.
var allowedSortFields = map[string]bool{
	"price":      true,
	"title":      true,
	"bedroom":    true,
	"bathrooms":  true,
	"squareFeet": true,
	"createdAt":  true,
}

func buildFilter(q ListQuery) bson.M {
	filter := bson.M{}
	if q.Location != "" {
		filter["location"] = bson.M{"$regex": q.Location, "$options": "i"}
	}
	if q.PropertyType != "" {
		filter["propertyType"] = bson.M{"$regex": q.PropertyType, "$options": "i"}
	}
	if q.Bedroom != nil {
		filter["bedroom"] = *q.Bedroom
	}
	if !q.ExcludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": q.ExcludeID}
	}
	return filter
}

// sortSpec orders by the requested field ascending with newest-first as the
// tie-break; unknown or absent fields fall back to newest-first alone.
func sortSpec(sortBy string) bson.D {
	if sortBy == "" || sortBy == "createdAt" || !allowedSortFields[sortBy] {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return bson.D{{Key: sortBy, Value: 1}, {Key: "createdAt", Value: -1}}
}
