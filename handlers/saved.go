package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Dave-funds/betahome/models"
	"github.com/Dave-funds/betahome/repository"
)

// SavedController lets an authenticated user bookmark listings.
type SavedController struct {
	collection *mongo.Collection
	properties repository.PropertyRepository
}

func NewSavedController(collection *mongo.Collection, properties repository.PropertyRepository) *SavedController {
	return &SavedController{collection: collection, properties: properties}
}

func (sc *SavedController) SaveProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	if _, err := sc.properties.FindByID(context.Background(), propertyID); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, KindNotFound, "Property not found")
		}
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to check property")
	}

	count, err := sc.collection.CountDocuments(context.Background(), bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to check saved property")
	}
	if count > 0 {
		return fail(c, http.StatusConflict, KindValidation, "Property already saved")
	}

	saved := models.SavedProperty{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	if _, err := sc.collection.InsertOne(context.Background(), saved); err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to save property")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"saved":   saved,
	})
}

func (sc *SavedController) ListSaved(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	cursor, err := sc.collection.Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to fetch saved properties")
	}
	defer cursor.Close(context.Background())

	saved := []models.SavedProperty{}
	for cursor.Next(context.Background()) {
		var s models.SavedProperty
		if err := cursor.Decode(&s); err != nil {
			continue
		}
		saved = append(saved, s)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"saved":   saved,
	})
}

func (sc *SavedController) RemoveSaved(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	if _, err := sc.collection.DeleteOne(context.Background(), bson.M{"userId": userID, "propertyId": propertyID}); err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to remove saved property")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Saved property removed",
	})
}
