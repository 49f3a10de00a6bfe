package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dave-funds/betahome/models"
	"github.com/Dave-funds/betahome/repository"
)

// EnquiryController takes public enquiries about a listing and serves the
// admin inbox.
type EnquiryController struct {
	collection *mongo.Collection
	properties repository.PropertyRepository
}

func NewEnquiryController(collection *mongo.Collection, properties repository.PropertyRepository) *EnquiryController {
	return &EnquiryController{collection: collection, properties: properties}
}

type createEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (ec *EnquiryController) CreateEnquiry(c echo.Context) error {
	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	var req createEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fail(c, http.StatusBadRequest, KindValidation, "name, email and message are required")
	}

	if _, err := ec.properties.FindByID(context.Background(), propertyID); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, KindNotFound, "Property not found")
		}
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to check property")
	}

	enquiry := models.Enquiry{
		ID:         primitive.NewObjectID(),
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}
	if _, err := ec.collection.InsertOne(context.Background(), enquiry); err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to create enquiry")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"enquiry": enquiry,
	})
}

func (ec *EnquiryController) ListEnquiries(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != "admin" {
		return fail(c, http.StatusForbidden, KindValidation, "Access denied")
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ec.collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to fetch enquiries")
	}
	defer cursor.Close(context.Background())

	enquiries := []models.Enquiry{}
	for cursor.Next(context.Background()) {
		var e models.Enquiry
		if err := cursor.Decode(&e); err != nil {
			continue
		}
		enquiries = append(enquiries, e)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"enquiries": enquiries,
	})
}
