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
	"github.com/Dave-funds/betahome/utils"
)

type UserController struct {
	collection *mongo.Collection
}

func NewUserController(collection *mongo.Collection) *UserController {
	return &UserController{collection: collection}
}

func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fail(c, http.StatusBadRequest, KindValidation, "email, password and name are required")
	}

	var existing models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return fail(c, http.StatusConflict, KindValidation, "User with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to hash password")
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      "user",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := uc.collection.InsertOne(context.Background(), user); err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to create user")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to generate token")
	}

	user.Password = ""

	return c.JSON(http.StatusCreated, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid request body")
	}

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return fail(c, http.StatusUnauthorized, KindValidation, "Invalid email or password")
	}
	if !user.IsActive {
		return fail(c, http.StatusUnauthorized, KindValidation, "Account is deactivated")
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return fail(c, http.StatusUnauthorized, KindValidation, "Invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, KindPersistence, "Failed to generate token")
	}

	user.Password = ""

	return c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

func (uc *UserController) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return fail(c, http.StatusNotFound, KindNotFound, "User not found")
	}

	user.Password = ""

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}
