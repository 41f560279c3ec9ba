package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/nabeelsyed11/Kimia-Reality/config"
	"github.com/nabeelsyed11/Kimia-Reality/logger"
	"github.com/nabeelsyed11/Kimia-Reality/metrics"
	"github.com/nabeelsyed11/Kimia-Reality/models"
	"github.com/nabeelsyed11/Kimia-Reality/utils"
)

// AuthController issues and honors server-validated tokens. This replaces
// the site's earlier client-side credential check, which provided no real
// access control.
type AuthController struct {
	collection *mongo.Collection
	jwt        config.JWTConfig
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{
		collection: config.GetCollection("users"),
		jwt:        cfg.JWT,
	}
}

// Login checks credentials against the users collection and issues a JWT.
func (ac *AuthController) Login(c echo.Context) error {
	metrics.AuthAttemptsTotal.Inc()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	var user models.User
	err := ac.collection.FindOne(context.Background(), bson.M{"email": strings.ToLower(req.Email)}).Decode(&user)
	if err != nil {
		metrics.AuthFailuresTotal.Inc()
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		metrics.AuthFailuresTotal.Inc()
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
	}

	ttl := time.Duration(ac.jwt.ExpiryHours) * time.Hour
	token, err := utils.SignToken(ac.jwt.Secret, ttl, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Get().Error("signing token failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to generate token"))
	}

	user.Sanitize()
	return c.JSON(http.StatusOK, models.OK(models.LoginResponse{Token: token, User: user}))
}

// Register creates a new user with a hashed password. Admin-only.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	email := strings.ToLower(req.Email)
	count, err := ac.collection.CountDocuments(context.Background(), bson.M{"email": email})
	if err != nil {
		logger.Get().Error("checking user email failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create user"))
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("A user with this email already exists"))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Get().Error("hashing password failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create user"))
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     email,
		Password:  hash,
		Role:      req.Role,
		Avatar:    req.Avatar,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	user.SetDefaults()

	if _, err := ac.collection.InsertOne(context.Background(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Fail("A user with this email already exists"))
		}
		logger.Get().Error("creating user failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create user"))
	}

	user.Sanitize()
	return c.JSON(http.StatusCreated, models.OK(user))
}
