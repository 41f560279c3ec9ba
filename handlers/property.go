package handlers

import (
	"context"
	"net/http"
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
	"github.com/nabeelsyed11/Kimia-Reality/query"
)

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	return &PropertyController{collection: config.GetCollection("properties")}
}

// ListProperties returns every property matching the optional search
// filters, newest first.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	metrics.PropertySearchesTotal.Inc()

	filter := query.ParsePropertyFilter(c.QueryParams())
	cursor, err := pc.collection.Find(context.Background(), filter.Predicate(), query.NewestFirst())
	if err != nil {
		logger.Get().Error("property search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch properties"))
	}
	defer cursor.Close(context.Background())

	properties := []models.Property{}
	if err := cursor.All(context.Background(), &properties); err != nil {
		logger.Get().Error("decoding properties failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch properties"))
	}
	return c.JSON(http.StatusOK, models.OK(properties))
}

// GetProperty returns a single property by its store identifier.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid property ID format"))
	}

	var property models.Property
	err = pc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
	}
	if err != nil {
		logger.Get().Error("fetching property failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch property"))
	}
	return c.JSON(http.StatusOK, models.OK(property))
}

// CreateProperty inserts a new property from the admin form submission.
func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	property.SetDefaults()
	if err := c.Validate(&property); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	if _, err := pc.collection.InsertOne(context.Background(), property); err != nil {
		logger.Get().Error("creating property failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create property"))
	}
	return c.JSON(http.StatusCreated, models.OK(property))
}

// UpdateProperty replaces every mutable field of an existing property.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid property ID format"))
	}

	var update models.Property
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	update.SetDefaults()
	if err := c.Validate(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	updateDoc := bson.M{
		"title":          update.Title,
		"description":    update.Description,
		"price":          update.Price,
		"location":       update.Location,
		"propertyType":   update.PropertyType,
		"status":         update.Status,
		"bedrooms":       update.Bedrooms,
		"bathrooms":      update.Bathrooms,
		"area":           update.Area,
		"yearBuilt":      update.YearBuilt,
		"features":       update.Features,
		"amenities":      update.Amenities,
		"images":         update.Images,
		"mainImage":      update.MainImage,
		"virtualTourUrl": update.VirtualTourURL,
		"featured":       update.Featured,
		"updatedAt":      time.Now(),
	}

	var property models.Property
	err = pc.collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		findOneAndUpdateAfter(),
	).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
	}
	if err != nil {
		logger.Get().Error("updating property failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to update property"))
	}
	return c.JSON(http.StatusOK, models.OK(property))
}

// DeleteProperty removes a property. A malformed identifier short-circuits
// to a 400 without reaching the store.
func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid property ID format"))
	}

	result, err := pc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		logger.Get().Error("deleting property failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to delete property"))
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
	}
	return c.JSON(http.StatusOK, models.OK(map[string]interface{}{}))
}
