package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/nabeelsyed11/Kimia-Reality/config"
	"github.com/nabeelsyed11/Kimia-Reality/logger"
	"github.com/nabeelsyed11/Kimia-Reality/models"
	"github.com/nabeelsyed11/Kimia-Reality/query"
)

// DashboardController serves the admin dashboard aggregates, layered on the
// query builder with no filters applied.
type DashboardController struct {
	properties *mongo.Collection
	blogs      *mongo.Collection
}

func NewDashboardController() *DashboardController {
	return &DashboardController{
		properties: config.GetCollection("properties"),
		blogs:      config.GetCollection("blogs"),
	}
}

// Stats returns the dashboard aggregate counts.
func (dc *DashboardController) Stats(c echo.Context) error {
	properties := []models.Property{}
	cursor, err := dc.properties.Find(context.Background(), query.PropertyFilter{}.Predicate(), query.NewestFirst())
	if err != nil {
		logger.Get().Error("fetching properties for stats failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch stats"))
	}
	if err := cursor.All(context.Background(), &properties); err != nil {
		logger.Get().Error("decoding properties for stats failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch stats"))
	}

	blogs := []models.Blog{}
	cursor, err = dc.blogs.Find(context.Background(), query.BlogFilter{}.Predicate(), query.NewestFirst())
	if err != nil {
		logger.Get().Error("fetching blogs for stats failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch stats"))
	}
	if err := cursor.All(context.Background(), &blogs); err != nil {
		logger.Get().Error("decoding blogs for stats failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch stats"))
	}

	return c.JSON(http.StatusOK, models.OK(query.Stats(properties, blogs)))
}
