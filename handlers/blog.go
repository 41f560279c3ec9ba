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

type BlogController struct {
	collection *mongo.Collection
}

func NewBlogController() *BlogController {
	return &BlogController{collection: config.GetCollection("blogs")}
}

// ListBlogs returns blogs matching the optional category/published filters,
// newest first. Omitting the published filter is the admin path to drafts.
func (bc *BlogController) ListBlogs(c echo.Context) error {
	filter := query.ParseBlogFilter(c.QueryParams())
	cursor, err := bc.collection.Find(context.Background(), filter.Predicate(), query.NewestFirst())
	if err != nil {
		logger.Get().Error("blog search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch blogs"))
	}
	defer cursor.Close(context.Background())

	blogs := []models.Blog{}
	if err := cursor.All(context.Background(), &blogs); err != nil {
		logger.Get().Error("decoding blogs failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch blogs"))
	}
	return c.JSON(http.StatusOK, models.OK(blogs))
}

// GetBlog fetches a single blog by slug and increments its view counter.
// The increment is read-then-write; concurrent fetches of the same post can
// lose a count, which is acceptable for this analytics-grade value.
func (bc *BlogController) GetBlog(c echo.Context) error {
	slug := c.Param("slug")

	var blog models.Blog
	err := bc.collection.FindOne(context.Background(), bson.M{"slug": slug}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return c.JSON(http.StatusNotFound, models.Fail("Blog not found"))
	}
	if err != nil {
		logger.Get().Error("fetching blog failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch blog"))
	}

	blog.Views++
	_, err = bc.collection.UpdateOne(
		context.Background(),
		bson.M{"_id": blog.ID},
		bson.M{"$set": bson.M{"views": blog.Views}},
	)
	if err != nil {
		logger.Get().Error("incrementing blog views failed", zap.Error(err), zap.String("slug", slug))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch blog"))
	}

	metrics.BlogViewsTotal.Inc()
	return c.JSON(http.StatusOK, models.OK(blog))
}

// CreateBlog inserts a new blog post. The slug must be unique; a duplicate
// fails validation and leaves the existing record untouched.
func (bc *BlogController) CreateBlog(c echo.Context) error {
	var blog models.Blog
	if err := c.Bind(&blog); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	blog.SetDefaults()
	if err := c.Validate(&blog); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	count, err := bc.collection.CountDocuments(context.Background(), bson.M{"slug": blog.Slug})
	if err != nil {
		logger.Get().Error("checking blog slug failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create blog"))
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("A blog with this slug already exists"))
	}

	blog.ID = primitive.NewObjectID()
	blog.Views = 0
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()

	if _, err := bc.collection.InsertOne(context.Background(), blog); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Fail("A blog with this slug already exists"))
		}
		logger.Get().Error("creating blog failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create blog"))
	}
	return c.JSON(http.StatusCreated, models.OK(blog))
}

// UpdateBlog replaces the mutable fields of a blog post by slug. The view
// counter is never touched by edits.
func (bc *BlogController) UpdateBlog(c echo.Context) error {
	slug := c.Param("slug")

	var update models.Blog
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	update.SetDefaults()
	if err := c.Validate(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	updateDoc := bson.M{
		"title":         update.Title,
		"slug":          update.Slug,
		"excerpt":       update.Excerpt,
		"content":       update.Content,
		"author":        update.Author,
		"category":      update.Category,
		"tags":          update.Tags,
		"featuredImage": update.FeaturedImage,
		"published":     update.Published,
		"updatedAt":     time.Now(),
	}

	var blog models.Blog
	err := bc.collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"slug": slug},
		bson.M{"$set": updateDoc},
		findOneAndUpdateAfter(),
	).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return c.JSON(http.StatusNotFound, models.Fail("Blog not found"))
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Fail("A blog with this slug already exists"))
		}
		logger.Get().Error("updating blog failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to update blog"))
	}
	return c.JSON(http.StatusOK, models.OK(blog))
}

// DeleteBlog removes a blog post by slug. Any string is a legal slug, so no
// format validation applies; a missing slug is simply a 404.
func (bc *BlogController) DeleteBlog(c echo.Context) error {
	slug := c.Param("slug")

	result, err := bc.collection.DeleteOne(context.Background(), bson.M{"slug": slug})
	if err != nil {
		logger.Get().Error("deleting blog failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to delete blog"))
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Fail("Blog not found"))
	}
	return c.JSON(http.StatusOK, models.OK(map[string]interface{}{}))
}
