package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nabeelsyed11/Kimia-Reality/logger"
	"github.com/nabeelsyed11/Kimia-Reality/models"
	"github.com/nabeelsyed11/Kimia-Reality/storage"
)

type UploadController struct {
	store *storage.LocalStore
}

func NewUploadController(store *storage.LocalStore) *UploadController {
	return &UploadController{store: store}
}

// Upload accepts one multipart file, persists it under a generated name, and
// returns the public reference path.
func (uc *UploadController) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("No file provided"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Get().Error("opening uploaded file failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to upload file"))
	}
	defer src.Close()

	name, err := uc.store.Save(src, fileHeader.Filename)
	if err != nil {
		logger.Get().Error("saving uploaded file failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to upload file"))
	}

	return c.JSON(http.StatusOK, models.UploadResponse{Success: true, URL: "/uploads/" + name})
}
