package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/services"
	"safari/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
	log            *zap.Logger
}

func NewGalleryController(galleryService services.GalleryServiceInterface, log *zap.Logger) *GalleryController {
	return &GalleryController{galleryService: galleryService, log: log}
}

// ListImages godoc
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Success 200 {array} response_models.GalleryImage
// @Failure 500 {object} utils.APIResponse
// @Router /gallery-images [get]
func (gc *GalleryController) ListImages(c *gin.Context) {
	images, err := gc.galleryService.ListImages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, gc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, images)
}
