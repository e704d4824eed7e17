package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type InquiryController struct {
	inquiryService services.InquiryServiceInterface
	log            *zap.Logger
}

func NewInquiryController(inquiryService services.InquiryServiceInterface, log *zap.Logger) *InquiryController {
	return &InquiryController{inquiryService: inquiryService, log: log}
}

// CreateInquiry godoc
// @Summary Send a contact inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body request_models.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} db_models.Inquiry
// @Failure 400 {object} utils.APIResponse
// @Router /inquiries [post]
func (ic *InquiryController) CreateInquiry(c *gin.Context) {
	var req request_models.CreateInquiryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	inquiry, err := ic.inquiryService.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, inquiry)
}

// ListInquiries godoc
// @Summary List inquiries
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} db_models.Inquiry
// @Router /inquiries [get]
func (ic *InquiryController) ListInquiries(c *gin.Context) {
	inquiries, err := ic.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, inquiries)
}
