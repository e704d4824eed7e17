package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/models/response_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type DonationController struct {
	donationService services.DonationServiceInterface
	log             *zap.Logger
}

func NewDonationController(donationService services.DonationServiceInterface, log *zap.Logger) *DonationController {
	return &DonationController{donationService: donationService, log: log}
}

// CreateDonation godoc
// @Summary Record a donation pledge
// @Tags Donations
// @Accept json
// @Produce json
// @Param request body request_models.CreateDonationRequest true "Donation"
// @Success 201 {object} db_models.Donation
// @Failure 400 {object} utils.APIResponse
// @Router /donations [post]
func (dc *DonationController) CreateDonation(c *gin.Context) {
	var req request_models.CreateDonationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}

	donation, err := dc.donationService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, donation)
}

// CreateDonationInquiry godoc
// @Summary Ask the sales desk about donating
// @Description Mailed only. Without a mail provider the inquiry is recorded in the logs and status is "recorded"
// @Tags Donations
// @Accept json
// @Produce json
// @Param request body request_models.DonationInquiryRequest true "Inquiry"
// @Success 200 {object} response_models.MailStatusResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /donation-inquiries [post]
func (dc *DonationController) CreateDonationInquiry(c *gin.Context) {
	var req request_models.DonationInquiryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}

	status, err := dc.donationService.SendDonationInquiry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}

	msg := "Inquiry sent"
	if status == services.MailRecorded {
		msg = "Inquiry recorded"
	}
	utils.RespondJSON(c, http.StatusOK, response_models.MailStatusResponse{Status: string(status), Message: msg})
}

// ListDonations godoc
// @Summary List donations
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} db_models.Donation
// @Router /donations [get]
func (dc *DonationController) ListDonations(c *gin.Context) {
	donations, err := dc.donationService.ListDonations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, donations)
}

// DonationTotals godoc
// @Summary Donation totals per type
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} repositories.DonationTotal
// @Router /donations/totals [get]
func (dc *DonationController) DonationTotals(c *gin.Context) {
	totals, err := dc.donationService.DonationTotals(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, dc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, totals)
}
