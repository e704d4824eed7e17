package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
	log            *zap.Logger
}

func NewPaymentController(paymentService services.PaymentService, log *zap.Logger) *PaymentController {
	return &PaymentController{paymentService: paymentService, log: log}
}

// CreateDonationIntent godoc
// @Summary Start a one-off card donation
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateDonationIntentRequest true "Amount in USD"
// @Success 200 {object} response_models.DonationIntentResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /create-donation-intent [post]
func (pc *PaymentController) CreateDonationIntent(c *gin.Context) {
	var req request_models.CreateDonationIntentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}

	resp, err := pc.paymentService.CreateDonationIntent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, resp)
}

// CreateSubscription godoc
// @Summary Start a monthly donation
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription"
// @Success 200 {object} response_models.SubscriptionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /create-subscription [post]
func (pc *PaymentController) CreateSubscription(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}

	resp, err := pc.paymentService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, resp)
}
