package request_models

type CreateDonationIntentRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DonationType string  `json:"donationType"`
}

type CreateSubscriptionRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          string  `json:"name" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}
