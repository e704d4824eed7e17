package request_models

type CreateDonationRequest struct {
	Name         string  `json:"name" binding:"required,min=2"`
	Email        string  `json:"email" binding:"required,email"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DonationType string  `json:"donationType" binding:"required"`
	ProjectID    *uint   `json:"projectId"`
}

// DonationInquiryRequest is mailed to the sales desk and not stored.
type DonationInquiryRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Message      string `json:"message"`
	DonationType string `json:"donationType"`
	Title        string `json:"title"`
}
