package db_models

type Donation struct {
	BaseModel
	Name             string  `gorm:"not null" json:"name"`
	Email            string  `gorm:"not null" json:"email"`
	Amount           float64 `gorm:"not null" json:"amount"`
	DonationType     string  `gorm:"not null" json:"donationType"`
	ProjectID        *uint   `json:"projectId"`
	StripePaymentID  string  `json:"stripePaymentId"`
	StripeCustomerID string  `json:"stripeCustomerId"`
}
