package response_models

type DonationIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type SubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
}
