package response_models

type MailStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
