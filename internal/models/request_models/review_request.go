package request_models

type CreateReviewRequest struct {
	ItineraryID uint   `json:"itineraryId" binding:"required"`
	UserName    string `json:"userName" binding:"required,min=2,max=100"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"required"`
}
