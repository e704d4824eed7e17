package request_models

type CreateBookingRequest struct {
	Name             string `json:"name" binding:"required,min=2"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	CountryCode      string `json:"countryCode"`
	ItineraryID      uint   `json:"itineraryId" binding:"required"`
	PreferredDates   string `json:"preferredDates" binding:"required"`
	NumberOfAdults   *int   `json:"numberOfAdults" binding:"omitempty,min=1"`
	NumberOfKids     *int   `json:"numberOfKids" binding:"omitempty,min=0"`
	NumberOfToddlers *int   `json:"numberOfToddlers" binding:"omitempty,min=0"`
	Message          string `json:"message"`
}

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Type    string `json:"type" binding:"required"`
	Message string `json:"message" binding:"required,min=5"`
}

type CreateVolunteerRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	Role         string   `json:"role" binding:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Availability string   `json:"availability"`
	Skills       []string `json:"skills" binding:"dive,required"`
	Status       string   `json:"status" binding:"omitempty,oneof=active inactive pending"`
}
