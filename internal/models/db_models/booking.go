package db_models

// Booking references an itinerary loosely; the id is not checked.
type Booking struct {
	BaseModel
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"not null" json:"email"`
	Phone            string `json:"phone"`
	CountryCode      string `json:"countryCode"`
	ItineraryID      uint   `gorm:"index;not null" json:"itineraryId"`
	PreferredDates   string `gorm:"not null" json:"preferredDates"`
	NumberOfAdults   int    `gorm:"not null;default:1" json:"numberOfAdults"`
	NumberOfKids     int    `gorm:"not null;default:0" json:"numberOfKids"`
	NumberOfToddlers int    `gorm:"not null;default:0" json:"numberOfToddlers"`
	Message          string `gorm:"type:text" json:"message"`
}
