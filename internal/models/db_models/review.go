package db_models

type Review struct {
	BaseModel
	ItineraryID uint   `gorm:"index;not null" json:"itineraryId"`
	UserName    string `gorm:"not null" json:"userName"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string `gorm:"type:text;not null" json:"comment"`
}
