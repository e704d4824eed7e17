package db_models

import "gorm.io/datatypes"

type Itinerary struct {
	BaseModel
	Title           string                                `gorm:"not null" json:"title"`
	Description     string                                `gorm:"type:text;not null" json:"description"`
	Duration        int                                   `gorm:"not null" json:"duration"`
	Location        string                                `gorm:"not null" json:"location"`
	Country         string                                `gorm:"index;not null" json:"country"`
	Highlights      StringList                            `gorm:"not null" json:"highlights"`
	DayByDay        datatypes.JSONType[map[string]string] `gorm:"not null" json:"dayByDay"`
	Price           float64                               `gorm:"not null" json:"price"`
	Category        string                                `gorm:"index" json:"category"`
	PackageType     string                                `gorm:"index" json:"packageType"`
	DifficultyLevel string                                `gorm:"index" json:"difficultyLevel"`
	ImageURL        string                                `json:"imageUrl"`
	AverageRating   float64                               `gorm:"not null;default:0" json:"averageRating"`
	TotalReviews    int                                   `gorm:"not null;default:0" json:"totalReviews"`
}
