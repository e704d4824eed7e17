package db_models

const VolunteerStatusActive = "active"

type Volunteer struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Role         string     `gorm:"not null" json:"role"`
	Description  string     `gorm:"type:text" json:"description"`
	ImageURL     string     `json:"imageUrl"`
	Availability string     `json:"availability"`
	Skills       StringList `gorm:"not null" json:"skills"`
	Status       string     `gorm:"index;not null;default:'active'" json:"status"`
}
