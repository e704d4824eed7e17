package db_models

type FleetVehicle struct {
	BaseModel
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	Features    StringList `gorm:"not null" json:"features"`
	ImageURL    string     `json:"imageUrl"`
	Type        string     `json:"type"`
	Available   bool       `gorm:"index;not null" json:"available"`
}
