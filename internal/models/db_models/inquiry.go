package db_models

type Inquiry struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Type    string `gorm:"not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
}
