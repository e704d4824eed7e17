package db_models

type TeamMember struct {
	BaseModel
	Name              string `gorm:"not null" json:"name"`
	Role              string `gorm:"not null" json:"role"`
	Bio               string `gorm:"type:text" json:"bio"`
	ImageURL          string `json:"imageUrl"`
	Specialty         string `json:"specialty"`
	YearsOfExperience int    `gorm:"not null;default:0;check:years_of_experience >= 0" json:"yearsOfExperience"`
}
