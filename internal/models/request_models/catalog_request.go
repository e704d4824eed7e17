package request_models

type CreateTeamMemberRequest struct {
	Name              string `json:"name" binding:"required,min=2"`
	Role              string `json:"role" binding:"required"`
	Bio               string `json:"bio"`
	ImageURL          string `json:"imageUrl"`
	Specialty         string `json:"specialty"`
	YearsOfExperience *int   `json:"yearsOfExperience" binding:"omitempty,min=0"`
}

type CreateFleetVehicleRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Features    []string `json:"features" binding:"dive,required"`
	ImageURL    string   `json:"imageUrl"`
	Type        string   `json:"type"`
	Available   *bool    `json:"available"`
}
