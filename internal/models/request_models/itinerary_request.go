package request_models

// ItineraryFilter is bound from the listing query string. Empty fields are ignored.
type ItineraryFilter struct {
	Query           string `form:"query"`
	Category        string `form:"category"`
	PackageType     string `form:"packageType"`
	Country         string `form:"country"`
	DifficultyLevel string `form:"difficultyLevel"`
}

type CreateItineraryRequest struct {
	Title           string            `json:"title" binding:"required,min=3"`
	Description     string            `json:"description" binding:"required"`
	Duration        int               `json:"duration" binding:"required,min=1"`
	Location        string            `json:"location" binding:"required"`
	Country         string            `json:"country" binding:"required"`
	Highlights      []string          `json:"highlights" binding:"dive,required"`
	DayByDay        map[string]string `json:"dayByDay"`
	Price           float64           `json:"price" binding:"gte=0"`
	Category        string            `json:"category" binding:"required"`
	PackageType     string            `json:"packageType"`
	DifficultyLevel string            `json:"difficultyLevel"`
	ImageURL        string            `json:"imageUrl" binding:"omitempty,uri"`
}
