package places

type CreatePlaceRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,min=2,max=1024"`
	Price       float64  `json:"price" validate:"gte=0"`
	Latitude    float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Capacity    int      `json:"capacity" validate:"required,gte=1,lte=64"`
	AmenityIDs  []string `json:"amenity_ids"`
}

type UpdatePlaceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Capacity    *int     `json:"capacity"`
}
