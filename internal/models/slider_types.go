package models

// Slider is the model for the 'sliders' table. The image is mandatory.
type Slider struct {
	ID       int64  `json:"id" db:"id"`
	ImageURL string `json:"image_url" db:"image_url"`
}
