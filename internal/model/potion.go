package model

import "time"

// Ratings holds the per-aspect quality ratings of a potion.
type Ratings struct {
	Strength    float64 `json:"strength"`
	Flavor      float64 `json:"flavor"`
	Duration    float64 `json:"duration"`
	SideEffects float64 `json:"side_effects"`
}

// Potion represents a potion record in the database.
type Potion struct {
	ID        string
	Name      string
	VendorID  string
	Category  string
	Price     float64
	Score     float64
	Ratings   Ratings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PotionRequest represents a potion create or full-overwrite update payload.
type PotionRequest struct {
	Name     string  `json:"name"`
	VendorID string  `json:"vendor_id"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Score    float64 `json:"score"`
	Ratings  Ratings `json:"ratings"`
}

// PotionResponse represents a potion record in API responses.
type PotionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VendorID  string    `json:"vendor_id"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Score     float64   `json:"score"`
	Ratings   Ratings   `json:"ratings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
