package domain

import "time"

type Category string

const (
	CategoryCoffee   Category = "Coffee"
	CategoryBeverage Category = "Beverage"
	CategoryTea      Category = "Tea"
	CategoryBakery   Category = "Bakery"
	CategorySmoothie Category = "Smoothie"
)

// Categories is the fixed display order of the catalog. A category's position
// here determines its sort_order band.
var Categories = []Category{
	CategoryCoffee,
	CategoryBeverage,
	CategoryTea,
	CategoryBakery,
	CategorySmoothie,
}

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsSoldOut   bool      `json:"is_sold_out"`
	IsSeasonal  bool      `json:"is_seasonal"`
	IsSignature bool      `json:"is_signature"`
	IsVisible   bool      `json:"is_visible"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// RemoveImage asks an update to clear ImageURL. It is never stored.
	RemoveImage bool `json:"remove_image,omitempty"`
}

type CategoryBand struct {
	Category Category `json:"category"`
	Base     int      `json:"base"`
	Max      int      `json:"max"`
}

type BoardSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

// Board is the public digital menu: visible items only.
type Board struct {
	Signature []MenuItem     `json:"signature"`
	Sections  []BoardSection `json:"sections"`
}

type ChangeEvent struct {
	Type      string    `json:"type"`
	Table     string    `json:"table"`
	ID        int       `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
