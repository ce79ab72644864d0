package models

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey"           json:"id"`
	Name         string    `gorm:"not null"             json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	IsAdmin      bool      `gorm:"default:false"        json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null"   json:"name"`
	Slug        string    `gorm:"not null"   json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID          string  `gorm:"primaryKey"     json:"id"`
	Name        string  `gorm:"not null"       json:"name"`
	Description string  `gorm:"not null"       json:"description"`
	Price       float64 `gorm:"not null"       json:"price"`
	CategoryID  string  `gorm:"index;not null" json:"category_id"`
	// CategoryName is stamped at creation time and never follows later
	// category renames.
	CategoryName   string         `gorm:"not null"        json:"category_name"`
	ImageURL       string         `json:"image_url"`
	Images         []string       `gorm:"serializer:json" json:"images"`
	Specifications map[string]any `gorm:"serializer:json" json:"specifications"`
	InStock        bool           `gorm:"default:true"    json:"in_stock"`
	CreatedAt      time.Time      `json:"created_at"`
}

// CartItem is embedded in Cart, not a table of its own. All product fields
// are a snapshot taken when the item entered the cart.
type CartItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

type Cart struct {
	ID     string     `gorm:"primaryKey"           json:"id"`
	UserID string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"serializer:json"      json:"items"`
	Total  float64    `json:"total"`
	// Version guards the read-modify-write cycle: every persisted
	// mutation compare-and-swaps on it.
	Version   int64     `gorm:"not null;default:0" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserName     string    `gorm:"not null"   json:"user_name"`
	UserLocation string    `json:"user_location"`
	Rating       int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Comment      string    `gorm:"not null"   json:"comment"`
	UserImage    string    `json:"user_image"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null"   json:"name"`
	Email     string    `gorm:"not null"   json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"not null"   json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
