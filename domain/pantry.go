package domain

import (
	"errors"
	"time"
)

const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusExpired = "Expired"

	// ExpiringSoonDays is the largest number of days remaining that still shows
	// the expiring-soon marker.
	ExpiringSoonDays = 7
)

var (
	MessageInvalidExpiryDate = "Missing or invalid expiry date"

	ErrPantryEntryNotFound = errors.New("pantry entry not found")
)

type (
	AddPantryEntryRequest struct {
		Name       string `json:"name" form:"name" validate:"required"`
		ExpiryDate string `json:"expiryDate" form:"expiryDate" validate:"required,date"`
	}

	PantryEntryResponse struct {
		ID             int64     `json:"id"`
		ProductID      int64     `json:"product_id"`
		Name           string    `json:"name"`
		ExternalImage  string    `json:"external_image,omitempty"`
		ExpiryDate     time.Time `json:"expiry_date"`
		Opened         bool      `json:"opened"`
		OnShoppingList bool      `json:"on_shopping_list"`
		DaysRemaining  int       `json:"days_remaining"`
		ExpiringSoon   bool      `json:"expiring_soon"`
		Status         string    `json:"status"`
	}
)
