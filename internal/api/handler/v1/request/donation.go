package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDonationRequest struct {
	FoodType          string `json:"foodType"`
	ServingsTotal     int    `json:"servingsTotal"`
	DietaryCategory   string `json:"dietaryCategory"`
	PickupWindowStart string `json:"pickupWindowStart"`
	PickupWindowEnd   string `json:"pickupWindowEnd"`
	ExpiryAt          string `json:"expiryAt"`
	LocationText      string `json:"locationText,omitempty"`
	City              string `json:"city,omitempty"`
	Zone              string `json:"zone,omitempty"`

	// LotSize bounds the servings of each created lot. Absent means one lot
	// holding the whole donation.
	LotSize *int `json:"lotSize,omitempty"`
}

// Validate checks shape and ranges only; it never consults external state.
// All violations are reported together in a single message.
func (req *CreateDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FoodType, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.ServingsTotal, validation.Required, validation.Min(1), validation.Max(5000)),
		validation.Field(&req.DietaryCategory, validation.Required, validation.In("VEG", "NON_VEG", "BOTH", "JAIN", "VEGAN")),
		validation.Field(&req.PickupWindowStart, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.PickupWindowEnd, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.ExpiryAt, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.LocationText, validation.Length(2, 200)),
		validation.Field(&req.City, validation.Length(2, 60)),
		validation.Field(&req.Zone, validation.Length(2, 60)),
		validation.Field(&req.LotSize, validation.Min(1), validation.Max(5000)),
	)
}
