package domain

import "time"

type DonationStatus string

type LotStatus string

const (
	DonationStatusPosted DonationStatus = "POSTED"

	LotStatusOpen LotStatus = "OPEN"
)

// DietaryCategories lists the accepted dietary classifications of a donation.
var DietaryCategories = []string{"VEG", "NON_VEG", "BOTH", "JAIN", "VEGAN"}

// Donation is a donor's offer of surplus food, partitioned into lots.
// Invariant: PickupWindowStart < PickupWindowEnd <= ExpiryAt.
type Donation struct {
	ID                uint           `json:"id"`
	DonorID           uint           `json:"donor_id"`
	FoodType          string         `json:"foodType"`
	ServingsTotal     int            `json:"servingsTotal"`
	DietaryCategory   string         `json:"dietaryCategory"`
	PickupWindowStart time.Time      `json:"pickupWindowStart"`
	PickupWindowEnd   time.Time      `json:"pickupWindowEnd"`
	ExpiryAt          time.Time      `json:"expiryAt"`
	LocationText      string         `json:"locationText,omitempty"`
	City              string         `json:"city,omitempty"`
	Zone              string         `json:"zone,omitempty"`
	Status            DonationStatus `json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// DonationLot is a claimable sub-portion of a donation's total servings.
// The servings of all lots of a donation sum to the donation's ServingsTotal.
type DonationLot struct {
	ID         uint      `json:"id"`
	DonationID uint      `json:"donation_id"`
	Servings   int       `json:"servings"`
	Status     LotStatus `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
