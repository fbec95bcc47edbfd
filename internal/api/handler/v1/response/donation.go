package response

import (
	"time"

	"github.com/mealbridge/mealbridge-api/internal/domain"
)

type Donation struct {
	ID                uint      `json:"id"`
	Status            string    `json:"status"`
	FoodType          string    `json:"foodType"`
	ServingsTotal     int       `json:"servingsTotal"`
	DietaryCategory   string    `json:"dietaryCategory"`
	PickupWindowStart time.Time `json:"pickupWindowStart"`
	PickupWindowEnd   time.Time `json:"pickupWindowEnd"`
	ExpiryAt          time.Time `json:"expiryAt"`
	City              string    `json:"city,omitempty"`
	Zone              string    `json:"zone,omitempty"`

	// CreatedAt is only part of the list projection.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type DonationLot struct {
	ID       uint   `json:"id"`
	Servings int    `json:"servings"`
	Status   string `json:"status"`
}

type CreateDonationResponse struct {
	OK       bool          `json:"ok"`
	Donation Donation      `json:"donation"`
	Lots     []DonationLot `json:"lots"`
}

type ListDonationsResponse struct {
	OK        bool       `json:"ok"`
	Donations []Donation `json:"donations"`
}

func NewCreateDonationResponse(d domain.Donation, lots []domain.DonationLot) CreateDonationResponse {
	out := make([]DonationLot, len(lots))
	for i, lot := range lots {
		out[i] = DonationLot{
			ID:       lot.ID,
			Servings: lot.Servings,
			Status:   string(lot.Status),
		}
	}

	return CreateDonationResponse{
		OK:       true,
		Donation: newDonation(d),
		Lots:     out,
	}
}

func NewListDonationsResponse(donations []domain.Donation) ListDonationsResponse {
	out := make([]Donation, len(donations))
	for i, d := range donations {
		out[i] = newDonation(d)
		createdAt := d.CreatedAt
		out[i].CreatedAt = &createdAt
	}

	return ListDonationsResponse{
		OK:        true,
		Donations: out,
	}
}

func newDonation(d domain.Donation) Donation {
	return Donation{
		ID:                d.ID,
		Status:            string(d.Status),
		FoodType:          d.FoodType,
		ServingsTotal:     d.ServingsTotal,
		DietaryCategory:   d.DietaryCategory,
		PickupWindowStart: d.PickupWindowStart,
		PickupWindowEnd:   d.PickupWindowEnd,
		ExpiryAt:          d.ExpiryAt,
		City:              d.City,
		Zone:              d.Zone,
	}
}
