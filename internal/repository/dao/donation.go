package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Donation struct {
	ID uint `gorm:"primaryKey"`

	DonorID uint `gorm:"not null;index"`
	Donor   User `gorm:"foreignKey:DonorID"`

	FoodType          string    `gorm:"not null"`
	ServingsTotal     int       `gorm:"not null"`
	DietaryCategory   string    `gorm:"not null"` // "VEG", "NON_VEG", "BOTH", "JAIN", or "VEGAN"
	PickupWindowStart time.Time `gorm:"not null"`
	PickupWindowEnd   time.Time `gorm:"not null"`
	ExpiryAt          time.Time `gorm:"not null"`

	LocationText *string
	City         *string
	Zone         *string

	Status string `gorm:"not null;default:'POSTED'"`

	Lots []DonationLot `gorm:"foreignKey:DonationID"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonationLot struct {
	ID uint `gorm:"primaryKey"`

	DonationID uint `gorm:"not null;index"`

	Servings int    `gorm:"not null"`
	Status   string `gorm:"not null;default:'OPEN'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

// InsertWithLots creates a donation together with one lot per entry of
// lotSizes, then re-reads the created lots in creation order. All writes
// happen in a single transaction so a donation is never observable
// without its full set of lots.
func (d *DonationDAO) InsertWithLots(ctx context.Context, donation Donation, lotSizes []int) (Donation, []DonationLot, error) {
	var lots []DonationLot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		newLots := make([]DonationLot, len(lotSizes))
		for i, servings := range lotSizes {
			newLots[i] = DonationLot{
				DonationID: donation.ID,
				Servings:   servings,
				Status:     "OPEN",
			}
		}
		if err := tx.Create(&newLots).Error; err != nil {
			return err
		}

		// Bulk-created rows may share a timestamp; id breaks the tie.
		return tx.
			Where("donation_id = ?", donation.ID).
			Order("created_at ASC, id ASC").
			Find(&lots).Error
	})
	if err != nil {
		return Donation{}, nil, err
	}

	return donation, lots, nil
}

func (d *DonationDAO) FindByDonorID(ctx context.Context, donorID uint, limit int) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

func (d *DonationDAO) FindAll(ctx context.Context, limit int) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}
