package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealbridge/mealbridge-api/internal/domain"
)

type stubUserRepo struct {
	users map[string]domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

type stubDonationRepo struct {
	gotLotSizes []int
	donations   []domain.Donation

	findAllCalled     bool
	findByDonorCalled bool
	gotDonorID        uint
	gotLimit          int
}

func (r *stubDonationRepo) CreateWithLots(_ context.Context, donation domain.Donation, lotSizes []int) (domain.Donation, []domain.DonationLot, error) {
	r.gotLotSizes = lotSizes

	donation.ID = 1
	donation.Status = domain.DonationStatusPosted

	lots := make([]domain.DonationLot, len(lotSizes))
	for i, servings := range lotSizes {
		lots[i] = domain.DonationLot{
			ID:         uint(i + 1),
			DonationID: donation.ID,
			Servings:   servings,
			Status:     domain.LotStatusOpen,
		}
	}

	return donation, lots, nil
}

func (r *stubDonationRepo) FindByDonorID(_ context.Context, donorID uint, limit int) ([]domain.Donation, error) {
	r.findByDonorCalled = true
	r.gotDonorID = donorID
	r.gotLimit = limit

	return r.donations, nil
}

func (r *stubDonationRepo) FindAll(_ context.Context, limit int) ([]domain.Donation, error) {
	r.findAllCalled = true
	r.gotLimit = limit

	return r.donations, nil
}

func validDonation() domain.Donation {
	return domain.Donation{
		FoodType:          "cooked rice",
		ServingsTotal:     250,
		DietaryCategory:   "VEG",
		PickupWindowStart: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		PickupWindowEnd:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
		ExpiryAt:          time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:            domain.DonationStatusPosted,
	}
}

func TestDonationService_CreateDonation(t *testing.T) {
	donor := domain.User{ID: 7, Email: "donor@example.com", Role: domain.RoleDonor}
	ngo := domain.User{ID: 8, Email: "ngo@example.com", Role: domain.RoleNGO}

	t.Run("splits servings into bounded lots and persists", func(t *testing.T) {
		repo := &stubDonationRepo{}
		svc := NewDonationService(repo, &stubUserRepo{users: map[string]domain.User{donor.Email: donor}})

		created, lots, err := svc.CreateDonation(context.Background(), donor.Email, validDonation(), 100)

		require.NoError(t, err)
		assert.Equal(t, []int{100, 100, 50}, repo.gotLotSizes)
		assert.Equal(t, donor.ID, created.DonorID)
		assert.Equal(t, domain.DonationStatusPosted, created.Status)
		require.Len(t, lots, 3)

		sum := 0
		for _, lot := range lots {
			assert.Equal(t, domain.LotStatusOpen, lot.Status)
			sum += lot.Servings
		}
		assert.Equal(t, 250, sum)
	})

	t.Run("no lot size yields a single lot", func(t *testing.T) {
		repo := &stubDonationRepo{}
		svc := NewDonationService(repo, &stubUserRepo{users: map[string]domain.User{donor.Email: donor}})

		_, lots, err := svc.CreateDonation(context.Background(), donor.Email, validDonation(), 0)

		require.NoError(t, err)
		assert.Equal(t, []int{250}, repo.gotLotSizes)
		require.Len(t, lots, 1)
		assert.Equal(t, 250, lots[0].Servings)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewDonationService(&stubDonationRepo{}, &stubUserRepo{users: map[string]domain.User{}})

		_, _, err := svc.CreateDonation(context.Background(), "ghost@example.com", validDonation(), 0)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("stored role is not donor", func(t *testing.T) {
		svc := NewDonationService(&stubDonationRepo{}, &stubUserRepo{users: map[string]domain.User{ngo.Email: ngo}})

		_, _, err := svc.CreateDonation(context.Background(), ngo.Email, validDonation(), 0)

		assert.ErrorIs(t, err, ErrNotDonor)
	})
}

func TestDonationService_ListDonations(t *testing.T) {
	donor := domain.User{ID: 7, Email: "donor@example.com", Role: domain.RoleDonor}
	admin := domain.User{ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}
	users := &stubUserRepo{users: map[string]domain.User{donor.Email: donor, admin.Email: admin}}

	t.Run("donor sees only own donations", func(t *testing.T) {
		repo := &stubDonationRepo{donations: []domain.Donation{{ID: 3}, {ID: 2}}}
		svc := NewDonationService(repo, users)

		donations, err := svc.ListDonations(context.Background(), donor.Email)

		require.NoError(t, err)
		assert.Len(t, donations, 2)
		assert.True(t, repo.findByDonorCalled)
		assert.False(t, repo.findAllCalled)
		assert.Equal(t, donor.ID, repo.gotDonorID)
		assert.Equal(t, 30, repo.gotLimit)
	})

	t.Run("admin sees all donations", func(t *testing.T) {
		repo := &stubDonationRepo{donations: []domain.Donation{{ID: 3}}}
		svc := NewDonationService(repo, users)

		_, err := svc.ListDonations(context.Background(), admin.Email)

		require.NoError(t, err)
		assert.True(t, repo.findAllCalled)
		assert.False(t, repo.findByDonorCalled)
		assert.Equal(t, 30, repo.gotLimit)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewDonationService(&stubDonationRepo{}, users)

		_, err := svc.ListDonations(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
