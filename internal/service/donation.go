package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mealbridge/mealbridge-api/internal/domain"
	"github.com/mealbridge/mealbridge-api/internal/pkg/lotsplit"
	"github.com/mealbridge/mealbridge-api/internal/repository"
)

// listLimit caps how many donations a single list call returns.
const listLimit = 30

// ErrNotDonor is returned when the acting user's stored role forbids the
// operation, regardless of what the session token claims.
var ErrNotDonor = errors.New("user is not a donor")

type DonationUserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type DonationRepository interface {
	CreateWithLots(ctx context.Context, donation domain.Donation, lotSizes []int) (domain.Donation, []domain.DonationLot, error)
	FindByDonorID(ctx context.Context, donorID uint, limit int) ([]domain.Donation, error)
	FindAll(ctx context.Context, limit int) ([]domain.Donation, error)
}

type DonationService struct {
	repo     DonationRepository
	userRepo DonationUserRepository
}

func NewDonationService(repo DonationRepository, userRepo DonationUserRepository) *DonationService {
	return &DonationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateDonation resolves the acting user by email, verifies the stored role
// is DONOR (the token's claimed role was already checked at the boundary, but
// a token outlives a role change while the users row does not), splits the
// servings into lots and persists donation plus lots in one transaction.
func (s *DonationService) CreateDonation(ctx context.Context, actorEmail string, donation domain.Donation, lotSize int) (domain.Donation, []domain.DonationLot, error) {
	user, err := s.userRepo.FindByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Donation{}, nil, ErrUserNotFound
		}

		return domain.Donation{}, nil, fmt.Errorf("s.userRepo.FindByEmail -> %w", err)
	}

	if user.Role != domain.RoleDonor {
		return domain.Donation{}, nil, ErrNotDonor
	}

	donation.DonorID = user.ID
	lotSizes := lotsplit.SplitIntoLots(donation.ServingsTotal, lotSize)

	created, lots, err := s.repo.CreateWithLots(ctx, donation, lotSizes)
	if err != nil {
		return domain.Donation{}, nil, fmt.Errorf("s.repo.CreateWithLots -> %w", err)
	}

	return created, lots, nil
}

// ListDonations returns the newest donations first, capped at 30. Admins see
// every donation, donors only their own.
func (s *DonationService) ListDonations(ctx context.Context, actorEmail string) ([]domain.Donation, error) {
	user, err := s.userRepo.FindByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("s.userRepo.FindByEmail -> %w", err)
	}

	var donations []domain.Donation
	if user.Role == domain.RoleAdmin {
		donations, err = s.repo.FindAll(ctx, listLimit)
	} else {
		donations, err = s.repo.FindByDonorID(ctx, user.ID, listLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return donations, nil
}
