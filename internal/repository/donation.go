package repository

import (
	"context"
	"fmt"

	"github.com/mealbridge/mealbridge-api/internal/domain"
	"github.com/mealbridge/mealbridge-api/internal/repository/dao"
)

type DonationDAO interface {
	InsertWithLots(ctx context.Context, donation dao.Donation, lotSizes []int) (dao.Donation, []dao.DonationLot, error)
	FindByDonorID(ctx context.Context, donorID uint, limit int) ([]dao.Donation, error)
	FindAll(ctx context.Context, limit int) ([]dao.Donation, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

// CreateWithLots persists a donation and one lot per entry of lotSizes
// atomically and returns the created rows.
func (r *DonationRepository) CreateWithLots(ctx context.Context, donation domain.Donation, lotSizes []int) (domain.Donation, []domain.DonationLot, error) {
	created, lotRows, err := r.dao.InsertWithLots(ctx, r.domainToDAO(donation), lotSizes)
	if err != nil {
		return domain.Donation{}, nil, fmt.Errorf("r.dao.InsertWithLots -> %w", err)
	}

	lots := make([]domain.DonationLot, len(lotRows))
	for i, row := range lotRows {
		lots[i] = r.daoToDomainLot(row)
	}

	return r.daoToDomain(created), lots, nil
}

func (r *DonationRepository) FindByDonorID(ctx context.Context, donorID uint, limit int) ([]domain.Donation, error) {
	rows, err := r.dao.FindByDonorID(ctx, donorID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDonorID -> %w", err)
	}

	return r.daoToDomainAll(rows), nil
}

func (r *DonationRepository) FindAll(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.dao.FindAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainAll(rows), nil
}

func (r *DonationRepository) domainToDAO(d domain.Donation) dao.Donation {
	return dao.Donation{
		DonorID:           d.DonorID,
		FoodType:          d.FoodType,
		ServingsTotal:     d.ServingsTotal,
		DietaryCategory:   d.DietaryCategory,
		PickupWindowStart: d.PickupWindowStart,
		PickupWindowEnd:   d.PickupWindowEnd,
		ExpiryAt:          d.ExpiryAt,
		LocationText:      optional(d.LocationText),
		City:              optional(d.City),
		Zone:              optional(d.Zone),
		Status:            string(domain.DonationStatusPosted),
	}
}

func (r *DonationRepository) daoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:                d.ID,
		DonorID:           d.DonorID,
		FoodType:          d.FoodType,
		ServingsTotal:     d.ServingsTotal,
		DietaryCategory:   d.DietaryCategory,
		PickupWindowStart: d.PickupWindowStart,
		PickupWindowEnd:   d.PickupWindowEnd,
		ExpiryAt:          d.ExpiryAt,
		LocationText:      deref(d.LocationText),
		City:              deref(d.City),
		Zone:              deref(d.Zone),
		Status:            domain.DonationStatus(d.Status),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *DonationRepository) daoToDomainAll(rows []dao.Donation) []domain.Donation {
	donations := make([]domain.Donation, len(rows))
	for i, row := range rows {
		donations[i] = r.daoToDomain(row)
	}

	return donations
}

func (r *DonationRepository) daoToDomainLot(l dao.DonationLot) domain.DonationLot {
	return domain.DonationLot{
		ID:         l.ID,
		DonationID: l.DonationID,
		Servings:   l.Servings,
		Status:     domain.LotStatus(l.Status),
		CreatedAt:  l.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
