package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgres spins up a disposable Postgres container. The unique index
// behavior under test is Postgres-specific, so there is no in-memory shortcut.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_PASSWORD=secret",
		"POSTGRES_DB=mealbridge_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=postgres password=secret dbname=mealbridge_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	require.NoError(t, pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}

		sqlDB, pingErr := db.DB()
		if pingErr != nil {
			return pingErr
		}

		return sqlDB.Ping()
	}))

	require.NoError(t, InitTables(db))

	return db
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	db := setupPostgres(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, User{Email: "donor@example.com", PasswordHash: "hash", Role: "DONOR"})
	require.NoError(t, err)

	// The unique index closes the register check-then-create race; a
	// concurrent duplicate surfaces here rather than as a second row.
	_, err = d.Insert(ctx, User{Email: "donor@example.com", PasswordHash: "hash2", Role: "NGO"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserDAO_FindByEmail(t *testing.T) {
	db := setupPostgres(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, User{Email: "donor@example.com", PasswordHash: "hash", Role: "DONOR"})
	require.NoError(t, err)

	found, err := d.FindByEmail(ctx, "donor@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "DONOR", found.Role)

	_, err = d.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDonationDAO_InsertWithLots(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	donor, err := NewUserDAO(db).Insert(ctx, User{Email: "donor@example.com", PasswordHash: "hash", Role: "DONOR"})
	require.NoError(t, err)

	d := NewDonationDAO(db)
	donation := Donation{
		DonorID:           donor.ID,
		FoodType:          "cooked rice",
		ServingsTotal:     250,
		DietaryCategory:   "VEG",
		PickupWindowStart: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		PickupWindowEnd:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
		ExpiryAt:          time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:            "POSTED",
	}

	created, lots, err := d.InsertWithLots(ctx, donation, []int{100, 100, 50})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, lots, 3)

	sum := 0
	for i, lot := range lots {
		assert.Equal(t, created.ID, lot.DonationID)
		assert.Equal(t, "OPEN", lot.Status)
		if i > 0 {
			assert.Greater(t, lot.ID, lots[i-1].ID)
		}
		sum += lot.Servings
	}
	assert.Equal(t, 250, sum)
}

func TestDonationDAO_Find(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	userDAO := NewUserDAO(db)
	donorA, err := userDAO.Insert(ctx, User{Email: "a@example.com", PasswordHash: "hash", Role: "DONOR"})
	require.NoError(t, err)
	donorB, err := userDAO.Insert(ctx, User{Email: "b@example.com", PasswordHash: "hash", Role: "DONOR"})
	require.NoError(t, err)

	d := NewDonationDAO(db)
	insert := func(donorID uint, foodType string) {
		_, _, err := d.InsertWithLots(ctx, Donation{
			DonorID:           donorID,
			FoodType:          foodType,
			ServingsTotal:     10,
			DietaryCategory:   "VEG",
			PickupWindowStart: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
			PickupWindowEnd:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
			ExpiryAt:          time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC),
			Status:            "POSTED",
		}, []int{10})
		require.NoError(t, err)
	}

	insert(donorA.ID, "rice")
	insert(donorB.ID, "dal")
	insert(donorA.ID, "bread")

	own, err := d.FindByDonorID(ctx, donorA.ID, 30)
	require.NoError(t, err)
	require.Len(t, own, 2)
	// Newest first, id as tiebreak within equal timestamps.
	assert.Equal(t, "bread", own[0].FoodType)
	assert.Equal(t, "rice", own[1].FoodType)

	all, err := d.FindAll(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	capped, err := d.FindAll(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
