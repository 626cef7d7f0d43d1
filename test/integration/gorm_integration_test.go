package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ClientRepository())
	assert.NotNil(t, uow.ItineraryRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Client Repository", func(t *testing.T) {
		count, err := uow.ClientRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Client count: %d", count)
	})

	t.Run("Check Invoice Repository", func(t *testing.T) {
		count, err := uow.InvoiceRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Invoice count: %d", count)
	})

	t.Run("Check Transactional Client And Itinerary", func(t *testing.T) {
		// Tenant and acting user first; everything else hangs off the agency.
		agency := &entity.Agency{
			Name:         "Integration Agency " + uuid.New().String(),
			ContactEmail: "integration-" + uuid.New().String() + "@example.com",
		}
		err := uow.AgencyRepository().Create(context.Background(), agency)
		assert.NoError(t, err)

		user := &entity.User{
			AgencyId:     agency.Id,
			Email:        "integration-" + uuid.New().String() + "@example.com",
			FullName:     "Integration Test User",
			PasswordHash: "not-a-real-hash",
			Role:         entity.UserRoleAdmin,
			Status:       entity.UserStatusActive,
		}
		err = uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		client := &entity.Client{
			AgencyId:    agency.Id,
			FullName:    "Integration Client",
			Email:       "client-" + uuid.New().String() + "@example.com",
			BudgetRange: "$1000-2000",
			CreatedBy:   user.Id,
		}
		err = uow.ClientRepository().Create(ctx, client)
		assert.NoError(t, err)

		itinerary := &entity.Itinerary{
			AgencyId:    agency.Id,
			ClientId:    client.Id,
			Destination: "Bali",
			Duration:    5,
			Budget:      client.BudgetRange,
			Status:      entity.ItineraryStatusDraft,
			CreatedBy:   user.Id,
		}
		err = uow.ItineraryRepository().Create(ctx, itinerary)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Client with Itinerary in Transaction")
	})
}
