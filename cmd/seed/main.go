package main

import (
	"log"
	"os"

	"triponic-be/internal/model"
	"triponic-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo agency...")

	var existing model.Agency
	if err := db.Where("name = ?", "Demo Travel Co").First(&existing).Error; err == nil {
		color.Yellow("Demo agency already exists, skipping.")
		return
	}

	agency := model.Agency{
		Name:         "Demo Travel Co",
		ContactEmail: "hello@demotravel.example",
		Phone:        "+1 555 0100",
	}
	if err := db.Create(&agency).Error; err != nil {
		log.Fatalf("Error creating agency: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	admin := model.User{
		AgencyId:     agency.Id,
		Email:        "admin@demotravel.example",
		FullName:     "Demo Admin",
		PasswordHash: string(hash),
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}
	color.Green("Created admin user: %s (password: password123)", admin.Email)

	clients := []model.Client{
		{
			AgencyId:    agency.Id,
			FullName:    "John Smith",
			Email:       "john.smith@example.com",
			Interests:   datatypes.JSON([]byte(`["beaches","food"]`)),
			BudgetRange: "$1000-2000",
			VipStatus:   true,
			CreatedBy:   admin.Id,
		},
		{
			AgencyId:    agency.Id,
			FullName:    "Maria Garcia",
			Email:       "maria.garcia@example.com",
			Interests:   datatypes.JSON([]byte(`["culture","hiking"]`)),
			BudgetRange: "$3000-5000",
			CreatedBy:   admin.Id,
		},
	}
	for _, c := range clients {
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating client '%s': %v", c.FullName, err)
		} else {
			color.Green("Created client: %s", c.FullName)
		}
	}

	leads := []model.Lead{
		{
			AgencyId:    agency.Id,
			Name:        "Alex Tan",
			Email:       "alex.tan@example.com",
			Source:      "website",
			Destination: "Bali",
			BudgetRange: "$2000",
			Priority:    "high",
			Status:      "new",
			AssignedTo:  admin.Id,
			CreatedBy:   admin.Id,
		},
		{
			AgencyId:    agency.Id,
			Name:        "Sophie Martin",
			Email:       "sophie.martin@example.com",
			Source:      "referral",
			Destination: "Tokyo",
			BudgetRange: "$4000",
			Priority:    "medium",
			Status:      "contacted",
			AssignedTo:  admin.Id,
			CreatedBy:   admin.Id,
		},
	}
	for _, l := range leads {
		if err := db.Create(&l).Error; err != nil {
			log.Printf("Error creating lead '%s': %v", l.Name, err)
		} else {
			color.Green("Created lead: %s", l.Name)
		}
	}

	color.Cyan("Seeding completed.")
}
