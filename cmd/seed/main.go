package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"templecms/internal/config"
	"templecms/internal/database"
	"templecms/internal/domain/auth"
	"templecms/internal/domain/contact"
	"templecms/internal/domain/event"
	"templecms/internal/domain/image"
	"templecms/internal/domain/project"
	"templecms/internal/pkg/photos"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&event.Event{},
		&project.Project{},
		&image.Image{},
		&contact.Message{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (images first, they reference events/projects)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM images")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")

	adminEmail := getenv("ADMIN_EMAIL", "admin@center.local")
	adminPassword := getenv("ADMIN_PASSWORD", "admin123")

	hash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	admin := auth.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Site Administrator",
		Role:         auth.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")

	now := time.Now()
	events := []event.Event{
		{
			Name:        "Full Moon Meditation",
			Description: "Guided sitting meditation under the full moon, open to all levels.",
			Category:    event.CategoryMeditation,
			EventDate:   now.AddDate(0, 0, 14),
			Photos:      photos.Encode(nil),
		},
		{
			Name:        "Introduction to the Suttas",
			Description: "A weekly talk series walking through the foundational discourses.",
			Category:    event.CategoryDhammaTalk,
			EventDate:   now.AddDate(0, 0, 7),
			Photos:      photos.Encode(nil),
		},
		{
			Name:        "Vesak Celebration",
			Description: "Annual celebration with offerings, chanting and a shared meal.",
			Category:    event.CategoryCeremony,
			EventDate:   now.AddDate(0, -1, 0),
			Photos:      photos.Encode(nil),
		},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Fatal("Failed to create event:", err)
		}
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")

	buildingStart := now.AddDate(0, -3, 0)
	buildingEnd := now.AddDate(1, 0, 0)
	projects := []project.Project{
		{
			ProjectName:           "Meditation Hall Roof",
			Description:           "Replace the aging roof of the main meditation hall before the rains.",
			Photos:                photos.Encode(nil),
			DonationGoalAmount:    decimal.NewFromInt(25000),
			CurrentDonationAmount: decimal.NewFromInt(8200),
			ProjectType:           "Construction",
			ProjectNature:         project.NatureOneTime,
			StartDate:             &buildingStart,
			EndDate:               &buildingEnd,
			DonationLinkTarget:    project.TargetSpecialProjects,
		},
		{
			ProjectName:           "Daily Alms Offering",
			Description:           "Ongoing support for the daily meal offering to the resident monastics.",
			Photos:                photos.Encode(nil),
			DonationGoalAmount:    decimal.NewFromInt(1200),
			CurrentDonationAmount: decimal.NewFromInt(950),
			ProjectType:           "Sustenance",
			ProjectNature:         project.NatureContinuous,
			DonationLinkTarget:    project.TargetDailyDana,
		},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			log.Fatal("Failed to create project:", err)
		}
	}

	log.Printf("Seed complete: admin=%s events=%d projects=%d", adminEmail, len(events), len(projects))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
