package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"homeswap/internal/database"
	"homeswap/internal/domain"
	"homeswap/internal/modules/notification"
	"homeswap/internal/modules/upload"

	"golang.org/x/crypto/bcrypt"
)

// Development seeder: wipes the local database and fills it with an admin,
// a few members, listings in every review state and a populated moderation
// queue.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "homeswap.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.UserVerification{},
		&domain.Feedback{},
		&domain.InboxItem{},
		&domain.ExchangeRequest{},
		&upload.Upload{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM exchange_requests")
	db.Exec("DELETE FROM inbox_items")
	db.Exec("DELETE FROM feedbacks")
	db.Exec("DELETE FROM user_verifications")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:          "admin@homeswap.dev",
		PasswordHash:   string(adminHash),
		Role:           domain.RoleAdmin,
		Name:           "Site Admin",
		IdentityStatus: domain.IdentityVerified,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@homeswap.dev / admin123")

	memberHash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
	members := []domain.User{}
	names := []string{"Alice Martin", "Bruno Keller", "Carla Jensen"}
	for i, name := range names {
		m := domain.User{
			Email:          fmt.Sprintf("member%d@homeswap.dev", i+1),
			PasswordHash:   string(memberHash),
			Role:           domain.RoleMember,
			Name:           name,
			Phone:          fmt.Sprintf("+31 6 1234 56%02d", i+10),
			IdentityStatus: domain.IdentityNone,
		}
		db.Create(&m)
		members = append(members, m)
	}
	log.Printf("Members created: member1..%d@homeswap.dev / member123", len(members))

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	approved := domain.Property{
		OwnerID:            members[0].ID,
		Title:              "Canal-side apartment in Amsterdam",
		Description:        "Bright two-bedroom apartment overlooking the Prinsengracht.",
		Country:            "Netherlands",
		City:               "Amsterdam",
		Address:            "Prinsengracht 100",
		MaxGuests:          4,
		Bedrooms:           2,
		Bathrooms:          1,
		Photos:             []string{"/static/uploads/seed/amsterdam-1.jpg"},
		Amenities:          []string{"wifi", "washer", "bikes"},
		VerificationStatus: domain.PropertyApproved,
	}
	db.Create(&approved)

	pending := domain.Property{
		OwnerID:            members[1].ID,
		Title:              "Mountain chalet near Innsbruck",
		Description:        "Cozy chalet with a sauna, twenty minutes from the slopes.",
		Country:            "Austria",
		City:               "Innsbruck",
		MaxGuests:          6,
		Bedrooms:           3,
		Bathrooms:          2,
		Photos:             []string{"/static/uploads/seed/chalet-1.jpg"},
		Amenities:          []string{"wifi", "sauna", "parking"},
		VerificationStatus: domain.PropertyPending,
	}
	db.Create(&pending)

	draft := domain.Property{
		OwnerID:            members[2].ID,
		Title:              "Beach house (work in progress)",
		Country:            "Portugal",
		City:               "Ericeira",
		MaxGuests:          5,
		VerificationStatus: domain.PropertyDraft,
	}
	db.Create(&draft)

	// ================== VERIFICATIONS ==================
	log.Println("Creating identity verifications...")

	ver := domain.UserVerification{
		UserID:       members[1].ID,
		DocumentType: "passport",
		DocumentURL:  "/static/uploads/seed/passport-bruno.pdf",
		Status:       domain.VerificationPending,
	}
	db.Create(&ver)
	db.Model(&domain.User{}).Where("id = ?", members[1].ID).
		Update("identity_status", domain.IdentityPending)

	// ================== FEEDBACK ==================
	fb := domain.Feedback{
		UserID:  &members[2].ID,
		Name:    members[2].Name,
		Email:   members[2].Email,
		Subject: "Search filters",
		Message: "It would be great to filter listings by pet friendliness.",
	}
	db.Create(&fb)

	// ================== INBOX ==================
	log.Println("Populating the moderation queue...")

	queue := []domain.InboxItem{
		{
			Type:           domain.InboxPropertyVerification,
			Status:         domain.InboxUnread,
			EventType:      domain.EventUpload,
			ReferenceID:    strconv.FormatInt(pending.ID, 10),
			ReferenceTable: "properties",
			SenderID:       members[1].ID,
			SenderName:     members[1].Name,
			SenderEmail:    members[1].Email,
		},
		{
			Type:           domain.InboxUserVerification,
			Status:         domain.InboxUnread,
			EventType:      domain.EventVerify,
			ReferenceID:    strconv.FormatInt(ver.ID, 10),
			ReferenceTable: "user_verifications",
			SenderID:       members[1].ID,
			SenderName:     members[1].Name,
			SenderEmail:    members[1].Email,
		},
		{
			Type:           domain.InboxFeedback,
			Status:         domain.InboxUnread,
			EventType:      domain.EventFeedback,
			ReferenceID:    strconv.FormatInt(fb.ID, 10),
			ReferenceTable: "feedbacks",
			SenderID:       members[2].ID,
			SenderName:     members[2].Name,
			SenderEmail:    members[2].Email,
		},
	}
	for i := range queue {
		db.Create(&queue[i])
	}

	// ================== EXCHANGE ==================
	log.Println("Creating a stay request...")

	start := time.Now().AddDate(0, 1, 0)
	req := domain.ExchangeRequest{
		PropertyID:  approved.ID,
		RequesterID: members[2].ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Guests:      2,
		Message:     "We would love to spend a week in Amsterdam in exchange for our beach house.",
		Status:      domain.ExchangePending,
	}
	db.Create(&req)

	log.Println("Seed complete.")
}
