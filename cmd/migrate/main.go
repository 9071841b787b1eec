package main

import (
	"log"

	"scipress-events/config"
	"scipress-events/internal/domain/comment"
	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/deposit"
	"scipress-events/internal/domain/event"
	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/domain/history"
	"scipress-events/internal/domain/notification"
	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/domain/review"
	"scipress-events/internal/domain/user"
	"scipress-events/pkg/database"
)

func main() {
	cfg := config.LoadConfig()

	// Connect to Database
	database.Connect(cfg)

	if err := database.DB.AutoMigrate(
		&user.User{},
		&user.PushToken{},
		&community.Community{},
		&community.Moderator{},
		&deposit.Deposit{},
		&review.Review{},
		&review.Invitation{},
		&comment.Comment{},
		&feedback.Feedback{},
		&event.Record{},
		&notification.AppNotification{},
		&outbox.EmailMessage{},
		&history.Entry{},
	); err != nil {
		log.Fatalf("Failed to apply GORM migrations: %v", err)
	}

	log.Println("Migrations applied")
}
