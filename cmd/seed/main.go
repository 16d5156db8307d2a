package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kbryant/sendlater/internal/config"
	"github.com/kbryant/sendlater/internal/database"
	"github.com/kbryant/sendlater/internal/repository"
	"github.com/kbryant/sendlater/internal/service"
)

// Seeds a few demo items and messages scheduled for later today.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	messageService := service.NewMessageService(repository.NewMessageRepository(db))
	itemRepo := repository.NewItemRepository(db)

	sendTime := time.Now().UTC().Add(10 * time.Minute).Format(service.SendTimeLayout)

	seedMessages := []service.CreateMessageInput{
		{Message: "Don't forget the standup", Owner: "alice", DisplayName: "Alice", OutgoingPhone: "+15005550006", SendTime: sendTime},
		{Message: "Lunch at noon?", Owner: "bob", DisplayName: "Bob", OutgoingPhone: "+15005550007", SendTime: sendTime},
	}
	for _, input := range seedMessages {
		msg, err := messageService.Create(input)
		if err != nil {
			log.Fatal("Failed to seed message:", err)
		}
		fmt.Printf("Seeded message %s for %s at %s\n", msg.ID, msg.Owner, msg.SendTime)
	}

	items, err := itemRepo.ListAll()
	if err != nil {
		log.Fatal("Failed to list items:", err)
	}
	if len(items) == 0 {
		fmt.Println("No items yet; add some through POST /items")
	}
}
