package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"taskboard/domain/models"
	"taskboard/infrastructure/postgres"
	"taskboard/pkg/config"
)

// seed loads a demo user with one board, three columns, and a handful of
// tasks. Users are normally provisioned by the auth service, so local
// development needs this to get a working identity.
func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	owner := &models.User{ID: uuid.New(), Name: "Demo User", Email: "demo@example.com"}
	teammate := &models.User{ID: uuid.New(), Name: "Teammate", Email: "teammate@example.com"}
	if err := db.Create([]*models.User{owner, teammate}).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	board := &models.Board{ID: uuid.New(), Title: "Demo Sprint", Description: "Seeded demo board", OwnerID: owner.ID}
	if err := db.Create(board).Error; err != nil {
		log.Fatalf("Failed to seed board: %v", err)
	}

	titles := []string{"To Do", "In Progress", "Done"}
	columns := make([]*models.Column, len(titles))
	for i, title := range titles {
		columns[i] = &models.Column{ID: uuid.New(), Title: title, BoardID: board.ID, Order: i}
	}
	if err := db.Create(columns).Error; err != nil {
		log.Fatalf("Failed to seed columns: %v", err)
	}

	tasks := []*models.Task{
		{ID: uuid.New(), Title: "Sketch the board layout", ColumnID: columns[0].ID, Priority: models.PriorityHigh, CreatedBy: owner.ID, Order: 0},
		{ID: uuid.New(), Title: "Wire up drag and drop", ColumnID: columns[0].ID, Priority: models.PriorityMedium, CreatedBy: owner.ID, AssignedTo: &teammate.ID, Order: 1},
		{ID: uuid.New(), Title: "Review auth flow", ColumnID: columns[1].ID, Priority: models.PriorityLow, CreatedBy: owner.ID, Order: 0},
		{ID: uuid.New(), Title: "Set up the repo", ColumnID: columns[2].ID, Priority: models.PriorityMedium, CreatedBy: owner.ID, Order: 0},
	}
	if err := db.Create(tasks).Error; err != nil {
		log.Fatalf("Failed to seed tasks: %v", err)
	}

	fmt.Println("Seeded demo data")
	fmt.Printf("Owner ID:    %s\n", owner.ID)
	fmt.Printf("Teammate ID: %s\n", teammate.ID)
	fmt.Printf("Board ID:    %s\n", board.ID)
	fmt.Println()
	fmt.Println("Sign a token with: go run ./cmd/mktoken -user", owner.ID)
}
