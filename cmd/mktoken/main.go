package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"taskboard/pkg/utils"
)

// mktoken signs a development JWT for exercising the API by hand:
//
//	go run ./cmd/mktoken -user <uuid> -name "Dev User" -email dev@example.com
func main() {
	godotenv.Load()

	userFlag := flag.String("user", "", "user ID (uuid), random when omitted")
	nameFlag := flag.String("name", "Dev User", "user display name")
	emailFlag := flag.String("email", "dev@example.com", "user email")
	ttlFlag := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("Invalid user ID: %v", err)
		}
		userID = parsed
	}

	token, err := utils.SignToken(userID, *nameFlag, *emailFlag, secret, *ttlFlag)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Printf("User ID: %s\n", userID)
	fmt.Printf("Token:   %s\n", token)
}
