package main

import (
	"fmt"
	"log"

	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

// Prints a value suitable for SESSION_SECRET.
func main() {
	secret, err := utils.NewSessionSecret()
	if err != nil {
		log.Fatalf("generate secret: %v", err)
	}
	fmt.Println(secret)
}
