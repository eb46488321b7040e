package main

import (
	"context"
	"fmt"
	"os"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"
	"keyworker-data/internal/repository"
)

// Prints the staff accounts in the database file, for troubleshooting
// installs where someone cannot log in.
func main() {
	cfg := config.Load()

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database %s: %v\n", cfg.Database.Path, err)
		os.Exit(1)
	}
	defer db.Close()

	users, err := repository.NewSQLiteUsersRepository(db).List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "list users: %v\n", err)
		os.Exit(1)
	}

	if len(users) == 0 {
		fmt.Println("No accounts found.")
		return
	}
	fmt.Printf("%-6s %-30s %-12s %s\n", "ID", "USERNAME", "ROLE", "MUST CHANGE PASSWORD")
	for _, u := range users {
		mustChange := "no"
		if u.FirstLogin {
			mustChange = "yes"
		}
		fmt.Printf("%-6d %-30s %-12s %s\n", u.ID, u.Username, u.Role, mustChange)
	}
}
